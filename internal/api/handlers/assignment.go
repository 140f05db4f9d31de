package handlers

import (
	"net/http"

	"depth-chart-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for player assignments and suggestions
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// AssignPlayer handles POST /depth-charts/positions/:positionId/players
// @Summary Assign a player to a position
// @Tags assignments
// @Accept json
// @Produce json
// @Param positionId path int true "Position ID"
// @Param assignment body service.AssignPlayerRequest true "Assignment data"
// @Success 201 {object} Response{data=service.AssignmentResponse} "Created assignment"
// @Failure 400 {object} Response "Invalid request or player already assigned"
// @Failure 403 {object} Response "Missing capability"
// @Failure 404 {object} Response "Position or player not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /depth-charts/positions/{positionId}/players [post]
func (h *AssignmentHandler) AssignPlayer(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	positionID, ok := parseID(c, "positionId")
	if !ok {
		return
	}
	var req service.AssignPlayerRequest
	if !bindJSON(c, &req) {
		return
	}

	assignment, err := h.assignmentService.Assign(c.Request.Context(), positionID, who.TeamID, who.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, assignment)
}

// UpdateAssignment handles PUT /depth-charts/players/:assignmentId
// @Summary Change an assignment's rank or notes
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignmentId path int true "Assignment ID"
// @Param assignment body service.UpdateAssignmentRequest true "Fields to change"
// @Success 200 {object} Response{data=service.AssignmentResponse} "Updated assignment"
// @Failure 400 {object} Response "Invalid request"
// @Failure 403 {object} Response "Missing capability"
// @Failure 404 {object} Response "Assignment not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /depth-charts/players/{assignmentId} [put]
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	assignmentID, ok := parseID(c, "assignmentId")
	if !ok {
		return
	}
	var req service.UpdateAssignmentRequest
	if !bindJSON(c, &req) {
		return
	}

	assignment, err := h.assignmentService.UpdateAssignment(c.Request.Context(), assignmentID, who.TeamID, who.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, assignment)
}

// UnassignPlayer handles DELETE /depth-charts/players/:assignmentId
// @Summary Remove a player from a position
// @Tags assignments
// @Produce json
// @Param assignmentId path int true "Assignment ID"
// @Success 200 {object} Response "Removed"
// @Failure 400 {object} Response "Invalid ID"
// @Failure 403 {object} Response "Missing capability"
// @Failure 404 {object} Response "Assignment not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /depth-charts/players/{assignmentId} [delete]
func (h *AssignmentHandler) UnassignPlayer(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	assignmentID, ok := parseID(c, "assignmentId")
	if !ok {
		return
	}

	if err := h.assignmentService.Unassign(c.Request.Context(), assignmentID, who.TeamID, who.UserID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Player removed from position successfully")
}

// GetAvailablePlayers handles GET /depth-charts/:id/available-players
// @Summary Players not yet on the chart
// @Tags assignments
// @Produce json
// @Param id path int true "Depth chart ID"
// @Success 200 {object} Response{data=[]service.PlayerResponse} "Available players"
// @Failure 400 {object} Response "Invalid ID"
// @Failure 403 {object} Response "Missing capability"
// @Failure 404 {object} Response "Depth chart not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /depth-charts/{id}/available-players [get]
func (h *AssignmentHandler) GetAvailablePlayers(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	chartID, ok := parseID(c, "id")
	if !ok {
		return
	}

	players, err := h.assignmentService.AvailablePlayers(c.Request.Context(), chartID, who.TeamID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, players)
}

// GetRecommendedPlayers handles GET /depth-charts/:id/recommended-players/:positionId
// @Summary Ranked suggestions for a position
// @Description Score the available players for the position and return the best ones with reasons
// @Tags assignments
// @Produce json
// @Param id path int true "Depth chart ID"
// @Param positionId path int true "Position ID"
// @Success 200 {object} Response{data=[]service.RecommendationResponse} "Ranked players"
// @Failure 400 {object} Response "Invalid ID"
// @Failure 403 {object} Response "Missing capability"
// @Failure 404 {object} Response "Depth chart or position not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /depth-charts/{id}/recommended-players/{positionId} [get]
func (h *AssignmentHandler) GetRecommendedPlayers(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	chartID, ok := parseID(c, "id")
	if !ok {
		return
	}
	positionID, ok := parseID(c, "positionId")
	if !ok {
		return
	}

	ranked, err := h.assignmentService.RecommendedPlayers(c.Request.Context(), chartID, positionID, who.TeamID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, ranked)
}
