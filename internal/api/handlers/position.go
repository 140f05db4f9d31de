package handlers

import (
	"net/http"

	"depth-chart-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PositionHandler handles HTTP requests for chart positions
type PositionHandler struct {
	positionService service.PositionServiceInterface
}

// NewPositionHandler creates a new position handler
func NewPositionHandler(positionService service.PositionServiceInterface) *PositionHandler {
	return &PositionHandler{
		positionService: positionService,
	}
}

// AddPosition handles POST /depth-charts/:id/positions
// @Summary Add a position
// @Tags positions
// @Accept json
// @Produce json
// @Param id path int true "Depth chart ID"
// @Param position body service.CreatePositionRequest true "Position data"
// @Success 201 {object} Response{data=service.PositionResponse} "Created position"
// @Failure 400 {object} Response "Invalid request"
// @Failure 403 {object} Response "Missing capability"
// @Failure 404 {object} Response "Depth chart not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /depth-charts/{id}/positions [post]
func (h *PositionHandler) AddPosition(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	chartID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.CreatePositionRequest
	if !bindJSON(c, &req) {
		return
	}

	position, err := h.positionService.Add(c.Request.Context(), chartID, who.TeamID, who.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, position)
}

// UpdatePosition handles PUT /depth-charts/positions/:positionId
// @Summary Update a position
// @Tags positions
// @Accept json
// @Produce json
// @Param positionId path int true "Position ID"
// @Param position body service.UpdatePositionRequest true "Fields to change"
// @Success 200 {object} Response{data=service.PositionResponse} "Updated position"
// @Failure 400 {object} Response "Invalid request"
// @Failure 403 {object} Response "Missing capability"
// @Failure 404 {object} Response "Position not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /depth-charts/positions/{positionId} [put]
func (h *PositionHandler) UpdatePosition(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	positionID, ok := parseID(c, "positionId")
	if !ok {
		return
	}
	var req service.UpdatePositionRequest
	if !bindJSON(c, &req) {
		return
	}

	position, err := h.positionService.Update(c.Request.Context(), positionID, who.TeamID, who.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, position)
}

// DeletePosition handles DELETE /depth-charts/positions/:positionId
// @Summary Delete a position
// @Description Soft-delete a position. Its assignments are kept.
// @Tags positions
// @Produce json
// @Param positionId path int true "Position ID"
// @Success 200 {object} Response "Deleted"
// @Failure 400 {object} Response "Invalid ID"
// @Failure 403 {object} Response "Missing capability"
// @Failure 404 {object} Response "Position not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /depth-charts/positions/{positionId} [delete]
func (h *PositionHandler) DeletePosition(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	positionID, ok := parseID(c, "positionId")
	if !ok {
		return
	}

	if err := h.positionService.Delete(c.Request.Context(), positionID, who.TeamID, who.UserID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Position deleted successfully")
}
