package handlers

import (
	"net/http"

	"depth-chart-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DepthChartHandler handles HTTP requests for depth chart operations
type DepthChartHandler struct {
	chartService service.DepthChartServiceInterface
}

// NewDepthChartHandler creates a new depth chart handler
func NewDepthChartHandler(chartService service.DepthChartServiceInterface) *DepthChartHandler {
	return &DepthChartHandler{
		chartService: chartService,
	}
}

// ListDepthCharts handles GET /depth-charts
// @Summary List depth charts
// @Description List the caller's team charts, default first then by name, with position and assignment counts
// @Tags depth-charts
// @Produce json
// @Success 200 {object} Response{data=[]service.DepthChartSummary} "Charts"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /depth-charts [get]
func (h *DepthChartHandler) ListDepthCharts(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}

	charts, err := h.chartService.List(c.Request.Context(), who.TeamID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, charts)
}

// GetDepthChart handles GET /depth-charts/byId/:id
// @Summary Get a depth chart
// @Description Get a chart with its active positions and their ranked players
// @Tags depth-charts
// @Produce json
// @Param id path int true "Depth chart ID"
// @Success 200 {object} Response{data=service.DepthChartDetail} "Chart with roster"
// @Failure 400 {object} Response "Invalid ID"
// @Failure 404 {object} Response "Depth chart not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /depth-charts/byId/{id} [get]
func (h *DepthChartHandler) GetDepthChart(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	chart, err := h.chartService.Get(c.Request.Context(), id, who.TeamID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, chart)
}

// CreateDepthChart handles POST /depth-charts
// @Summary Create a depth chart
// @Description Create a chart, seeding the standard positions when none are given
// @Tags depth-charts
// @Accept json
// @Produce json
// @Param chart body service.CreateDepthChartRequest true "Chart data"
// @Success 201 {object} Response{data=service.DepthChartDetail} "Created chart"
// @Failure 400 {object} Response "Invalid request body"
// @Failure 403 {object} Response "Missing capability"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /depth-charts [post]
func (h *DepthChartHandler) CreateDepthChart(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	var req service.CreateDepthChartRequest
	if !bindJSON(c, &req) {
		return
	}

	chart, err := h.chartService.Create(c.Request.Context(), who.TeamID, who.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, chart)
}

// UpdateDepthChart handles PUT /depth-charts/byId/:id
// @Summary Update a depth chart
// @Description Apply a partial update and bump the chart version
// @Tags depth-charts
// @Accept json
// @Produce json
// @Param id path int true "Depth chart ID"
// @Param chart body service.UpdateDepthChartRequest true "Fields to change"
// @Success 200 {object} Response{data=service.DepthChartResponse} "Updated chart"
// @Failure 400 {object} Response "Invalid request"
// @Failure 403 {object} Response "Missing capability"
// @Failure 404 {object} Response "Depth chart not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /depth-charts/byId/{id} [put]
func (h *DepthChartHandler) UpdateDepthChart(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateDepthChartRequest
	if !bindJSON(c, &req) {
		return
	}

	chart, err := h.chartService.Update(c.Request.Context(), id, who.TeamID, who.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, chart)
}

// DeleteDepthChart handles DELETE /depth-charts/byId/:id
// @Summary Delete a depth chart
// @Tags depth-charts
// @Produce json
// @Param id path int true "Depth chart ID"
// @Success 200 {object} Response "Deleted"
// @Failure 400 {object} Response "Invalid ID"
// @Failure 403 {object} Response "Missing capability"
// @Failure 404 {object} Response "Depth chart not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /depth-charts/byId/{id} [delete]
func (h *DepthChartHandler) DeleteDepthChart(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.chartService.Delete(c.Request.Context(), id, who.TeamID, who.UserID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Depth chart deleted successfully")
}

// DuplicateDepthChart handles POST /depth-charts/:id/duplicate
// @Summary Duplicate a depth chart
// @Description Copy a chart and its positions. Assignments are not copied.
// @Tags depth-charts
// @Produce json
// @Param id path int true "Source depth chart ID"
// @Success 200 {object} Response{data=service.DuplicateResponse} "ID of the copy"
// @Failure 400 {object} Response "Invalid ID"
// @Failure 403 {object} Response "Missing capability"
// @Failure 404 {object} Response "Depth chart not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /depth-charts/{id}/duplicate [post]
func (h *DepthChartHandler) DuplicateDepthChart(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	dup, err := h.chartService.Duplicate(c.Request.Context(), id, who.TeamID, who.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, dup)
}

// GetHistory handles GET /depth-charts/:id/history
// @Summary Depth chart history
// @Description List recorded changes oldest first. Deleted charts keep their history.
// @Tags depth-charts
// @Produce json
// @Param id path int true "Depth chart ID"
// @Success 200 {object} Response{data=[]service.HistoryEntry} "History entries"
// @Failure 400 {object} Response "Invalid ID"
// @Failure 404 {object} Response "Depth chart not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /depth-charts/{id}/history [get]
func (h *DepthChartHandler) GetHistory(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	history, err := h.chartService.History(c.Request.Context(), id, who.TeamID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, history)
}
