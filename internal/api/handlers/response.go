package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"depth-chart-backend/internal/auth"
	apperrors "depth-chart-backend/internal/errors"
	"depth-chart-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every API endpoint answers with
type Response struct {
	Success bool                   `json:"success" example:"true"`
	Data    interface{}            `json:"data,omitempty"`
	Message string                 `json:"message,omitempty" example:"Depth chart deleted successfully"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: true, Message: message})
}

func respondFailure(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// respondError maps a service error onto a status code. Unexpected errors are logged and hidden.
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: "Validation failed",
			Errors:  validationErr.Details(),
		})
	case apperrors.IsNotFound(err):
		respondFailure(c, http.StatusNotFound, err.Error())
	case apperrors.IsConflict(err):
		respondFailure(c, http.StatusBadRequest, err.Error())
	case apperrors.IsAuthorization(err):
		respondFailure(c, http.StatusForbidden, err.Error())
	case apperrors.IsAuthentication(err):
		respondFailure(c, http.StatusUnauthorized, err.Error())
	default:
		logger.WithContext(c.Request.Context()).
			WithError(err).
			WithFields(map[string]interface{}{"method": c.Request.Method, "path": c.FullPath()}).
			Error("Request failed with an unexpected error")
		respondFailure(c, http.StatusInternalServerError, "Internal server error")
	}
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		respondFailure(c, http.StatusBadRequest, "invalid "+name+": must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body, answering 400 on malformed input
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// caller returns the authenticated caller or answers 401
func caller(c *gin.Context) (auth.Caller, bool) {
	who, ok := auth.GetCaller(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCaller)
		return auth.Caller{}, false
	}
	return who, true
}
