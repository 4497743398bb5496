package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Notice is the short user-facing message the UI shows as a toast.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func traceIDOf(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	status := "success"
	if code >= http.StatusBadRequest {
		status = "error"
	}
	c.JSON(code, APIResponse{
		Status:  status,
		Code:    code,
		Message: message,
		TraceID: traceIDOf(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDOf(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Planner session not found")
	case errors.Is(err, ErrInvalidTransition):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrSubmissionInProgress):
		RespondError(c, http.StatusConflict, "An itinerary is already being generated")
	case errors.Is(err, ErrNoItinerary):
		RespondError(c, http.StatusConflict, "No itinerary has been generated yet")
	case errors.Is(err, ErrShareLinkExpired):
		RespondError(c, http.StatusGone, "Share link has expired")
	case errors.Is(err, ErrInvalidShareLink):
		RespondError(c, http.StatusBadRequest, "Share link is invalid")
	case errors.Is(err, ErrDownloadNotImplemented):
		RespondWithStatus(c, http.StatusNotImplemented, Notice{
			Title:       "Coming Soon!",
			Description: "PDF download feature will be available soon.",
		}, "Download is not available yet")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err), zap.String("trace_id", traceIDOf(c)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unhandled service error", zap.Error(err), zap.String("trace_id", traceIDOf(c)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
