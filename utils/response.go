package utils

import (
	"errors"
	"net/http"

	"main/model"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int         `json:"-"`                 // HTTP status code
	Message string      `json:"message,omitempty"` // Optional message
	Error   string      `json:"error,omitempty"`   // Error message
	Kind    string      `json:"kind,omitempty"`    // Error taxonomy kind
	Data    interface{} `json:"data,omitempty"`    // Response data
}

// Success responses
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &Response{
		Status: http.StatusOK,
		Data:   data,
	})
}

func SuccessMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, &Response{
		Status:  http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Error responses
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, &Response{
		Status: http.StatusBadRequest,
		Kind:   model.ErrKindValidation,
		Error:  message,
	})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, &Response{
		Status: http.StatusUnauthorized,
		Kind:   model.ErrKindAuthRejected,
		Error:  message,
	})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, &Response{
		Status: http.StatusForbidden,
		Kind:   model.ErrKindForbidden,
		Error:  message,
	})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, &Response{
		Status: http.StatusNotFound,
		Kind:   model.ErrKindNotFound,
		Error:  message,
	})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, &Response{
		Status: http.StatusConflict,
		Kind:   model.ErrKindConflict,
		Error:  message,
	})
}

func PreconditionFailed(c *gin.Context, message string) {
	c.JSON(http.StatusPreconditionFailed, &Response{
		Status: http.StatusPreconditionFailed,
		Kind:   model.ErrKindPreconditionFailed,
		Error:  message,
	})
}

func UpstreamUnavailable(c *gin.Context, message string) {
	c.JSON(http.StatusServiceUnavailable, &Response{
		Status: http.StatusServiceUnavailable,
		Kind:   model.ErrKindUpstreamUnavailable,
		Error:  message,
	})
}

// WriteError maps a taxonomy error onto the matching HTTP response. Store
// failures never leak their detail past this point, and auth failures all
// share one body regardless of cause.
func WriteError(c *gin.Context, err error) {
	message := "request failed"
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	switch model.ErrKind(err) {
	case model.ErrKindValidation:
		BadRequest(c, message)
	case model.ErrKindAuthRejected:
		Unauthorized(c, "authentication rejected")
	case model.ErrKindForbidden:
		Forbidden(c, "access denied")
	case model.ErrKindNotFound:
		NotFound(c, message)
	case model.ErrKindPreconditionFailed:
		PreconditionFailed(c, message)
	case model.ErrKindConflict:
		Conflict(c, message)
	default:
		UpstreamUnavailable(c, "service temporarily unavailable")
	}
}
