package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/storefront-api/pkg/apperror"
)

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	resp := APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	}
	ctx.JSON(status, resp)
	return resp
}

// Error writes an error envelope and aborts the handler chain.
func Error[T any](ctx *gin.Context, status int, message string, err interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	resp := APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     err,
	}
	ctx.AbortWithStatusJSON(status, resp)
	return resp
}

// StatusFor is the single mapping from error kind to HTTP status. Lookup and
// credential failures are client errors (400) and store-level failures,
// duplicate emails included, are reported as a generic 500.
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.ValidationFailed, apperror.NotFound, apperror.InvalidCredential:
		return http.StatusBadRequest
	case apperror.Unauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Fail maps err through StatusFor and writes the error envelope.
func Fail(ctx *gin.Context, err error) {
	kind := apperror.KindOf(err)
	var details interface{}
	if fields := apperror.FieldsOf(err); len(fields) > 0 {
		details = fields
	} else {
		details = gin.H{"kind": kind.String()}
	}
	Error[any](ctx, StatusFor(kind), apperror.MessageOf(err), details)
}
