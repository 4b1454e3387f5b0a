package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the uniform handler error. Fields carries field-level
// validation detail so callers can correct and resubmit.
type APIError struct {
	Code    int               `json:"-"`
	Message string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func NotFound(message string) *APIError {
	return &APIError{Code: http.StatusNotFound, Message: message}
}

func BadRequest(message string) *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: message}
}

func Internal(message string) *APIError {
	return &APIError{Code: http.StatusInternalServerError, Message: message}
}

// Validation builds the structured 422 used for rejected mutations.
func Validation(fields map[string]string) *APIError {
	return &APIError{
		Code:    http.StatusUnprocessableEntity,
		Message: "validation failed",
		Fields:  fields,
	}
}

// StoreError maps persistence failures: a missing row surfaces as NotFound,
// anything else is a transient store failure the caller cannot fix.
func StoreError(err error, notFoundMessage string) *APIError {
	if errors.Is(err, sql.ErrNoRows) {
		return NotFound(notFoundMessage)
	}
	return Internal(err.Error())
}

type HandlerFunc func(ctx *gin.Context) (any, *APIError)

// ResolveEndpoint adapts a HandlerFunc to gin: errors render with their
// status and structure, results render as 200 JSON.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, apiErr)
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}
