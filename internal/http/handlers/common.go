package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"posbackend/internal/config"
	"posbackend/internal/domain"
	"posbackend/internal/http/middleware"
)

var env config.Env

// Init wires the environment into the handlers package. Called once from
// the router.
func Init(e config.Env) {
	env = e
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. Storage errors
// deliberately hide their cause from the point of sale.
func RespondDomainError(c *gin.Context, err error) {
	reqID := middleware.GetRequestID(c)
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error", "request_id": reqID})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": "not_found", "request_id": reqID})
	case domain.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "conflict", "request_id": reqID})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong", "code": "internal_error", "request_id": reqID})
	}
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
