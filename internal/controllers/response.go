package controllers

import (
	"errors"
	"net/http"

	"localnews/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error kinds reported in the "error" field of failed responses.
const (
	KindValidation         = "ValidationError"
	KindUnauthorized       = "Unauthorized"
	KindInvalidToken       = "InvalidToken"
	KindInvalidCredentials = "InvalidCredentials"
	KindNotFound           = "NotFound"
	KindSlugConflict       = "SlugConflict"
	KindStorage            = "StorageError"
	KindTooManyRequests    = "TooManyRequests"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"News not found"`
	Error   string `json:"error" example:"NotFound"`
}

func respondError(c *gin.Context, status int, message, kind string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Message: message,
		Error:   kind,
	})
}

// handleServiceError maps a service error to its status and kind. Anything
// unrecognised is a storage failure; its detail is logged, not returned.
func handleServiceError(c *gin.Context, log *zap.Logger, err error, message string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error(), KindValidation)
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "News not found", KindNotFound)
	case errors.Is(err, services.ErrSlugConflict):
		respondError(c, http.StatusConflict, "Slug already exists", KindSlugConflict)
	default:
		log.Error(message, zap.Error(err), zap.String("path", c.FullPath()))
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, message, KindStorage)
	}
}
