package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"newshub/internal/httpapi/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError translates a service failure into the JSON error body.
// Anything without a known mapping is logged and surfaced as a bare
// 500 so internal detail never reaches the client.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"msg": appErr.Msg})
		return
	}

	if mapped := apperrors.FromPostgres(err); mapped != nil {
		c.JSON(mapped.Status, gin.H{"msg": mapped.Msg})
		return
	}

	slog.Error("unhandled error", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
}
