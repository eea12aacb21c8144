// File: azulpool/handlers/audit.go
package handlers

import (
	"net/http"

	"azulpool/services/audit"
	"azulpool/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuditHandler exposes the admin audit-log listing.
type AuditHandler struct {
	Recorder *audit.Recorder
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(rec *audit.Recorder) *AuditHandler {
	return &AuditHandler{Recorder: rec}
}

// ListAuditLogsHandler returns metadata for all recorded audit events.
func (h *AuditHandler) ListAuditLogsHandler(c *gin.Context) {
	infos, err := h.Recorder.List(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list audit logs", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list audit logs", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "logs": infos})
}
