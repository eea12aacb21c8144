// File: azulpool/handlers/pricing.go
package handlers

import (
	"net/http"

	"azulpool/middleware"
	"azulpool/models"
	"azulpool/services/audit"
	"azulpool/services/pricing"
	"azulpool/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PricingConfigHandler exposes the admin read/write surface over the pricing
// configuration. Both endpoints sit behind the admin auth middleware.
type PricingConfigHandler struct {
	Service pricing.ConfigService
	Audit   *audit.Recorder
}

// NewPricingConfigHandler creates a new PricingConfigHandler.
func NewPricingConfigHandler(svc pricing.ConfigService, auditRec *audit.Recorder) *PricingConfigHandler {
	return &PricingConfigHandler{Service: svc, Audit: auditRec}
}

// GetPricingConfigHandler returns the effective merged configuration plus the
// compiled-in defaults so the console can show which values are overridden.
func (h *PricingConfigHandler) GetPricingConfigHandler(c *gin.Context) {
	view, err := h.Service.GetConfig(c.Request.Context())
	if err != nil {
		// A storage failure is not "no config yet" — report it as such.
		zap.L().Error("Failed to load pricing config", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load pricing configuration", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"config":   view.Config,
		"defaults": view.Defaults,
	})
}

type savePricingConfigRequest struct {
	Config *models.PricingConfigPatch `json:"config"`
}

// SavePricingConfigHandler merges the submitted configuration onto the
// defaults, persists it, and invalidates the process-wide cache.
func (h *PricingConfigHandler) SavePricingConfigHandler(c *gin.Context) {
	var req savePricingConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid configuration data", err.Error())
		return
	}
	if req.Config == nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid configuration data", "config object is required")
		return
	}

	merged, err := h.Service.SaveConfig(c.Request.Context(), req.Config)
	if err != nil {
		zap.L().Error("Failed to save pricing config", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save pricing configuration", "")
		return
	}

	if h.Audit != nil {
		if err := h.Audit.Record(c.Request.Context(), audit.Event{
			Type:      audit.EventConfigChange,
			Key:       pricing.ConfigKey,
			IP:        middleware.ClientIP(c),
			UserAgent: c.GetHeader("User-Agent"),
			Success:   true,
		}); err != nil {
			zap.L().Warn("Failed to record config change audit event", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"config":  merged,
		"message": "Pricing configuration saved successfully",
	})
}
