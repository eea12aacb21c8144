// File: azulpool/handlers/access.go
package handlers

import (
	"net/http"

	"azulpool/middleware"
	"azulpool/services/access"
	"azulpool/services/audit"
	"azulpool/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DataAccessHandler serves customer right-to-access requests: a two-step
// flow (request a verification code by email, then redeem it for the stored
// quote data). Admins with a live session skip the code.
type DataAccessHandler struct {
	Service  *access.Service
	Sessions utils.SessionStore
	Audit    *audit.Recorder
}

// NewDataAccessHandler creates a new DataAccessHandler.
func NewDataAccessHandler(svc *access.Service, sessions utils.SessionStore, auditRec *audit.Recorder) *DataAccessHandler {
	return &DataAccessHandler{Service: svc, Sessions: sessions, Audit: auditRec}
}

type dataAccessRequest struct {
	Email  string `json:"email"`
	Action string `json:"action"`
	Code   string `json:"code"`
}

// QuoteAccessHandler dispatches on the requested action: "request-code"
// (the default) issues and emails a verification code; "verify-code" redeems
// it and returns every quote stored under the address.
func (h *DataAccessHandler) QuoteAccessHandler(c *gin.Context) {
	var req dataAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email address is required", err.Error())
		return
	}
	if req.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "Email address is required", "")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid email format", "")
		return
	}

	switch req.Action {
	case "", "request-code":
		h.requestCode(c, req.Email)
	case "verify-code":
		h.verifyAndFetch(c, req.Email, req.Code)
	default:
		utils.JSONError(c, http.StatusBadRequest, `Invalid action. Use "request-code" or "verify-code"`, "")
	}
}

func (h *DataAccessHandler) requestCode(c *gin.Context, email string) {
	delivered, err := h.Service.RequestCode(c.Request.Context(), email)
	if err != nil {
		zap.L().Error("Failed to issue verification code", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process data access request", "")
		return
	}
	h.recordEvent(c, email, delivered)

	if !delivered {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to send verification email. Please contact support.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Verification code sent to your email. Please check your inbox and use the code to access your data.",
		"nextStep": `Use the verification code with action: "verify-code"`,
	})
}

func (h *DataAccessHandler) verifyAndFetch(c *gin.Context, email, code string) {
	isAdmin := middleware.HasAdminSession(c, h.Sessions)

	if !isAdmin {
		if code == "" {
			utils.JSONError(c, http.StatusBadRequest, "Verification code is required", "")
			return
		}
		ok, err := h.Service.VerifyCode(c.Request.Context(), email, code)
		if err != nil {
			zap.L().Error("Failed to verify access code", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to process data access request", "")
			return
		}
		if !ok {
			h.recordEvent(c, email, false)
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid or expired verification code",
			})
			return
		}
	}

	matches, err := h.Service.Retrieve(c.Request.Context(), email)
	if err != nil {
		zap.L().Error("Failed to fetch quotes for data access request", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process data access request", "")
		return
	}
	h.recordEvent(c, email, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"email":   email,
		"count":   len(matches),
		"quotes":  matches,
		"message": "Data access request processed. TDPSA requires response within 30 days.",
	})
}

func (h *DataAccessHandler) recordEvent(c *gin.Context, email string, success bool) {
	if h.Audit == nil {
		return
	}
	err := h.Audit.Record(c.Request.Context(), audit.Event{
		Type:      audit.EventAccess,
		Email:     email,
		IP:        middleware.ClientIP(c),
		UserAgent: c.GetHeader("User-Agent"),
		Success:   success,
	})
	if err != nil {
		zap.L().Warn("Failed to record audit event", zap.Error(err))
	}
}
