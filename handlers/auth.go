// File: azulpool/handlers/auth.go
package handlers

import (
	"net/http"

	"azulpool/config"
	"azulpool/middleware"
	"azulpool/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthHandler handles admin console login and logout.
type AdminAuthHandler struct {
	Sessions utils.SessionStore
}

// NewAdminAuthHandler creates a new AdminAuthHandler.
func NewAdminAuthHandler(sessions utils.SessionStore) *AdminAuthHandler {
	return &AdminAuthHandler{Sessions: sessions}
}

type loginRequest struct {
	Password string `json:"password"`
}

// LoginHandler verifies the admin password against the configured bcrypt
// hash and, on success, issues a session cookie.
func (h *AdminAuthHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Password is required", "")
		return
	}

	hash := config.AppConfig.AdminPasswordHash
	if hash == "" {
		zap.L().Error("ADMIN_PASSWORD_HASH is not configured; admin login disabled")
		utils.JSONError(c, http.StatusServiceUnavailable, "Admin login is not configured", "")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid password"})
		return
	}

	token, err := utils.NewSessionToken()
	if err != nil {
		zap.L().Error("Failed to generate session token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create session", "")
		return
	}
	session := utils.AdminSession{
		Token:     token,
		IP:        middleware.ClientIP(c),
		UserAgent: c.GetHeader("User-Agent"),
	}
	if err := h.Sessions.Create(c.Request.Context(), session); err != nil {
		zap.L().Error("Failed to store admin session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create session", "")
		return
	}

	signed, err := utils.SignSessionToken(token, utils.AdminSessionTTL)
	if err != nil {
		zap.L().Error("Failed to sign session token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create session", "")
		return
	}

	c.SetCookie(middleware.AdminAuthCookie, signed, int(utils.AdminSessionTTL.Seconds()), "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LogoutHandler revokes the current session and clears the cookie.
func (h *AdminAuthHandler) LogoutHandler(c *gin.Context) {
	if signed, err := c.Cookie(middleware.AdminAuthCookie); err == nil && signed != "" {
		if token, err := utils.ParseSessionToken(signed); err == nil {
			if err := h.Sessions.Revoke(c.Request.Context(), token); err != nil {
				zap.L().Warn("Failed to revoke admin session", zap.Error(err))
			}
		}
	}
	c.SetCookie(middleware.AdminAuthCookie, "", -1, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SessionCheckHandler reports whether the caller holds a live admin session.
// It sits behind the auth middleware, so reaching it means yes.
func (h *AdminAuthHandler) SessionCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "authenticated": true})
}
