package middleware

import (
	"net/http"
	"strings"

	"azulpool/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuthCookie is the cookie carrying the signed admin session token.
const AdminAuthCookie = "admin-auth"

// AdminAuthMiddleware validates the admin session before any admin handler
// runs. Unauthenticated requests are rejected with 401 without touching
// storage. The cookie holds a signed JWT whose subject is a session token
// that must still be live in the session store.
func AdminAuthMiddleware(sessions utils.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		signed := adminCredential(c)
		if signed == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		token, err := utils.ParseSessionToken(signed)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		live, err := sessions.Exists(c.Request.Context(), token)
		if err != nil {
			zap.L().Error("admin session lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session store unavailable"})
			return
		}
		if !live {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("adminToken", token)
		c.Set("isAdmin", true)
		c.Next()
	}
}

// HasAdminSession reports whether the request carries a live admin session.
// Used by public endpoints where admins bypass customer verification; lookup
// failures count as not-an-admin rather than erroring.
func HasAdminSession(c *gin.Context, sessions utils.SessionStore) bool {
	signed := adminCredential(c)
	if signed == "" {
		return false
	}
	token, err := utils.ParseSessionToken(signed)
	if err != nil {
		return false
	}
	live, err := sessions.Exists(c.Request.Context(), token)
	if err != nil {
		zap.L().Warn("admin session lookup failed during bypass check", zap.Error(err))
		return false
	}
	return live
}

// adminCredential pulls the signed token from the auth cookie, falling back
// to a Bearer header for non-browser clients.
func adminCredential(c *gin.Context) string {
	if cookie, err := c.Cookie(AdminAuthCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
