// File: azulpool/handlers/contact.go
package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"azulpool/services/notification"
	"azulpool/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactHandler relays public contact-form submissions to the office inbox.
type ContactHandler struct {
	Mailer notification.ContactSender
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(mailer notification.ContactSender) *ContactHandler {
	return &ContactHandler{Mailer: mailer}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SubmitContactHandler validates and forwards a contact-form message.
func (h *ContactHandler) SubmitContactHandler(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid contact form data", err.Error())
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		utils.JSONError(c, http.StatusBadRequest, "Name, email, and message are required", "")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid email address", "")
		return
	}

	sent := h.Mailer.SendContactForm(c.Request.Context(), notification.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if !sent {
		zap.L().Error("Failed to relay contact form message", zap.String("from", req.Email))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send message. Please try again later.", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contact form submitted successfully"})
}
