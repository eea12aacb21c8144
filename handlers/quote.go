// File: azulpool/handlers/quote.go
package handlers

import (
	"errors"
	"net/http"

	quotesRepo "azulpool/database/repository/quotes"
	"azulpool/middleware"
	"azulpool/models"
	"azulpool/services/audit"
	"azulpool/services/quote"
	"azulpool/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler exposes the wizard submission surface and the admin quote
// lifecycle endpoints.
type QuoteHandler struct {
	Service quote.QuoteService
	Audit   *audit.Recorder
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(svc quote.QuoteService, auditRec *audit.Recorder) *QuoteHandler {
	return &QuoteHandler{Service: svc, Audit: auditRec}
}

// PriceQuoteHandler computes a price breakdown for a quote request without
// persisting anything. Used by the wizard for live estimates.
func (h *QuoteHandler) PriceQuoteHandler(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid quote data provided", err.Error())
		return
	}
	breakdown, err := h.Service.Price(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, quote.ErrInvalidQuote) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid quote data provided", err.Error())
			return
		}
		zap.L().Error("Failed to price quote", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to price quote", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pricing": breakdown})
}

// SubmitQuoteHandler persists a new quote with server-computed pricing. The
// storage key is deliberately not returned to the (public) caller.
func (h *QuoteHandler) SubmitQuoteHandler(c *gin.Context) {
	var record models.QuoteRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid quote data provided", err.Error())
		return
	}

	if _, err := h.Service.Submit(c.Request.Context(), record); err != nil {
		if errors.Is(err, quote.ErrInvalidQuote) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid quote data provided", err.Error())
			return
		}
		zap.L().Error("Failed to store quote", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to submit quote", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quote submitted successfully"})
}

// ListQuotesHandler returns metadata for all stored quotes, newest first.
func (h *QuoteHandler) ListQuotesHandler(c *gin.Context) {
	infos, err := h.Service.List(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list quotes", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list quotes", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "quotes": infos})
}

// GetQuoteHandler fetches a single quote record by its storage key.
func (h *QuoteHandler) GetQuoteHandler(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		utils.JSONError(c, http.StatusBadRequest, "key is required", "")
		return
	}
	record, err := h.Service.GetByKey(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, quotesRepo.ErrQuoteNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Quote not found", "")
			return
		}
		zap.L().Error("Failed to fetch quote", zap.String("key", key), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch quote", "")
		return
	}
	h.recordAccess(c, record.CustomerEmail(), key)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

type updateQuoteRequest struct {
	Key     string               `json:"key"`
	Pricing *models.QuotePricing `json:"pricing"`
	Status  models.QuoteStatus   `json:"status"`
}

// UpdateQuoteHandler overwrites a quote's pricing verbatim and advances its
// status. No recomputation happens here; the numbers are whatever the admin
// entered.
func (h *QuoteHandler) UpdateQuoteHandler(c *gin.Context) {
	var req updateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Key == "" {
		utils.JSONError(c, http.StatusBadRequest, "key is required", "")
		return
	}

	record, err := h.Service.UpdatePricing(c.Request.Context(), req.Key, req.Pricing, req.Status)
	if err != nil {
		if errors.Is(err, quotesRepo.ErrQuoteNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Quote not found", "")
			return
		}
		zap.L().Error("Failed to update quote pricing", zap.String("key", req.Key), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update quote", "")
		return
	}
	h.recordAccess(c, record.CustomerEmail(), req.Key)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

type acceptQuoteRequest struct {
	Key     string               `json:"key"`
	Pricing *models.QuotePricing `json:"pricing"`
}

// AcceptQuoteHandler finalizes a quote and emails the customer.
func (h *QuoteHandler) AcceptQuoteHandler(c *gin.Context) {
	var req acceptQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Key == "" {
		utils.JSONError(c, http.StatusBadRequest, "key is required", "")
		return
	}

	record, err := h.Service.Accept(c.Request.Context(), req.Key, req.Pricing)
	if err != nil {
		switch {
		case errors.Is(err, quotesRepo.ErrQuoteNotFound):
			utils.JSONError(c, http.StatusNotFound, "Quote not found", "")
		case errors.Is(err, quote.ErrNoCustomerEmail):
			utils.JSONError(c, http.StatusBadRequest, "Quote has no customer email", "")
		default:
			zap.L().Error("Failed to accept quote", zap.String("key", req.Key), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to accept quote", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

// DeleteQuoteHandler removes a stored quote.
func (h *QuoteHandler) DeleteQuoteHandler(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		utils.JSONError(c, http.StatusBadRequest, "key is required", "")
		return
	}
	if err := h.Service.DeleteByKey(c.Request.Context(), key); err != nil {
		if errors.Is(err, quotesRepo.ErrQuoteNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Quote not found", "")
			return
		}
		zap.L().Error("Failed to delete quote", zap.String("key", key), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete quote", "")
		return
	}
	h.recordEvent(c, audit.EventDeletionRequest, "", key)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quote deleted"})
}

// recordAccess logs an admin touching customer data; failures only warn.
func (h *QuoteHandler) recordAccess(c *gin.Context, email, key string) {
	h.recordEvent(c, audit.EventAccess, email, key)
}

func (h *QuoteHandler) recordEvent(c *gin.Context, eventType, email, key string) {
	if h.Audit == nil {
		return
	}
	err := h.Audit.Record(c.Request.Context(), audit.Event{
		Type:      eventType,
		Email:     email,
		Key:       key,
		IP:        middleware.ClientIP(c),
		UserAgent: c.GetHeader("User-Agent"),
		Success:   true,
	})
	if err != nil {
		zap.L().Warn("Failed to record audit event", zap.Error(err))
	}
}
