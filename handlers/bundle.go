// File: azulpool/handlers/bundle.go
package handlers

import (
	"azulpool/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Sessions utils.SessionStore

	// Public quote endpoints.
	PriceQuoteHandler    gin.HandlerFunc
	SubmitQuoteHandler   gin.HandlerFunc
	QuoteAccessHandler   gin.HandlerFunc
	SubmitContactHandler gin.HandlerFunc

	// Admin quote lifecycle endpoints.
	ListQuotesHandler  gin.HandlerFunc
	GetQuoteHandler    gin.HandlerFunc
	UpdateQuoteHandler gin.HandlerFunc
	AcceptQuoteHandler gin.HandlerFunc
	DeleteQuoteHandler gin.HandlerFunc

	// Admin pricing config endpoints.
	GetPricingConfigHandler  gin.HandlerFunc
	SavePricingConfigHandler gin.HandlerFunc

	// Admin auth endpoints.
	LoginHandler        gin.HandlerFunc
	LogoutHandler       gin.HandlerFunc
	SessionCheckHandler gin.HandlerFunc

	// Admin audit endpoints.
	ListAuditLogsHandler gin.HandlerFunc
}
