// File: azulpool/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"azulpool/config"
	"azulpool/database"
	"azulpool/database/repository/objectstore"
	quotesRepo "azulpool/database/repository/quotes"
	"azulpool/handlers"
	"azulpool/routes"
	"azulpool/services/access"
	"azulpool/services/audit"
	"azulpool/services/notification"
	"azulpool/services/pricing"
	"azulpool/services/quote"
	"azulpool/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Storage.
	objects := objectstore.NewMongoObjectStore()
	if err := objectstore.EnsureObjectIndexes(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure object store indexes: %v", err)
	}
	quoteRepo := quotesRepo.NewObjectQuoteRepo(objects)

	// Pricing configuration: store + process-wide cache + admin editor.
	configStore := pricing.NewConfigStore(objects)
	configCache := pricing.NewConfigCache(configStore)
	configService := &pricing.DefaultConfigService{
		Store: configStore,
		Cache: configCache,
	}

	// Collaborators.
	auditRecorder := audit.NewRecorder(objects)
	mailer := notification.NewResendMailer(
		config.AppConfig.ResendAPIKey,
		config.AppConfig.ResendFromEmail,
		config.AppConfig.CompanyName,
		config.AppConfig.NotifyEmail,
	)

	quoteService := &quote.DefaultQuoteService{
		Repo:   quoteRepo,
		Config: configCache,
		Mailer: mailer,
		Audit:  auditRecorder,
	}

	sessionStore := &utils.RedisSessionStore{Client: utils.GetSessionCacheClient()}

	// Customer right-to-access flow (verification codes live in redis).
	accessService := &access.Service{
		Codes:  access.NewRedisCodeStore(utils.GetSessionCacheClient()),
		Mailer: mailer,
		Repo:   quoteRepo,
	}

	quoteHandler := handlers.NewQuoteHandler(quoteService, auditRecorder)
	pricingHandler := handlers.NewPricingConfigHandler(configService, auditRecorder)
	authHandler := handlers.NewAdminAuthHandler(sessionStore)
	auditHandler := handlers.NewAuditHandler(auditRecorder)
	accessHandler := handlers.NewDataAccessHandler(accessService, sessionStore, auditRecorder)
	contactHandler := handlers.NewContactHandler(mailer)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessionStore,

		// Public quote endpoints.
		PriceQuoteHandler:    quoteHandler.PriceQuoteHandler,
		SubmitQuoteHandler:   quoteHandler.SubmitQuoteHandler,
		QuoteAccessHandler:   accessHandler.QuoteAccessHandler,
		SubmitContactHandler: contactHandler.SubmitContactHandler,

		// Admin quote lifecycle endpoints.
		ListQuotesHandler:  quoteHandler.ListQuotesHandler,
		GetQuoteHandler:    quoteHandler.GetQuoteHandler,
		UpdateQuoteHandler: quoteHandler.UpdateQuoteHandler,
		AcceptQuoteHandler: quoteHandler.AcceptQuoteHandler,
		DeleteQuoteHandler: quoteHandler.DeleteQuoteHandler,

		// Admin pricing config endpoints.
		GetPricingConfigHandler:  pricingHandler.GetPricingConfigHandler,
		SavePricingConfigHandler: pricingHandler.SavePricingConfigHandler,

		// Admin auth endpoints.
		LoginHandler:        authHandler.LoginHandler,
		LogoutHandler:       authHandler.LogoutHandler,
		SessionCheckHandler: authHandler.SessionCheckHandler,

		// Admin audit endpoints.
		ListAuditLogsHandler: auditHandler.ListAuditLogsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
