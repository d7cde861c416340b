package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/bluedot/paylink/internal/config"
	"github.com/bluedot/paylink/internal/server/http/handlers"
	"github.com/bluedot/paylink/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware.
//
// UseRawPath keeps percent-encoded separators inside the id path segment
// intact during route matching; document ids such as "01/25-26" arrive as
// "01%2F25-26" and must stay one segment.
func Setup(facade handlers.BillingFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.UseRawPath = true

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	documentHandler := handlers.NewDocumentHandler(facade)
	decisionHandler := handlers.NewDecisionHandler(facade)
	sendHandler := handlers.NewSendHandler(facade)

	engine.GET("/", documentHandler.Root)

	api := engine.Group("/api")
	api.POST("/documents", documentHandler.Create)
	api.POST("/send-document-email", sendHandler.Send)

	invoices := api.Group("/invoices")
	invoices.GET("/:id", documentHandler.Get)
	invoices.GET("/:id/decision",
		middleware.DecisionRateLimit(cfg.DecisionRateLimit, cfg.DecisionRateBurst),
		decisionHandler.Decide,
	)

	return engine
}
