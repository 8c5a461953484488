package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	eventHTTP "github-webhook-events/internal/event/delivery/http"
	"github-webhook-events/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	// The dashboard is served from a different origin and polls the read
	// API; GitHub posts deliveries cross-origin as well.
	srv.gin.Use(middleware.CORS())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the webhook receiver and the read API.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	srv.gin.POST("/webhook/receiver", srv.webhookHandler.HandleReceiver)
	srv.l.Infof(ctx, "webhook receiver registered at POST /webhook/receiver")

	h := eventHTTP.New(srv.l, srv.eventUC)
	eventHTTP.RegisterRoutes(srv.gin.Group("/api"), h)
	srv.l.Infof(ctx, "events read API registered at GET /api/events")
}
