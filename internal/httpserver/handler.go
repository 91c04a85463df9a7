package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	customerHTTP "support-router/internal/customer/delivery/http"
	"support-router/internal/middleware"
	"support-router/internal/model"
	routerHTTP "support-router/internal/router/delivery/http"
	supportHTTP "support-router/internal/support/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(mw.Recovery(), mw.Trace())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes mounts every domain under /api/v1. Only the query
// endpoint is rate limited since it is the one that may call the generator.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	customerHTTP.RegisterRoutes(api, customerHTTP.New(srv.l, srv.customerUC))
	supportHTTP.RegisterRoutes(api, supportHTTP.New(srv.l, srv.supportUC))
	routerHTTP.RegisterRoutes(api, routerHTTP.New(srv.l, srv.router), mw.RateLimit())

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
}
