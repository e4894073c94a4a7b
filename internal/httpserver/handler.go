package httpserver

import (
	"monitor-srv/internal/middleware"
	monitorHTTP "monitor-srv/internal/monitor/delivery/http"
	notificationHTTP "monitor-srv/internal/notification/delivery/http"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "monitor-srv/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	Api = "/api/v1"
)

func (srv *HTTPServer) mapHandlers() error {
	// Apply CORS and panic recovery globally
	corsConfig := middleware.DefaultCORSConfig()
	srv.gin.Use(middleware.CORS(corsConfig))
	srv.gin.Use(middleware.Recovery(srv.logger))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	mw := middleware.New(srv.logger, srv.jwtMgr)

	// API routes
	api := srv.gin.Group(Api)
	api.Use(mw.Locale())

	monitorHTTP.New(srv.logger, srv.monitorUC, srv.scheduler).RegisterRoutes(api, mw)
	notificationHTTP.New(srv.logger, srv.notificationUC).RegisterRoutes(api, mw)

	return nil
}
