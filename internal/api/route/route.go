package route

import (
	"net/http"

	"github.com/bassista/go_unis/internal/api/middleware"
	"github.com/bassista/go_unis/internal/app"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// SetupRoutes builds the engine with every route and the shared middleware.
// gatherer serves /metrics; nil selects the default registry.
func SetupRoutes(appCtx *app.App, logger *logrus.Logger, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(logger.Writer(), "/health", "/metrics"))
	r.Use(middleware.HoneybadgerMiddleware(middleware.HoneybadgerConfig{
		APIKey: appCtx.Config.Misc.HoneybadgerKey,
		Env:    appCtx.Config.Misc.HoneybadgerEnv,
	}, logger.WithField("component", "honeybadger")))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(appCtx.Config.Server.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "UP",
		})
	})

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	publicRouter := r.Group("")
	NewUniversityRouter(appCtx, publicRouter)
	NewConfigurationRouter(appCtx, publicRouter)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return r
}
