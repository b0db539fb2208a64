package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	apphttp "roadmap_backend/internal/http"
	"roadmap_backend/internal/http/middleware"
	"roadmap_backend/platform/httpkit"
)

// New assembles the gin engine: recovery, request logging, CORS, liveness
// probes, and every module's routes under /api.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(app.Logger))
	engine.Use(cors.New(corsConfig(app)))

	// Liveness probes. /test is the path the CRM's webhook tester hits;
	// /health is the conventional one.
	liveness := func(c *gin.Context) {
		httpkit.Ack(c, "Webhook reached the backend successfully.")
	}
	engine.GET("/test", liveness)
	engine.GET("/health", liveness)

	ctx := &apphttp.RouterContext{
		Engine: engine,
		API:    engine.Group("/api"),
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Info("module routes registered", "module", module.Name())
	}

	return engine
}

func corsConfig(app *apphttp.App) cors.Config {
	cfg := cors.DefaultConfig()
	if app.Config.CORSAllowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = app.Config.CORSOrigins
	}
	return cfg
}
