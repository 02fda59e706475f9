package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-resizer/internal/adapter/handler"
	"github.com/marcos-nsantos/image-resizer/internal/infrastructure/middleware"
)

type Router struct {
	engine        *gin.Engine
	resizeHandler *handler.ResizeHandler
	cleanHandler  *handler.CleanHandler
	logger        *zap.Logger
}

type RouterConfig struct {
	ResizeHandler *handler.ResizeHandler
	CleanHandler  *handler.CleanHandler
	Logger        *zap.Logger
	Environment   string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:        engine,
		resizeHandler: cfg.ResizeHandler,
		cleanHandler:  cfg.CleanHandler,
		logger:        cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")
	{
		api.POST("/events/resize", r.resizeHandler.Handle)
		api.POST("/clean", r.cleanHandler.Handle)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
