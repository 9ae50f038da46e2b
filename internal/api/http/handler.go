package apiHttp

import (
	"context"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/vibe-gaming/waitlist/docs"
	"github.com/vibe-gaming/waitlist/pkg/logger"
	"github.com/vibe-gaming/waitlist/pkg/validator"

	internalV1 "github.com/vibe-gaming/waitlist/internal/api/http/internal/v1"
	"github.com/vibe-gaming/waitlist/internal/config"
	"github.com/vibe-gaming/waitlist/internal/service"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

type Handler struct {
	services *service.Services
}

func NewHandlers(services *service.Services) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		ginzap.RecoveryWithZap(logger.Logger(), true),
	)

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", h.health)

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services)
	api := router.Group("/api")
	internalHandlersV1.Init(api)
}

func (h *Handler) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.services.Waitlist.Ping(ctx); err != nil {
		logger.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
