package v1

import (
	"github.com/vibe-gaming/waitlist/internal/service"

	"github.com/gin-gonic/gin"
)

// @title Waiting List API
// @version 1.0
// @description Early access waiting list: registration, email verification and admin queries.

// @BasePath /api

// @securityDefinitions.apikey AdminAuth
// @in header
// @name Authorization

type Handler struct {
	services *service.Services
}

func NewHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initWaitlistRoutes(api)
	h.initVerifyRoutes(api)
	h.initAdminRoutes(api)
}
