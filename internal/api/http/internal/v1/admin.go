package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibe-gaming/waitlist/internal/service"
)

func (h *Handler) initAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")
	admin.POST("/login", h.adminLogin)

	authenticated := admin.Group("", h.adminIdentityMiddleware)
	authenticated.GET("/users", h.adminUsers)
	authenticated.GET("/stats", h.adminStats)
}

type adminLoginRequest struct {
	Password string `json:"password" binding:"required"`
} // @name AdminLoginRequest

type adminLoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	// ExpiresIn is the session lifetime in seconds.
	ExpiresIn int64 `json:"expiresIn"`
} // @name AdminLoginResponse

type adminUsersQuery struct {
	Page  int    `form:"page" json:"page" binding:"omitempty,min=1"`
	Limit int    `form:"limit" json:"limit" binding:"omitempty,min=1,max=100"`
	Order string `form:"order" json:"order" binding:"omitempty,oneof=email position"`
}

// @Summary Admin login
// @Tags Admin
// @Description Checks the admin password and issues a short-lived session token
// @ModuleID adminLogin
// @Accept  json
// @Produce  json
// @Param input body adminLoginRequest true "credentials"
// @Success 200 {object} adminLoginResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Router /admin/login [post]
func (h *Handler) adminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	session, err := h.services.Admin.Login(c.Request.Context(), req.Password)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, adminLoginResponse{
		Success:   true,
		Token:     session.Token,
		ExpiresIn: int64(session.ExpiresIn.Seconds()),
	})
}

// @Summary List registrations
// @Tags Admin
// @ModuleID adminUsers
// @Produce  json
// @Param page query int false "page, starting at 1"
// @Param limit query int false "page size, at most 100"
// @Param order query string false "email or position"
// @Success 200 {object} service.UsersPage
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admin/users [get]
func (h *Handler) adminUsers(c *gin.Context) {
	var query adminUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	page, err := h.services.Admin.ListUsers(c.Request.Context(), adminCredential(c), service.ListUsersInput{
		Page:  query.Page,
		Limit: query.Limit,
		Order: service.ListOrder(query.Order),
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// @Summary Waiting list statistics
// @Tags Admin
// @ModuleID adminStats
// @Produce  json
// @Success 200 {object} service.Stats
// @Failure 401 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admin/stats [get]
func (h *Handler) adminStats(c *gin.Context) {
	stats, err := h.services.Admin.Stats(c.Request.Context(), adminCredential(c))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
