package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibe-gaming/waitlist/internal/service"
)

func (h *Handler) initWaitlistRoutes(api *gin.RouterGroup) {
	waitlist := api.Group("/waitlist")
	waitlist.POST("", h.register)
	waitlist.GET("", h.total)
	waitlist.GET("/:email", h.lookup)
}

type registerRequest struct {
	Email         string `json:"email" binding:"required,email"`
	WalletAddress string `json:"walletAddress" binding:"required,wallet"`
	Signature     string `json:"signature" binding:"required,signature"`
	Network       string `json:"network"`
} // @name RegisterRequest

type totalResponse struct {
	Total int `json:"total"`
} // @name TotalResponse

// @Summary Join the waiting list
// @Tags Waitlist
// @Description Registers an email and wallet address, assigns the next position and sends a verification email
// @ModuleID register
// @Accept  json
// @Produce  json
// @Param input body registerRequest true "registration"
// @Success 200 {object} service.RegistrationResult
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /waitlist [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	result, err := h.services.Waitlist.Register(c.Request.Context(), service.RegisterInput{
		Email:         req.Email,
		WalletAddress: req.WalletAddress,
		Signature:     req.Signature,
		Network:       req.Network,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Waiting list size
// @Tags Waitlist
// @ModuleID total
// @Produce  json
// @Success 200 {object} totalResponse
// @Failure 500 {object} ErrorStruct
// @Router /waitlist [get]
func (h *Handler) total(c *gin.Context) {
	total, err := h.services.Waitlist.Total(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, totalResponse{Total: total})
}

// @Summary Registration status
// @Tags Waitlist
// @Description Returns the registration for an email without its verification token
// @ModuleID lookup
// @Produce  json
// @Param email path string true "registered email"
// @Success 200 {object} domain.RegistrationView
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /waitlist/{email} [get]
func (h *Handler) lookup(c *gin.Context) {
	view, err := h.services.Waitlist.Lookup(c.Request.Context(), c.Param("email"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
