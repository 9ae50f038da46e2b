package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initVerifyRoutes(api *gin.RouterGroup) {
	api.GET("/verify", h.verify)
}

type verifyResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Position int    `json:"position"`
} // @name VerifyResponse

// @Summary Verify email
// @Tags Verification
// @Description Consumes a single-use verification token sent by email
// @ModuleID verify
// @Produce  json
// @Param token query string true "verification token"
// @Success 200 {object} verifyResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /verify [get]
func (h *Handler) verify(c *gin.Context) {
	result, err := h.services.Verification.Verify(c.Request.Context(), c.Query("token"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, verifyResponse{
		Success:  true,
		Message:  "Email verified successfully",
		Position: result.Position,
	})
}
