package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	adminCredentialCtx  = "adminCredential"
)

// adminIdentityMiddleware extracts the bearer credential. Its validity is
// decided by the admin service.
func (h *Handler) adminIdentityMiddleware(c *gin.Context) {
	credential, err := parseAuthHeader(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode)
		return
	}

	if err := h.services.Admin.Authorize(credential); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Set(adminCredentialCtx, credential)
}

func parseAuthHeader(c *gin.Context) (string, error) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		return "", errors.New("empty auth header")
	}

	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || headerParts[0] != "Bearer" {
		return "", errors.New("invalid auth header")
	}

	if len(headerParts[1]) == 0 {
		return "", errors.New("token is empty")
	}

	return headerParts[1], nil
}

func adminCredential(c *gin.Context) string {
	return c.GetString(adminCredentialCtx)
}
