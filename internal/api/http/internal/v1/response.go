package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vibe-gaming/waitlist/internal/service"
	"github.com/vibe-gaming/waitlist/pkg/logger"
)

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

// serviceErrorResponse maps a service error onto its status and body.
func serviceErrorResponse(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		out := make([]ValidationError, len(verr.Fields))
		for i, f := range verr.Fields {
			out[i] = ValidationError{f.Field, msgForTag(f.Tag, f.Param)}
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorStruct{
			ErrorCode:    ValidationErrorCode,
			ErrorMessage: ValidationErrorMessage,
			Errors:       out,
		})
	case errors.Is(err, service.ErrValidation):
		c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorStruct{
			ErrorCode:    ValidationErrorCode,
			ErrorMessage: err.Error(),
		})
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		errorResponse(c, http.StatusConflict, EmailAlreadyRegisteredCode)
	case errors.Is(err, service.ErrWalletAlreadyRegistered):
		errorResponse(c, http.StatusConflict, WalletAlreadyRegisteredCode)
	case errors.Is(err, service.ErrTokenNotFound):
		errorResponse(c, http.StatusNotFound, VerificationTokenNotFoundCode)
	case errors.Is(err, service.ErrNotFound):
		errorResponse(c, http.StatusNotFound, RegistrationNotFoundCode)
	case errors.Is(err, service.ErrUnauthorized):
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode)
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
	}
}

// bindingErrorResponse answers a request gin could not bind.
func bindingErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorStruct{
			ErrorCode:    ValidationErrorCode,
			ErrorMessage: ValidationErrorMessage,
			Errors:       out,
		})
		return
	}

	errorResponse(c, http.StatusBadRequest, InvalidRequestBodyCode)
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "wallet":
		return "Wallet address must be 0x followed by 40 hex characters"
	case "signature":
		return "Signature must be 0x followed by 130 hex characters"
	case "number":
		return "This field must be numeric"
	case "min":
		return fmt.Sprintf("Minimum value is %v", value)
	case "max":
		return fmt.Sprintf("Maximum value is %v", value)
	case "oneof":
		return fmt.Sprintf("Must be one of: %v", value)
	}
	return tag
}
