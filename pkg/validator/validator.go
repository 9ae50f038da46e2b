package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	walletAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	signaturePattern     = regexp.MustCompile(`^0x[0-9a-fA-F]{130}$`)
)

// IsWalletAddress reports whether s is 0x followed by 40 hex characters.
func IsWalletAddress(s string) bool {
	return walletAddressPattern.MatchString(s)
}

// IsSignature reports whether s is 0x followed by 130 hex characters. The
// signature is not verified against the wallet.
func IsSignature(s string) bool {
	return signaturePattern.MatchString(s)
}

// New returns a validator with the waitlist tags registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	register(v)
	return v
}

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		register(v)
	}
}

func register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("wallet", walletValidator); err != nil {
		log.Fatal("register wallet validator failed")
	}
	if err := v.RegisterValidation("signature", signatureValidator); err != nil {
		log.Fatal("register signature validator failed")
	}
}

var walletValidator validator.Func = func(fl validator.FieldLevel) bool {
	return IsWalletAddress(fl.Field().String())
}

var signatureValidator validator.Func = func(fl validator.FieldLevel) bool {
	return IsSignature(fl.Field().String())
}
