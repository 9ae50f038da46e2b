package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "internal error"

	EmailAlreadyRegisteredCode       = 1001
	EmailAlreadyRegisteredMessage    = "email already registered"
	WalletAlreadyRegisteredCode      = 1002
	WalletAlreadyRegisteredMessage   = "wallet address already registered"
	RegistrationNotFoundCode         = 1003
	RegistrationNotFoundMessage      = "registration not found"
	VerificationTokenNotFoundCode    = 1004
	VerificationTokenNotFoundMessage = "invalid or expired verification token"
	UnauthorizedCode                 = 1005
	UnauthorizedMessage              = "unauthorized"
	InvalidRequestBodyCode           = 1006
	InvalidRequestBodyMessage        = "invalid request body"

	ValidationErrorCode    = 6000
	ValidationErrorMessage = "validation error"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error"`
	Errors       []ValidationError `json:"validation_errors,omitempty"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case EmailAlreadyRegisteredCode:
		errorStruct.ErrorCode = EmailAlreadyRegisteredCode
		errorStruct.ErrorMessage = EmailAlreadyRegisteredMessage
	case WalletAlreadyRegisteredCode:
		errorStruct.ErrorCode = WalletAlreadyRegisteredCode
		errorStruct.ErrorMessage = WalletAlreadyRegisteredMessage
	case RegistrationNotFoundCode:
		errorStruct.ErrorCode = RegistrationNotFoundCode
		errorStruct.ErrorMessage = RegistrationNotFoundMessage
	case VerificationTokenNotFoundCode:
		errorStruct.ErrorCode = VerificationTokenNotFoundCode
		errorStruct.ErrorMessage = VerificationTokenNotFoundMessage
	case UnauthorizedCode:
		errorStruct.ErrorCode = UnauthorizedCode
		errorStruct.ErrorMessage = UnauthorizedMessage
	case InvalidRequestBodyCode:
		errorStruct.ErrorCode = InvalidRequestBodyCode
		errorStruct.ErrorMessage = InvalidRequestBodyMessage
	}

	return errorStruct
}
