package errs

import (
	"net/http"
)

// Codes used by the account endpoints in addition to the status-derived ones.
const (
	CodeInvalidRequestData = "INVALID_REQUEST_DATA"
	CodeValidationFailed   = "VALIDATION_FAILED"
)

// InternalServerErrorMessage is the only message a 500 ever carries.
const InternalServerErrorMessage = "Internal server error"

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation errors)
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewInvalidRequestError is the 400 returned when a body has the wrong shape.
func NewInvalidRequestError(message string) *HTTPError {
	code := CodeInvalidRequestData
	return NewBadRequestError(message, &code, nil)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message: message,
		Status:  http.StatusTooManyRequests,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
// The message is always generic; the real cause only goes to the logs.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: InternalServerErrorMessage,
		Status:  http.StatusInternalServerError,
	}
}

// ValidationError converts per-field failures into a 400 whose message is
// the first failure, so clients get the most relevant rule.
func ValidationError(fieldErrors []FieldError) *HTTPError {
	code := CodeValidationFailed
	message := "Validation failed"
	if len(fieldErrors) > 0 {
		message = fieldErrors[0].Error
	}
	return NewBadRequestError(message, &code, fieldErrors)
}
