package errs

import "strings"

// FieldError represents a field-level validation error (typical for forms).
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "nickname").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message, the only thing clients see.
//   - Status: HTTP status code.
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Code    string
	Message string
	Status  int

	// Errors holds field-level validation errors, typically for form inputs.
	Errors []FieldError
}

// Response is the JSON body written for every error.
type Response struct {
	Error string `json:"error"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. Code/Status are not compared.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// Response returns the body clients receive for this error.
func (e *HTTPError) Response() Response {
	return Response{Error: e.Message}
}

// Field returns the message recorded for field, or "".
func (e *HTTPError) Field(field string) string {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Error
		}
	}
	return ""
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
