package validation

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/account-opening/internal/account"
	"github.com/deppfellow/account-opening/internal/errs"
)

// Validatable is implemented by request payload types that know how to validate themselves.
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	if len(c) > 0 {
		return c[0].Message
	}
	return "Validation failed"
}

// FieldErrors converts c into the errs representation, keeping the order.
func (c CustomValidationErrors) FieldErrors() []errs.FieldError {
	fieldErrors := make([]errs.FieldError, 0, len(c))
	for _, e := range c {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: e.Field,
			Error: e.Message,
		})
	}
	return fieldErrors
}

// FromResult lists the failures of an account validation run, or nil.
func FromResult(r account.Result) CustomValidationErrors {
	if r.IsValid {
		return nil
	}

	var out CustomValidationErrors
	for _, e := range r.Errors.List() {
		out = append(out, CustomValidationError{Field: e.Field, Message: e.Message})
	}
	return out
}

// ResultError returns nil for a valid result and CustomValidationErrors otherwise.
// Validate methods must use it instead of FromResult: a nil slice in an error is not nil.
func ResultError(r account.Result) error {
	if r.IsValid {
		return nil
	}
	return FromResult(r)
}

// BindAndValidate binds request data into payload and validates it.
//
//  1. c.Bind(payload) populates the request from the body.
//     Any bind failure is a structural error: 400 with a generic message.
//  2. payload.Validate() applies the rules.
//     A *account.ShapeError is structural as well; rule failures become a
//     400 whose message is the first violated rule.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewInvalidRequestError(account.MsgInvalidRequestData)
	}

	if err := payload.Validate(); err != nil {
		return toHTTPError(err)
	}

	return nil
}

func toHTTPError(err error) error {
	var shapeErr *account.ShapeError
	if errors.As(err, &shapeErr) {
		return errs.NewInvalidRequestError(account.MsgInvalidRequestData)
	}

	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		return errs.ValidationError(custom.FieldErrors())
	}

	return err
}
