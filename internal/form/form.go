// Package form models the create-account form as explicit, immutable state.
//
// Every transition returns a new State. Validation is delegated to the
// account package so the page shows the same messages as the API.
package form

import (
	"github.com/deppfellow/account-opening/internal/account"
)

const (
	SubmitLabel     = "Create Account"
	SubmittingLabel = "Creating..."
)

// State is what the create-account page renders. FormError is a page-level
// failure not tied to a field.
type State struct {
	Values     account.FormData
	Errors     account.FieldErrors
	FormError  string
	Submitting bool
}

// Initial is an empty form with the everyday account type selected.
func Initial() State {
	return State{
		Values: account.FormData{
			AccountType: string(account.AccountTypeEveryday),
		},
	}
}

// FromValues starts from submitted values. A missing account type falls back
// to everyday, like the radio group's initial selection.
func FromValues(values account.FormData) State {
	s := Initial()
	s.Values = values
	if s.Values.AccountType == "" {
		s.Values.AccountType = string(account.AccountTypeEveryday)
	}
	return s
}

// Change sets one field. Errors are kept until the next submit.
// Unknown fields leave the state unchanged.
func (s State) Change(field, value string) State {
	switch field {
	case account.FieldNickname:
		s.Values.Nickname = value
	case account.FieldAccountType:
		s.Values.AccountType = value
	case account.FieldSavingsGoal:
		s.Values.SavingsGoal = value
	}
	return s
}

// Submit validates the current values. An invalid form gets its inline
// errors and stays editable; a valid one is marked as submitting.
func (s State) Submit() (State, account.Result) {
	result := account.ValidateForm(s.Values)

	s.Errors = result.Errors
	s.FormError = ""
	s.Submitting = result.IsValid

	return s, result
}

// WithErrors replaces the inline errors, e.g. with a server-side rejection.
func (s State) WithErrors(errs account.FieldErrors) State {
	s.Errors = errs
	s.Submitting = false
	return s
}

// WithFormError marks a valid submission that failed server-side. The values
// are kept so the user can retry.
func (s State) WithFormError(msg string) State {
	s.FormError = msg
	s.Submitting = false
	return s
}

// ShowSavingsGoal reports whether the savings goal input is displayed.
func (s State) ShowSavingsGoal() bool {
	return s.Values.AccountType == string(account.AccountTypeSavings)
}

// Selected reports whether t is the checked radio option.
func (s State) Selected(t account.AccountType) bool {
	return s.Values.AccountType == string(t)
}

// ButtonLabel is the submit button text for the current state.
func (s State) ButtonLabel() string {
	if s.Submitting {
		return SubmittingLabel
	}
	return SubmitLabel
}
