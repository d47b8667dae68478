// Package account holds the account opening rules shared by every boundary.
//
// The same sanitization and validation runs for the HTML form, the JSON API,
// the Go client and the CLI, so the thresholds and messages never drift
// between them.
//
// Flow:
//   - RawInput (untyped) or FormData (typed strings) comes in.
//   - Sanitize/SanitizeForm normalizes it into Sanitized.
//   - Check applies the business rules and returns a Result.
//
// Everything in this package is pure. No I/O, no logging, no globals that change.
package account

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AccountType is the kind of account a user can open.
type AccountType string

const (
	// AccountTypeEveryday requires no savings goal.
	AccountTypeEveryday AccountType = "everyday"

	// AccountTypeSavings requires a numeric savings goal of at most MaxSavingsGoal.
	AccountTypeSavings AccountType = "savings"
)

// Field names as they appear on the wire and in the HTML form.
const (
	FieldNickname    = "nickname"
	FieldAccountType = "accountType"
	FieldSavingsGoal = "savingsGoal"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	return t == AccountTypeEveryday || t == AccountTypeSavings
}

// Label returns the human readable name, e.g. "Savings Account".
func (t AccountType) Label() string {
	return cases.Title(language.English).String(string(t)) + " Account"
}

// ParseAccountType is the strict counterpart of the sanitizer default:
// unknown values are an error instead of falling back to everyday.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(s)
	if !t.IsValid() {
		return "", &RuleError{Field: FieldAccountType, Message: MsgAccountTypeInvalid}
	}
	return t, nil
}

// AccountTypes lists every account type in display order.
func AccountTypes() []AccountType {
	return []AccountType{AccountTypeEveryday, AccountTypeSavings}
}

// RawInput is an untyped payload, typically a decoded JSON object.
//
// A missing key means "undefined". A present key is defined, even with a nil
// value (JSON null).
type RawInput map[string]any

// FormData is what an HTML form submits: every value is a string.
type FormData struct {
	Nickname    string `json:"nickname" form:"nickname"`
	AccountType string `json:"accountType" form:"accountType"`
	SavingsGoal string `json:"savingsGoal" form:"savingsGoal"`
}

// Sanitized is the canonical shape produced by the sanitizer.
// It is never mutated after creation.
type Sanitized struct {
	Nickname    string      `json:"nickname"`
	AccountType AccountType `json:"accountType"`

	// SavingsGoal is nil only when the raw value was undefined.
	SavingsGoal *string `json:"savingsGoal,omitempty"`
}

// Raw turns s back into a RawInput. Sanitize(s.Raw()) == s.
func (s Sanitized) Raw() RawInput {
	raw := RawInput{
		FieldNickname:    s.Nickname,
		FieldAccountType: string(s.AccountType),
	}
	if s.SavingsGoal != nil {
		raw[FieldSavingsGoal] = *s.SavingsGoal
	}
	return raw
}

// Goal returns the trimmed savings goal or "" when undefined.
func (s Sanitized) Goal() string {
	if s.SavingsGoal == nil {
		return ""
	}
	return *s.SavingsGoal
}

// Account is the (mocked) record returned after a successful creation.
type Account struct {
	ID          string      `json:"id"`
	Nickname    string      `json:"nickname"`
	AccountType AccountType `json:"accountType"`
	CreatedAt   time.Time   `json:"createdAt"`

	// SavingsGoal is set for savings accounts only.
	SavingsGoal *float64 `json:"savingsGoal,omitempty"`
}
