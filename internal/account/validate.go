package account

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	NicknameMinLength = 5
	NicknameMaxLength = 30
)

// Decimal magnitudes (integer digit counts) bounding a savings goal.
const (
	maxGoalMagnitude  = 7
	maxFloatMagnitude = 308
	minFloatMagnitude = -324
)

// MaxSavingsGoal is the highest goal a savings account accepts (inclusive).
var MaxSavingsGoal = decimal.NewFromInt(1_000_000)

var (
	validate = validator.New()

	nicknameRule = fmt.Sprintf("min=%d,max=%d", NicknameMinLength, NicknameMaxLength)
)

// FieldErrors holds one message per failing field.
type FieldErrors struct {
	Nickname    string `json:"nickname,omitempty"`
	SavingsGoal string `json:"savingsGoal,omitempty"`
}

// Empty reports whether no rule failed.
func (e FieldErrors) Empty() bool {
	return e.Nickname == "" && e.SavingsGoal == ""
}

// List returns the failures in field order: nickname, then savingsGoal.
func (e FieldErrors) List() []RuleError {
	var list []RuleError
	if e.Nickname != "" {
		list = append(list, RuleError{Field: FieldNickname, Message: e.Nickname})
	}
	if e.SavingsGoal != "" {
		list = append(list, RuleError{Field: FieldSavingsGoal, Message: e.SavingsGoal})
	}
	return list
}

// Result is the verdict of one validation run. IsValid is true iff Errors is empty.
type Result struct {
	IsValid   bool        `json:"isValid"`
	Sanitized Sanitized   `json:"sanitized"`
	Errors    FieldErrors `json:"errors"`
}

// FirstError returns the first failing rule, or nil when the input is valid.
func (r Result) FirstError() *RuleError {
	list := r.Errors.List()
	if len(list) == 0 {
		return nil
	}
	return &list[0]
}

// Validate sanitizes untyped input and checks it.
func Validate(in RawInput) Result {
	return Check(Sanitize(in))
}

// ValidateForm sanitizes typed form values and checks them.
func ValidateForm(f FormData) Result {
	return Check(SanitizeForm(f))
}

// Check applies every rule to already sanitized data. A failing field never
// prevents the other fields from being checked. Nickname length is counted in
// runes.
func Check(s Sanitized) Result {
	var errs FieldErrors

	if validate.Var(s.Nickname, nicknameRule) != nil {
		errs.Nickname = MsgNicknameLength
	}

	// Everyday accounts ignore the savings goal entirely.
	if s.AccountType == AccountTypeSavings {
		if _, err := ParseSavingsGoal(s.Goal()); err != nil {
			errs.SavingsGoal = err.Error()
		}
	}

	return Result{
		IsValid:   errs.Empty(),
		Sanitized: s,
		Errors:    errs,
	}
}

// ParseSavingsGoal parses a trimmed savings goal and applies the goal rules.
// Negative goals are accepted as long as they fit in a float64. The magnitude
// is bounded from the digit count before any comparison, so huge exponents
// never get rescaled.
func ParseSavingsGoal(goal string) (decimal.Decimal, error) {
	if goal == "" {
		return decimal.Zero, &RuleError{Field: FieldSavingsGoal, Message: MsgSavingsGoalRequired}
	}

	amount, err := decimal.NewFromString(goal)
	if err != nil {
		return decimal.Zero, &RuleError{Field: FieldSavingsGoal, Message: MsgSavingsGoalInvalid}
	}

	if amount.IsZero() {
		return decimal.Zero, nil
	}

	// |amount| is in [10^(magnitude-1), 10^magnitude).
	magnitude := int64(amount.NumDigits()) + int64(amount.Exponent())

	switch {
	case amount.Sign() > 0 && magnitude > maxGoalMagnitude:
		return decimal.Zero, &RuleError{Field: FieldSavingsGoal, Message: MsgSavingsGoalMax}
	case amount.Sign() < 0 && magnitude > maxFloatMagnitude:
		return decimal.Zero, &RuleError{Field: FieldSavingsGoal, Message: MsgSavingsGoalInvalid}
	case magnitude < minFloatMagnitude:
		// Rounds to zero as a float64 anyway.
		return decimal.Zero, nil
	}

	if amount.GreaterThan(MaxSavingsGoal) {
		return decimal.Zero, &RuleError{Field: FieldSavingsGoal, Message: MsgSavingsGoalMax}
	}

	return amount, nil
}
