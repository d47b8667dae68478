package account

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Sanitize normalizes untyped input. It is total: every input, nil included,
// maps to exactly one Sanitized value.
func Sanitize(in RawInput) Sanitized {
	out := Sanitized{
		Nickname:    "",
		AccountType: AccountTypeEveryday,
	}

	if nickname, ok := in[FieldNickname].(string); ok {
		out.Nickname = strings.TrimSpace(nickname)
	}

	if accountType, ok := in[FieldAccountType].(string); ok && AccountType(accountType).IsValid() {
		out.AccountType = AccountType(accountType)
	}

	if goal, ok := in[FieldSavingsGoal]; ok {
		s := strings.TrimSpace(stringify(goal))
		out.SavingsGoal = &s
	}

	return out
}

// SanitizeForm is the typed variant used by the form controller.
func SanitizeForm(f FormData) Sanitized {
	goal := strings.TrimSpace(f.SavingsGoal)

	accountType := AccountType(f.AccountType)
	if !accountType.IsValid() {
		accountType = AccountTypeEveryday
	}

	return Sanitized{
		Nickname:    strings.TrimSpace(f.Nickname),
		AccountType: accountType,
		SavingsGoal: &goal,
	}
}

// stringify returns the string representation of a defined value. A nil
// value (JSON null) becomes "null".
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
