package account_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/account-opening/internal/account"
)

func TestValidate_NicknameBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		length int
		valid  bool
	}{
		{0, false},
		{4, false},
		{5, true},
		{30, true},
		{31, false},
	}

	for _, tt := range tests {
		nickname := strings.Repeat("a", tt.length)
		result := account.Validate(account.RawInput{"nickname": nickname, "accountType": "everyday"})

		assert.Equal(t, tt.valid, result.IsValid, "length %d", tt.length)
		if tt.valid {
			assert.Empty(t, result.Errors.Nickname)
		} else {
			assert.Equal(t, account.MsgNicknameLength, result.Errors.Nickname)
		}
	}
}

func TestValidate_NicknameCountsTrimmedCharacters(t *testing.T) {
	t.Parallel()

	// Four characters padded with spaces is still four characters.
	result := account.Validate(account.RawInput{"nickname": "   abcd   "})
	assert.False(t, result.IsValid)

	// Multi-byte characters count once each.
	result = account.Validate(account.RawInput{"nickname": strings.Repeat("é", 30)})
	assert.True(t, result.IsValid)

	result = account.Validate(account.RawInput{"nickname": strings.Repeat("é", 31)})
	assert.False(t, result.IsValid)
}

func TestValidate_SavingsGoal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		goal    any
		message string
	}{
		{name: "at the limit", goal: "1000000", message: ""},
		{name: "above the limit", goal: "1000001", message: account.MsgSavingsGoalMax},
		{name: "far above the limit", goal: "2000000", message: account.MsgSavingsGoalMax},
		{name: "fractional just above the limit", goal: "1000000.01", message: account.MsgSavingsGoalMax},
		{name: "empty", goal: "", message: account.MsgSavingsGoalRequired},
		{name: "only spaces", goal: "   ", message: account.MsgSavingsGoalRequired},
		{name: "undefined", goal: nil, message: account.MsgSavingsGoalRequired},
		{name: "not a number", goal: "abc", message: account.MsgSavingsGoalInvalid},
		{name: "trailing garbage", goal: "100abc", message: account.MsgSavingsGoalInvalid},
		{name: "decimal", goal: "2500.75", message: ""},
		{name: "numeric value", goal: 50000.0, message: ""},
		{name: "negative is accepted", goal: "-10", message: ""},
		{name: "exponent literal", goal: "1e3", message: ""},
		{name: "exponent above the limit", goal: "1e7", message: account.MsgSavingsGoalMax},
		{name: "huge exponent", goal: "1e2000000000", message: account.MsgSavingsGoalMax},
		{name: "huge exponent number", goal: json.Number("1e2000000000"), message: account.MsgSavingsGoalMax},
		{name: "huge negative value", goal: "-1e2000000000", message: account.MsgSavingsGoalInvalid},
		{name: "huge negative exponent", goal: "1e-2000000000", message: ""},
		{name: "huge negative exponent number", goal: json.Number("1e-2000000000"), message: ""},
		{name: "zero with huge exponent", goal: "0e2000000000", message: ""},
		{name: "exponent overflowing int32", goal: "1e9999999999", message: account.MsgSavingsGoalInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := account.RawInput{"nickname": "My Savings", "accountType": "savings"}
			if tt.goal != nil {
				in["savingsGoal"] = tt.goal
			}

			result := account.Validate(in)

			assert.Equal(t, tt.message, result.Errors.SavingsGoal)
			assert.Equal(t, tt.message == "", result.IsValid)
		})
	}
}

func TestValidate_NullSavingsGoalIsDefined(t *testing.T) {
	t.Parallel()

	result := account.Validate(account.RawInput{
		"nickname":    "My Savings",
		"accountType": "savings",
		"savingsGoal": nil,
	})

	assert.False(t, result.IsValid)
	assert.Equal(t, account.MsgSavingsGoalInvalid, result.Errors.SavingsGoal)
	require.NotNil(t, result.Sanitized.SavingsGoal)
	assert.Equal(t, "null", *result.Sanitized.SavingsGoal)
}

func TestValidate_EverydayIgnoresSavingsGoal(t *testing.T) {
	t.Parallel()

	result := account.Validate(account.RawInput{
		"nickname":    "My Account",
		"accountType": "everyday",
		"savingsGoal": "garbage!",
	})

	assert.True(t, result.IsValid)
	assert.True(t, result.Errors.Empty())
}

func TestValidate_AllFieldsChecked(t *testing.T) {
	t.Parallel()

	result := account.Validate(account.RawInput{
		"nickname":    "abc",
		"accountType": "savings",
		"savingsGoal": "abc",
	})

	require.False(t, result.IsValid)
	assert.Equal(t, account.MsgNicknameLength, result.Errors.Nickname)
	assert.Equal(t, account.MsgSavingsGoalInvalid, result.Errors.SavingsGoal)

	first := result.FirstError()
	require.NotNil(t, first)
	assert.Equal(t, account.FieldNickname, first.Field)
	assert.Len(t, result.Errors.List(), 2)
}

func TestValidate_MalformedBodyScenario(t *testing.T) {
	t.Parallel()

	result := account.Validate(account.RawInput{"accountType": "business"})

	assert.Equal(t, account.AccountTypeEveryday, result.Sanitized.AccountType)
	assert.Equal(t, "", result.Sanitized.Nickname)
	assert.False(t, result.IsValid)
	assert.Equal(t, account.MsgNicknameLength, result.Errors.Nickname)
	assert.Empty(t, result.Errors.SavingsGoal)
}

func TestValidate_TrimmedSavingsScenario(t *testing.T) {
	t.Parallel()

	result := account.Validate(account.RawInput{
		"nickname":    "   My Savings Account   ",
		"accountType": "savings",
		"savingsGoal": "50000",
	})

	assert.True(t, result.IsValid)
	assert.Nil(t, result.FirstError())
	assert.Equal(t, "My Savings Account", result.Sanitized.Nickname)
}

func TestValidateForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		form     account.FormData
		valid    bool
		errors   account.FieldErrors
		nickname string
	}{
		{
			name:     "valid everyday account",
			form:     account.FormData{Nickname: "  Primary  ", AccountType: "everyday"},
			valid:    true,
			nickname: "Primary",
		},
		{
			name:     "nickname too short",
			form:     account.FormData{Nickname: "abc", AccountType: "everyday"},
			errors:   account.FieldErrors{Nickname: account.MsgNicknameLength},
			nickname: "abc",
		},
		{
			name:     "savings goal required",
			form:     account.FormData{Nickname: "My Savings", AccountType: "savings"},
			errors:   account.FieldErrors{SavingsGoal: account.MsgSavingsGoalRequired},
			nickname: "My Savings",
		},
		{
			name:     "savings goal over the limit",
			form:     account.FormData{Nickname: "My Savings", AccountType: "savings", SavingsGoal: "2000000"},
			errors:   account.FieldErrors{SavingsGoal: account.MsgSavingsGoalMax},
			nickname: "My Savings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := account.ValidateForm(tt.form)

			assert.Equal(t, tt.valid, result.IsValid)
			assert.Equal(t, tt.errors, result.Errors)
			assert.Equal(t, tt.nickname, result.Sanitized.Nickname)
		})
	}
}

func TestParseSavingsGoal(t *testing.T) {
	t.Parallel()

	amount, err := account.ParseSavingsGoal("50000")
	require.NoError(t, err)
	assert.Equal(t, "50000", amount.String())

	_, err = account.ParseSavingsGoal("abc")
	var ruleErr *account.RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, account.FieldSavingsGoal, ruleErr.Field)
	assert.EqualError(t, err, account.MsgSavingsGoalInvalid)
}

func TestParseAccountType(t *testing.T) {
	t.Parallel()

	got, err := account.ParseAccountType("savings")
	require.NoError(t, err)
	assert.Equal(t, account.AccountTypeSavings, got)

	_, err = account.ParseAccountType("business")
	assert.EqualError(t, err, account.MsgAccountTypeInvalid)
}

func TestAccountType_Label(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Everyday Account", account.AccountTypeEveryday.Label())
	assert.Equal(t, "Savings Account", account.AccountTypeSavings.Label())
}

func TestParseSavingsGoal_ExtremeExponents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		goal    string
		want    string
		message string
	}{
		{name: "positive exponent", goal: "1e2000000000", message: account.MsgSavingsGoalMax},
		{name: "positive exponent with fraction", goal: "1.5E2000000000", message: account.MsgSavingsGoalMax},
		{name: "negative value", goal: "-1e2000000000", message: account.MsgSavingsGoalInvalid},
		{name: "negative exponent", goal: "1e-2000000000", want: "0"},
		{name: "negative value with negative exponent", goal: "-1e-2000000000", want: "0"},
		{name: "limit written with exponent", goal: "0.000001e12", want: "1000000"},
		{name: "just above the limit with exponent", goal: "1000000.1e0", message: account.MsgSavingsGoalMax},
		{name: "large negative within float range", goal: "-5e300", want: "-5e300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start := time.Now()
			amount, err := account.ParseSavingsGoal(tt.goal)
			assert.Less(t, time.Since(start), time.Second)

			if tt.message != "" {
				assert.EqualError(t, err, tt.message)
				return
			}
			require.NoError(t, err)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, want.Equal(amount), "got %s", amount)
		})
	}
}
