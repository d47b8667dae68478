package account

// Validation messages. Every boundary renders exactly these strings.
const (
	MsgNicknameLength      = "Account nickname must be between 5 and 30 characters"
	MsgAccountTypeInvalid  = `Account type must be either "everyday" or "savings"`
	MsgSavingsGoalRequired = "Savings goal is required for savings accounts"
	MsgSavingsGoalInvalid  = "Savings goal must be a valid number"
	MsgSavingsGoalMax      = "Savings goal cannot exceed $1,000,000"

	// MsgInvalidRequestData is used when a body has the wrong shape.
	MsgInvalidRequestData = "Invalid request data"

	// MsgAccountCreated is the success message of the JSON API.
	MsgAccountCreated = "Account created successfully"

	// MsgAccountCreateFailed is shown on the form when the service fails.
	MsgAccountCreateFailed = "Account could not be created. Please try again."
)

// RuleError is a single violated rule.
type RuleError struct {
	Field   string
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}
