package view

import (
	"github.com/deppfellow/account-opening/internal/account"
	"github.com/deppfellow/account-opening/internal/form"
)

// Template is a string-based enum naming page templates.
type Template string

const (
	// TemplateHome corresponds to templates/home.html
	TemplateHome Template = "home"

	// TemplateCreateAccount corresponds to templates/create_account.html
	TemplateCreateAccount Template = "create_account"
)

// Templates lists every page template.
func Templates() []Template {
	return []Template{TemplateHome, TemplateCreateAccount}
}

// HomePage is the data of the home page.
type HomePage struct {
	// Success shows the account-created banner.
	Success bool
	Message string
}

// NewHomePage builds the home page data.
func NewHomePage(success bool) HomePage {
	return HomePage{
		Success: success,
		Message: account.MsgAccountCreated,
	}
}

// CreateAccountPage is the data of the create-account form page.
type CreateAccountPage struct {
	State           form.State
	AccountTypes    []account.AccountType
	SubmittingLabel string
}

// NewCreateAccountPage builds the form page data for state.
func NewCreateAccountPage(state form.State) CreateAccountPage {
	return CreateAccountPage{
		State:           state,
		AccountTypes:    account.AccountTypes(),
		SubmittingLabel: form.SubmittingLabel,
	}
}
