// Package handler is the first layer after the router.
//
// It binds requests, validates input through the validation package and
// calls the service layer. It is the interface between HTTP and the account
// opening logic.
package handler
