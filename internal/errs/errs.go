// Package errs defines the error types returned to API clients.
//
// Every failure leaving the service is an *HTTPError so the global error
// handler can render one consistent JSON shape:
//
//	{ "error": "Account nickname must be between 5 and 30 characters" }
//
// Field-level details stay on the error for logging and for the HTML form,
// they are not serialized to API clients.
package errs
