// Package service contains the business logic.
//
// It sits behind the handler layer. It receives data from the handlers,
// validates it again (handlers and clients are not trusted) and performs the
// business operation.
package service
