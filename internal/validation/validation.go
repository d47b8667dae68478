// Package validation binds request payloads and turns rule failures into
// errors the client can understand.
//
// The rules themselves live in the account package; this package only
// adapts them to echo and to the errs error shape.
package validation
