// Package errs defines the error types returned to API clients.
//
// Every failure leaving the HTTP layer is converted into an HTTPError so
// clients always receive the same JSON shape, including field-level
// validation errors when a request payload is rejected.
package errs
