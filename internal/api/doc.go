// Package api exposes the application services over HTTP. Handlers decode
// and validate request bodies, delegate to the service and store layers, and
// translate errors into client-facing responses in one place (errors.go) so
// no internal error detail leaks to clients.
package api
