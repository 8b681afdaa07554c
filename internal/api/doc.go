// Package api contains the HTTP handlers, request/response models, and
// error mapping for the review API. Handlers are thin: they decode and
// validate input, delegate to the service layer, and translate service
// errors into sanitized JSON responses.
package api
