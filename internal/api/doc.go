// Package api contains the HTTP handlers for the JSON API: registration,
// login, token refresh, and the task lifecycle endpoints. Handlers decode and
// validate requests, delegate to services and stores, and map errors to
// sanitized responses.
package api
