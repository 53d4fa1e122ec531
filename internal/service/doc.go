// Package service contains the application services that sit between the
// HTTP handlers and the stores: the task lifecycle operations with their
// ownership checks, and the error kinds the API layer maps to status codes.
package service
