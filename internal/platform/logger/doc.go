// Package logger provides structured logging for the application.
//
// It configures Go's log/slog package for JSON output with a configurable
// level, and carries request-scoped loggers through context.Context so that
// trace IDs attached by middleware follow the request into stores and
// services.
package logger
