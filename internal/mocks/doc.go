// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these mock
// implementations are shared across test packages. Each mock exposes function
// fields for every interface method; when a field is nil a simple in-memory
// default is used.
package mocks
