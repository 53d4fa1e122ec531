// Package store provides abstractions for data persistence: the interfaces
// the rest of the application depends on, the sentinel errors store
// implementations map database failures to, and a transaction helper.
package store
