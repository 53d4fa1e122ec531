// Package domain defines the core business entities of the daily task list:
// users and the dated tasks they own. Entities carry their own validation and
// expose sentinel errors for callers to match with errors.Is.
package domain
