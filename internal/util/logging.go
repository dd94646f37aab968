// Package util provides common utilities: logging helpers, filesystem path
// resolution, and small conversion functions.
package util

import "log"

// LogError logs an error with context if it is non-nil. Persistence failures
// route through here; they never roll back in-memory state.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}
