package database

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested row does not exist. Callers fall
// back to defaults rather than treating this as fatal.
var ErrNotFound = errors.New("not found")

// OpError annotates a database failure with the operation and resource.
type OpError struct {
	Op       string
	Resource string
	ID       string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapTimerErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "timer", Err: err}
}

func wrapProgressionErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "progression", Err: err}
}

func wrapBoostErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "boost", Err: err}
}

func wrapHabitErr(op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "habit", ID: id, Err: err}
}

func wrapSessionErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "session", Err: err}
}
