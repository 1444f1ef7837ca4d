// Package app wires configuration, device adapters, the action manager,
// and the terminal backend into the runnable inputstorm demo.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNotRunning indicates the application is not running.
	ErrNotRunning = errors.New("application not running")

	// ErrNoTerminal indicates Run was called without a terminal attached.
	ErrNoTerminal = errors.New("no terminal attached")
)

// InitError reports a failure while bringing up a named component.
type InitError struct {
	Component string // component name (e.g. "config", "logger", "terminal")
	Err       error  // underlying error
}

// NewInitError creates a new InitError.
func NewInitError(component string, err error) *InitError {
	return &InitError{Component: component, Err: err}
}

func (e *InitError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("init %s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("init %s failed", e.Component)
}

func (e *InitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
