// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists signals an email or id conflict.
	ErrUserExists = errors.New("user exists")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrLoginFailed signals that no identity matched the submitted email.
	ErrLoginFailed = errors.New("login failed")
	// ErrLoginInProgress signals a second login while one is pending.
	ErrLoginInProgress = errors.New("login in progress")
	// ErrKeyNotFound is returned by key-value storage for missing keys.
	ErrKeyNotFound = errors.New("key not found")
)

// ValidationError carries per-field messages of a rejected form.
type ValidationError struct {
	Fields map[string]string
}

// Error implements error.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}
