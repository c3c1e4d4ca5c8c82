// Package lexerr defines the error kinds shared by the lexical packages.
//
// Callers match kinds with errors.Is against the sentinel values:
//
//	if errors.Is(err, lexerr.ErrNotFound) { ... }
package lexerr

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceMissing means a required vocabulary source is absent or corrupt.
	ErrResourceMissing = errors.New("resource missing")
	// ErrConfiguration means an unknown language code or morphology backend name.
	ErrConfiguration = errors.New("configuration error")
	// ErrNotFound means a name or id did not resolve.
	ErrNotFound = errors.New("not found")
	// ErrBackendUnavailable means an external morphology backend failed to initialize.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrLimitExceeded means an implementation limit was hit (e.g. collision suffix space).
	ErrLimitExceeded = errors.New("limit exceeded")
)

// Error decorates one of the sentinel kinds with the failing operation and subject.
type Error struct {
	Kind    error
	Op      string
	Subject string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.Kind.Error()
	if e.Subject != "" {
		msg = fmt.Sprintf("%s: %q %s", e.Op, e.Subject, e.Kind.Error())
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NotFound builds an ErrNotFound for op and subject.
func NotFound(op, subject string) error {
	return &Error{Kind: ErrNotFound, Op: op, Subject: subject}
}

// Missing builds an ErrResourceMissing wrapping cause.
func Missing(op, subject string, cause error) error {
	return &Error{Kind: ErrResourceMissing, Op: op, Subject: subject, Err: cause}
}

// Configuration builds an ErrConfiguration for op and subject.
func Configuration(op, subject string) error {
	return &Error{Kind: ErrConfiguration, Op: op, Subject: subject}
}

// Unavailable builds an ErrBackendUnavailable wrapping cause.
func Unavailable(op, subject string, cause error) error {
	return &Error{Kind: ErrBackendUnavailable, Op: op, Subject: subject, Err: cause}
}
