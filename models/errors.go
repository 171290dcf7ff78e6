package models

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNotFound               ErrorKind = "not_found"
	KindInvalidTransition      ErrorKind = "invalid_transition"
	KindAlreadyApproved        ErrorKind = "already_approved"
	KindAlreadyOffered         ErrorKind = "already_offered"
	KindAlreadyResolved        ErrorKind = "already_resolved"
	KindAlreadyCompleted       ErrorKind = "already_completed"
	KindIncompleteRequirements ErrorKind = "incomplete_requirements"
	KindValidation             ErrorKind = "validation_error"
	KindDuplicatePending       ErrorKind = "duplicate_pending"
	KindRequirementLocked      ErrorKind = "requirement_locked"
)

// EngineError carries a machine-readable kind alongside the reason shown to
// the caller. Idempotency-guard kinds (AlreadyApproved, AlreadyOffered,
// AlreadyResolved, AlreadyCompleted) are soft conditions a retrying client
// may treat as success.
type EngineError struct {
	Kind    ErrorKind
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewError(kind ErrorKind, format string, args ...any) *EngineError {
	return &EngineError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the engine error kind, or "" for plain errors.
func KindOf(err error) ErrorKind {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// IsSoft reports whether err is an idempotency guard rather than a failure.
func IsSoft(err error) bool {
	switch KindOf(err) {
	case KindAlreadyApproved, KindAlreadyOffered, KindAlreadyResolved, KindAlreadyCompleted:
		return true
	}
	return false
}
