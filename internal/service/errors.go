package service

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrCourseNotFound = errors.New("course not found")
)

// ValidationError carries one message per violated required field.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// ConflictError reports a uniqueness violation. It uses the same per-field
// message shape as ValidationError.
type ConflictError struct {
	Messages []string
}

func (e *ConflictError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// ForbiddenError means the caller is authenticated but does not own the
// resource it tried to mutate.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}
