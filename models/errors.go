package models

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// Validation codes
const (
	CodeMissingField      = "missing_field"
	CodeDuplicate         = "duplicate"
	CodeInvalidQuantity   = "invalid_quantity"
	CodeInvalidStatus     = "invalid_status"
	CodeInvalidDate       = "invalid_date"
	CodeDueBeforeBorrow   = "due_before_borrow"
	CodeNoUsers           = "no_users"
	CodeEmptyCart         = "empty_cart"
	CodeUnavailable       = "unavailable"
	CodeInsufficientStock = "insufficient_stock"
	CodeOverReturn        = "over_return"
	CodeUnknownLine       = "unknown_line"
	CodeInvalidRange      = "invalid_range"
)

// ValidationError is a precondition failure detected before any mutation.
// Ref names the offending field or entity id when there is one.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Ref     string `json:"ref,omitempty"`
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func Invalid(code, ref, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...), Ref: ref}
}

// NotFoundError reports a referenced id that is no longer present.
type NotFoundError struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %q not found", e.Kind, e.ID) }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NotFound(kind, id string) *NotFoundError { return &NotFoundError{Kind: kind, ID: id} }
