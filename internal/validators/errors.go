// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrValidation is the sentinel every ValidationError unwraps to.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Field messages returned to clients.
const (
	MsgRequired       = "This field is required."
	MsgBlank          = "This field may not be blank."
	MsgInvalidEmail   = "Enter a valid email address."
	MsgInvalidURL     = "Enter a valid URL."
	MsgInvalid        = "Invalid value."
	MsgNoFields       = "At least one field must be provided."
	MsgPriceTooLarge  = "Ensure that there are no more than 5 digits in total."
	MsgPriceInvalid   = "A valid number is required."
	MsgPricePrecision = "Ensure that there are no more than 2 decimal places."
	MsgPriceNegative  = "Ensure this value is greater than or equal to 0."
	MsgTimeNegative   = "Ensure this value is greater than or equal to 0."
	MsgEmailTaken     = "user with this email already exists."
	MsgEmailMissing   = "Users must have an email address."
	MsgSuperuserFlags = "Only superusers may change this flag."
)

// NonFieldErrors is the key used for errors not tied to a single field.
const NonFieldErrors = "non_field_errors"

// ValidationError collects per-field messages. errors.Is(err, ErrValidation)
// holds for every ValidationError.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns an error with a single field message.
func NewValidationError(field, msg string) *ValidationError {
	e := &ValidationError{}
	e.Add(field, msg)
	return e
}

// Add records msg for field. The first message for a field wins.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// Empty reports whether no message was recorded.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// OrNil returns e as an error, or nil when it holds no messages.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	if e.Empty() {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// AsValidationError extracts a ValidationError from err's chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
