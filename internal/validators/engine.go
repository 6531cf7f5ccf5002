// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every validator in the package. validator.Validate
// caches struct metadata and is safe for concurrent use.
var validate = newEngine()

func newEngine() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct runs the struct's `validate` tags.
func checkStruct(obj any) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		ve.Add(fe.Field(), message(fe, false))
	}
	return ve
}

// checkVar validates a single present value against tag and records the
// first failure under field.
func checkVar(ve *ValidationError, field string, value any, tag string) {
	err := validate.Var(value, tag)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		ve.Add(field, message(fieldErrs[0], true))
		return
	}
	ve.Add(field, MsgInvalid)
}

// message renders a field error. present marks values that were sent, so an
// empty one is "blank" rather than "missing".
func message(fe validator.FieldError, present bool) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		if present {
			return MsgBlank
		}
		return MsgRequired
	case "email":
		return MsgInvalidEmail
	case "url", "http_url":
		return MsgInvalidURL
	case "min", "gte":
		if isString {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	default:
		return MsgInvalid
	}
}
