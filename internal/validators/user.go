// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-keeper/models"
)

// Field names of user payloads.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldIsActive    = "is_active"
	FieldIsStaff     = "is_staff"
	FieldIsSuperuser = "is_superuser"
)

// Per-field rules for values sent in partial updates. They mirror the
// `validate` tags on models.UserCreate.
const (
	nameRule     = "max=255"
	passwordRule = "required,min=8,max=72"
)

// UserValidator validates account payloads: models.UserCreate,
// models.TokenRequest, models.ProfileUpdate and models.AdminUserUpdate.
type UserValidator struct{}

// NewUserValidator returns a Validator for account payloads.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks obj. Field names are not used for account payloads.
func (v *UserValidator) Validate(ctx context.Context, obj any, _ ...string) error {
	switch o := obj.(type) {
	case models.UserCreate:
		return checkStruct(o)
	case *models.UserCreate:
		return checkStruct(o)
	case models.TokenRequest:
		return checkStruct(o)
	case *models.TokenRequest:
		return checkStruct(o)
	case models.ProfileUpdate:
		return v.validateProfileUpdate(o)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*o)
	case models.AdminUserUpdate:
		return v.validateAdminUserUpdate(o)
	case *models.AdminUserUpdate:
		return v.validateAdminUserUpdate(*o)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserValidator) validateProfileUpdate(upd models.ProfileUpdate) error {
	ve := &ValidationError{}
	if upd.Name != nil {
		checkVar(ve, FieldName, *upd.Name, nameRule)
	}
	if upd.Password != nil {
		checkVar(ve, FieldPassword, *upd.Password, passwordRule)
	}
	return ve.OrNil()
}

func (v *UserValidator) validateAdminUserUpdate(upd models.AdminUserUpdate) error {
	ve := &ValidationError{}
	if upd.Name != nil {
		checkVar(ve, FieldName, *upd.Name, nameRule)
	}
	return ve.OrNil()
}
