// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /users/.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// ToUserCreate maps a self-registration onto the store input. Flags are
// never taken from a public request.
func (r RegisterRequest) ToUserCreate() UserCreate {
	return UserCreate{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
	}
}

// TokenRequest is the body of POST /users/token/.
type TokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminUserCreate is the body of POST /admin/users/.
type AdminUserCreate struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	IsActive    *bool  `json:"is_active"`
	IsStaff     *bool  `json:"is_staff"`
	IsSuperuser *bool  `json:"is_superuser"`
}

// ToUserCreate maps the admin payload onto the store input.
func (r AdminUserCreate) ToUserCreate() UserCreate {
	return UserCreate{
		Email:       r.Email,
		Password:    r.Password,
		Name:        r.Name,
		IsActive:    r.IsActive,
		IsStaff:     r.IsStaff,
		IsSuperuser: r.IsSuperuser,
	}
}
