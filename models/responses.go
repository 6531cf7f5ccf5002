// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProfileResponse is the public view of an account. The password is never
// included.
type ProfileResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenResponse carries the caller's token key.
type TokenResponse struct {
	Token string `json:"token"`
}

// AdminUserResponse is one row of the user administration list.
type AdminUserResponse struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	IsActive    bool       `json:"is_active"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ErrorResponse is the body of every non-2xx JSON response. Fields is only
// present for validation failures.
type ErrorResponse struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}

// NewProfileResponse projects u onto its public fields.
func NewProfileResponse(u User) ProfileResponse {
	return ProfileResponse{Email: u.Email, Name: u.Name}
}

// NewAdminUserResponse projects u for staff screens.
func NewAdminUserResponse(u User) AdminUserResponse {
	return AdminUserResponse{
		ID:          u.UserID,
		Email:       u.Email,
		Name:        u.Name,
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
	}
}
