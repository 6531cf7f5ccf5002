// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account. PasswordHash is a bcrypt digest and never leaves the
// server.
type User struct {
	// UserID is the primary key.
	UserID int64 `json:"id"`

	// Email is unique and stored normalized (domain lower-cased).
	Email string `json:"email"`

	// Name is the display name; may be empty.
	Name string `json:"name"`

	PasswordHash string `json:"-"`

	// IsActive gates authentication. Inactive users cannot log in and their
	// tokens stop resolving.
	IsActive bool `json:"is_active"`

	// IsStaff grants access to the user administration endpoints.
	IsStaff bool `json:"is_staff"`

	// IsSuperuser may grant or revoke staff and superuser flags.
	IsSuperuser bool `json:"is_superuser"`

	// LastLogin is set each time credentials are validated for token issue.
	LastLogin *time.Time `json:"last_login"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table backing User.
func (u User) TableName() string {
	return "users"
}

// UserCreate carries the attributes accepted when creating an account.
// Nil flags mean "use the default": active, not staff, not superuser.
type UserCreate struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	Name        string `json:"name" validate:"max=255"`
	IsActive    *bool  `json:"is_active"`
	IsStaff     *bool  `json:"is_staff"`
	IsSuperuser *bool  `json:"is_superuser"`
}

// ProfileUpdate is a partial update of the caller's own account. Email is not
// part of it.
type ProfileUpdate struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// AdminUserUpdate is a partial update performed by staff.
type AdminUserUpdate struct {
	Name        *string `json:"name"`
	IsActive    *bool   `json:"is_active"`
	IsStaff     *bool   `json:"is_staff"`
	IsSuperuser *bool   `json:"is_superuser"`
}

// UserChanges is what the store applies to a user row. Only non-nil fields
// are written.
type UserChanges struct {
	Name         *string
	PasswordHash *string
	IsActive     *bool
	IsStaff      *bool
	IsSuperuser  *bool
	LastLogin    *time.Time
}

// IsEmpty reports whether there is nothing to write.
func (c UserChanges) IsEmpty() bool {
	return c.Name == nil && c.PasswordHash == nil && c.IsActive == nil &&
		c.IsStaff == nil && c.IsSuperuser == nil && c.LastLogin == nil
}
