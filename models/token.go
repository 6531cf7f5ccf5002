// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthToken is an opaque bearer credential. Each user has at most one; it is
// reused across logins and never expires.
type AuthToken struct {
	// Key is the random hex string sent in the Authorization header.
	Key string `json:"token"`

	UserID int64 `json:"-"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the table backing AuthToken.
func (t AuthToken) TableName() string {
	return "auth_tokens"
}

// String returns the key.
func (t AuthToken) String() string {
	return t.Key
}
