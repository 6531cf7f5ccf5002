// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials covers unknown email, inactive user and wrong
	// password alike.
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
	ErrTokenInvalid       = errors.New("invalid token")

	ErrUserNotFound   = errors.New("user not found")
	ErrRecipeNotFound = errors.New("recipe not found")

	ErrGeneratingToken = errors.New("error generating token key")
	ErrHashingPassword = errors.New("error hashing password")
)
