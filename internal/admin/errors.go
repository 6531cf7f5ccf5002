// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import "errors"

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrPasswordMismatch = errors.New("passwords didn't match")
	ErrEmptyPassword    = errors.New("blank passwords aren't allowed")
)
