// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidAdapterConfigs: client base URL or timeout missing.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs: empty DSN or unusable wait settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs: no listener address or non-positive timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs: token key too short to be unguessable.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
