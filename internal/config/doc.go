// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration for the
// recipe-keeper binaries.
//
// Sources are merged with mergo; a field set by an earlier source is kept
// and later sources only fill what is still empty:
//  1. Environment variables (a .env file is loaded into the environment first)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// Entry points are [GetServerConfig], [GetClientConfig] and [GetAdminConfig].
package config
