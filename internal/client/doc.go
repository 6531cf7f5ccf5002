// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It probes the recipe API, then alternates between the login flow and the
// recipe screens of the terminal UI until the user quits.
package client
