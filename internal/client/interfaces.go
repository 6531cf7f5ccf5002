// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the part of the terminal front end the app drives.
type UI interface {
	LoginFlow(ctx context.Context) (email string, err error)
	MainLoop(ctx context.Context, email string) (logout bool, err error)
}
