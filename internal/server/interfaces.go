// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the process-level lifecycle of all enabled transports.
type Server interface {
	// RunServer serves until a stop signal arrives and every transport has
	// shut down.
	RunServer()

	// Shutdown stops every transport.
	Shutdown()
}

// transport is one listener managed by server.
type transport interface {
	name() string
	serve() error
	shutdown() error
}
