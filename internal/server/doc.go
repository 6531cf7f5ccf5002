// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP and gRPC transports until SIGTERM, SIGINT or
// SIGQUIT arrives, then shuts them down within config.Server.ShutdownTimeout.
package server
