// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the recipe API.
//
// Every request passes through panic recovery, trace id propagation, access
// logging, Prometheus instrumentation and gzip negotiation. Protected groups
// add token authentication and, for the user administration screens, a staff
// gate. Handlers decode the body, call the service layer and render either
// the resource or a JSON error body.
package http
