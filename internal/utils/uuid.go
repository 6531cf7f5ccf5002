// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// TraceIDGenerator produces request trace ids.
type TraceIDGenerator struct {
}

func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, or a random v4 if the clock
// source fails.
func (g *TraceIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidTraceID reports whether id parses as a UUID. Incoming X-Trace-ID
// headers that fail this check are replaced.
func IsValidTraceID(id string) bool {
	return uuid.Validate(id) == nil
}
