// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors used by the
// recipe-keeper binaries and the helpers that pull a request-scoped logger
// out of a context.
//
// Code should pass *Logger by pointer. Handlers and services obtain the
// request logger (carrying trace_id) via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout with "role", timestamp and
// "func" caller fields. The global level is Debug.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role, zerolog.DebugLevel)
}

// NewLoggerWithLevel is NewLogger with a textual level ("info", "warn", ...).
// Unknown or empty levels fall back to debug.
func NewLoggerWithLevel(role, level string) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}

	return newLogger(os.Stdout, role, lvl)
}

// NewFileLogger writes JSON entries to path, appending. The terminal client
// uses it because stdout belongs to the UI. Falls back to io.Discard when the
// file cannot be opened.
func NewFileLogger(role, path string) *Logger {
	var w io.Writer = io.Discard
	if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		w = f
	}

	return newLogger(w, role, zerolog.DebugLevel)
}

// NewConsoleLogger is a human-readable logger for operator commands.
func NewConsoleLogger(role string) *Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return &Logger{zerolog.New(w).With().Str("role", role).Timestamp().Logger()}
}

func newLogger(w io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that inherits the receiver's fields.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns a child logger tagged with trace_id.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str("trace_id", traceID).Logger()}
}

// FromRequest returns the logger attached to r's context, or zerolog's
// default when none is attached.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
