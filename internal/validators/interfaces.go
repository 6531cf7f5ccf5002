// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the services.
//
// Struct payloads carry go-playground/validator tags; partial updates are
// checked field by field so that only the values a client actually sent are
// validated. Every failure is reported as a *ValidationError holding one
// message per JSON field name, which the transports render as a 400 body.
package validators

import "context"

// Validator validates a payload. The optional field names narrow or extend
// the check; their meaning depends on the payload type.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
