// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "strings"

// NormalizeEmail lower-cases the domain part (after the last "@") and keeps
// the local part as given. Input without "@" is returned unchanged.
func NormalizeEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	at := strings.LastIndex(trimmed, "@")
	if at < 0 {
		return email
	}
	return trimmed[:at] + "@" + strings.ToLower(trimmed[at+1:])
}
