// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

var ErrInvalidKeyLength = errors.New("key length must be positive")

// NewTokenKey returns nBytes of crypto/rand output as lowercase hex, so the
// key is 2*nBytes characters long.
func NewTokenKey(nBytes int) (string, error) {
	if nBytes <= 0 {
		return "", ErrInvalidKeyLength
	}

	buf := make([]byte, nBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
