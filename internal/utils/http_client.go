// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// AuthScheme is the Authorization scheme the API issues tokens for.
const AuthScheme = "Token"

// HTTPClient embeds *resty.Client so callers get the full request builder
// plus the defaults the recipe API expects.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL that sends and accepts
// JSON. A zero timeout leaves resty's default (none).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetAuthScheme(AuthScheme)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
