// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientConfig is the subset of [StructuredConfig] the terminal client uses.
type ClientConfig struct {
	// BaseURL is the API address the adapter talks to.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// LogFile receives client logs; stdout belongs to the UI.
	LogFile string
	// Version is shown in the UI footer.
	Version string
}

// GetClientConfig builds a validated client view of the merged configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(nil, args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		BaseURL:        cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		LogFile:        cfg.Log.File,
		Version:        cfg.App.Version,
	}

	return clientCfg, clientCfg.validate()
}
