// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

func (cfg *StructuredConfig) validateStorage() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.WaitAttempts < 1 || cfg.Storage.DB.WaitInterval <= 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if err := cfg.validateStorage(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.App.TokenBytes < 16 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.BaseURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
