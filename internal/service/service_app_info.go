// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/internal/config"
)

// notAvailable is reported when no version was injected at build time.
const notAvailable = "N/A"

type appInfoService struct {
	appVersion string
}

// NewAppInfoService returns an AppInfoService reporting cfg.Version.
func NewAppInfoService(cfg config.App) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = notAvailable
	}
	return &appInfoService{appVersion: version}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
