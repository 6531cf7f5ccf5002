// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries build metadata injected with -ldflags.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo replaces empty values with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }

// String is the one-line form printed at startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version %s, built %s, commit %s", a.buildVersion, a.buildDate, a.buildCommit)
}
