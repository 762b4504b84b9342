// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// UnknownBuildValue stands in for build metadata that was not stamped into
// the binary.
const UnknownBuildValue = "N/A"

// AppBuildInfo is the build metadata stamped into the server binary with
// -ldflags "-X main.buildVersion=...". The version is served by
// GET /api/version and reported in the public config; the startup banner
// prints all three values.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo returns the build metadata as given. Use
// [AppBuildInfo.OrUnknown] to fill blanks before printing.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: version,
		date:    date,
		commit:  commit,
	}
}

// OrUnknown returns a copy with every blank value set to [UnknownBuildValue].
func (a AppBuildInfo) OrUnknown() AppBuildInfo {
	or := func(v string) string {
		if v == "" {
			return UnknownBuildValue
		}
		return v
	}
	return AppBuildInfo{version: or(a.version), date: or(a.date), commit: or(a.commit)}
}

// Version is the release the server reports to clients.
func (a AppBuildInfo) Version() string {
	return a.version
}

func (a AppBuildInfo) Date() string {
	return a.date
}

func (a AppBuildInfo) Commit() string {
	return a.commit
}

// Banner is the multi-line block printed when the server starts.
func (a AppBuildInfo) Banner() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.version, a.date, a.commit)
}
