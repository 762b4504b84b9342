// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
)

// validator accumulates field errors so that a single [Load] call reports
// every bad field at once.
type validator struct {
	errs []error
}

func (v *validator) fail(field string, kind error, format string, args ...any) {
	v.errs = append(v.errs, &FieldError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
		Err:    kind,
	})
}

func (v *validator) err() error {
	return errors.Join(v.errs...)
}

// required returns the trimmed value of a required string field, recording
// ErrMissingField when it is absent or blank.
func (v *validator) required(field string, value *string) (string, bool) {
	if value == nil || strings.TrimSpace(*value) == "" {
		v.fail(field, ErrMissingField, "")
		return "", false
	}
	return strings.TrimSpace(*value), true
}

// origin parses an absolute http(s) URL that identifies an origin: scheme,
// host and optional port, with no path, query, fragment or credentials.
func (v *validator) origin(field string, value *string) url.URL {
	raw, ok := v.required(field, value)
	if !ok {
		return url.URL{}
	}

	u, err := url.Parse(raw)
	if err != nil {
		v.fail(field, ErrInvalidFormat, "%q is not a valid URL", raw)
		return url.URL{}
	}
	if !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		v.fail(field, ErrInvalidFormat, "%q is not an absolute http(s) URL", raw)
		return url.URL{}
	}
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		v.fail(field, ErrInvalidFormat, "%q must contain only scheme, host and port", raw)
		return url.URL{}
	}
	if strings.HasSuffix(u.Host, ":") {
		v.fail(field, ErrInvalidFormat, "%q has an empty port", raw)
		return url.URL{}
	}
	if p := u.Port(); p != "" {
		if n, err := strconv.Atoi(p); err != nil || n < 1 || n > 65535 {
			v.fail(field, ErrInvalidFormat, "%q port is out of range 1-65535", raw)
			return url.URL{}
		}
	}

	return url.URL{Scheme: u.Scheme, Host: u.Host}
}

// email checks a bare address such as admin@example.com. Display names
// ("Admin <admin@example.com>") are rejected.
func (v *validator) email(field string, value *string) string {
	raw, ok := v.required(field, value)
	if !ok {
		return ""
	}

	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Name != "" || addr.Address != raw {
		v.fail(field, ErrInvalidFormat, "%q is not a valid email address", raw)
		return ""
	}
	return addr.Address
}

// dir validates a required directory setting and returns it cleaned.
func (v *validator) dir(field string, value *string) string {
	raw, ok := v.required(field, value)
	if !ok {
		return ""
	}
	if strings.ContainsRune(raw, 0) {
		v.fail(field, ErrInvalidFormat, "path contains a NUL byte")
		return ""
	}
	return filepath.Clean(raw)
}

// logPath maps the optional logPath input onto [LogPath]. Absent, blank and
// [LogPathDisabled] all mean file logging is off.
func (v *validator) logPath(value *string) LogPath {
	if value == nil {
		return DisabledLogPath()
	}
	raw := strings.TrimSpace(*value)
	if raw == "" || raw == LogPathDisabled {
		return DisabledLogPath()
	}
	if strings.ContainsRune(raw, 0) {
		v.fail(fieldLogPath, ErrInvalidFormat, "path contains a NUL byte")
		return DisabledLogPath()
	}
	return NewLogPath(filepath.Clean(raw))
}

func (v *validator) logLevel(value *string) LogLevel {
	if value == nil {
		return defaultLogLevel
	}
	level := LogLevel(strings.TrimSpace(*value))
	if !level.Valid() {
		v.fail(fieldLogLevel, ErrInvalidFormat, "%q is not one of error, warn, info, debug", *value)
		return ""
	}
	return level
}

func (v *validator) httpAddress(value *string) string {
	if value == nil {
		return defaultHTTPAddress
	}
	address := strings.TrimSpace(*value)
	if address == "" || strings.ContainsAny(address, " /") {
		v.fail(fieldHTTPAddress, ErrInvalidFormat, "%q is not a valid host", *value)
		return ""
	}
	return address
}

func (v *validator) httpPort(value *int) int {
	if value == nil {
		return defaultHTTPPort
	}
	if *value < 1 || *value > 65535 {
		v.fail(fieldHTTPPort, ErrInvalidFormat, "port %d is out of range 1-65535", *value)
		return 0
	}
	return *value
}

// distinctOrigins rejects a safe origin that equals the unsafe one. Ports
// are compared after applying the scheme default.
func (v *validator) distinctOrigins(unsafe, safe url.URL) {
	if unsafe.Host == "" || safe.Host == "" {
		return
	}
	if sameOrigin(unsafe, safe) {
		v.fail(fieldHTTPSafeOrigin, ErrInvalidFormat,
			"%q must differ in origin from %s", safe.String(), fieldHTTPUnsafeOrigin)
	}
}

func sameOrigin(a, b url.URL) bool {
	return strings.EqualFold(a.Scheme, b.Scheme) &&
		strings.EqualFold(a.Hostname(), b.Hostname()) &&
		originPort(a) == originPort(b)
}

func originPort(u url.URL) string {
	if p := u.Port(); p != "" {
		return p
	}
	if u.Scheme == "https" {
		return "443"
	}
	return "80"
}

// distinctPaths rejects any two directories that are equal or nested.
// Paths that failed earlier checks are skipped.
func (v *validator) distinctPaths(paths []NamedPath) {
	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			a, b := paths[i], paths[j]
			if a.Path == "" || b.Path == "" {
				continue
			}
			switch {
			case a.Path == b.Path:
				v.fail(b.Name, ErrPathCollision, "same location as %s (%s)", a.Name, a.Path)
			case isWithin(a.Path, b.Path):
				v.fail(b.Name, ErrPathCollision, "%s is inside %s (%s)", b.Path, a.Name, a.Path)
			case isWithin(b.Path, a.Path):
				v.fail(a.Name, ErrPathCollision, "%s is inside %s (%s)", a.Path, b.Name, b.Path)
			}
		}
	}
}

// isWithin reports whether child lies strictly below parent. Both paths
// must already be cleaned; a relative and an absolute path never match.
func isWithin(parent, child string) bool {
	if filepath.IsAbs(parent) != filepath.IsAbs(child) {
		return false
	}
	rel, err := filepath.Rel(parent, child)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
