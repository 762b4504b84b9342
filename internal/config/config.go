// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"net"
	"net/url"
	"strconv"
)

// LogLevel is the minimum severity written by the logging subsystem.
type LogLevel string

// Supported log levels, ordered from least to most verbose.
const (
	LogLevelError LogLevel = "error"
	LogLevelWarn  LogLevel = "warn"
	LogLevelInfo  LogLevel = "info"
	LogLevelDebug LogLevel = "debug"
)

// Valid reports whether l is one of the supported levels.
func (l LogLevel) Valid() bool {
	switch l {
	case LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelDebug:
		return true
	}
	return false
}

// LogPath is the directory that receives log files, or the disabled state
// when file logging is turned off. The zero value is disabled.
type LogPath struct {
	dir string
}

// DisabledLogPath returns a LogPath with file logging turned off.
func DisabledLogPath() LogPath {
	return LogPath{}
}

// NewLogPath returns an enabled LogPath pointing at dir.
func NewLogPath(dir string) LogPath {
	return LogPath{dir: dir}
}

// Enabled reports whether file logging is on.
func (p LogPath) Enabled() bool {
	return p.dir != ""
}

// Dir returns the log directory, or "" when file logging is disabled.
func (p LogPath) Dir() string {
	return p.dir
}

// Origins holds the two public origins of the document server. The unsafe
// origin serves the main application; the safe origin serves the sandboxed
// content frames.
type Origins struct {
	Unsafe url.URL
	Safe   url.URL
}

// StoragePaths lists the directories used by the storage engine, one per
// data category.
type StoragePaths struct {
	File        string
	Archive     string
	Pin         string
	Task        string
	Block       string
	Blob        string
	BlobStaging string
	Decree      string
}

// NamedPath pairs a configuration field name with the directory it holds.
type NamedPath struct {
	Name string
	Path string
}

// All returns every storage path in declaration order, tagged with the name
// of the field it came from.
func (s StoragePaths) All() []NamedPath {
	return []NamedPath{
		{Name: fieldFilePath, Path: s.File},
		{Name: fieldArchivePath, Path: s.Archive},
		{Name: fieldPinPath, Path: s.Pin},
		{Name: fieldTaskPath, Path: s.Task},
		{Name: fieldBlockPath, Path: s.Block},
		{Name: fieldBlobPath, Path: s.Blob},
		{Name: fieldBlobStagingPath, Path: s.BlobStaging},
		{Name: fieldDecreePath, Path: s.Decree},
	}
}

// Logging is the subset of the configuration read by the logging subsystem.
type Logging struct {
	// Path is the log directory or the disabled state.
	Path LogPath
	// ToStdout enables the stdout writer.
	ToStdout bool
	// Level is the minimum level emitted.
	Level LogLevel
	// Feedback enables logging of client feedback pings.
	Feedback bool
	// Verbose forces debug output and caller information.
	Verbose bool
}

// HTTP holds the listen settings of the HTTP layer.
type HTTP struct {
	Address string
	Port    int
}

// Addr returns the listen address in host:port form.
func (h HTTP) Addr() string {
	return net.JoinHostPort(h.Address, strconv.Itoa(h.Port))
}

// Config is the validated, fully defaulted configuration record of the
// document server.
//
// A Config is only produced by [Load] (directly or through [GetConfig]) and
// never changes afterwards, so it may be shared between goroutines without
// locking. All accessors return copies.
type Config struct {
	origins         Origins
	adminEmail      string
	blockDailyCheck bool
	storage         StoragePaths
	logging         Logging
	http            HTTP
}

// Origins returns the unsafe and safe origins.
func (c *Config) Origins() Origins {
	return c.origins
}

// HTTPUnsafeOrigin returns the main application origin as a string.
func (c *Config) HTTPUnsafeOrigin() string {
	return c.origins.Unsafe.String()
}

// HTTPSafeOrigin returns the sandbox origin as a string.
func (c *Config) HTTPSafeOrigin() string {
	return c.origins.Safe.String()
}

// AdminEmail returns the contact address of the instance administrator.
func (c *Config) AdminEmail() string {
	return c.adminEmail
}

// BlockDailyCheck reports whether the daily instance check is disabled.
func (c *Config) BlockDailyCheck() bool {
	return c.blockDailyCheck
}

// Storage returns the storage engine directories.
func (c *Config) Storage() StoragePaths {
	return c.storage
}

// Logging returns the logging settings.
func (c *Config) Logging() Logging {
	return c.logging
}

// HTTP returns the listen settings.
func (c *Config) HTTP() HTTP {
	return c.http
}

// Directories returns every directory the process writes to: the storage
// paths followed by the log directory when file logging is enabled.
func (c *Config) Directories() []NamedPath {
	dirs := c.storage.All()
	if c.logging.Path.Enabled() {
		dirs = append(dirs, NamedPath{Name: fieldLogPath, Path: c.logging.Path.Dir()})
	}
	return dirs
}

// MarshalJSON encodes the record with the same field names accepted by the
// file source, so the output can be fed back into [GetConfig]. A disabled
// log path is written as false.
func (c *Config) MarshalJSON() ([]byte, error) {
	logPath := logPathValue{disabled: !c.logging.Path.Enabled(), dir: c.logging.Path.Dir()}
	address, port := c.http.Address, c.http.Port
	level := string(c.logging.Level)
	unsafe, safe := c.HTTPUnsafeOrigin(), c.HTTPSafeOrigin()

	return json.Marshal(fileConfig{
		HTTPUnsafeOrigin: &unsafe,
		HTTPSafeOrigin:   &safe,
		AdminEmail:       &c.adminEmail,
		BlockDailyCheck:  &c.blockDailyCheck,
		FilePath:         &c.storage.File,
		ArchivePath:      &c.storage.Archive,
		PinPath:          &c.storage.Pin,
		TaskPath:         &c.storage.Task,
		BlockPath:        &c.storage.Block,
		BlobPath:         &c.storage.Blob,
		BlobStagingPath:  &c.storage.BlobStaging,
		DecreePath:       &c.storage.Decree,
		LogPath:          &logPath,
		LogToStdout:      &c.logging.ToStdout,
		LogLevel:         &level,
		LogFeedback:      &c.logging.Feedback,
		Verbose:          &c.logging.Verbose,
		HTTPAddress:      &address,
		HTTPPort:         &port,
	})
}

// GetConfig assembles the configuration from every available source and
// validates it. Sources are applied in the following order, each one
// overriding the fields set by the previous ones:
//  1. Config file (JSON or YAML), if a path was given via CRYPTPAD_CONFIG or
//     the -c / -config flag
//  2. Environment variables
//  3. Command-line flags parsed from args
//
// Returns the validated *Config or an error describing every source or
// field that failed.
func GetConfig(args []string) (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
