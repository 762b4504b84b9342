package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a config file. Field names follow the
// document server's own config file, so an existing config can be
// converted to JSON or YAML without renaming keys.
type fileConfig struct {
	HTTPUnsafeOrigin *string `json:"httpUnsafeOrigin,omitempty" yaml:"httpUnsafeOrigin,omitempty"`
	HTTPSafeOrigin   *string `json:"httpSafeOrigin,omitempty" yaml:"httpSafeOrigin,omitempty"`
	AdminEmail       *string `json:"adminEmail,omitempty" yaml:"adminEmail,omitempty"`
	BlockDailyCheck  *bool   `json:"blockDailyCheck,omitempty" yaml:"blockDailyCheck,omitempty"`

	FilePath        *string `json:"filePath,omitempty" yaml:"filePath,omitempty"`
	ArchivePath     *string `json:"archivePath,omitempty" yaml:"archivePath,omitempty"`
	PinPath         *string `json:"pinPath,omitempty" yaml:"pinPath,omitempty"`
	TaskPath        *string `json:"taskPath,omitempty" yaml:"taskPath,omitempty"`
	BlockPath       *string `json:"blockPath,omitempty" yaml:"blockPath,omitempty"`
	BlobPath        *string `json:"blobPath,omitempty" yaml:"blobPath,omitempty"`
	BlobStagingPath *string `json:"blobStagingPath,omitempty" yaml:"blobStagingPath,omitempty"`
	DecreePath      *string `json:"decreePath,omitempty" yaml:"decreePath,omitempty"`

	LogPath     *logPathValue `json:"logPath,omitempty" yaml:"logPath,omitempty"`
	LogToStdout *bool         `json:"logToStdout,omitempty" yaml:"logToStdout,omitempty"`
	LogLevel    *string       `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	LogFeedback *bool         `json:"logFeedback,omitempty" yaml:"logFeedback,omitempty"`
	Verbose     *bool         `json:"verbose,omitempty" yaml:"verbose,omitempty"`

	HTTPAddress *string `json:"httpAddress,omitempty" yaml:"httpAddress,omitempty"`
	HTTPPort    *int    `json:"httpPort,omitempty" yaml:"httpPort,omitempty"`
}

// logPathValue accepts either a directory string or the boolean false.
type logPathValue struct {
	disabled bool
	dir      string
}

var errLogPathTrue = errors.New("logPath must be a directory or false")

func (l *logPathValue) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case bool:
		if value {
			return errLogPathTrue
		}
		*l = logPathValue{disabled: true}
	case string:
		*l = logPathValue{dir: value}
	default:
		return errLogPathTrue
	}
	return nil
}

// partialValue maps the file value onto PartialConfig.LogPath. Only the
// boolean false disables file logging; a string is always a directory, so
// a literal "false" is made explicitly relative to stay clear of
// [LogPathDisabled].
func (l logPathValue) partialValue() string {
	if l.disabled {
		return LogPathDisabled
	}
	if strings.TrimSpace(l.dir) == LogPathDisabled {
		return "." + string(filepath.Separator) + strings.TrimSpace(l.dir)
	}
	return l.dir
}

func (l logPathValue) MarshalJSON() ([]byte, error) {
	if l.disabled || l.dir == "" {
		return []byte("false"), nil
	}
	return json.Marshal(l.dir)
}

func (l *logPathValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errLogPathTrue
	}
	if node.Tag == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		if b {
			return errLogPathTrue
		}
		*l = logPathValue{disabled: true}
		return nil
	}
	*l = logPathValue{dir: node.Value}
	return nil
}

func (l logPathValue) MarshalYAML() (any, error) {
	if l.disabled || l.dir == "" {
		return false, nil
	}
	return l.dir, nil
}

// parseFile reads a JSON or YAML config file, chosen by extension. Unknown
// keys are rejected in both formats.
func parseFile(path string) (*sourceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fileCfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}

	return &sourceConfig{Partial: fileCfg.toPartial()}, nil
}

func (f fileConfig) toPartial() PartialConfig {
	partial := PartialConfig{
		HTTPUnsafeOrigin: f.HTTPUnsafeOrigin,
		HTTPSafeOrigin:   f.HTTPSafeOrigin,
		AdminEmail:       f.AdminEmail,
		BlockDailyCheck:  f.BlockDailyCheck,
		FilePath:         f.FilePath,
		ArchivePath:      f.ArchivePath,
		PinPath:          f.PinPath,
		TaskPath:         f.TaskPath,
		BlockPath:        f.BlockPath,
		BlobPath:         f.BlobPath,
		BlobStagingPath:  f.BlobStagingPath,
		DecreePath:       f.DecreePath,
		LogToStdout:      f.LogToStdout,
		LogLevel:         f.LogLevel,
		LogFeedback:      f.LogFeedback,
		Verbose:          f.Verbose,
		HTTPAddress:      f.HTTPAddress,
		HTTPPort:         f.HTTPPort,
	}

	if f.LogPath != nil {
		dir := f.LogPath.partialValue()
		partial.LogPath = &dir
	}

	return partial
}
