package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial records from every source. configs is
// kept in precedence order: later entries override earlier ones.
type configBuilder struct {
	configs []*sourceConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*sourceConfig, 0, 3),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	partial, err := b.merge()
	if err != nil {
		return nil, err
	}

	return Load(partial)
}

// merge folds all collected partial records into one. A field set by a
// later source replaces the earlier value, including explicit false and
// zero values; unset (nil) fields never override.
func (b *configBuilder) merge() (PartialConfig, error) {
	var merged PartialConfig
	for _, cfg := range b.configs {
		if err := mergo.Merge(&merged, cfg.Partial, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return PartialConfig{}, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return merged, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &sourceConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withFile reads the config file named by the last source that set one and
// places it first, below env and flags in precedence.
func (b *configBuilder) withFile() *configBuilder {
	var filePath string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			filePath = cfg.FilePath
		}
	}

	if filePath == "" {
		return b
	}

	fileCfg, err := parseFile(filePath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append([]*sourceConfig{fileCfg}, b.configs...)

	return b
}
