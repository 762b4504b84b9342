// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix is prepended to every variable name declared in `env` tags.
const envPrefix = "CRYPTPAD_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` tags on [PartialConfig]
// and [sourceConfig], all read with the CRYPTPAD_ prefix. Pointer fields
// stay nil when their variable is unset.
//
// Returns a wrapped error if a value cannot be converted to the target type
// (e.g. CRYPTPAD_HTTP_PORT=abc or CRYPTPAD_VERBOSE=maybe).
func parseEnv(cfg *sourceConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
