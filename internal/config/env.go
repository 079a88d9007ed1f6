// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment via caarlos0/env,
// following the `env` and `envPrefix` tags on [StructuredConfig] and the
// structs nested in it.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("reading environment config: %w", err)
	}

	return nil
}
