// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// applyDefaults fills in any field still at its zero value after all sources
// were merged.
func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = DefaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = DefaultRequestTimeout
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = DefaultTokenIssuer
	}
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = DefaultTokenDuration
	}
	if c.Storage.DB.Driver == "" {
		c.Storage.DB.Driver = DefaultDBDriver
	}
}

// validate checks that the merged configuration is complete and internally
// consistent. Called once by the builder after defaults are applied.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.App.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}
	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}
	if c.Storage.DB.Driver != "pgx" && c.Storage.DB.Driver != "sqlite3" {
		errs = append(errs, ErrUnknownDBDriver)
	}

	return errors.Join(errs...)
}
