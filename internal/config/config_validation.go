package config

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied to fields left unset by every configuration source.
const (
	DefaultHTTPAddress    = ":8080"
	DefaultTokenIssuer    = "chatnest"
	DefaultTokenDuration  = 30 * 24 * time.Hour
	DefaultBcryptCost     = 12
	DefaultRequestTimeout = 30 * time.Second
	DefaultCORSOrigin     = "*"
	DefaultPurgeSchedule  = "@hourly"
)

func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = DefaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = DefaultRequestTimeout
	}
	if c.Server.CORSAllowedOrigin == "" {
		c.Server.CORSAllowedOrigin = DefaultCORSOrigin
	}
	if c.Auth.TokenIssuer == "" {
		c.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if c.Auth.TokenDuration == 0 {
		c.Auth.TokenDuration = DefaultTokenDuration
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = DefaultBcryptCost
	}
	if c.Workers.PurgeSchedule == "" {
		c.Workers.PurgeSchedule = DefaultPurgeSchedule
	}
}

// validate checks that the merged configuration is usable: the token
// signing key and database DSN must be present and the bcrypt cost must be
// within the range supported by the bcrypt package.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Auth.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}
	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, ErrInvalidBcryptCost)
	}

	return errors.Join(errs...)
}
