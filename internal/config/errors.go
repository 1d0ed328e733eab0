// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Callers can
// match against them with [errors.Is].
var (
	// ErrNoTokenSignKey is returned when no JWT signing key was provided by
	// any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is required")

	// ErrNoDatabaseDSN is returned when no database connection string was
	// provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is required")

	// ErrInvalidBcryptCost is returned when the configured bcrypt work
	// factor falls outside the range supported by the bcrypt package.
	ErrInvalidBcryptCost = errors.New("bcrypt cost is out of range")
)
