// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup. Client settings are not
// checked here.
func (cfg *StructuredConfig) validate() error {
	if err := validate.Struct(cfg.App); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	if err := validate.Struct(cfg.Storage.DB); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}
	if err := validate.Struct(cfg.Server); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}
	if err := validate.Struct(cfg.Log); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validate.Struct(cfg.Client); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClientConfigs, err)
	}
	if err := validate.Struct(cfg.Log); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
