// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adil Murzabekov

package config

// validate checks that the final merged [StructuredConfig] satisfies all SDK
// invariants before it is handed to service clients.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
// A missing project id is not rejected here: it may still be resolved from
// the service-account credentials, and the requirement is enforced by the
// service client constructors.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
