// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adil Murzabekov

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the SDK. It
// aggregates all sub-configurations and is populated by merging values from
// environment variables and an optional JSON source.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds project identity and credential settings.
	App App `envPrefix:""`

	// Adapter holds network settings for the outbound HTTP transport.
	Adapter Adapter `envPrefix:""`

	// FirebaseConfig mirrors the FIREBASE_CONFIG convention shared by the
	// Firebase Admin SDKs: when the value starts with '{' it is parsed as an
	// inline JSON object, otherwise it is treated as the path of a JSON file.
	// Values loaded from it fill only fields the environment left empty.
	FirebaseConfig string `env:"FIREBASE_CONFIG"`
}

// App holds project identity and credential resolution settings.
type App struct {
	// ProjectID is the Firebase/GCP project identifier. Required before any
	// service client can be constructed.
	ProjectID string `env:"GOOGLE_CLOUD_PROJECT"`

	// CredentialsFile is the path to a service-account JSON key file. When
	// empty, Application Default Credentials are used.
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	// CredentialsBase64 is a base64-encoded service-account JSON key,
	// convenient for deployments where mounting a key file is impractical.
	// Takes precedence over CredentialsFile when both are set.
	CredentialsBase64 string `env:"FIREBASE_CREDENTIALS_BASE64"`
}

// Adapter holds network settings used by the outbound transport layer.
type Adapter struct {
	// RequestTimeout is the default timeout for outbound requests.
	// Defaults to 15s when unset.
	RequestTimeout time.Duration `env:"FIREBASE_REQUEST_TIMEOUT"`
}

// DefaultRequestTimeout is applied when no timeout is configured.
const DefaultRequestTimeout = 15 * time.Second

// GetStructuredConfig builds and validates the SDK configuration.
//
// Environment variables are loaded first; the optional FIREBASE_CONFIG JSON
// source is merged underneath them, so explicit environment values always
// win. The merged result is validated before being returned.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		build()
}

// GetStructuredConfigWith builds the SDK configuration with an explicit
// config layered on top of the environment and FIREBASE_CONFIG sources.
// Explicit values win over the environment, which wins over the JSON source.
func GetStructuredConfigWith(explicit *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withExplicit(explicit).
		withEnv().
		withJSON().
		build()
}
