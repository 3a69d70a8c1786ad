// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adil Murzabekov

// Package firebaseadmin is the entry point to the SDK. It provides
// functionality for initialising [App] instances, which hold the project
// identity and credentials shared by the service clients exposed from the
// SDK.
package firebaseadmin

import (
	"context"
	"fmt"
	"time"

	"github.com/admurz/go-firebase-admin/internal/config"
	"github.com/admurz/go-firebase-admin/internal/logger"
	"github.com/admurz/go-firebase-admin/internal/transport"
	"github.com/admurz/go-firebase-admin/remoteconfig"
	"golang.org/x/oauth2"
)

// Version of the SDK, advertised to the services via the X-Firebase-Client
// header.
const Version = "0.3.0"

// Config represents the optional explicit configuration used to initialise
// an [App]. Every field may be left empty, in which case the value is
// resolved from the environment and the FIREBASE_CONFIG source instead.
type Config struct {
	// ProjectID is the Firebase/GCP project identifier. When empty it is
	// resolved from GOOGLE_CLOUD_PROJECT, the FIREBASE_CONFIG source, or the
	// service-account credentials, in that order.
	ProjectID string

	// CredentialsFile is the path to a service-account JSON key file.
	CredentialsFile string

	// CredentialsBase64 is a base64-encoded service-account JSON key. Takes
	// precedence over CredentialsFile when both are set.
	CredentialsBase64 string

	// RequestTimeout is the per-request timeout for all service calls.
	RequestTimeout time.Duration

	// Debug enables SDK diagnostics logging to stderr. Off by default.
	Debug bool
}

// An App holds configuration and state common to all services exposed from
// the SDK. Once constructed it is immutable and safe for concurrent use.
type App struct {
	projectID   string
	tokenSource oauth2.TokenSource
	timeout     time.Duration
	logger      *logger.Logger
}

// NewApp creates a new App from the provided config, the environment, and
// the FIREBASE_CONFIG source.
//
// Credentials are resolved from the configured service-account key, or from
// Application Default Credentials when none is configured. When no project
// id is configured explicitly or via the environment, the one embedded in
// the credentials is used.
func NewApp(ctx context.Context, cfg *Config) (*App, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	log := logger.Nop()
	if cfg.Debug {
		log = logger.NewLogger("firebase-admin")
	}

	structured, err := config.GetStructuredConfigWith(&config.StructuredConfig{
		App: config.App{
			ProjectID:         cfg.ProjectID,
			CredentialsFile:   cfg.CredentialsFile,
			CredentialsBase64: cfg.CredentialsBase64,
		},
		Adapter: config.Adapter{RequestTimeout: cfg.RequestTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	creds, err := transport.Credentials(ctx, structured.App)
	if err != nil {
		return nil, err
	}

	projectID := structured.App.ProjectID
	if projectID == "" {
		projectID = creds.ProjectID
	}

	log.Info().Str("project_id", projectID).Msg("app initialised")

	return &App{
		projectID:   projectID,
		tokenSource: creds.TokenSource,
		timeout:     structured.Adapter.RequestTimeout,
		logger:      log,
	}, nil
}

// ProjectID returns the resolved project identifier. It may be empty when
// neither the configuration, the environment, nor the credentials carry one.
func (a *App) ProjectID() string {
	return a.projectID
}

// RemoteConfig returns a client for the Remote Config service. It fails with
// [remoteconfig.ErrMissingProjectID] when the app could not resolve a
// project id.
func (a *App) RemoteConfig() (*remoteconfig.Client, error) {
	httpClient := transport.NewHTTPClient(transport.Options{
		TokenSource:   a.tokenSource,
		ClientVersion: "fire-admin-go/" + Version,
		Timeout:       a.timeout,
		Logger:        a.logger,
	})

	return remoteconfig.NewClient(remoteconfig.ClientConfig{
		ProjectID:  a.projectID,
		HTTPClient: httpClient,
		Logger:     a.logger,
	})
}
