// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adil Murzabekov

package transport

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/admurz/go-firebase-admin/internal/config"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gtransport "google.golang.org/api/transport"
)

// firebaseScopes are the OAuth2 scopes requested for all Firebase Admin
// service access.
var firebaseScopes = []string{
	"https://www.googleapis.com/auth/cloud-platform",
	"https://www.googleapis.com/auth/firebase",
	"https://www.googleapis.com/auth/identitytoolkit",
	"https://www.googleapis.com/auth/userinfo.email",
}

// Credentials resolves Google credentials for the configured identity.
//
// Resolution order:
//  1. app.CredentialsBase64 — a base64-encoded service-account JSON key;
//  2. app.CredentialsFile — the path of a service-account JSON key file;
//  3. Application Default Credentials from the environment.
//
// The returned credentials carry a TokenSource scoped to [firebaseScopes].
func Credentials(ctx context.Context, app config.App) (*google.Credentials, error) {
	opts := []option.ClientOption{option.WithScopes(firebaseScopes...)}

	switch {
	case app.CredentialsBase64 != "":
		decoded, err := base64.StdEncoding.DecodeString(app.CredentialsBase64)
		if err != nil {
			return nil, fmt.Errorf("decode base64 credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decoded))
	case app.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(app.CredentialsFile))
	}

	creds, err := gtransport.Creds(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("resolve credentials: %w", err)
	}

	return creds, nil
}
