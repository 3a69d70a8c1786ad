package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/admurz/go-firebase-admin/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type failingTokenSource struct{}

func (failingTokenSource) Token() (*oauth2.Token, error) {
	return nil, errors.New("token unavailable")
}

func TestNewHTTPClient_SetsIdentificationHeaders(t *testing.T) {
	var gotClient, gotRequestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClient = r.Header.Get("X-Firebase-Client")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cli := NewHTTPClient(Options{ClientVersion: "fire-admin-go/1.0.0", Logger: logger.Nop()})
	_, err := cli.R().SetContext(context.Background()).Get(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "fire-admin-go/1.0.0", gotClient)
	_, parseErr := uuid.Parse(gotRequestID)
	assert.NoError(t, parseErr, "X-Request-Id should be a valid UUID")
}

func TestNewHTTPClient_FreshRequestIDPerCall(t *testing.T) {
	seen := make(map[string]struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get("X-Request-Id")] = struct{}{}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cli := NewHTTPClient(Options{Logger: logger.Nop()})
	for i := 0; i < 3; i++ {
		_, err := cli.R().Get(srv.URL)
		require.NoError(t, err)
	}

	assert.Len(t, seen, 3)
}

func TestNewHTTPClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
	cli := NewHTTPClient(Options{TokenSource: ts, Logger: logger.Nop()})
	_, err := cli.R().Get(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestNewHTTPClient_TokenSourceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server when the token source fails")
	}))
	defer srv.Close()

	cli := NewHTTPClient(Options{TokenSource: failingTokenSource{}, Logger: logger.Nop()})
	_, err := cli.R().Get(srv.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve access token")
}

func TestNewHTTPClient_NoTokenSource(t *testing.T) {
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cli := NewHTTPClient(Options{Logger: logger.Nop()})
	_, err := cli.R().Get(srv.URL)

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}
