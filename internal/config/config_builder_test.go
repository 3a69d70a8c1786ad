package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStructuredConfig_EnvOnly(t *testing.T) {
	setEnvVars(t, map[string]string{
		"GOOGLE_CLOUD_PROJECT":     "env-project",
		"FIREBASE_CONFIG":          "",
		"FIREBASE_REQUEST_TIMEOUT": "45s",
	})

	cfg, err := GetStructuredConfig()

	require.NoError(t, err)
	assert.Equal(t, "env-project", cfg.App.ProjectID)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetStructuredConfig_EnvWinsOverJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "firebase.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"projectId": "json-project", "requestTimeout": "5s"}`), 0o600))

	setEnvVars(t, map[string]string{
		"GOOGLE_CLOUD_PROJECT":     "env-project",
		"FIREBASE_CONFIG":          p,
		"FIREBASE_REQUEST_TIMEOUT": "",
	})

	cfg, err := GetStructuredConfig()

	require.NoError(t, err)
	// explicit env value wins, JSON fills what env left empty
	assert.Equal(t, "env-project", cfg.App.ProjectID)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetStructuredConfig_InlineJSON(t *testing.T) {
	setEnvVars(t, map[string]string{
		"GOOGLE_CLOUD_PROJECT": "",
		"FIREBASE_CONFIG":      `{"projectId": "inline-project"}`,
	})

	cfg, err := GetStructuredConfig()

	require.NoError(t, err)
	assert.Equal(t, "inline-project", cfg.App.ProjectID)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

func TestGetStructuredConfig_BrokenJSONSource(t *testing.T) {
	setEnvVars(t, map[string]string{
		"GOOGLE_CLOUD_PROJECT": "env-project",
		"FIREBASE_CONFIG":      filepath.Join(t.TempDir(), "missing.json"),
	})

	_, err := GetStructuredConfig()

	require.Error(t, err)
}

func TestGetStructuredConfigWith_ExplicitWinsOverEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"GOOGLE_CLOUD_PROJECT": "env-project",
		"FIREBASE_CONFIG":      "",
	})

	explicit := &StructuredConfig{App: App{ProjectID: "explicit-project"}}
	cfg, err := GetStructuredConfigWith(explicit)

	require.NoError(t, err)
	assert.Equal(t, "explicit-project", cfg.App.ProjectID)
}

func TestGetStructuredConfigWith_ExplicitJSONSourceWinsOverEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "env.json")
	require.NoError(t, os.WriteFile(envPath, []byte(`{"projectId": "env-json-project"}`), 0o600))

	setEnvVars(t, map[string]string{
		"GOOGLE_CLOUD_PROJECT": "",
		"FIREBASE_CONFIG":      envPath,
	})

	explicit := &StructuredConfig{FirebaseConfig: `{"projectId": "explicit-json-project"}`}
	cfg, err := GetStructuredConfigWith(explicit)

	require.NoError(t, err)
	assert.Equal(t, "explicit-json-project", cfg.App.ProjectID)
}

func TestGetStructuredConfigWith_NilExplicit(t *testing.T) {
	setEnvVars(t, map[string]string{
		"GOOGLE_CLOUD_PROJECT": "env-project",
		"FIREBASE_CONFIG":      "",
	})

	cfg, err := GetStructuredConfigWith(nil)

	require.NoError(t, err)
	assert.Equal(t, "env-project", cfg.App.ProjectID)
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{ProjectID: "p"},
		Adapter: Adapter{RequestTimeout: -time.Second},
	}

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
