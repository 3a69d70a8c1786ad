package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// StructuredJSONConfig is the parse target for the FIREBASE_CONFIG JSON
// source. Field names follow the camelCase convention used by the Firebase
// Admin SDKs' config object.
type StructuredJSONConfig struct {
	ProjectID         string   `json:"projectId"`
	CredentialsFile   string   `json:"credentialsFile"`
	CredentialsBase64 string   `json:"credentialsBase64"`
	RequestTimeout    Duration `json:"requestTimeout"`
}

// parseJSON loads configuration from the FIREBASE_CONFIG value. A value
// starting with '{' is decoded as an inline JSON object; anything else is
// treated as the path of a JSON file.
func parseJSON(value string) (*StructuredConfig, error) {
	var raw []byte

	if strings.HasPrefix(strings.TrimSpace(value), "{") {
		raw = []byte(value)
	} else {
		fileContents, err := os.ReadFile(value)
		if err != nil {
			return nil, fmt.Errorf("error reading a json file: %w", err)
		}
		raw = fileContents
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(raw, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ProjectID:         jsonCfg.ProjectID,
			CredentialsFile:   jsonCfg.CredentialsFile,
			CredentialsBase64: jsonCfg.CredentialsBase64,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
