// Package config loads AWS credentials from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Credentials holds the static AWS credentials for the run.
// Read once at startup, held in memory, never written back or logged.
type Credentials struct {
	AccessKeyID     string `yaml:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"AWS_SECRET_ACCESS_KEY"`
	SessionToken    string `yaml:"AWS_SESSION_TOKEN"`
}

// ConfigError reports a missing or malformed credentials file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("credentials file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Load reads credentials from the YAML file at path.
// Failure is fatal to the run; there is no retry.
func Load(path string) (*Credentials, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("parse yaml: %w", err)}
	}

	if err := creds.Validate(); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	return &creds, nil
}

// Validate ensures both required keys are present.
func (c *Credentials) Validate() error {
	if c.AccessKeyID == "" {
		return fmt.Errorf("AWS_ACCESS_KEY_ID is required")
	}
	if c.SecretAccessKey == "" {
		return fmt.Errorf("AWS_SECRET_ACCESS_KEY is required")
	}
	return nil
}
