package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCredsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aws_credentials.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCredsFile(t, `
AWS_ACCESS_KEY_ID: AKIAEXAMPLE12345
AWS_SECRET_ACCESS_KEY: secret/value+with=chars
`)

	creds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "AKIAEXAMPLE12345", creds.AccessKeyID)
	assert.Equal(t, "secret/value+with=chars", creds.SecretAccessKey)
	assert.Empty(t, creds.SessionToken)
}

func TestLoadWithSessionToken(t *testing.T) {
	path := writeCredsFile(t, `
AWS_ACCESS_KEY_ID: AKIAEXAMPLE12345
AWS_SECRET_ACCESS_KEY: secret
AWS_SESSION_TOKEN: token123
`)

	creds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "token123", creds.SessionToken)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Path, "nope.yaml")
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeCredsFile(t, "AWS_ACCESS_KEY_ID: [unterminated")

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestLoadMissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing access key", "AWS_SECRET_ACCESS_KEY: secret"},
		{"missing secret key", "AWS_ACCESS_KEY_ID: AKIAEXAMPLE12345"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCredsFile(t, tt.content)

			_, err := Load(path)
			require.Error(t, err)

			var cfgErr *ConfigError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}
