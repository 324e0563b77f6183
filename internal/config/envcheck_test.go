package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envCheckKeys = []string{"ENV_SCHEMA_VERSION", "API_KEY", "BACKEND", "BACKEND_URL",
	"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME", "S3_ENDPOINT", "S3_BUCKET", "CATALOG_STRICT"}

func checkEnvWith(t *testing.T, env map[string]string) ([]string, error) {
	t.Helper()
	for _, key := range envCheckKeys {
		unsetForTest(t, key)
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
	return CheckEnv()
}

func TestCheckEnv_SchemaVersion(t *testing.T) {
	_, err := checkEnvWith(t, map[string]string{"API_KEY": "k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not set")

	_, err = checkEnvWith(t, map[string]string{"API_KEY": "k", "ENV_SCHEMA_VERSION": "0.9"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is 0.9 but 1.0 is required")
}

func TestCheckEnv_RequiredPerBackend(t *testing.T) {
	fullPostgres := map[string]string{"API_KEY": "k", "BACKEND": "postgres", "DB_USER": "u",
		"DB_PASSWORD": "p", "DB_HOST": "h", "DB_PORT": "5432", "DB_NAME": "n"}

	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"memory only needs the api key", map[string]string{"API_KEY": "k"}, ""},
		{"missing api key", map[string]string{}, "memory backend is missing API_KEY"},
		{"partial postgres", map[string]string{"API_KEY": "k", "BACKEND": "postgres", "DB_HOST": "db"},
			"DB_USER, DB_PASSWORD, DB_PORT, DB_NAME"},
		{"complete postgres", fullPostgres, ""},
		{"backend name is case-insensitive", map[string]string{"API_KEY": "k", "BACKEND": "HTTP"}, "BACKEND_URL"},
		{"unknown backend", map[string]string{"API_KEY": "k", "BACKEND": "mongo"}, `unknown BACKEND "mongo"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.env["ENV_SCHEMA_VERSION"] = EnvSchemaVersion
			_, err := checkEnvWith(t, tt.env)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCheckEnv_Warnings(t *testing.T) {
	warnings, err := checkEnvWith(t, map[string]string{
		"ENV_SCHEMA_VERSION": EnvSchemaVersion,
		"API_KEY":            sampleAPIKey,
		"S3_ENDPOINT":        "http://minio:9000",
		"CATALOG_STRICT":     "FALSE",
	})

	require.NoError(t, err, "warnings never fail the check")
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "API_KEY")
	assert.Contains(t, warnings[1], "S3_BUCKET")
	assert.Contains(t, warnings[2], "CATALOG_STRICT")

	warnings, err = checkEnvWith(t, map[string]string{"ENV_SCHEMA_VERSION": EnvSchemaVersion, "API_KEY": "real"})
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
