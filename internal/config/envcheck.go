package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvSchemaVersion must match ENV_SCHEMA_VERSION so a stale .env fails fast
const EnvSchemaVersion = "1.0"

// placeholder values shipped in the sample .env
const (
	sampleDBPassword = "change_this_secure_password"
	sampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// requiredByBackend names the variables each backend mode cannot run without.
// API_KEY is required in every mode.
var requiredByBackend = map[string][]string{
	BackendMemory:   {"API_KEY"},
	BackendPostgres: {"API_KEY", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
	BackendHTTP:     {"API_KEY", "BACKEND_URL"},
}

type envWarning struct {
	applies func() bool
	message string
}

var envWarnings = []envWarning{
	{
		applies: func() bool { return os.Getenv("DB_PASSWORD") == sampleDBPassword },
		message: "DB_PASSWORD is still the sample value",
	},
	{
		applies: func() bool { return os.Getenv("API_KEY") == sampleAPIKey },
		message: "API_KEY is still the sample value, generate one with: openssl rand -hex 32",
	},
	{
		applies: func() bool { return os.Getenv("S3_ENDPOINT") != "" && os.Getenv("S3_BUCKET") == "" },
		message: "S3_ENDPOINT is set without S3_BUCKET, image uploads stay disabled",
	},
	{
		applies: func() bool { return strings.EqualFold(os.Getenv("CATALOG_STRICT"), "false") },
		message: "CATALOG_STRICT=false accepts unknown category, condition and age group ids",
	},
}

// CheckEnv verifies the environment before Load's values are trusted. It fails on a
// schema mismatch or a missing variable and returns non-fatal warnings otherwise.
func CheckEnv() ([]string, error) {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); v {
	case EnvSchemaVersion:
	case "":
		return nil, fmt.Errorf("ENV_SCHEMA_VERSION is not set (expected %s)", EnvSchemaVersion)
	default:
		return nil, fmt.Errorf("ENV_SCHEMA_VERSION is %s but %s is required, the .env file is out of date", v, EnvSchemaVersion)
	}

	backend := strings.ToLower(os.Getenv("BACKEND"))
	if backend == "" {
		backend = BackendMemory
	}
	required, ok := requiredByBackend[backend]
	if !ok {
		return nil, fmt.Errorf("unknown BACKEND %q", backend)
	}

	var missing []string
	for _, key := range required {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s backend is missing %s", backend, strings.Join(missing, ", "))
	}

	var warnings []string
	for _, w := range envWarnings {
		if w.applies() {
			warnings = append(warnings, w.message)
		}
	}
	return warnings, nil
}
