package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_ProductionRequiresAPIKey(t *testing.T) {
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvEnvironment, "prod")
	t.Setenv(EnvAPIKey, "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), EnvAPIKey)
}

func TestValidateEnv_DevWithoutAPIKey(t *testing.T) {
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvEnvironment, "dev")
	t.Setenv(EnvAPIKey, "")

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnvWithWarnings(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		seedPath string
		want     []string
	}{
		{"No warnings", "real-key", "", nil},
		{"Auth disabled", "", "", []string{"authentication is disabled"}},
		{"Example key", ExampleAPIKey, "", []string{"example value"}},
		{"Missing seed file", "real-key", filepath.Join(os.TempDir(), "does-not-exist.json"), []string{"SEED_PATH"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
			t.Setenv(EnvEnvironment, "dev")
			t.Setenv(EnvAPIKey, tt.apiKey)
			t.Setenv(EnvSeedPath, tt.seedPath)

			warnings, err := ValidateEnvWithWarnings()
			require.NoError(t, err)
			require.Len(t, warnings, len(tt.want))
			for i, want := range tt.want {
				assert.Contains(t, warnings[i], want)
			}
		})
	}
}
