package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		Database: "wordsapi",
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		wantErr           bool
		want              *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `dictionary:
  cache_directory: custom/dictionaries
  timeout_seconds: 10
outputs:
  report_directory: custom/reports
`,
			want: &Config{
				Dictionary: DictionaryConfig{
					CacheDirectory: "custom/dictionaries",
					Host:           "wordsapiv1.p.rapidapi.com",
					TimeoutSeconds: 10,
				},
				Database: defaultDatabaseConfig(),
				Outputs: OutputsConfig{
					ReportDirectory: "custom/reports",
				},
			},
		},
		{
			name: "invalid YAML format",
			configContent: `dictionary:
  cache_directory: custom/dictionaries
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "missing config file uses defaults",
			want: &Config{
				Dictionary: DictionaryConfig{
					CacheDirectory: filepath.Join("dictionaries", "wordsapi"),
					Host:           "wordsapiv1.p.rapidapi.com",
					TimeoutSeconds: 5,
				},
				Database: defaultDatabaseConfig(),
				Outputs: OutputsConfig{
					ReportDirectory: filepath.Join("outputs", "reports"),
				},
			},
		},
		{
			name: "credentials come from environment only",
			configContent: `dictionary:
  cache_directory: custom/dictionaries
`,
			env: map[string]string{
				"RAPID_API_HOST":       "stub.rapidapi.com",
				"RAPID_API_KEY":        "env-key",
				"WORDSAPI_DB_USERNAME": "env-user",
				"WORDSAPI_DB_PASSWORD": "env-password",
			},
			want: &Config{
				Dictionary: DictionaryConfig{
					CacheDirectory: "custom/dictionaries",
					Host:           "stub.rapidapi.com",
					Key:            "env-key",
					TimeoutSeconds: 5,
				},
				Database: DatabaseConfig{
					Host:     "localhost",
					Port:     3306,
					Database: "wordsapi",
					Username: "env-user",
					Password: "env-password",
				},
				Outputs: OutputsConfig{
					ReportDirectory: filepath.Join("outputs", "reports"),
				},
			},
		},
		{
			name: "explicit config file path",
			configContent: `dictionary:
  cache_directory: explicit/cache
database:
  host: db.internal
  port: 3307
`,
			useExplicitPath: true,
			want: &Config{
				Dictionary: DictionaryConfig{
					CacheDirectory: "explicit/cache",
					Host:           "wordsapiv1.p.rapidapi.com",
					TimeoutSeconds: 5,
				},
				Database: DatabaseConfig{
					Host:     "db.internal",
					Port:     3307,
					Database: "wordsapi",
				},
				Outputs: OutputsConfig{
					ReportDirectory: filepath.Join("outputs", "reports"),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "config.yml")
				err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
				require.NoError(t, err)
			} else {
				if tt.configContent != "" {
					err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644)
					require.NoError(t, err)
				}

				originalDir, err := os.Getwd()
				require.NoError(t, err)
				defer func() {
					err := os.Chdir(originalDir)
					require.NoError(t, err)
				}()

				err = os.Chdir(tempDir)
				require.NoError(t, err)
				configPath = ""
			}

			got, err := Load(configPath)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDictionaryConfig_Timeout(t *testing.T) {
	cfg := DictionaryConfig{TimeoutSeconds: 10}
	assert.Equal(t, 10*time.Second, cfg.Timeout())
}

func TestConfig_ValidateDictionary(t *testing.T) {
	tests := []struct {
		name              string
		dictionary        DictionaryConfig
		wantErrorContains []string
	}{
		{
			name: "valid",
			dictionary: DictionaryConfig{
				Host:           "wordsapiv1.p.rapidapi.com",
				Key:            "test-key",
				TimeoutSeconds: 5,
			},
		},
		{
			name: "missing key",
			dictionary: DictionaryConfig{
				Host: "wordsapiv1.p.rapidapi.com",
			},
			wantErrorContains: []string{"key is a required field"},
		},
		{
			name:       "missing host and key",
			dictionary: DictionaryConfig{},
			wantErrorContains: []string{
				"host is a required field",
				"key is a required field",
			},
		},
		{
			name: "negative timeout",
			dictionary: DictionaryConfig{
				Host:           "wordsapiv1.p.rapidapi.com",
				Key:            "test-key",
				TimeoutSeconds: -1,
			},
			wantErrorContains: []string{"timeout_seconds"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Dictionary: tt.dictionary}
			err := cfg.ValidateDictionary()

			if len(tt.wantErrorContains) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, wantMsg := range tt.wantErrorContains {
				assert.Contains(t, err.Error(), wantMsg)
			}
		})
	}
}
