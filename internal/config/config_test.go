package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey: "secret",
			TokenIssuer:  "atelier",
		},
		Storage: Storage{
			DB:    DB{DSN: "postgres://localhost:5432/atelier"},
			Files: Files{MediaDir: "/tmp/uploads"},
		},
		Server: Server{HTTPAddress: "localhost:8080"},
	}
}

func TestConfigBuilder_MergePrecedence(t *testing.T) {
	// earlier sources win for fields they set; later sources fill the gaps
	first := &StructuredConfig{
		App: App{TokenSignKey: "from-first"},
	}
	second := validConfig()
	second.App.TokenSignKey = "from-second"

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-first", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://localhost:5432/atelier", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

func TestConfigBuilder_DefaultTokenDuration(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, 7*24*time.Hour, cfg.App.TokenDuration)
}

func TestConfigBuilder_ExplicitTokenDurationKept(t *testing.T) {
	src := validConfig()
	src.App.TokenDuration = time.Hour

	b := newConfigBuilder()
	b.configs = append(b.configs, src)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing token sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing database DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestParseJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := `{
		"app": {"token_sign_key": "json-secret", "token_issuer": "atelier", "token_duration": "48h"},
		"admin": {"email": "dounia@example.com", "password": "hunter2"},
		"storage": {"db": {"dsn": "postgres://db/atelier"}, "files": {"media_dir": "/srv/uploads"}},
		"server": {"http_address": "0.0.0.0:8080", "request_timeout": "30s"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 48*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "dounia@example.com", cfg.Admin.Email)
	assert.Equal(t, "/srv/uploads", cfg.Storage.Files.MediaDir)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"string form", `"90s"`, 90 * time.Second},
		{"hours", `"168h"`, 7 * 24 * time.Hour},
		{"numeric nanoseconds", `1000000000`, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}
