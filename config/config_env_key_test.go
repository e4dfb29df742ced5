package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"spotify": map[string]any{
			"clientId":    "",
			"redirectUri": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"redis": map[string]any{
			"keyPrefix": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SPOTIFY_CLIENTID", want: "spotify.clientId"},
		{envKey: "SPOTIFY_REDIRECTURI", want: "spotify.redirectUri"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "REDIS_KEYPREFIX", want: "redis.keyPrefix"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  env: test
  log:
    level: debug
http:
  port: 4000
secretKey:
  session: from-yaml
linkAttempt:
  ttl: 5m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shelf.yaml"), []byte(yamlBody), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_SESSION", "from-env")

	cfg, err := LoadWithEnv[Config]("shelf")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Session)
	assert.Equal(t, 4000, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	require.NotNil(t, cfg.LinkAttempt)
	assert.Equal(t, 5*time.Minute, cfg.LinkAttempt.TTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Spotify = &SpotifyConfig{APIBaseURL: "http://localhost:9000/v1/"}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 7*24*time.Hour, cfg.Session.Lifetime)
	assert.Equal(t, 10*time.Minute, cfg.LinkAttempt.TTL)
	assert.Equal(t, "user-read-private user-read-email", cfg.Spotify.Scopes)
	assert.Equal(t, "https://accounts.spotify.com/authorize", cfg.Spotify.AuthURL)
	assert.Equal(t, "https://accounts.spotify.com/api/token", cfg.Spotify.TokenURL)
	assert.Equal(t, "http://localhost:9000/v1", cfg.Spotify.APIBaseURL)
	assert.NotNil(t, cfg.PasswordStrength)
	assert.NotNil(t, cfg.Database)
}
