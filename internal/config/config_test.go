package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.ListenAddr)
	require.Equal(t, "gpt-3.5-turbo", cfg.Model)
	require.Equal(t, 1000, cfg.MaxOutputTokens)
	require.Equal(t, 0.7, cfg.Temperature)
	require.Equal(t, 2000, cfg.MaxMessageLen)
	require.Equal(t, KeySourceEnv, cfg.KeySource)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("PROVIDER_MODEL", "gpt-4o-mini")
	t.Setenv("MAX_OUTPUT_TOKENS", "512")
	t.Setenv("TEMPERATURE", "0.2")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.ListenAddr)
	require.Equal(t, "gpt-4o-mini", cfg.Model)
	require.Equal(t, 512, cfg.MaxOutputTokens)
	require.Equal(t, 0.2, cfg.Temperature)
	require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoad_SSMSourceRequiresPrefix(t *testing.T) {
	t.Setenv("KEY_SOURCE", KeySourceSSM)
	t.Setenv("PARAM_PREFIX", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "PARAM_PREFIX")

	t.Setenv("PARAM_PREFIX", "/aura-portal")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/aura-portal", cfg.ParamPrefix)
}

func TestLoad_UnknownKeySource(t *testing.T) {
	t.Setenv("KEY_SOURCE", "vault")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "KEY_SOURCE")
}

func TestLoad_MalformedNumbersFallBackToDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MAX_OUTPUT_TOKENS", "not-a-number")
	t.Setenv("TEMPERATURE", "warm")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 1000, cfg.MaxOutputTokens)
	require.Equal(t, 0.7, cfg.Temperature)
}
