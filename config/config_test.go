package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smsgateway "github.com/android-sms-gateway/client-go"
)

// clearEnv blanks every SMSGATE_ variable so the test controls exactly what
// the loader sees.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BASE_URL", "LOGIN", "PASSWORD", "TOKEN", "TIMEOUT"} {
		t.Setenv("SMSGATE_"+key, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMSGATE_LOGIN", "user")
	t.Setenv("SMSGATE_PASSWORD", "pass")

	cfg, err := NewConfig("")

	require.NoError(t, err)
	assert.Equal(t, smsgateway.BaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestNewConfig_MissingCredentials(t *testing.T) {
	clearEnv(t)
	_, err := NewConfig("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "login/password or token is required")
}

func TestNewConfig_CredentialsAndTokenAreExclusive(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMSGATE_LOGIN", "user")
	t.Setenv("SMSGATE_PASSWORD", "pass")
	t.Setenv("SMSGATE_TOKEN", "token")

	_, err := NewConfig("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMSGATE_BASE_URL", "https://sms.example.com/api")
	t.Setenv("SMSGATE_TOKEN", "secret-token")
	t.Setenv("SMSGATE_TIMEOUT", "5s")

	cfg, err := NewConfig("")

	require.NoError(t, err)
	assert.Equal(t, "https://sms.example.com/api", cfg.BaseURL)
	assert.Equal(t, "secret-token", cfg.Token)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestNewConfig_YamlFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"base_url: https://sms.example.com/api\nlogin: user\npassword: pass\ntimeout: 10s\n",
	), 0600))

	cfg, err := NewConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "https://sms.example.com/api", cfg.BaseURL)
	assert.Equal(t, "user", cfg.Login)
	assert.Equal(t, "pass", cfg.Password)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestCfg_Auth(t *testing.T) {
	basic := &Cfg{Login: "user", Password: "pass"}
	bearer := &Cfg{Token: "secret-token"}

	assert.NotNil(t, basic.Auth())
	assert.NotNil(t, bearer.Auth())
	assert.NotEqual(t, basic.Auth(), bearer.Auth())
}

func TestCfg_NewClient(t *testing.T) {
	cfg := &Cfg{
		BaseURL: "https://sms.example.com/api",
		Token:   "secret-token",
		Timeout: 5 * time.Second,
	}

	assert.NotNil(t, cfg.NewClient())
}
