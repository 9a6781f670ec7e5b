package hub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jmgilman/go/hub/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{"GITHUB_TOKEN", "GITHUB_API_URL", "HUB_USER_AGENT", "HUB_HTTP_TIMEOUT"}

// unsetConfigEnv clears the configuration variables for the duration of t.
func unsetConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		unsetConfigEnv(t)

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Empty(t, cfg.Token)
		assert.Equal(t, "https://api.github.com/", cfg.BaseURL)
		assert.Equal(t, "hub-go", cfg.UserAgent)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("overrides", func(t *testing.T) {
		unsetConfigEnv(t)
		t.Setenv("GITHUB_TOKEN", "ghp_secret")
		t.Setenv("GITHUB_API_URL", "https://ghe.example.com/api/v3/")
		t.Setenv("HUB_USER_AGENT", "release-bot")
		t.Setenv("HUB_HTTP_TIMEOUT", "5s")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "ghp_secret", cfg.Token)
		assert.Equal(t, "https://ghe.example.com/api/v3/", cfg.BaseURL)
		assert.Equal(t, "release-bot", cfg.UserAgent)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		unsetConfigEnv(t)
		t.Setenv("HUB_HTTP_TIMEOUT", "soon")

		_, err := LoadConfig()

		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})

	t.Run("negative timeout", func(t *testing.T) {
		unsetConfigEnv(t)
		t.Setenv("HUB_HTTP_TIMEOUT", "-1s")

		_, err := LoadConfig()

		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})
}

func TestNewClientFromEnv(t *testing.T) {
	t.Run("uses environment", func(t *testing.T) {
		unsetConfigEnv(t)

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)

		mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer ghp_secret", r.Header.Get("Authorization"))
			assert.Equal(t, "release-bot", r.Header.Get("User-Agent"))
			writeJSON(w, http.StatusOK, `{"login": "bot"}`)
		})

		t.Setenv("GITHUB_TOKEN", "ghp_secret")
		t.Setenv("GITHUB_API_URL", server.URL)
		t.Setenv("HUB_USER_AGENT", "release-bot")

		client, err := NewClientFromEnv()
		require.NoError(t, err)
		assert.True(t, client.Authenticated())
		assert.Equal(t, server.URL+"/", client.BaseURL())

		user, err := client.CurrentUser(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "bot", user.Login())
	})

	t.Run("explicit options take precedence", func(t *testing.T) {
		unsetConfigEnv(t)
		t.Setenv("GITHUB_API_URL", "https://ghe.example.com/api/v3/")

		client, err := NewClientFromEnv(WithBaseURL("https://other.example.com/"))

		require.NoError(t, err)
		assert.False(t, client.Authenticated())
		assert.Equal(t, "https://other.example.com/", client.BaseURL())
	})

	t.Run("invalid base URL", func(t *testing.T) {
		unsetConfigEnv(t)
		t.Setenv("GITHUB_API_URL", "not a url")

		client, err := NewClientFromEnv()

		require.Error(t, err)
		assert.Nil(t, client)
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})
}

func TestEnvUsage(t *testing.T) {
	t.Parallel()

	usage, err := EnvUsage()

	require.NoError(t, err)
	for _, key := range configEnv {
		assert.Contains(t, usage, key)
	}
}
