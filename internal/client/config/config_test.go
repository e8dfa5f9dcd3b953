package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	require.Equal(t, "http://localhost:3000/api", c.BaseURL)
	require.Equal(t, 10*time.Second, c.RequestTimeout)
	require.Equal(t, "campusconnect.db", c.VaultPath)
}

func TestParseFlags_Overrides(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"cli", "-a", "https://api.example.com/api", "-t", "5"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	require.Equal(t, "https://api.example.com/api", c.BaseURL)
	require.Equal(t, 5*time.Second, c.RequestTimeout)
}

func TestParseJSON_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"base_url":"http://10.0.2.2:3000/api","request_timeout":"3s","vault_path":"v.db"}`,
	), 0o600))

	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"cli", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJSON(&c)

	require.Equal(t, "http://10.0.2.2:3000/api", c.BaseURL)
	require.Equal(t, 3*time.Second, c.RequestTimeout)
	require.Equal(t, "v.db", c.VaultPath)
}

func TestParseJSON_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url":"http://h/api"}`), 0o600))

	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"cli", "-config", path}

	var c Config
	c.LoadDefaults()
	parseJSON(&c)

	require.Equal(t, "http://h/api", c.BaseURL)
	require.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestParseJSON_NoFlagIsNoop(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"cli"}

	var c Config
	c.LoadDefaults()
	parseJSON(&c)

	require.Equal(t, "http://localhost:3000/api", c.BaseURL)
}
