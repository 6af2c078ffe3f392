package setting

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Defaults().AppConf.Port, cfg.AppConf.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `{"app":{"portRun":9090,"location":"Europe/Berlin"},"cache":{"wait_time_seconds":3}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(9090), cfg.AppConf.Port)
	assert.Equal(t, "Europe/Berlin", cfg.AppConf.Location)
	assert.Equal(t, int64(3), cfg.Cache.WaitTime)
	assert.Equal(t, int64(30), cfg.AppConf.ReadTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `{"app":{"portRun":9090},"db":{"dsn":"from-file"}}`)
	for k, v := range map[string]string{
		"PORT":         "7000",
		"DATABASE_URL": "postgres://env",
		"LOG_LEVEL":    "debug",
	} {
		require.NoError(t, os.Setenv(k, v))
		defer os.Unsetenv(k)
	}

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7000), cfg.AppConf.Port)
	assert.Equal(t, "postgres://env", cfg.DB.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadBadJSON(t *testing.T) {
	_, err := Load(writeConfig(t, `{"app":`))
	assert.Error(t, err)
}

func TestLocation(t *testing.T) {
	defer func(old string) { Config.AppConf.Location = old }(Config.AppConf.Location)

	Config.AppConf.Location = ""
	assert.Equal(t, time.Local, Location())

	Config.AppConf.Location = "UTC"
	assert.Equal(t, "UTC", Location().String())

	Config.AppConf.Location = "Nowhere/Atlantis"
	assert.Equal(t, time.Local, Location())
}
