package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/camfiles/pkg/camfiles/storage"
)

func TestLoadConfig_Defaults(t *testing.T) {
	v, err := storage.NewViper("")
	require.NoError(t, err)

	cfg, err := storage.LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.ExternalRoot)
	assert.Equal(t, "Pictures", cfg.PicturesSubdir)
	assert.Equal(t, storage.MountAuto, cfg.Mounted)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "camfiles", filepath.Base(cfg.CacheDir))
	assert.Equal(t, "Media", cfg.MediaSubdir)
	assert.Equal(t, "camfiles", cfg.AppName)
	assert.Equal(t, "files", filepath.Base(cfg.FilesDir))
}

func TestLoadConfig_Layers(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "camfiles.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
external_root: /from/file
cache_dir: /file/cache
mounted: "FALSE"
log_level: info
`), 0644))

	t.Setenv("CAMFILES_CACHE_DIR", "/env/cache")

	v, err := storage.NewViper(configFile)
	require.NoError(t, err)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "", "")
	flags.String("unrelated", "", "")
	require.NoError(t, storage.BindFlags(v, flags))
	require.NoError(t, flags.Parse([]string{"--log-level=debug"}))

	cfg, err := storage.LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "/from/file", cfg.ExternalRoot)
	assert.Equal(t, "/env/cache", cfg.CacheDir, "environment beats file")
	assert.Equal(t, storage.MountFalse, cfg.Mounted, "mounted is normalized")
	assert.Equal(t, "debug", cfg.LogLevel, "flag beats file")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := storage.NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     storage.Config
		wantErr bool
	}{
		{"valid", storage.Config{CacheDir: "/c", Mounted: "auto"}, false},
		{"empty mounted", storage.Config{CacheDir: "/c"}, false},
		{"bad mounted", storage.Config{CacheDir: "/c", Mounted: "maybe"}, true},
		{"no cache dir", storage.Config{CacheDir: "  ", Mounted: "auto"}, true},
		{"absolute pictures", storage.Config{CacheDir: "/c", PicturesSubdir: "/Pictures"}, true},
		{"absolute media", storage.Config{CacheDir: "/c", MediaSubdir: "/Media"}, true},
		{"app name with separator", storage.Config{CacheDir: "/c", AppName: "a/b"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, []string{storage.MountAuto, storage.MountTrue, storage.MountFalse}, cfg.Mounted)
			assert.Equal(t, "Pictures", cfg.PicturesSubdir)
			assert.Equal(t, "Media", cfg.MediaSubdir)
		})
	}
}
