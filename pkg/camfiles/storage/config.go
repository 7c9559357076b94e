package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. CAMFILES_CACHE_DIR.
const EnvPrefix = "CAMFILES"

// Mount modes for Config.Mounted.
const (
	MountAuto  = "auto"
	MountTrue  = "true"
	MountFalse = "false"
)

// Config describes the host directories that stand in for the platform's
// storage locations.
//
// Sources, highest priority first:
//  1. Flags bound with BindFlags
//  2. Environment variables (CAMFILES_*)
//  3. Configuration file (YAML, TOML or JSON)
//  4. Defaults
type Config struct {
	// ExternalRoot is the directory standing in for external storage.
	// Empty means there is no external storage.
	ExternalRoot string `mapstructure:"external_root"`

	// PicturesSubdir is the pictures directory below ExternalRoot.
	// Default: Pictures
	PicturesSubdir string `mapstructure:"pictures_subdir"`

	// CacheDir is the internal cache directory.
	// Default: <user cache dir>/camfiles
	CacheDir string `mapstructure:"cache_dir"`

	// MediaSubdir is the shared media directory below ExternalRoot.
	// Default: Media
	MediaSubdir string `mapstructure:"media_subdir"`

	// FilesDir is the internal files directory.
	// Default: <user config dir>/camfiles/files
	FilesDir string `mapstructure:"files_dir"`

	// AppName names the application folder inside the media directory.
	// Default: camfiles
	AppName string `mapstructure:"app_name"`

	// Mounted is auto, true or false. auto probes ExternalRoot.
	Mounted string `mapstructure:"mounted"`

	// LogLevel is a zerolog level name.
	LogLevel string `mapstructure:"log_level"`
}

var configKeys = []string{
	"external_root", "pictures_subdir", "cache_dir", "media_subdir",
	"files_dir", "app_name", "mounted", "log_level",
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("external_root", "")
	v.SetDefault("pictures_subdir", "Pictures")
	v.SetDefault("cache_dir", defaultCacheDir())
	v.SetDefault("media_subdir", "Media")
	v.SetDefault("files_dir", defaultFilesDir())
	v.SetDefault("app_name", "camfiles")
	v.SetDefault("mounted", MountAuto)
	v.SetDefault("log_level", "warn")
}

func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "camfiles")
}

func defaultFilesDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "camfiles", "files")
}

// BindFlags binds the flags that exist in flags to their config keys.
// Flag names use dashes in place of underscores.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range configKeys {
		f := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
		}
	}
	return nil
}

// NewViper returns a viper instance with defaults and environment
// overrides set up. When configFile is non-empty it is read as well.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}
	return v, nil
}

// LoadConfig unmarshals and validates the configuration held by v.
func LoadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks and normalizes the configuration.
func (c *Config) Validate() error {
	c.Mounted = strings.ToLower(strings.TrimSpace(c.Mounted))
	// Unquoted YAML booleans arrive as "1" and "0".
	switch c.Mounted {
	case "":
		c.Mounted = MountAuto
	case "1":
		c.Mounted = MountTrue
	case "0":
		c.Mounted = MountFalse
	case MountAuto, MountTrue, MountFalse:
	default:
		return fmt.Errorf("invalid mounted value %q: want %s, %s or %s", c.Mounted, MountAuto, MountTrue, MountFalse)
	}
	if strings.TrimSpace(c.CacheDir) == "" {
		return fmt.Errorf("cache_dir must not be empty")
	}
	if c.PicturesSubdir == "" {
		c.PicturesSubdir = "Pictures"
	}
	if filepath.IsAbs(c.PicturesSubdir) {
		return fmt.Errorf("pictures_subdir %q must be relative to external_root", c.PicturesSubdir)
	}
	if c.MediaSubdir == "" {
		c.MediaSubdir = "Media"
	}
	if filepath.IsAbs(c.MediaSubdir) {
		return fmt.Errorf("media_subdir %q must be relative to external_root", c.MediaSubdir)
	}
	if strings.ContainsRune(c.AppName, filepath.Separator) {
		return fmt.Errorf("app_name %q must not contain a path separator", c.AppName)
	}
	return nil
}
