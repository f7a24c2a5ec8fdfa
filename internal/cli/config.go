package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/odfkit/odsgen/pkg/pipeline"
)

// Config carries the optional settings read from the user's config
// file. Flags override anything set here.
type Config struct {
	// Addr is the listen address for the serve command.
	Addr string `toml:"addr"`

	// CacheDir overrides the XDG cache directory.
	CacheDir string `toml:"cache_dir"`

	// Format is the default input format when none is given.
	Format string `toml:"format"`
}

// configPath returns the config file location using the XDG standard
// (~/.config/odsgen/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file. A missing file is not an error and
// yields the zero config.
func loadConfig() (Config, error) {
	var cfg Config
	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	return readConfig(path)
}

// resolveFormat picks the input format: the --format flag when set,
// then the config file's format key, then the flag's default (auto,
// which detects from the input path).
func resolveFormat(cmd *cobra.Command, flagValue string) (pipeline.Format, error) {
	if cmd.Flags().Changed("format") {
		return pipeline.Format(flagValue), nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	if cfg.Format != "" {
		return pipeline.Format(cfg.Format), nil
	}
	return pipeline.Format(flagValue), nil
}

// readConfig parses one TOML config file.
func readConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
