// Package where resolves the directories seam keeps its files in.
// Every resolved directory is created on first use.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/seam-cli/seam/constant"
	"github.com/seam-cli/seam/filesystem"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "SEAM_CONFIG_PATH"

// mkdir joins elems, creates the result and returns it.
func mkdir(elems ...string) string {
	path := filepath.Join(elems...)
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// userDir returns the per-user base from resolve, or fallback when the
// platform has none.
func userDir(resolve func() (string, error), fallback string) string {
	base, err := resolve()
	if err != nil || base == "" {
		return fallback
	}
	return base
}

// Config is the configuration directory, SEAM_CONFIG_PATH when set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return mkdir(custom)
	}
	return mkdir(userDir(os.UserConfigDir, "."), constant.Seam)
}

// ConfigFile is the TOML file inside Config.
func ConfigFile() string {
	return filepath.Join(Config(), constant.Seam+".toml")
}

// Cache holds the release check cache.
func Cache() string {
	return mkdir(userDir(os.UserCacheDir, "cache"), constant.Seam)
}

// Logs holds log files when logs.write is enabled.
func Logs() string {
	return mkdir(Config(), "logs")
}
