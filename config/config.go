// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/seam-cli/seam/constant"
	"github.com/seam-cli/seam/filesystem"
	"github.com/seam-cli/seam/key"
	"github.com/seam-cli/seam/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.Seam)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Seam)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// Timeout returns the configured upstream timeout.
// Non-positive values fall back to the factory default.
func Timeout() time.Duration {
	seconds := viper.GetInt(key.NetworkTimeout)
	if seconds <= 0 {
		seconds = Default[key.NetworkTimeout].Value.(int)
	}
	return time.Duration(seconds) * time.Second
}

// Save writes viper's state to the config file, creating it when missing.
func Save() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfigAs(where.ConfigFile())
	}
	return err
}
