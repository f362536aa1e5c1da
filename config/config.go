// Package config wires the viper configuration engine with mydrama defaults.
package config

import (
	"errors"
	"strings"

	"github.com/mydrama-tv/mydrama/constant"
	"github.com/mydrama-tv/mydrama/filesystem"
	"github.com/mydrama-tv/mydrama/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps configuration keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and env bindings, then reads mydrama.toml if present.
func Setup() error {
	viper.SetConfigName(constant.MyDrama)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.MyDrama)
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
