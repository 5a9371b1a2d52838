package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rafaeelricco/commit-gen/options"
)

const (
	configName = ".commit-gen"
	configType = "yaml"
	envPrefix  = "COMMIT_GEN"

	cfgKeyFillMissingOptionals = "fill_missing_optionals"
	flagFillMissingOptionals   = "fill-missing-optionals"
)

// loadConfig resolves settings with precedence flag > env > file > default.
// A missing default config file is not an error; a missing explicit one is.
func loadConfig(file string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyFillMissingOptionals, false)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if f := flags.Lookup(flagFillMissingOptionals); f != nil {
		if err := v.BindPFlag(cfgKeyFillMissingOptionals, f); err != nil {
			return nil, fmt.Errorf("bind flag: %w", err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

func parsingOptions(v *viper.Viper) (options.ParsingOptions, error) {
	opts := options.Default()
	if err := v.Unmarshal(&opts); err != nil {
		return opts, fmt.Errorf("parse config: %w", err)
	}

	return opts, nil
}
