package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/inovacc/quest/internal/application"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

// Menu holds the row markers used by choose.
type Menu struct {
	On  string `mapstructure:"on"`
	Off string `mapstructure:"off"`
}

// Config is the effective quest configuration.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Editor   string `mapstructure:"editor"`
	Menu     Menu   `mapstructure:"menu"`
}

// Defaults are the built-in values every other source overrides.
var Defaults = map[string]any{
	"log_level": "warn",
	"editor":    "",
	"menu.on":   ">",
	"menu.off":  " ",
}

// Load builds the configuration from, lowest to highest precedence: Defaults,
// the ini file at path (or the default location when path is empty), QUEST_*
// environment variables, and the changed flags in flags keyed by setting name.
//
// A missing file at the default location is not an error; a missing explicit
// path is.
func Load(path string, flags map[string]*pflag.Flag) (Config, error) {
	var c Config

	v := viper.New()

	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	explicit := path != ""
	if !explicit {
		p, err := application.GetConfigFilePath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if err := mergeFile(v, path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return c, err
			}
		}
	}

	v.SetEnvPrefix(application.AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range flags {
		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}

	return c, nil
}

// mergeFile layers every key of the ini file at path over the defaults. Keys
// in a named section become "section.key".
func mergeFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	for _, sec := range file.Sections() {
		for _, key := range sec.Keys() {
			name := key.Name()
			if sec.Name() != ini.DefaultSection {
				name = sec.Name() + "." + name
			}

			v.SetDefault(strings.ToLower(name), key.String())
		}
	}

	return nil
}
