// Package config resolves the startup settings of the trainer from defaults,
// an optional config file, FLASHCARDS_* environment variables and flags, in
// increasing order of precedence.
package config

import (
	"flag"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Config holds the startup settings.
type Config struct {
	Env        string `mapstructure:"env"`       // "dev" selects the human readable logger
	LogLevel   string `mapstructure:"log_level"` // zap level name, or "off"
	ImportPath string `mapstructure:"import"`    // card file loaded before the first command
	ExportPath string `mapstructure:"export"`    // card file written on exit
	SheetPath  string `mapstructure:"sheet"`     // HTML study sheet written on exit
}

// Load parses args (without the program name) and merges them over the other
// sources. Output of the flag set goes to stderr.
func Load(fs afero.Fs, args []string, stderr io.Writer) (*Config, error) {
	flags := flag.NewFlagSet("flashcards", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.String("config", "", "path to a config file")
	flags.String("import", "", "load cards from `file` at startup")
	flags.String("export", "", "save cards to `file` on exit")
	flags.String("sheet", "", "write an HTML study sheet to `file` on exit")
	flags.String("log-level", "", "diagnostic log level (debug, info, warn, error, off)")
	if err := flags.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}

	v := viper.New()
	v.SetFs(fs)
	v.SetDefault("env", "prod")
	v.SetDefault("log_level", "off")
	v.SetDefault("import", "")
	v.SetDefault("export", "")
	v.SetDefault("sheet", "")

	v.SetEnvPrefix("flashcards")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %q", *configFile)
		}
	} else {
		v.SetConfigName("flashcards")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flashcards")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(err, "read config file")
			}
		}
	}

	// flags set on the command line win over everything else
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			return
		}
		v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
	})

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}
