package logging

import (
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// CfgLogFile is the file logs are appended to, standard output if
	// empty.
	CfgLogFile = "log.file"
	// CfgLogFormat is the log format.
	CfgLogFormat = "log.format"
	// CfgLogLevel is the log level. In a config file it may instead be a
	// map of module prefixes to levels, with the "default" entry used
	// for everything else.
	CfgLogLevel = "log.level"
)

// Flags has the logging flags.
var Flags = flag.NewFlagSet("", flag.ContinueOnError)

// InitializeFromConfig initializes the logging backend from viper.
func InitializeFromConfig() error {
	format, defaultLvl, moduleLvls, err := levelsFromConfig()
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if fn := viper.GetString(CfgLogFile); fn != "" {
		f, err := os.OpenFile(fn, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return err
		}
		w = f
	}

	return Initialize(w, format, defaultLvl, moduleLvls)
}

func levelsFromConfig() (Format, Level, map[string]Level, error) {
	var format Format
	if err := format.Set(viper.GetString(CfgLogFormat)); err != nil {
		return 0, 0, nil, err
	}

	var defaultLvl Level
	moduleLvls := make(map[string]Level)
	if err := defaultLvl.Set(viper.GetString(CfgLogLevel)); err != nil {
		if errDefault := defaultLvl.Set(viper.GetString(CfgLogLevel + ".default")); errDefault != nil {
			return 0, 0, nil, errDefault
		}
		for module, s := range viper.GetStringMapString(CfgLogLevel) {
			if module == "default" {
				continue
			}

			var lvl Level
			if err = lvl.Set(s); err != nil {
				return 0, 0, nil, err
			}
			moduleLvls[module] = lvl
		}
	}

	return format, defaultLvl, moduleLvls, nil
}

func init() {
	format := FmtLogfmt
	lvl := LevelWarn

	Flags.String(CfgLogFile, "", "log file")
	Flags.Var(&format, CfgLogFormat, "log format")
	Flags.Var(&lvl, CfgLogLevel, "log level")

	_ = viper.BindPFlags(Flags)
}
