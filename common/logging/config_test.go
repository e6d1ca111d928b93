package logging

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func setConfig(t *testing.T, key string, v any) {
	viper.Set(key, v)
	t.Cleanup(func() { viper.Set(key, nil) })
}

func TestLevelsFromConfig(t *testing.T) {
	require := require.New(t)

	format, lvl, modules, err := levelsFromConfig()
	require.NoError(err, "flag defaults")
	require.Equal(FmtLogfmt, format)
	require.Equal(LevelWarn, lvl)
	require.Empty(modules)

	setConfig(t, CfgLogFormat, "json")
	setConfig(t, CfgLogLevel, "debug")
	format, lvl, _, err = levelsFromConfig()
	require.NoError(err)
	require.Equal(FmtJSON, format)
	require.Equal(LevelDebug, lvl)

	setConfig(t, CfgLogLevel, map[string]any{
		"default":      "info",
		"clone":        "debug",
		"value/regexp": "error",
	})
	_, lvl, modules, err = levelsFromConfig()
	require.NoError(err, "per-module levels")
	require.Equal(LevelInfo, lvl)
	require.Equal(map[string]Level{
		"clone":        LevelDebug,
		"value/regexp": LevelError,
	}, modules)

	setConfig(t, CfgLogLevel, map[string]any{
		"default": "info",
		"clone":   "loud",
	})
	_, _, _, err = levelsFromConfig()
	require.Error(err, "invalid module level")
}

func TestInitializeFromConfigInvalid(t *testing.T) {
	require := require.New(t)

	setConfig(t, CfgLogFormat, "xml")
	require.Error(InitializeFromConfig(), "invalid format")

	setConfig(t, CfgLogFormat, "json")
	setConfig(t, CfgLogLevel, "verbose")
	require.Error(InitializeFromConfig(), "invalid level without a default")
}

func TestFlags(t *testing.T) {
	require := require.New(t)

	for _, name := range []string{CfgLogFile, CfgLogFormat, CfgLogLevel} {
		require.NotNil(Flags.Lookup(name), name)
	}
	require.Equal("WARN", Flags.Lookup(CfgLogLevel).DefValue)
	require.Equal("logfmt", Flags.Lookup(CfgLogFormat).DefValue)
}
