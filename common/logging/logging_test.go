package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFlag(t *testing.T) {
	require := require.New(t)

	var l Level
	require.NoError(l.Set("debug"))
	require.Equal(LevelDebug, l)
	require.Equal("DEBUG", l.String())
	require.NoError(l.Set("WARN"))
	require.Equal(LevelWarn, l)
	require.Error(l.Set("verbose"), "unknown level")
	require.Equal("[DEBUG,INFO,WARN,ERROR]", l.Type())

	var f Format
	require.NoError(f.Set("json"))
	require.Equal(FmtJSON, f)
	require.Equal("JSON", f.String())
	require.Error(f.Set("xml"), "unknown format")
}

func TestJSONLogger(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	logger := NewJSONLogger(&buf).With("module", "test")
	logger.Info("this is a test", "foo", 3)

	const expected = `{"foo":3,"level":"info","module":"test","msg":"this is a test"}` + "\n"
	require.Equal(expected, buf.String())
}

func TestInitialize(t *testing.T) {
	require := require.New(t)

	early := GetLogger("clone/engine")
	other := GetLogger("value")

	var buf bytes.Buffer
	err := Initialize(&buf, FmtJSON, LevelWarn, map[string]Level{
		"clone": LevelDebug,
	})
	require.NoError(err, "Initialize")
	require.Error(Initialize(&buf, FmtJSON, LevelWarn, nil), "second Initialize")
	require.Equal(LevelWarn, GetLevel())

	require.True(early.IsDebug(), "module level applies to early loggers")
	require.False(other.IsDebug(), "default level applies to other modules")

	early.Debug("visible", "n", 1)
	other.Info("filtered")
	other.Warn("also visible")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(lines, 2, "one message is below the level")

	var entry map[string]any
	require.NoError(json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal("visible", entry["msg"])
	require.Equal("clone/engine", entry["module"])
	require.Equal("debug", entry["level"])
	require.Contains(entry, "ts")
	require.Contains(entry, "caller")

	late := GetLogger("clone")
	require.True(late.IsDebug(), "loggers created after Initialize get module levels")
}
