// Package logging implements support for structured logging.
//
// Loggers are obtained per module with GetLogger, which may be called
// before the backend is initialized, allowing for package level loggers.
// Output is discarded until Initialize (or InitializeFromConfig) is
// called.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"
)

var (
	backend = logBackend{
		baseLogger:   log.NewNopLogger(),
		defaultLevel: LevelError,
	}

	_ pflag.Value = (*Level)(nil)
	_ pflag.Value = (*Format)(nil)
)

// Format is a logging format.
type Format uint

const (
	// FmtLogfmt is the "logfmt" logging format.
	FmtLogfmt Format = iota
	// FmtJSON is the JSON logging format.
	FmtJSON
)

var formatNames = []string{
	FmtLogfmt: "logfmt",
	FmtJSON:   "JSON",
}

// String returns the string representation of a Format.
func (f *Format) String() string {
	if int(*f) >= len(formatNames) {
		panic("logging: unsupported format")
	}
	return formatNames[*f]
}

// Set sets the Format to the value specified by the provided string.
func (f *Format) Set(s string) error {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			*f = Format(i)
			return nil
		}
	}
	return fmt.Errorf("logging: invalid log format: '%s'", s)
}

// Type returns the list of supported Formats.
func (f *Format) Type() string {
	return "[" + strings.Join(formatNames, ",") + "]"
}

func (f Format) newLogger(w io.Writer) (log.Logger, error) {
	switch f {
	case FmtLogfmt:
		return log.NewLogfmtLogger(w), nil
	case FmtJSON:
		return log.NewJSONLogger(w), nil
	default:
		return nil, fmt.Errorf("logging: unsupported log format: %v", uint(f))
	}
}

// Level is a log level.
type Level uint

const (
	// LevelDebug is the log level for debug messages.
	LevelDebug Level = iota
	// LevelInfo is the log level for informative messages.
	LevelInfo
	// LevelWarn is the log level for warning messages.
	LevelWarn
	// LevelError is the log level for error messages.
	LevelError
)

var levels = []struct {
	name   string
	allow  func() level.Option
	logger func(log.Logger) log.Logger
}{
	LevelDebug: {"DEBUG", level.AllowDebug, level.Debug},
	LevelInfo:  {"INFO", level.AllowInfo, level.Info},
	LevelWarn:  {"WARN", level.AllowWarn, level.Warn},
	LevelError: {"ERROR", level.AllowError, level.Error},
}

func (l Level) valid() bool {
	return int(l) < len(levels)
}

// String returns the string representation of a Level.
func (l *Level) String() string {
	if !l.valid() {
		panic("logging: unsupported log level")
	}
	return levels[*l].name
}

// Set sets the Level to the value specified by the provided string.
func (l *Level) Set(s string) error {
	for i, lvl := range levels {
		if strings.EqualFold(s, lvl.name) {
			*l = Level(i)
			return nil
		}
	}
	return fmt.Errorf("logging: invalid log level: '%s'", s)
}

// Type returns the list of supported Levels.
func (l *Level) Type() string {
	names := make([]string, 0, len(levels))
	for _, lvl := range levels {
		names = append(names, lvl.name)
	}
	return "[" + strings.Join(names, ",") + "]"
}

// Logger is a logger instance.
type Logger struct {
	logger log.Logger
	level  Level
	module string
}

func (l *Logger) log(lvl Level, msg string, keyvals []any) {
	if l.level > lvl {
		return
	}
	_ = levels[lvl].logger(l.logger).Log(append([]any{"msg", msg}, keyvals...)...)
}

// Debug logs the message and key value pairs at the Debug log level.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.log(LevelDebug, msg, keyvals)
}

// Info logs the message and key value pairs at the Info log level.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.log(LevelInfo, msg, keyvals)
}

// Warn logs the message and key value pairs at the Warn log level.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.log(LevelWarn, msg, keyvals)
}

// Error logs the message and key value pairs at the Error log level.
func (l *Logger) Error(msg string, keyvals ...any) {
	l.log(LevelError, msg, keyvals)
}

// With returns a logger carrying the additional key/value pairs.
func (l *Logger) With(keyvals ...any) *Logger {
	cp := *l
	cp.logger = log.With(l.logger, keyvals...)
	return &cp
}

// IsDebug returns true if debug messages would be emitted.
func (l *Logger) IsDebug() bool {
	return l.level <= LevelDebug
}

// GetLevel returns the current default log level.
func GetLevel() Level {
	backend.Lock()
	defer backend.Unlock()

	return backend.defaultLevel
}

// GetLogger returns a logger for the given module.
//
// It may be called before Initialize.
func GetLogger(module string) *Logger {
	return backend.getLogger(module)
}

// NewJSONLogger returns a logger writing JSON lines to w, independent of
// the global backend. Useful in tests.
func NewJSONLogger(w io.Writer) *Logger {
	return &Logger{
		logger: log.NewJSONLogger(log.NewSyncWriter(w)),
	}
}

// Initialize sets up the logging backend.
//
// Output goes to w in the given format; a nil w discards everything.
// Modules log at the level of their longest matching prefix in
// moduleLvls, or at defaultLvl. Initialize may only be called once.
func Initialize(w io.Writer, format Format, defaultLvl Level, moduleLvls map[string]Level) error {
	backend.Lock()
	defer backend.Unlock()

	if backend.initialized {
		return fmt.Errorf("logging: already initialized")
	}

	logger := backend.baseLogger
	if w != nil {
		var err error
		if logger, err = format.newLogger(log.NewSyncWriter(w)); err != nil {
			return err
		}
	}

	// Loggers filter on their own level, the backend only drops what no
	// module asked for.
	minLvl := defaultLvl
	for _, lvl := range moduleLvls {
		minLvl = min(minLvl, lvl)
	}
	if !defaultLvl.valid() || !minLvl.valid() {
		return fmt.Errorf("logging: unsupported log level: %d", uint(max(defaultLvl, minLvl)))
	}
	logger = level.NewFilter(logger, levels[minLvl].allow())
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	backend.baseLogger = logger
	backend.moduleLevels = moduleLvls
	backend.defaultLevel = defaultLvl
	backend.initialized = true

	for _, l := range backend.earlyLoggers {
		l.swapLogger.Swap(backend.baseLogger)
		backend.setLevelLocked(l.logger)
	}
	backend.earlyLoggers = nil

	return nil
}

type earlyLogger struct {
	swapLogger *log.SwapLogger
	logger     *Logger
}

type logBackend struct {
	sync.Mutex

	baseLogger   log.Logger
	earlyLoggers []*earlyLogger
	defaultLevel Level
	moduleLevels map[string]Level

	initialized bool
}

func (b *logBackend) setLevelLocked(l *Logger) {
	l.level = b.defaultLevel

	var best string
	for prefix, lvl := range b.moduleLevels {
		// The longest matching prefix wins.
		if strings.HasPrefix(l.module, prefix) && len(prefix) >= len(best) {
			best, l.level = prefix, lvl
		}
	}
}

func (b *logBackend) getLogger(module string) *Logger {
	// log.DefaultCaller plus one frame for Logger.log and one for the
	// level method.
	const callerDepth = 5

	b.Lock()
	defer b.Unlock()

	var swap *log.SwapLogger
	base := b.baseLogger
	if !b.initialized {
		swap = &log.SwapLogger{}
		base = swap
	}

	keyvals := []any{"caller", log.Caller(callerDepth)}
	if module != "" {
		keyvals = append([]any{"module", module}, keyvals...)
	}
	l := &Logger{
		logger: log.WithPrefix(base, keyvals...),
		module: module,
	}
	b.setLevelLocked(l)

	if swap != nil {
		b.earlyLoggers = append(b.earlyLoggers, &earlyLogger{swapLogger: swap, logger: l})
	}

	return l
}

