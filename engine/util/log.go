package util

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogVoxel LogCategory = 1 << iota
	LogOpenGL
	LogPlugin
	LogSystem
)

// LogCategories masks which categories are written at all.
var LogCategories = LogVoxel | LogOpenGL | LogPlugin | LogSystem

var categoryTraceKeys = map[LogCategory]string{
	LogVoxel:  "outline.voxel",
	LogOpenGL: "outline.gl",
	LogPlugin: "outline.plugin",
	LogSystem: "outline.system",
}

// TraceKeys lists the tracing keys of all log categories, e.g. for test adapters.
func TraceKeys() []string {
	return []string{
		categoryTraceKeys[LogVoxel],
		categoryTraceKeys[LogOpenGL],
		categoryTraceKeys[LogPlugin],
		categoryTraceKeys[LogSystem],
	}
}

// SetLogLevel applies the level to the traces of every category.
func SetLogLevel(lvl LogLevel) {
	traceLevel := tracing.LevelInfo
	switch lvl {
	case LogLevelError:
		traceLevel = tracing.LevelError
	case LogLevelDebug:
		traceLevel = tracing.LevelDebug
	}
	for _, key := range TraceKeys() {
		tracing.Select(key).SetTraceLevel(traceLevel)
	}
}

func ParseLogLevel(name string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return LogLevelError, nil
	case "", "info":
		return LogLevelInfo, nil
	case "debug":
		return LogLevelDebug, nil
	}
	return LogLevelInfo, errors.Errorf("unknown log level %q", name)
}

func log(cat LogCategory, lvl LogLevel, format string, args ...interface{}) {
	if LogCategories&cat == 0 {
		return
	}
	trace := tracing.Select(categoryTraceKeys[cat])
	switch lvl {
	case LogLevelError:
		trace.Errorf(format, args...)
	case LogLevelInfo:
		trace.Infof(format, args...)
	default:
		trace.Debugf(format, args...)
	}
}

func LogVoxelInfo(format string, args ...interface{}) {
	log(LogVoxel, LogLevelInfo, format, args...)
}

func LogVoxelDebug(format string, args ...interface{}) {
	log(LogVoxel, LogLevelDebug, format, args...)
}

func LogVoxelError(format string, args ...interface{}) {
	log(LogVoxel, LogLevelError, format, args...)
}

func LogGlInfo(format string, args ...interface{}) {
	log(LogOpenGL, LogLevelInfo, format, args...)
}

func LogGlDebug(format string, args ...interface{}) {
	log(LogOpenGL, LogLevelDebug, format, args...)
}

func LogGlError(format string, args ...interface{}) {
	log(LogOpenGL, LogLevelError, format, args...)
}

func LogPluginInfo(format string, args ...interface{}) {
	log(LogPlugin, LogLevelInfo, format, args...)
}

func LogPluginDebug(format string, args ...interface{}) {
	log(LogPlugin, LogLevelDebug, format, args...)
}

func LogPluginError(format string, args ...interface{}) {
	log(LogPlugin, LogLevelError, format, args...)
}

func LogSystemInfo(format string, args ...interface{}) {
	log(LogSystem, LogLevelInfo, format, args...)
}

func LogSystemError(format string, args ...interface{}) {
	log(LogSystem, LogLevelError, format, args...)
}
