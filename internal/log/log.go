// Package log provides structured logging for the wallet core.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the global logger instance.
var Logger zerolog.Logger

// Component loggers for different parts of the system.
var (
	Vault  zerolog.Logger
	Chain  zerolog.Logger
	RPC    zerolog.Logger
	Tokens zerolog.Logger
	API    zerolog.Logger
)

func init() {
	Logger = NewConsoleLogger(os.Stdout, "info")
	initComponentLoggers()
}

// Init initializes the logger with the given level. JSON output goes to
// stdout when jsonOutput is set, colored console output otherwise.
func Init(level string, jsonOutput bool) {
	if jsonOutput {
		Logger = zerolog.New(os.Stdout).Level(parseLevel(level)).With().Timestamp().Logger()
	} else {
		Logger = NewConsoleLogger(os.Stdout, level)
	}
	initComponentLoggers()
}

// NewConsoleLogger creates a colored console logger.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(output).Level(parseLevel(level)).With().Timestamp().Logger()
}

func initComponentLoggers() {
	Vault = Logger.With().Str("component", "vault").Logger()
	Chain = Logger.With().Str("component", "chain").Logger()
	RPC = Logger.With().Str("component", "rpc").Logger()
	Tokens = Logger.With().Str("component", "tokens").Logger()
	API = Logger.With().Str("component", "api").Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
