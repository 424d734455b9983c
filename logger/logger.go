package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// FormatConsole renders human-readable output.
	FormatConsole = "console"
	// FormatJSON renders one JSON object per line.
	FormatJSON = "json"

	booleanTrue = "true"
)

// Logger wraps zerolog.Logger with FMP client conventions.
type Logger struct {
	logger zerolog.Logger
}

// New creates a new logger instance with configuration.
func New(cfg *Config) *Logger {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if strings.ToLower(cfg.Format) == FormatConsole {
		zl = newConsoleLogger(cfg)
	} else {
		zl = zerolog.New(outputWriter(cfg.Output))
	}
	zl = zl.Level(level)

	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	if cfg.Caller {
		zl = zl.With().Caller().Logger()
	}

	return &Logger{logger: zl}
}

// NewDefault creates a logger with default configuration.
func NewDefault() *Logger {
	return New(&Config{
		Level:     "info",
		Format:    FormatConsole,
		Output:    "stdout",
		Timestamp: true,
	})
}

// NewFromEnv creates a logger configured from FMP_LOG_* environment
// variables. FMP_LOG_JSON=true selects JSON output unless FMP_LOG_FORMAT
// is set explicitly.
func NewFromEnv() *Logger {
	format := os.Getenv("FMP_LOG_FORMAT")
	if format == "" {
		if getEnvOrDefault("FMP_LOG_JSON", "false") == booleanTrue {
			format = FormatJSON
		} else {
			format = FormatConsole
		}
	}
	cfg := &Config{
		Level:     strings.ToLower(getEnvOrDefault("FMP_LOG_LEVEL", "info")),
		Format:    format,
		Output:    getEnvOrDefault("FMP_LOG_OUTPUT", "stdout"),
		NoColor:   getEnvOrDefault("FMP_LOG_NO_COLOR", "false") == booleanTrue,
		Timestamp: getEnvOrDefault("FMP_LOG_TIMESTAMP", "true") == booleanTrue,
	}
	return New(cfg)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{logger: l.logger.With().Str(FieldComponent, name).Logger()}
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	zc := l.logger.With()
	for k, v := range fields {
		zc = zc.Interface(k, v)
	}
	return &Logger{logger: zc.Logger()}
}

// WithError returns a logger with an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{logger: l.logger.With().Err(err).Logger()}
}

// GetLogger returns the underlying zerolog.Logger.
func (l *Logger) GetLogger() zerolog.Logger {
	return l.logger
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	event := l.logger.Debug()
	addFields(event, fields...)
	event.Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	event := l.logger.Info()
	addFields(event, fields...)
	event.Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	event := l.logger.Warn()
	addFields(event, fields...)
	event.Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	event := l.logger.Error()
	addFields(event, fields...)
	event.Msg(msg)
}

// --- Default logger ---

var defaultLogger *Logger

// SetDefault sets the package-level default logger.
func SetDefault(l *Logger) { defaultLogger = l }

// Default returns the package-level default logger, creating one if needed.
func Default() *Logger {
	if defaultLogger == nil {
		defaultLogger = NewDefault()
	}
	return defaultLogger
}

// Package-level convenience functions delegate to the default logger.

func Debug(msg string, fields ...map[string]interface{}) {
	Default().Debug(msg, fields...)
}

func Info(msg string, fields ...map[string]interface{}) {
	Default().Info(msg, fields...)
}

func Warn(msg string, fields ...map[string]interface{}) {
	Default().Warn(msg, fields...)
}

func Error(msg string, fields ...map[string]interface{}) {
	Default().Error(msg, fields...)
}

// --- internal helpers ---

func addFields(event *zerolog.Event, fields ...map[string]interface{}) {
	for _, fm := range fields {
		for k, v := range fm {
			event.Interface(k, v)
		}
	}
}

func outputWriter(output string) *os.File {
	switch strings.ToLower(output) {
	case "stderr":
		return os.Stderr
	default:
		return os.Stdout
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func newConsoleLogger(cfg *Config) zerolog.Logger {
	output := outputWriter(cfg.Output)
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor,
		FormatLevel: func(i interface{}) string {
			lvl := strings.ToUpper(fmt.Sprintf("%s", i))
			short := map[string]string{
				"TRACE": "[TRC]",
				"DEBUG": "[DBG]",
				"INFO":  "[INF]",
				"WARN":  "[WRN]",
				"ERROR": "[ERR]",
			}
			tag, ok := short[lvl]
			if !ok {
				tag = fmt.Sprintf("[%s]", lvl)
			}
			if cfg.NoColor {
				return tag
			}
			colors := map[string]string{
				"TRACE": "\033[90m",
				"DEBUG": "\033[36m",
				"INFO":  "\033[32m",
				"WARN":  "\033[33m",
				"ERROR": "\033[31m",
			}
			if c, ok := colors[lvl]; ok {
				return c + tag + "\033[0m"
			}
			return tag
		},
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		},
		FormatFieldValue: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
	})
}
