package logging

import (
	"io"
	"os"
	"time"

	"sitepulse/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the global zerolog logger. Release mode logs JSON at info level,
// any other mode logs through the console writer at debug level. When a log file is
// configured, output is also written to it with size-based rotation.
func Setup(mode string, cfg *config.LogConfig) io.Closer {
	var out io.Writer = os.Stdout
	if mode == gin.ReleaseMode {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	rotator := NewRotator(cfg)
	if rotator != nil {
		out = zerolog.MultiLevelWriter(out, rotator)
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	if rotator == nil {
		return nopCloser{}
	}
	return rotator
}

// NewRotator returns a rotating file writer, or nil when no file is configured.
func NewRotator(cfg *config.LogConfig) *lumberjack.Logger {
	if cfg == nil || cfg.File == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
