package logging

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options controls where logs go
type Options struct {
	// Dir holds chatdo.log. Empty means ~/.chatdo/logs.
	Dir string
	// Level is one of debug, info, warn, error
	Level string
	// Journal additionally sends records to the systemd journal
	Journal bool
}

// Init initializes the logging system, writing logs to <dir>/chatdo.log.
// Uses text format for human readability. The returned closer releases the
// log file; the logger is also installed as the slog default.
func Init(opts Options) (*slog.Logger, io.Closer, error) {
	logDir := opts.Dir
	if logDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, err
		}
		logDir = filepath.Join(homeDir, ".chatdo", "logs")
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "chatdo.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := New(file, opts)
	slog.SetDefault(logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return logger, file, nil
}

// New builds the handler chain on top of w. The TUI owns stdout, so w is
// never a terminal in normal operation.
func New(w io.Writer, opts Options) *slog.Logger {
	level := ParseLevel(opts.Level)

	fileHandler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	handlers := []slog.Handler{fileHandler}

	if opts.Journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "systemd journal unavailable", 0)
			record.Add("error", err)
			_ = fileHandler.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// ParseLevel maps a config string to a slog level, defaulting to info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// toJournalKey converts attribute keys to journald field names
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, str)
}
