package logio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options configures the handlers combined by New.
type Options struct {
	// Level is shared by every handler; nil means slog.LevelInfo.
	Level slog.Leveler

	// Terminal, if non-nil, receives human readable text records.
	Terminal io.Writer

	// File, if non-nil, receives JSON records.
	File io.Writer

	// Journal enables a systemd journal handler; failure to connect to the
	// journal is reported through the terminal handler and otherwise ignored.
	Journal bool
}

// New builds a logger that fans records out to every configured handler.
func New(opts Options) *slog.Logger {
	var handlers []slog.Handler
	hopts := &slog.HandlerOptions{Level: opts.Level}

	var terminalHandler slog.Handler
	if opts.Terminal != nil {
		terminalHandler = slog.NewTextHandler(opts.Terminal, hopts)
		handlers = append(handlers, terminalHandler)
	}

	if opts.File != nil {
		handlers = append(handlers, slog.NewJSONHandler(opts.File, hopts))
	}

	if opts.Journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: opts.Level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			if terminalHandler != nil {
				record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
				record.Add("error", err)
				_ = terminalHandler.Handle(context.Background(), record)
			}
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// Leveledf returns a typical printf-style formatting function that logs
// messages through logger at the given level.
func Leveledf(logger *slog.Logger, level slog.Level) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) {
		ctx := context.Background()
		if !logger.Enabled(ctx, level) {
			return
		}
		if len(args) > 0 {
			mess = fmt.Sprintf(mess, args...)
		}
		logger.Log(ctx, level, mess)
	}
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}
