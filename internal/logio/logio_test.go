package logio_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/jcorbin/gobrain/internal/logio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var lines []string
	lw := &logio.Writer{
		Prefix: "> ",
		Logf: func(mess string, args ...interface{}) {
			lines = append(lines, fmt.Sprintf(mess, args...))
		},
	}

	fmt.Fprintf(lw, "hello\nwor")
	assert.Equal(t, []string{"> hello"}, lines, "expected only complete lines")

	fmt.Fprintf(lw, "ld\npartial")
	assert.Equal(t, []string{"> hello", "> world"}, lines)

	require.NoError(t, lw.Flush())
	assert.Equal(t, []string{"> hello", "> world", "> partial"}, lines, "expected flush of partial line")
}

func TestNew_fanout(t *testing.T) {
	var term, file bytes.Buffer
	logger := logio.New(logio.Options{
		Level:    slog.LevelDebug,
		Terminal: &term,
		File:     &file,
	})

	logio.Leveledf(logger, slog.LevelDebug)("IP=%d DP=%d", 3, 1)

	assert.True(t, strings.Contains(term.String(), `msg="IP=3 DP=1"`), "expected text record, got %q", term.String())

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(file.Bytes(), &rec), "expected a JSON record")
	assert.Equal(t, "IP=3 DP=1", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestLeveledf_disabled(t *testing.T) {
	var term bytes.Buffer
	logger := logio.New(logio.Options{Terminal: &term})
	logio.Leveledf(logger, slog.LevelDebug)("dropped %v", 1)
	assert.Equal(t, "", term.String(), "expected debug records below info level to be dropped")
}
