package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"trace":   TRACE,
		"DEBUG":   DEBUG,
		"":        INFO,
		" info ":  INFO,
		"warning": WARN,
		"Error":   ERROR,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, "уровень %q должен разбираться", in)
		assert.Equal(t, want, got)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err, "неизвестный уровень должен давать ошибку")
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("vec", &buf, WARN)

	l.Debug("скрыто %d", 1)
	l.Info("скрыто %d", 2)
	l.Warn("видно %d", 3)

	out := buf.String()
	assert.NotContains(t, out, "скрыто")
	assert.Contains(t, out, "[vec] [WARN] видно 3")
}

func TestLogger_Report(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("", &buf, ERROR)

	l.Report(errors.New("v3_add: invalid vector reference"))
	l.Report(nil)

	assert.Equal(t, "Error: v3_add: invalid vector reference\n", buf.String())
}

func TestNewFileLogger(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	l, err := NewFileLogger("harness", dir, &console, ERROR, DEBUG)
	require.NoError(t, err)

	l.Debug("только в файл")
	l.Error("везде")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close(), "повторное закрытие не должно падать")

	matches, err := filepath.Glob(filepath.Join(dir, "harness_*.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "только в файл")
	assert.Contains(t, string(data), "Error: везде")

	assert.NotContains(t, console.String(), "только в файл")
	assert.True(t, strings.HasSuffix(console.String(), "[harness] Error: везде\n"))
}

func TestLoggerManager(t *testing.T) {
	var buf bytes.Buffer
	lm := NewLoggerManager(ManagerOptions{Console: &buf, ConsoleLevel: INFO})

	a, err := lm.GetLogger("vec")
	require.NoError(t, err)
	b := lm.MustGetLogger("vec")
	assert.Same(t, a, b, "логгер компонента должен переиспользоваться")

	lm.MustGetLogger("harness")
	assert.Equal(t, []string{"harness", "vec"}, lm.ListComponents())

	require.NoError(t, lm.SetLogLevel("vec", ERROR, ERROR))
	a.Info("скрыто")
	assert.Empty(t, buf.String())

	assert.Error(t, lm.SetLogLevel("missing", INFO, INFO))

	require.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents())
}
