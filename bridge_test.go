package toollog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/toollog"
)

// recorder captures what a host would display on each message channel.
type recorder struct {
	messages []string
	warnings []string
	errors   []string
}

func (r *recorder) AddMessage(msg string) { r.messages = append(r.messages, msg) }
func (r *recorder) AddWarning(msg string) { r.warnings = append(r.warnings, msg) }
func (r *recorder) AddError(msg string)   { r.errors = append(r.errors, msg) }

func newRoutedHandler(t *testing.T, rec *recorder) *toollog.RoutedHandler {
	t.Helper()

	h := toollog.NewRoutedHandler(rec, filepath.Join(t.TempDir(), "never.txt"), 10, 3)
	t.Cleanup(func() { _ = h.Close() })

	h.SetFormatter(toollog.NewFormatter("%(levelname)s %(message)s", ""))

	return h
}

func TestRoutedHandlerEmit(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level    toollog.Level
		messages []string
		warnings []string
		errors   []string
	}{
		"debug goes to message channel": {
			level:    toollog.LevelDebug,
			messages: []string{"DEBUG payload"},
		},
		"info goes to message channel": {
			level:    toollog.LevelInfo,
			messages: []string{"INFO payload"},
		},
		"warning goes to warning channel": {
			level:    toollog.LevelWarning,
			warnings: []string{"WARNING payload"},
		},
		"error goes to error channel": {
			level:  toollog.LevelError,
			errors: []string{"ERROR payload"},
		},
		"critical goes to error channel": {
			level:  toollog.LevelCritical,
			errors: []string{"CRITICAL payload"},
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := &recorder{}
			h := newRoutedHandler(t, rec)

			require.NoError(t, h.Emit(record(tc.level, "payload")))

			// Exactly one channel receives each record.
			assert.Equal(t, tc.messages, rec.messages)
			assert.Equal(t, tc.warnings, rec.warnings)
			assert.Equal(t, tc.errors, rec.errors)
		})
	}
}

func TestRoutedHandlerFormatFallback(t *testing.T) {
	t.Parallel()

	rec := &recorder{}

	h := toollog.NewRoutedHandler(rec, filepath.Join(t.TempDir(), "never.txt"), 10, 3)
	t.Cleanup(func() { _ = h.Close() })

	// A bad strftime directive makes formatting fail; the record must still
	// reach a channel, carrying the raw unformatted message.
	h.SetFormatter(toollog.NewFormatter("%(asctime)s %(message)s", "%Q"))

	require.NoError(t, h.Emit(record(toollog.LevelInfo, "raw %d", 7)))

	assert.Equal(t, []string{"raw %d"}, rec.messages)
	assert.Empty(t, rec.warnings)
	assert.Empty(t, rec.errors)
}

func TestRoutedHandlerLevelFilter(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	h := newRoutedHandler(t, rec)
	h.SetLevel(toollog.LevelWarning)

	require.NoError(t, h.Emit(record(toollog.LevelInfo, "dropped")))

	assert.Empty(t, rec.messages)
	assert.Empty(t, rec.warnings)
	assert.Empty(t, rec.errors)
}

func TestRoutedHandlerNoBackingFile(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	path := filepath.Join(t.TempDir(), "never.txt")

	h := toollog.NewRoutedHandler(rec, path, 10, 3)
	h.SetFormatter(toollog.NewFormatter("%(message)s", ""))

	require.NoError(t, h.Emit(record(toollog.LevelError, "routed")))
	require.NoError(t, h.Flush())
	require.NoError(t, h.Close())

	// Routing never touches the composed rolling file.
	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRoutedHandlerOnSession(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	path := filepath.Join(t.TempDir(), "out.txt")

	sess := toollog.New()
	require.NoError(t, sess.Init(path,
		toollog.WithTemplate("%(levelname)s %(message)s"),
	))
	sess.AddHandler(
		toollog.NewRoutedHandler(rec, filepath.Join(t.TempDir(), "never.txt"), 10, 3),
		toollog.WithLevel(toollog.LevelWarning),
		toollog.WithTemplate("%(message)s"),
	)

	sess.Info("file only")
	sess.Warning("file and host")

	require.NoError(t, sess.FlushAndClose())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "INFO file only\nWARNING file and host\n", string(got))

	assert.Empty(t, rec.messages)
	assert.Equal(t, []string{"file and host"}, rec.warnings)
	assert.Empty(t, rec.errors)
}
