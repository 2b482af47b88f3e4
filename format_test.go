package toollog_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/toollog"
)

func TestDefaultTemplate(t *testing.T) {
	t.Parallel()

	tmpl := toollog.DefaultTemplate()

	assert.True(t, strings.HasPrefix(tmpl, "%(asctime)s "),
		"template should start with the timestamp placeholder: %q", tmpl)
	assert.True(t, strings.HasSuffix(tmpl, " %(message)s"),
		"template should end with the message placeholder: %q", tmpl)

	host, err := os.Hostname()
	require.NoError(t, err)

	assert.Contains(t, tmpl, strings.ToUpper(host),
		"template should embed the upper-cased host name")
}

func TestFormatterFormat(t *testing.T) {
	t.Parallel()

	record := toollog.Record{
		Time:    time.Date(2024, 3, 1, 13, 5, 0, 0, time.UTC),
		Level:   toollog.LevelWarning,
		Message: "disk %s is low",
		Args:    []any{"C:"},
	}

	tcs := map[string]struct {
		template   string
		dateFormat string
		expected   string
		expectErr  error
	}{
		"timestamp and message": {
			template:   "%(asctime)s %(message)s",
			dateFormat: "%d-%m-%Y %H:%M",
			expected:   "01-03-2024 13:05 disk C: is low",
		},
		"level name is upper-cased": {
			template:   "%(levelname)s %(message)s",
			dateFormat: "%d-%m-%Y %H:%M",
			expected:   "WARNING disk C: is low",
		},
		"no placeholders": {
			template:   "static line",
			dateFormat: "%d-%m-%Y %H:%M",
			expected:   "static line",
		},
		"unknown placeholder": {
			template:   "%(nope)s %(message)s",
			dateFormat: "%d-%m-%Y %H:%M",
			expectErr:  toollog.ErrUnknownPlaceholder,
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f := toollog.NewFormatter(tc.template, tc.dateFormat)

			line, err := f.Format(record)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, line)
			}
		})
	}
}

func TestFormatterBadDateFormat(t *testing.T) {
	t.Parallel()

	f := toollog.NewFormatter("%(asctime)s %(message)s", "%Q")

	_, err := f.Format(toollog.Record{
		Time:    time.Now(),
		Level:   toollog.LevelInfo,
		Message: "hello",
	})

	require.Error(t, err)
}

func TestNewFormatterDefaults(t *testing.T) {
	t.Parallel()

	f := toollog.NewFormatter("", "")

	assert.Equal(t, toollog.DefaultTemplate(), f.Template)
	assert.Equal(t, toollog.DefaultDateFormat, f.DateFormat)
}

func TestRecordText(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		record   toollog.Record
		expected string
	}{
		"with args": {
			record:   toollog.Record{Message: "found %d of %d", Args: []any{3, 10}},
			expected: "found 3 of 10",
		},
		"without args": {
			record:   toollog.Record{Message: "100% done"},
			expected: "100% done",
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.record.Text())
		})
	}
}
