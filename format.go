package toollog

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"regexp"
	"strings"

	"github.com/lestrrat-go/strftime"
)

// DefaultDateFormat is the strftime template applied to %(asctime)s when no
// explicit date format is supplied.
const DefaultDateFormat = "%d-%m-%Y %H:%M"

// ErrUnknownPlaceholder indicates a template placeholder the formatter does
// not recognize.
var ErrUnknownPlaceholder = errors.New("unknown format placeholder")

var placeholderPattern = regexp.MustCompile(`%\([a-z]+\)s`)

// Formatter renders a [Record] into a log line from a template with named
// placeholders: %(asctime)s, %(levelname)s, and %(message)s. Timestamps
// render through the strftime date format.
type Formatter struct {
	Template   string
	DateFormat string
}

// NewFormatter returns a [Formatter] for the given template pair. An empty
// template selects [DefaultTemplate]; an empty date format selects
// [DefaultDateFormat].
func NewFormatter(template, dateFormat string) *Formatter {
	if template == "" {
		template = DefaultTemplate()
	}

	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}

	return &Formatter{
		Template:   template,
		DateFormat: dateFormat,
	}
}

// Format renders r into a single log line. It fails on an unknown
// placeholder or an invalid strftime directive; handlers that must never
// drop a record fall back to the raw message instead of propagating the
// error.
func (f *Formatter) Format(r Record) (string, error) {
	var ferr error

	line := placeholderPattern.ReplaceAllStringFunc(f.Template, func(ph string) string {
		switch ph {
		case "%(asctime)s":
			ts, err := strftime.Format(f.DateFormat, r.Time)
			if err != nil {
				ferr = fmt.Errorf("formatting timestamp: %w", err)
				return ph
			}

			return ts

		case "%(levelname)s":
			return strings.ToUpper(r.Level.String())

		case "%(message)s":
			return r.Text()
		}

		ferr = fmt.Errorf("%w: %s", ErrUnknownPlaceholder, ph)

		return ph
	})

	if ferr != nil {
		return "", ferr
	}

	return line, nil
}

// DefaultTemplate builds the default line template, embedding the invoking
// user's name and the upper-cased host name between the timestamp and the
// message. Either token degrades to an empty string when the environment
// does not expose it.
func DefaultTemplate() string {
	return fmt.Sprintf("%%(asctime)s %s %s %%(message)s", userName(), hostName())
}

func userName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}

	if name := os.Getenv("USER"); name != "" {
		return name
	}

	return os.Getenv("USERNAME")
}

func hostName() string {
	host, err := os.Hostname()
	if err != nil {
		return ""
	}

	return strings.ToUpper(host)
}
