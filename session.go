package toollog

import (
	"errors"
	"slices"
	"sync"
	"time"
)

// Session owns a registry of attached handlers and a severity threshold.
//
// Within a long-lived host the session survives across tool invocations, so
// each invocation calls [Session.Init] once at the start and
// [Session.FlushAndClose] once at the end. After Init, exactly the handlers
// the current invocation attached are present; nothing from a previous
// invocation survives.
//
// Create instances with [New], or use the package-level functions, which
// share the session returned by [Default].
type Session struct {
	mu       sync.Mutex
	level    Level
	handlers []Handler
}

// New returns an empty [Session] with no handlers attached and a threshold
// of [LevelAll].
func New() *Session {
	return &Session{}
}

type initOptions struct {
	level      Level
	template   string
	dateFormat string
	mode       Mode
}

// Option configures [Session.Init] or [Session.AddHandler].
type Option func(*initOptions)

// WithLevel sets the attached handler's severity threshold.
// The default is [LevelInfo].
func WithLevel(level Level) Option {
	return func(o *initOptions) {
		o.level = level
	}
}

// WithTemplate sets the line template for the attached handler. The default
// is computed by [DefaultTemplate].
func WithTemplate(template string) Option {
	return func(o *initOptions) {
		o.template = template
	}
}

// WithDateFormat sets the strftime template rendered for %(asctime)s.
// The default is [DefaultDateFormat].
func WithDateFormat(dateFormat string) Option {
	return func(o *initOptions) {
		o.dateFormat = dateFormat
	}
}

// WithMode selects how [Session.Init] opens the log file. Only Init uses
// it. The default is [ModeAppend].
func WithMode(mode Mode) Option {
	return func(o *initOptions) {
		o.mode = mode
	}
}

func buildOptions(opts []Option) initOptions {
	o := initOptions{
		level: LevelInfo,
		mode:  ModeAppend,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Init resets the session and attaches a single [FileHandler] writing to
// filename.
//
// The reset drops the session threshold back to [LevelAll] so handlers
// alone decide what gets written, then removes every attached handler,
// iterating from the end of the registry backward; each removed handler is
// flushed and closed so no file handle from a previous invocation leaks.
// The new handler is then attached through the same path as
// [Session.AddHandler], with the given options.
//
// The file at filename is created, or truncated under [ModeOverwrite], as
// soon as Init returns, even if nothing is ever logged; callers may rely on
// its existence. A relative filename resolves against whatever working
// directory the host imposes, which for hosted tools is rarely what you
// want, so prefer absolute paths. Open failures are returned untranslated
// and leave the session with no handlers attached.
func (s *Session) Init(filename string, opts ...Option) error {
	o := buildOptions(opts)

	s.mu.Lock()
	s.level = LevelAll
	for i := len(s.handlers) - 1; i >= 0; i-- {
		h := s.handlers[i]
		s.handlers = s.handlers[:i]
		_ = h.Flush()
		_ = h.Close()
	}
	s.handlers = nil
	s.mu.Unlock()

	h, err := NewFileHandler(filename, o.mode)
	if err != nil {
		return err
	}

	s.AddHandler(h, opts...)

	return nil
}

// AddHandler sets the level and formatter on h and appends it to the
// registry. It never removes or alters other attached handlers, so it can
// be called repeatedly to stack several sinks within one session; a file
// handler plus a host-bridging [RoutedHandler] is the typical pair.
func (s *Session) AddHandler(h Handler, opts ...Option) {
	o := buildOptions(opts)

	h.SetLevel(o.level)
	h.SetFormatter(NewFormatter(o.template, o.dateFormat))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.handlers = append(s.handlers, h)
}

// FlushAndClose flushes every attached handler, then shuts the session
// down: each handler is flushed and closed a second time and the registry
// is cleared. Hosts have been observed to delay or drop tail output without
// the extra flush, so it is kept deliberately. Call it at the end of every
// tool invocation that logged anything; afterwards [Session.Active] reports
// false and the next invocation starts from [Session.Init] again.
func (s *Session) FlushAndClose() error {
	s.mu.Lock()
	hs := s.handlers
	s.handlers = nil
	s.mu.Unlock()

	var errs []error
	for _, h := range hs {
		errs = append(errs, h.Flush())
	}

	for _, h := range hs {
		errs = append(errs, h.Flush(), h.Close())
	}

	return errors.Join(errs...)
}

// Active reports whether at least one handler is currently attached.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.handlers) > 0
}

// Handlers returns a snapshot of the attached handlers.
func (s *Session) Handlers() []Handler {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.handlers)
}

// SetLevel sets the session threshold applied before any handler filter.
// [Session.Init] resets it to [LevelAll].
func (s *Session) SetLevel(level Level) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.level = level
}

// Log emits one record at the given level to every attached handler.
// Records below the session threshold are dropped before handlers see
// them. Handler failures are swallowed; logging never aborts the calling
// script.
func (s *Session) Log(level Level, format string, args ...any) {
	s.mu.Lock()
	threshold := s.level
	hs := slices.Clone(s.handlers)
	s.mu.Unlock()

	if level < threshold {
		return
	}

	r := Record{
		Time:    time.Now(),
		Level:   level,
		Message: format,
		Args:    args,
	}

	for _, h := range hs {
		_ = h.Emit(r)
	}
}

// Debug logs at [LevelDebug].
func (s *Session) Debug(format string, args ...any) { s.Log(LevelDebug, format, args...) }

// Info logs at [LevelInfo].
func (s *Session) Info(format string, args ...any) { s.Log(LevelInfo, format, args...) }

// Warning logs at [LevelWarning].
func (s *Session) Warning(format string, args ...any) { s.Log(LevelWarning, format, args...) }

// Error logs at [LevelError].
func (s *Session) Error(format string, args ...any) { s.Log(LevelError, format, args...) }

// Critical logs at [LevelCritical].
func (s *Session) Critical(format string, args ...any) { s.Log(LevelCritical, format, args...) }

var std = New()

// Default returns the package-level session shared by the top-level
// functions.
func Default() *Session { return std }

// Init initializes the default session. See [Session.Init].
func Init(filename string, opts ...Option) error { return std.Init(filename, opts...) }

// AddHandler attaches h to the default session. See [Session.AddHandler].
func AddHandler(h Handler, opts ...Option) { std.AddHandler(h, opts...) }

// FlushAndClose flushes and shuts down the default session.
// See [Session.FlushAndClose].
func FlushAndClose() error { return std.FlushAndClose() }

// Active reports whether the default session has any handler attached.
func Active() bool { return std.Active() }

// Debug logs at [LevelDebug] on the default session.
func Debug(format string, args ...any) { std.Log(LevelDebug, format, args...) }

// Info logs at [LevelInfo] on the default session.
func Info(format string, args ...any) { std.Log(LevelInfo, format, args...) }

// Warning logs at [LevelWarning] on the default session.
func Warning(format string, args ...any) { std.Log(LevelWarning, format, args...) }

// Error logs at [LevelError] on the default session.
func Error(format string, args ...any) { std.Log(LevelError, format, args...) }

// Critical logs at [LevelCritical] on the default session.
func Critical(format string, args ...any) { std.Log(LevelCritical, format, args...) }
