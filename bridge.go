package toollog

// Messenger is the host application's message-output surface: three
// severity-keyed one-way channels. GIS hosts expose these as the
// AddMessage, AddWarning, and AddError calls of the tool output window.
type Messenger interface {
	AddMessage(msg string)
	AddWarning(msg string)
	AddError(msg string)
}

// RoutedHandler bridges log records to a [Messenger] instead of writing
// them itself, so log output shows up in the host's tool window at the
// matching severity.
//
// It takes the same construction arguments as a [RollingFileHandler], so
// callers can swap one in unchanged, and composes that rolling file
// behavior rather than inheriting it: the backing file is configured but
// never written through, and since the rolling writer opens lazily no empty
// file is created either.
type RoutedHandler struct {
	handlerBase

	m    Messenger
	file *RollingFileHandler
}

// NewRoutedHandler returns a handler dispatching to m. The path, size cap,
// and backup count describe the rolling file the handler nominally stands
// in for; they are kept for compatibility and never used in normal
// operation.
func NewRoutedHandler(m Messenger, path string, maxSizeMB, backupCount int) *RoutedHandler {
	return &RoutedHandler{
		m:    m,
		file: NewRollingFileHandler(path, maxSizeMB, backupCount),
	}
}

// Emit formats r and hands it to exactly one host channel: error for
// [LevelError] and above, warning for [LevelWarning], message for
// everything else. A formatter failure degrades to the raw unformatted
// message rather than dropping the record; bridging to the host must never
// crash the calling script.
//
// Long-lived hosts keep this package loaded across tool invocations, so
// unlike scripted environments no per-emit re-initialization is needed
// here.
func (h *RoutedHandler) Emit(r Record) error {
	line, ok, err := h.line(r)
	if !ok {
		return nil
	}

	if err != nil {
		line = r.Message
	}

	switch {
	case r.Level >= LevelError:
		h.m.AddError(line)
	case r.Level >= LevelWarning:
		h.m.AddWarning(line)
	default:
		h.m.AddMessage(line)
	}

	return nil
}

// Flush is a no-op; host channels are unbuffered from this side.
func (h *RoutedHandler) Flush() error { return nil }

// Close releases the composed rolling file in the unlikely case it was
// ever opened.
func (h *RoutedHandler) Close() error {
	return h.file.Close()
}
