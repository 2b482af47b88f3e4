package toollog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Mode selects how a [FileHandler] opens its destination.
type Mode string

const (
	// ModeAppend appends to an existing file, creating it when absent.
	ModeAppend Mode = "append"
	// ModeOverwrite truncates an existing file, creating it when absent.
	ModeOverwrite Mode = "overwrite"
)

// ErrUnknownMode indicates an unrecognized file open mode string.
var ErrUnknownMode = errors.New("unknown file mode")

// ParseMode parses a file open mode string and returns the corresponding
// [Mode]. The single-letter spellings "a" and "w" are accepted as aliases.
func ParseMode(mode string) (Mode, error) {
	switch strings.ToLower(mode) {
	case "append", "a":
		return ModeAppend, nil
	case "overwrite", "w":
		return ModeOverwrite, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// AllModeStrings returns the canonical mode names.
func AllModeStrings() []string {
	return []string{string(ModeAppend), string(ModeOverwrite)}
}

// Handler is one output destination for log records, carrying its own
// severity threshold and formatter. Several handlers can coexist on a
// [Session], each filtering and formatting the same stream of records
// independently.
//
// [Session.AddHandler] sets the level and formatter before attaching, so
// implementations only need to honor what was set.
type Handler interface {
	// Emit consumes one record. Implementations apply their own level
	// filter and silently drop records below it.
	Emit(r Record) error
	// Flush forces buffered output through to the destination.
	Flush() error
	// Close releases the destination, flushing first where applicable.
	Close() error

	Level() Level
	SetLevel(level Level)
	SetFormatter(f *Formatter)
}

// handlerBase carries the threshold and formatter shared by every handler
// in this package.
type handlerBase struct {
	level     Level
	formatter *Formatter
}

func (b *handlerBase) Level() Level              { return b.level }
func (b *handlerBase) SetLevel(level Level)      { b.level = level }
func (b *handlerBase) SetFormatter(f *Formatter) { b.formatter = f }

// line renders r, or reports ok=false when the record is below the
// handler's threshold. A formatter error is returned alongside ok=true so
// callers can decide between propagating and degrading.
func (b *handlerBase) line(r Record) (line string, ok bool, err error) {
	if r.Level < b.level {
		return "", false, nil
	}

	f := b.formatter
	if f == nil {
		f = NewFormatter("", "")
	}

	line, err = f.Format(r)

	return line, true, err
}

// FileHandler writes formatted records to a single size-unbounded file.
//
// The file is created (or truncated, for [ModeOverwrite]) as soon as the
// handler is constructed, so callers can rely on its existence even when
// nothing is ever logged. Writes are buffered; call [FileHandler.Flush] or
// let [Session.FlushAndClose] drain the buffer.
type FileHandler struct {
	handlerBase

	file   *os.File
	buf    *bufio.Writer
	closed bool
}

// NewFileHandler opens path in the given mode. Open failures are returned
// untranslated, typically as an [*os.PathError]. An empty mode means
// [ModeAppend].
func NewFileHandler(path string, mode Mode) (*FileHandler, error) {
	flag := os.O_CREATE | os.O_WRONLY

	switch mode {
	case ModeAppend, "":
		flag |= os.O_APPEND
	case ModeOverwrite:
		flag |= os.O_TRUNC
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	file, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return nil, err
	}

	return &FileHandler{
		file: file,
		buf:  bufio.NewWriter(file),
	}, nil
}

// Name returns the path of the backing file.
func (h *FileHandler) Name() string {
	return h.file.Name()
}

// Emit writes one formatted record and a trailing newline to the buffer.
func (h *FileHandler) Emit(r Record) error {
	if h.closed {
		return os.ErrClosed
	}

	line, ok, err := h.line(r)
	if err != nil {
		return err
	}

	if !ok {
		return nil
	}

	if _, err := h.buf.WriteString(line); err != nil {
		return err
	}

	return h.buf.WriteByte('\n')
}

// Flush drains the write buffer and syncs the file to stable storage.
func (h *FileHandler) Flush() error {
	if h.closed {
		return nil
	}

	if err := h.buf.Flush(); err != nil {
		return err
	}

	return h.file.Sync()
}

// Close flushes and closes the file. Safe to call more than once.
func (h *FileHandler) Close() error {
	if h.closed {
		return nil
	}

	h.closed = true

	err := h.buf.Flush()
	if cerr := h.file.Close(); err == nil {
		err = cerr
	}

	return err
}

// StreamHandler writes formatted records to an arbitrary [io.Writer], such
// as [os.Stderr]. The writer remains owned by the caller: Flush and Close
// are no-ops and the writer is never closed.
type StreamHandler struct {
	handlerBase

	w io.Writer
}

// NewStreamHandler returns a [StreamHandler] writing to w.
func NewStreamHandler(w io.Writer) *StreamHandler {
	return &StreamHandler{w: w}
}

// Emit writes one formatted record and a trailing newline to the writer.
func (h *StreamHandler) Emit(r Record) error {
	line, ok, err := h.line(r)
	if err != nil {
		return err
	}

	if !ok {
		return nil
	}

	_, err = fmt.Fprintln(h.w, line)

	return err
}

// Flush is a no-op; stream writes are unbuffered.
func (h *StreamHandler) Flush() error { return nil }

// Close is a no-op; the writer is owned by the caller.
func (h *StreamHandler) Close() error { return nil }

// RollingFileHandler writes formatted records to a size-capped file that
// rolls over to numbered backups, via [lumberjack.Logger]. The file is
// opened lazily on the first write.
type RollingFileHandler struct {
	handlerBase

	out *lumberjack.Logger
}

// NewRollingFileHandler returns a handler writing to path. The file rolls
// over once it reaches maxSizeMB megabytes, keeping at most backupCount
// rolled files.
func NewRollingFileHandler(path string, maxSizeMB, backupCount int) *RollingFileHandler {
	return &RollingFileHandler{
		out: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: backupCount,
		},
	}
}

// Emit writes one formatted record and a trailing newline, rolling the file
// over when the size cap is reached.
func (h *RollingFileHandler) Emit(r Record) error {
	line, ok, err := h.line(r)
	if err != nil {
		return err
	}

	if !ok {
		return nil
	}

	_, err = h.out.Write([]byte(line + "\n"))

	return err
}

// Flush is a no-op; lumberjack writes are unbuffered.
func (h *RollingFileHandler) Flush() error { return nil }

// Close closes the current log file if one was opened.
func (h *RollingFileHandler) Close() error {
	return h.out.Close()
}
