package toollog

import (
	"fmt"
	"time"
)

// Record is one log event: a severity, a printf-style message with its
// arguments, and the time it was produced. Records are ephemeral; each
// attached handler consumes the same record independently and nothing
// persists it.
type Record struct {
	Time    time.Time
	Level   Level
	Message string
	Args    []any
}

// Text renders the record's message with its arguments. A record without
// arguments returns Message verbatim.
func (r Record) Text() string {
	if len(r.Args) == 0 {
		return r.Message
	}

	return fmt.Sprintf(r.Message, r.Args...)
}
