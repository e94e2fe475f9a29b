package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownEventKind signals an event kind outside the closed taxonomy.
// The taxonomy is exhaustive by construction, so hitting this means the
// upstream listener broke its contract.
var ErrUnknownEventKind = errors.New("unknown event kind")

type EventKind string

const (
	KindMessage  EventKind = "message"
	KindThread   EventKind = "thread"
	KindReaction EventKind = "reaction"
	KindUser     EventKind = "user"
	KindChannel  EventKind = "channel"
)

// Event is one record from the upstream listener, already parsed.
// Which meta fields are set depends on the kind; ids and timestamps
// are trusted as given.
type Event struct {
	Kind EventKind

	ChannelID string
	UserID    string

	// reaction meta
	Emoji      string
	ItemUserID string // owner of the reacted item; optional

	// thread meta
	ThreadID       string
	ThreadAuthorID string

	// lifecycle meta
	DisplayName string
	Remove      bool

	Timestamp time.Time
}

// Interaction reports whether the event mutates statistics
// (as opposed to directory lifecycle events).
func (e Event) Interaction() bool {
	switch e.Kind {
	case KindMessage, KindThread, KindReaction:
		return true
	}
	return false
}

func unknownKind(k EventKind) error {
	return fmt.Errorf("%w: %q", ErrUnknownEventKind, k)
}

// DayKey is the UTC calendar date of ts, "YYYY-MM-DD".
func DayKey(ts time.Time) string {
	return ts.UTC().Format("2006-01-02")
}

// HourKey is the two-digit hour bucket of ts. Buckets are shifted one
// hour back from the UTC clock hour ("21:33Z" lands in "20"), matching
// the behavior dashboards were built against.
func HourKey(ts time.Time) string {
	return fmt.Sprintf("%02d", (ts.UTC().Hour()+23)%24)
}
