package tx

import (
	"time"

	"github.com/lightningnetwork/lnd/clock"
)

// DefaultDeadline is the validity window of a transaction when none is
// provided.
const DefaultDeadline = 2 * time.Hour

// nemesis is the time of the nemesis block. Deadlines are expressed in
// milliseconds since that moment.
var nemesis = time.Date(2016, time.April, 1, 0, 0, 0, 0, time.UTC)

// Deadline is the moment after which a transaction cannot be included in a
// block anymore.
type Deadline struct {
	t time.Time
}

// NewDeadline returns a deadline that is window away from the current time
// of the given clock.
func NewDeadline(c clock.Clock, window time.Duration) Deadline {
	return Deadline{t: c.Now().Add(window).UTC()}
}

// DeadlineAt returns a deadline at the given moment.
func DeadlineAt(t time.Time) Deadline {
	return Deadline{t: t.UTC()}
}

// Time returns the deadline as a time value.
func (d Deadline) Time() time.Time {
	return d.t
}

// Timestamp returns the number of milliseconds since the nemesis block.
// Moments before the nemesis block are clamped to zero.
func (d Deadline) Timestamp() uint64 {
	ms := d.t.Sub(nemesis) / time.Millisecond
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}

// IsZero returns true if the deadline was never set.
func (d Deadline) IsZero() bool {
	return d.t.IsZero()
}
