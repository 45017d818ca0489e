package apostilletest

import (
	"time"

	"github.com/lightningnetwork/lnd/clock"
)

// Now is the start time of the clocks returned by NewClock.
var Now = time.Date(2019, time.October, 1, 12, 0, 0, 0, time.UTC)

// NewClock returns a clock that does not move unless told to.
func NewClock() *clock.TestClock {
	return clock.NewTestClock(Now)
}
