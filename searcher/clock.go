package searcher

import (
	"math"
	"time"
)

// Clock reports the milliseconds left for the current decision. It is queried
// at every checkpoint and must never increase during one decision call.
type Clock interface {
	Remaining() float64
}

// TimeLeft adapts a function to Clock.
type TimeLeft func() float64

func (f TimeLeft) Remaining() float64 { return f() }

type deadline time.Time

// Deadline returns a wall clock counting down to t.
func Deadline(t time.Time) Clock {
	return deadline(t)
}

// Budget returns a wall clock that runs out d from now.
func Budget(d time.Duration) Clock {
	return Deadline(time.Now().Add(d))
}

func (d deadline) Remaining() float64 {
	return float64(time.Until(time.Time(d))) / float64(time.Millisecond)
}

type unlimited struct{}

// Unlimited returns a clock that never runs out.
func Unlimited() Clock {
	return unlimited{}
}

func (unlimited) Remaining() float64 { return math.Inf(1) }

// Timer answers whether a search has to abort now.
type Timer struct {
	clock     Clock
	threshold float64
}

func NewTimer(clock Clock, threshold float64) Timer {
	return Timer{clock: clock, threshold: threshold}
}

// Expired reports whether fewer than threshold milliseconds remain.
func (t Timer) Expired() bool {
	return t.clock.Remaining() < t.threshold
}

func (t Timer) check() error {
	if t.Expired() {
		return ErrTimeout
	}
	return nil
}
