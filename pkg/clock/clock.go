package clock

import "time"

// Clock dipakai service untuk "hari ini" dan timestamp, supaya bisa di-fix di test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always returns t.
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t}
}

func (f fixedClock) Now() time.Time {
	return f.now
}
