package longestpath

import "time"

// deadline is computed once per solver call and polled at step boundaries:
// once per recursive call (exact) or once per extension step (heuristics).
type deadline struct {
	at      time.Time
	bounded bool
}

// newDeadline converts a TimeLimit into an absolute instant. NoTimeLimit
// yields a deadline that never expires; 0 yields one that has already passed.
func newDeadline(limit time.Duration) deadline {
	if limit < 0 {
		return deadline{}
	}

	return deadline{at: time.Now().Add(limit), bounded: true}
}

// expired reports whether the budget is exhausted.
func (d deadline) expired() bool {
	return d.bounded && !time.Now().Before(d.at)
}
