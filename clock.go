package main

import "github.com/jonboulle/clockwork"

// clock is the time source for observation-time parsing. The month-rollback
// heuristic depends on "now", so tests freeze it via SetClock.
var clock clockwork.Clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to the real clock.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
