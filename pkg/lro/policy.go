package lro

import "time"

// PollPolicy controls how often an operation's status is fetched and for how
// long the wait is allowed to run overall.
type PollPolicy struct {
	// Initial is the sleep before the second fetch. The first fetch happens
	// immediately.
	Initial time.Duration
	// Multiplier grows the sleep after every fetch, up to Ceiling.
	Multiplier float64
	// Ceiling caps the sleep between fetches.
	Ceiling time.Duration
	// MaxWait bounds the total wait. Zero means unbounded.
	MaxWait time.Duration
	// TransientRetries bounds how many consecutive transient fetch failures
	// are retried immediately before the wait is aborted.
	TransientRetries int
}

// DefaultPolicy is the shared poll policy used by every command unless the
// caller overrides it.
func DefaultPolicy() PollPolicy {
	return PollPolicy{
		Initial:          2 * time.Second,
		Multiplier:       1.4,
		Ceiling:          3 * time.Minute,
		MaxWait:          30 * time.Minute,
		TransientRetries: 3,
	}
}

func (p PollPolicy) withDefaults() PollPolicy {
	def := DefaultPolicy()
	if p.Initial <= 0 {
		p.Initial = def.Initial
	}
	if p.Multiplier < 1 {
		p.Multiplier = def.Multiplier
	}
	if p.Ceiling <= 0 {
		p.Ceiling = def.Ceiling
	}
	if p.Ceiling < p.Initial {
		p.Ceiling = p.Initial
	}
	if p.TransientRetries < 0 {
		p.TransientRetries = 0
	}
	return p
}

func (p PollPolicy) next(interval time.Duration) time.Duration {
	grown := time.Duration(float64(interval) * p.Multiplier)
	if grown < interval {
		// float rounding must never shrink the interval
		grown = interval
	}
	if grown > p.Ceiling {
		grown = p.Ceiling
	}
	return grown
}
