package core

import "time"

// Pacer withholds simulation steps until a requested delay has elapsed. Hosts
// that run on a fixed frame cadence use it instead of sleeping inside a frame.
type Pacer struct {
	until time.Time
	now   func() time.Time
}

// NewPacer returns a pacer that is immediately ready.
func NewPacer() *Pacer {
	return &Pacer{now: time.Now}
}

// Ready reports whether the hold set by the last Hold call has expired.
func (p *Pacer) Ready() bool {
	return !p.now().Before(p.until)
}

// Hold blocks steps for d from now. A zero delay leaves the pacer ready.
func (p *Pacer) Hold(d time.Duration) {
	p.until = p.now().Add(d)
}

// Reset clears any pending hold.
func (p *Pacer) Reset() {
	p.until = time.Time{}
}
