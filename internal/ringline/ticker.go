package ringline

import "time"

// Ticker drives the redraw cadence while an animation is in flight.
//
// Instead of sleeping inside the draw call, Tick arms a deadline and the
// host's update loop calls Poll, which turns an expired deadline into a
// repaint request.
type Ticker struct {
	repainter Repainter
	interval  time.Duration
	now       func() time.Time

	active bool
	armed  bool
	due    time.Time
}

func NewTicker(r Repainter, interval time.Duration) *Ticker {
	return &Ticker{
		repainter: r,
		interval:  interval,
		now:       time.Now,
	}
}

func (t *Ticker) Running() bool { return t.active }

// Start switches an idle ticker on and asks for an immediate repaint.
func (t *Ticker) Start() {
	if t.active {
		return
	}
	t.active = true
	t.repainter.RequestRepaintNow()
}

func (t *Ticker) Stop() {
	if !t.active {
		return
	}
	t.active = false
}

// Tick runs cb while the ticker is running and schedules the next repaint
// one interval later. A Stop from inside cb only affects the next Tick:
// the repaint scheduled here still happens.
func (t *Ticker) Tick(cb func()) {
	if !t.active {
		return
	}
	cb()
	t.armed = true
	t.due = t.now().Add(t.interval)
}

// Pending reports whether a repaint is scheduled but not yet requested.
func (t *Ticker) Pending() bool { return t.armed }

// Poll requests the scheduled repaint once its deadline has passed.
func (t *Ticker) Poll(now time.Time) {
	if !t.armed || now.Before(t.due) {
		return
	}
	t.armed = false
	t.repainter.RequestRepaint()
}
