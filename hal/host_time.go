package hal

import "time"

// tickDur is the length of one host tick.
const tickDur = time.Millisecond

type hostTime struct {
	ch  chan uint64
	seq uint64
	now func() time.Time

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step publishes the ticks elapsed on the wall clock since the previous call.
// The first call publishes min ticks.
func (t *hostTime) step(min uint64) {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.publish(min)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc %= tickDur
	t.publish(ticks)
}

// publish advances the sequence by n. Only the newest value matters to
// readers, so a full channel drops intermediate ticks.
func (t *hostTime) publish(n uint64) {
	t.seq += n
	select {
	case t.ch <- t.seq:
	default:
	}
}
