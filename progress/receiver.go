package progress

import "context"

// Receiver is the consumer side of the snapshot channel. It is meant to be
// polled from a single goroutine, typically once per rendered frame.
type Receiver struct {
	ch     <-chan Snapshot
	final  *Snapshot
	closed bool
}

// NewReceiver wraps the receive end of a channel written by Produce.
func NewReceiver(ch <-chan Snapshot) *Receiver {
	return &Receiver{ch: ch}
}

// Poll drains every pending snapshot without blocking and returns only the
// most recent one. ok is false when nothing new was pending.
func (r *Receiver) Poll() (latest Snapshot, ok bool) {
	for !r.closed {
		select {
		case s, open := <-r.ch:
			if !open {
				r.closed = true
				return latest, ok
			}
			r.observe(s)
			latest, ok = s, true
		default:
			return latest, ok
		}
	}
	return latest, ok
}

// Wait blocks until the final snapshot arrives, the channel closes, or ctx is
// done. ok is false if the channel closed without a final snapshot.
func (r *Receiver) Wait(ctx context.Context) (final Snapshot, ok bool, err error) {
	for r.final == nil && !r.closed {
		select {
		case s, open := <-r.ch:
			if !open {
				r.closed = true
				break
			}
			r.observe(s)
		case <-ctx.Done():
			return Snapshot{}, false, ctx.Err()
		}
	}
	if r.final == nil {
		return Snapshot{}, false, nil
	}
	return *r.final, true, nil
}

// Final returns the final snapshot once it has been received.
func (r *Receiver) Final() (Snapshot, bool) {
	if r.final == nil {
		return Snapshot{}, false
	}
	return *r.final, true
}

// Closed reports whether the producer has closed the channel.
func (r *Receiver) Closed() bool { return r.closed }

func (r *Receiver) observe(s Snapshot) {
	if s.Final {
		r.final = &s
	}
}
