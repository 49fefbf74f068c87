// Package progress runs a search on one goroutine and streams distance-field
// snapshots to a consumer on another.
//
// Protocol:
//
//   - Produce steps the engine on the calling goroutine (start it with go or
//     an errgroup). Every CheckEvery steps it asks a rate limiter whether an
//     intermediate snapshot is due; if so, and the channel has room, it sends
//     an independent copy of the field. A full channel means the consumer is
//     behind and the snapshot is dropped rather than stalling the search.
//   - When the search finishes, the terminal field is sent exactly once with
//     Final set (blocking until the consumer takes it or ctx is done), and the
//     channel is closed.
//   - ctx is checked once per step. On cancellation nothing more is sent, the
//     channel is closed and the wrapped ctx.Err() is returned.
//   - Receiver drains the channel without blocking and keeps only the most
//     recent snapshot, the way a render loop would once per frame.
//
// Snapshots arrive in production order; the final one is always last. No
// memory is shared between producer and consumer: every Snapshot owns its field.
package progress
