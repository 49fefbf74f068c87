// Package search implements a resumable Dijkstra search over the pixel grid
// of an image, where the cost of moving between two 4-adjacent pixels is the
// sum of their absolute RGB differences (see pixelgrid.Cost).
//
// Overview:
//
//   - New builds an Engine from a grid and an origin: the distance field is
//     Unreached everywhere except the origin (0), and the frontier holds the
//     single entry (origin, 0). No relaxation happens at construction.
//   - Step performs exactly one relaxation round: pop the cheapest frontier
//     entry; drop it if it is stale; otherwise relax its in-bounds neighbours.
//   - Step returns an Outcome: Continuing{Engine} while the frontier is
//     non-empty, Finished{Field} once it empties. Finishing hands the field to
//     the caller and spends the engine.
//
// Engine state machine:
//
//	         New
//	          │
//	          ▼
//	   ┌──► Running ──Step, frontier empty──► Done (Finished.Field owned by caller)
//	   └──────┘
//	  Step, frontier non-empty
//
// Lazy deletion:
//
//   - The frontier is a plain binary heap that tolerates several entries for
//     the same cell. An entry whose cost is strictly greater than the cell's
//     committed distance is stale and is discarded when popped.
//   - Every pushed entry is popped exactly once, so total pushes equal total
//     steps, and on a fully connected grid StaleSkips = Steps − cells.
//   - Each ordered pair of neighbours relaxes at most once, which bounds the
//     number of pushes by 1 + 2·edges ≤ 4·cells.
//
// Invariants:
//
//   - The origin stays at 0 for the whole search.
//   - Each cell's value only ever decreases.
//   - When Finished, every cell holds its exact shortest accumulated cost.
//
// Concurrency:
//
//   - An Engine is not safe for concurrent use. Run its Step loop on one
//     goroutine and hand other goroutines Snapshot copies (see package progress).
//   - The grid is read, never written.
//
// Complexity:
//
//   - Time:  O(N log N) over a full search, N = W×H.
//   - Space: O(N) for the field plus the frontier.
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrEmptyGrid, ErrOriginOutOfBounds: returned by New.
//   - ErrEngineSpent: returned by Snapshot after completion; Step on a spent
//     engine panics with it (programming error).
package search
