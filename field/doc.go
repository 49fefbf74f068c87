// SPDX-License-Identifier: MIT

// Package field provides the dense distance field produced by the search.
//
// Purpose:
//   - Hold one float32 per grid cell in a row-major buffer (offset = y*width + x).
//   - Represent "no path found yet" with the Unreached sentinel (+Inf).
//   - Make snapshots cheap and safe: Clone returns an independently owned copy,
//     never a shared reference.
//
// Safety:
//   - Public At/Set return sentinel errors instead of panicking.
//   - Set rejects NaN; +Inf is allowed because it is the Unreached sentinel.
//
// Complexity quicksheet:
//   - New, Clone, ZeroUnreached, Furthest, CountUnreached: O(W*H); At/Set: O(1).
package field
