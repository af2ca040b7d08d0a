// Package scenario generates TSP instances: planar cities whose travel
// cost is the Euclidean distance scaled by MapScale and rounded up.
//
// Difficulty controls the cost model:
//
//   - Easy   symmetric costs, every edge present.
//   - Normal symmetric distances with a share of directed edges removed.
//   - Hard   elevation makes costs asymmetric (climbing costs more) and
//     edges are removed as in Normal.
//
// Removal always spares one hidden random cycle, so every generated
// scenario has at least one feasible tour. Generation is deterministic for
// a given (n, difficulty, seed).
//
// Encode and Decode store a scenario as TOML (points, difficulty, seed and
// removed edges) so a run can be replayed exactly.
package scenario
