// Package session drives a simplex tableau from its initial state to a
// terminal one, a single step at a time or all at once.
//
// Overview:
//
//   - New formulates a Problem (via the formulate package) and opens a
//     session at the initial tableau. All-≤ problems run a single phase;
//     anything with ≥ or = constraints starts in Phase 1 of the Two-Phase
//     method.
//   - Step performs one simplex iteration: derived-row computation, pivot,
//     derived-row refresh. Every Step returns a complete Snapshot — the
//     full tableau, variable names, basis, Zj / Cj−Zj rows, the upcoming
//     entering/leaving pair and the status message — so a form-based UI
//     can render the method's progress verbatim.
//   - Solve loops Step to a terminal state under an iteration cap
//     (default 100), with an optional cancellation point between steps.
//   - Reset restores the saved initial tableau and discards all pivot
//     history; replaying the same Step sequence reproduces the exact same
//     snapshots.
//
// Phase control:
//
//	Phase1Running → Phase1Optimal → Phase2Running → Phase2Optimal
//	                     └──────────→ Infeasible (artificial sum ≠ 0)
//
// On Phase-1 optimality the controller checks the artificial-variable sum
// (the Zj entry under RHS). Zero means feasible: artificial columns are
// dropped, the true objective is restored, and Phase 2 runs in maximize
// mode. Nonzero terminates the session as Infeasible — no Phase-2 tableau
// is ever produced.
//
// Terminal states and their messages:
//
//   - Optimal        — "Optimal solution reached"
//   - Unbounded      — "<phase> problem is unbounded"
//   - Infeasible     — "Original problem is infeasible"
//   - PivotError     — "Error during pivot: <cause>" (tableau unchanged)
//   - IterationLimit — stopped at the cap; never conflated with Optimal
//
// All terminal states are recoverable at the session level via Reset;
// nothing here panics on problem data.
//
// Concurrency: a session is single-threaded and owns its tableau; run one
// session per problem instance and do not share it across goroutines.
package session
