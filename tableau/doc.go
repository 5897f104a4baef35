// Package tableau provides the augmented-matrix data structure and pivot
// engine at the heart of the simplex method.
//
// Overview:
//
//   - A Tableau holds the constraint rows of a linear program in equality
//     form (coefficients over every variable plus the right-hand side), the
//     basis assignment, the objective coefficients (Cj), and the two derived
//     rows the simplex method reads its decisions from: Zj and Cj−Zj.
//   - ComputeDerived fills the derived rows and applies the entering/leaving
//     selection rule for a given optimization Direction; Pivot performs one
//     Gauss–Jordan elimination step. Every phase of the Two-Phase method —
//     and the single-phase standard form — runs on this same pair of
//     operations, parameterized only by Direction and Cj.
//
// When to use:
//
//   - As the shared engine beneath a stepping UI: each ComputeDerived/Pivot
//     pair is one visible iteration, and the tableau exposes copies of every
//     row and derived row for rendering.
//   - As a teaching-grade simplex core where the tableau itself (not a
//     revised-basis factorization) is the object of interest.
//
// Key properties:
//
//   - Deterministic: ties in both selection rules break to the first index
//     encountered, so replaying a session reproduces the same tableaus.
//   - Pure pivoting: Pivot either commits a complete elimination step or —
//     on a degenerate pivot element — leaves the tableau untouched and
//     returns ErrDegeneratePivot.
//   - Explicit numeric policy: EpsOptimal (1e-10) governs the derived rows
//     and selection rules, EpsPivot (1e-12) the elimination step. Both snap
//     sub-threshold magnitudes to exactly 0 to suppress float noise.
//
// Not in scope: anti-cycling (Bland's rule) — degenerate cycling is guarded
// by the session-level iteration cap; exact rational arithmetic; sensitivity
// analysis.
//
// The matrix body is a gonum mat.Dense; Zj is computed as a dot product of
// the basis-cost vector with each column view.
package tableau
