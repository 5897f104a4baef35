// Package formulate turns a raw linear programming problem into the
// initial simplex tableau.
//
// Overview:
//
//   - A Problem is the caller's statement: an objective vector, a
//     constraint matrix with aligned right-hand sides and relational
//     operators (≤, ≥, =), and an optimization direction.
//   - Build chooses the formulation. When every constraint is ≤ it
//     produces the standard single-phase form: one slack variable per
//     constraint, slacks as the initial basis. When any constraint is ≥
//     or = it produces the Phase-1 augmented form of the Two-Phase
//     method: surpluses for ≥ rows, artificials seeding the basis
//     wherever a slack cannot, and the artificial-sum objective to be
//     minimized first.
//   - Internally every problem is a maximization: minimizing callers have
//     their objective negated here, and the sign is restored only in
//     reported results. The engine never needs a native "minimize" pivot
//     rule for the true objective — only Phase 1 runs minimized.
//
// Conventions:
//
//   - Column order is always decision variables, then slacks, then
//     surpluses, then artificials; names are drawn from the x/s/e/a
//     namespaces in that order.
//   - NeedsTwoPhase is the exact routing predicate: true iff any relation
//     is ≥ or =.
//
// Validation: Build rejects empty objectives and misaligned dimensions
// with ErrEmptyObjective / ErrDimensionMismatch (wrapped with row
// context). Downstream components assume well-formed input — this package
// is the shape boundary.
//
// Rendering: Equations and SystemEquations produce the human-readable
// lines a UI shows next to the tableau; they are derived for display only
// and never read back by the engine.
package formulate
