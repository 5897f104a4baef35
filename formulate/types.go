// Package formulate defines the problem-statement types consumed by the
// builder and the sentinel errors for boundary validation.
package formulate

import (
	"errors"

	"github.com/katalvlaran/lvlsimplex/tableau"
)

// Sentinel errors returned by the formulate package.
var (
	// ErrEmptyObjective indicates a problem with no decision variables.
	ErrEmptyObjective = errors.New("formulate: objective vector is empty")

	// ErrDimensionMismatch indicates that the constraint matrix, RHS vector
	// or relation list disagree with the objective's dimension.
	ErrDimensionMismatch = errors.New("formulate: dimension mismatch")
)

// Relation is the relational operator of one constraint row.
type Relation int

const (
	// LessEq is a ≤ constraint; it receives a slack variable.
	LessEq Relation = iota

	// GreaterEq is a ≥ constraint; it receives a surplus and an artificial
	// variable.
	GreaterEq

	// Equal is an = constraint; it receives an artificial variable only.
	Equal
)

// String renders the operator for equation output.
func (r Relation) String() string {
	switch r {
	case GreaterEq:
		return "≥"
	case Equal:
		return "="
	default:
		return "≤"
	}
}

// Problem is one linear programming instance as submitted by the caller:
// an objective over n decision variables, m constraint rows with aligned
// right-hand sides and relational operators, and an optimization
// direction. A Problem is created once from user input and never mutated
// by the solving session.
type Problem struct {
	Objective   []float64         // length n
	Constraints [][]float64       // m rows × n columns
	RHS         []float64         // length m
	Relations   []Relation        // length m, aligned with Constraints
	Dir         tableau.Direction // Maximize or Minimize
}

// Formulation is the builder's output: the initial tableau plus the
// metadata the session layer needs to orchestrate phases.
type Formulation struct {
	// T is the initial tableau with derived rows already computed.
	T *tableau.Tableau

	// TwoPhase reports whether T is the Phase-1 augmented form (true when
	// any relation is ≥ or =) or the standard single-phase form.
	TwoPhase bool

	// OriginalCj is the internal maximize-form objective over the full
	// variable list (decision coefficients sign-flipped when the problem
	// minimizes; 0 on every auxiliary column). For a two-phase formulation
	// this is the row Phase 2 restores after artificial columns are
	// dropped; for a single-phase formulation it equals T.Cj().
	OriginalCj []float64

	// Equations is the human-readable rendering of the problem, derived
	// once at formulation time for display only.
	Equations []string
}
