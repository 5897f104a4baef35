// Package tableau defines the core types and numeric policy for the
// simplex tableau engine.
//
// A Tableau is the augmented matrix of a linear program in equality form:
// one row per constraint (coefficients over every variable plus a
// right-hand-side scalar), a basis assignment naming the variable that is
// basic in each row, an objective-coefficient vector (Cj), and two derived
// rows — Zj and Cj−Zj — recomputed after every pivot.
//
// Numeric policy (tolerances):
//
//   - EpsOptimal (1e-10) — snap threshold for the derived rows, the
//     optimality test and ratio-test admission.
//   - EpsPivot (1e-12) — minimum admissible pivot-element magnitude and the
//     snap threshold applied during elimination.
//
// Errors (sentinel):
//
//	– ErrNoVariables      if a tableau is created with an empty variable list.
//	– ErrShapeMismatch    if row widths, Cj length or basis length disagree.
//	– ErrBadBasis         if a basis entry does not reference a variable column.
//	– ErrOutOfRange       if a pivot row/column index is outside the tableau.
//	– ErrDegeneratePivot  if the pivot element is numerically zero.
package tableau

import (
	"errors"
	"strconv"
)

// Tolerances shared by every phase of the simplex method.
const (
	// EpsOptimal is the noise floor for the derived rows: Zj and Cj−Zj
	// values with |v| < EpsOptimal are snapped to exactly 0, a Cj−Zj
	// maximum ≤ EpsOptimal means optimal, and ratio-test candidates
	// admit ratios down to −EpsOptimal.
	EpsOptimal = 1e-10

	// EpsPivot guards the Gauss–Jordan step: a pivot element with
	// |v| < EpsPivot is rejected as degenerate, and elimination results
	// with |v| < EpsPivot are snapped to 0.
	EpsPivot = 1e-12
)

// Sentinel errors returned by the tableau package.
var (
	// ErrNoVariables indicates an attempt to build a tableau without variables.
	ErrNoVariables = errors.New("tableau: variable list is empty")

	// ErrShapeMismatch indicates that row widths, the Cj vector or the basis
	// list do not agree with the variable list.
	ErrShapeMismatch = errors.New("tableau: dimension mismatch")

	// ErrBadBasis indicates a basis entry outside the variable-column range.
	ErrBadBasis = errors.New("tableau: basis entry out of range")

	// ErrOutOfRange indicates a row or column index outside the tableau.
	ErrOutOfRange = errors.New("tableau: index out of range")

	// ErrDegeneratePivot indicates a pivot on a numerically zero element.
	ErrDegeneratePivot = errors.New("tableau: degenerate pivot element")
)

// VarKind is the namespace a variable's name is drawn from. The namespace
// determines the variable's role in formulation and reporting but not its
// algorithmic treatment, except that artificial columns are stripped when
// Phase 2 of the Two-Phase method is entered.
type VarKind int

const (
	// Decision variables (x1, x2, …) carry the original objective.
	Decision VarKind = iota

	// Slack variables (s1, s2, …) absorb ≤ constraints.
	Slack

	// Surplus variables (e1, e2, …) absorb ≥ constraints.
	Surplus

	// Artificial variables (a1, a2, …) seed the Phase-1 basis.
	Artificial
)

// Symbol returns the one-letter name prefix of the namespace.
func (k VarKind) Symbol() string {
	switch k {
	case Decision:
		return "x"
	case Slack:
		return "s"
	case Surplus:
		return "e"
	case Artificial:
		return "a"
	default:
		return "?"
	}
}

// Variable names one column of the tableau.
type Variable struct {
	Name string  // e.g. "x1", "s2", "a1"
	Kind VarKind // namespace the name is drawn from
}

// Var builds a Variable from a namespace and a 1-based ordinal,
// e.g. Var(Slack, 2) → {Name: "s2", Kind: Slack}.
func Var(kind VarKind, ordinal int) Variable {
	return Variable{Name: kind.Symbol() + strconv.Itoa(ordinal), Kind: kind}
}

// Direction selects the entering-variable rule. The Two-Phase controller
// runs Phase 1 with Minimize and every true objective with Maximize
// (minimization problems are sign-flipped at formulation time).
type Direction int

const (
	// Maximize enters the column with the largest positive Cj−Zj.
	Maximize Direction = iota

	// Minimize enters the column with the most negative Cj−Zj.
	Minimize
)

// String implements fmt.Stringer for diagnostics.
func (d Direction) String() string {
	if d == Minimize {
		return "minimize"
	}

	return "maximize"
}

// Status reports the outcome of a derived-row computation.
type Status int

const (
	// Improvable means an entering and a leaving variable were both found;
	// the next pivot is well-defined.
	Improvable Status = iota

	// OptimalReached means no Cj−Zj entry improves the objective.
	OptimalReached

	// Unbounded means an entering column exists but the ratio test found
	// no admissible leaving row.
	Unbounded
)

// String implements fmt.Stringer for diagnostics.
func (s Status) String() string {
	switch s {
	case OptimalReached:
		return "optimal"
	case Unbounded:
		return "unbounded"
	default:
		return "improvable"
	}
}
