// Package session defines phases, terminal states, options and the
// per-step Snapshot exposed to the presentation layer.
package session

import "errors"

// ErrBadIterLimit indicates a non-positive iteration cap. Option
// constructors panic with it — a misconfigured cap is a programmer error.
var ErrBadIterLimit = errors.New("session: MaxIterations must be positive")

// Phase identifies which objective the session is currently pivoting on.
type Phase int

const (
	// SinglePhase solves an all-≤ problem directly in standard form.
	SinglePhase Phase = iota

	// PhaseOne minimizes the artificial-variable sum to find feasibility.
	PhaseOne

	// PhaseTwo optimizes the true objective after artificials are dropped.
	PhaseTwo
)

// String renders the phase label used in status messages.
func (p Phase) String() string {
	switch p {
	case PhaseOne:
		return "Phase 1"
	case PhaseTwo:
		return "Phase 2"
	default:
		return "Single-phase"
	}
}

// State is the session's position in its lifecycle. Every state other
// than Running is terminal for the session; the caller may still Reset.
type State int

const (
	// Running means more pivots may improve the objective.
	Running State = iota

	// Optimal means the current basic solution is optimal.
	Optimal

	// Unbounded means the current phase's objective grows without bound.
	Unbounded

	// Infeasible means Phase 1 ended with artificials still in the
	// solution — the original constraints admit no feasible point.
	Infeasible

	// PivotError means a pivot was rejected (degenerate element); the
	// tableau remains at the pre-pivot state.
	PivotError

	// IterationLimit means auto-solve stopped at the iteration cap
	// without reaching a terminal tableau. Distinct from Optimal —
	// callers must not conflate the two.
	IterationLimit
)

// Terminal reports whether the session has stopped stepping.
func (s State) Terminal() bool {
	return s != Running
}

// String implements fmt.Stringer for diagnostics.
func (s State) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	case Infeasible:
		return "infeasible"
	case PivotError:
		return "pivot error"
	case IterationLimit:
		return "iteration limit"
	default:
		return "running"
	}
}

// Options configures a solving session.
//   - MaxIterations: hard cap on pivots during Solve; guards against
//     degenerate cycling, which the stable first-index tie-break does not
//     prevent. Default 100.
type Options struct {
	MaxIterations int
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{MaxIterations: 100}
}

// Option mutates Options in the functional style.
type Option func(*Options)

// WithMaxIterations overrides the auto-solve pivot cap.
// Panics with ErrBadIterLimit if n ≤ 0 (programmer error).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(ErrBadIterLimit)
	}

	return func(o *Options) { o.MaxIterations = n }
}

// Snapshot is everything the presentation layer needs to render one
// tableau: pure copied values, safe to retain across further steps.
type Snapshot struct {
	Phase     Phase
	State     State
	Iteration int
	Message   string // terminal/status message, "" while iterating

	Variables []string    // column names in tableau order
	Cj        []float64   // active objective coefficients
	Rows      [][]float64 // constraint rows, RHS last
	Basis     []string    // basic-variable name per row
	Zj        []float64   // derived row, objective value under RHS
	CjZj      []float64   // reduced-cost row (no RHS entry)

	Entering string // next entering variable, "" if none selected
	Leaving  string // next leaving variable, "" if none selected

	Objective float64  // current objective, sign restored for Minimize
	Equations []string // human-readable system, refreshed per phase
}
