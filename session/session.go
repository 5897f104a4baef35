// Package session implements the stepping/auto-solve control flow over a
// simplex tableau, including the Two-Phase handoff.
package session

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlsimplex/formulate"
	"github.com/katalvlaran/lvlsimplex/tableau"
)

// Status messages surfaced to the presentation layer.
const (
	msgOptimal    = "Optimal solution reached"
	msgInfeasible = "Original problem is infeasible"
)

// initial is the saved post-construction, pre-pivot state Reset restores.
type initial struct {
	t         *tableau.Tableau
	phase     Phase
	dir       tableau.Direction
	equations []string
}

// Session owns one problem instance from formulation to a terminal
// tableau. It is single-threaded by design: each problem instance owns an
// independent session, and every step is a pure transformation of the
// previous tableau, so replaying after Reset reproduces the exact same
// snapshot sequence.
type Session struct {
	prob formulate.Problem
	opts Options

	t         *tableau.Tableau
	phase     Phase
	dir       tableau.Direction
	state     State
	message   string
	iter      int
	entering  string
	leaving   string
	origCj    []float64
	equations []string

	init initial
}

// New validates and formulates p, then opens a session positioned at the
// initial tableau (derived rows computed, no pivots applied).
func New(p formulate.Problem, opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := formulate.Build(p)
	if err != nil {
		return nil, errors.Wrap(err, "session: formulate")
	}

	s := &Session{
		prob:      p,
		opts:      o,
		t:         f.T,
		phase:     SinglePhase,
		dir:       tableau.Maximize,
		state:     Running,
		origCj:    f.OriginalCj,
		equations: f.Equations,
	}
	if f.TwoPhase {
		s.phase = PhaseOne
		s.dir = tableau.Minimize
	}
	s.init = initial{
		t:         s.t.Clone(),
		phase:     s.phase,
		dir:       s.dir,
		equations: append([]string(nil), s.equations...),
	}

	return s, nil
}

// Step advances the session by one simplex iteration:
// one derived-row computation, then — unless the tableau is terminal —
// one pivot followed by a derived-row refresh.
//
// Outcomes:
//
//   - Improvable: pivot applied, iteration counter +1, message stays "".
//   - OptimalReached in Phase 1: the phase controller takes over — either
//     the Infeasible terminal or the Phase-2 handoff (see phases.go).
//   - OptimalReached otherwise: terminal, "Optimal solution reached".
//   - Unbounded: terminal, "<phase> problem is unbounded"; the entering
//     variable is reported with no leaving variable.
//   - Pivot rejection: terminal PivotError; the tableau is unchanged
//     (no partial mutation is ever committed).
//
// Calling Step on a terminal session is a no-op returning the current
// snapshot.
func (s *Session) Step() Snapshot {
	if s.state.Terminal() {
		return s.Snapshot()
	}

	entering, leaving, status := s.t.ComputeDerived(s.dir)
	switch status {
	case tableau.OptimalReached:
		s.entering, s.leaving = "", ""
		s.handleOptimal()
	case tableau.Unbounded:
		s.entering, s.leaving = s.varName(entering), ""
		s.state = Unbounded
		s.message = fmt.Sprintf("%s problem is unbounded", s.phase)
	default:
		s.entering, s.leaving = s.varName(entering), s.basisName(leaving)
		if err := s.t.Pivot(leaving, entering); err != nil {
			s.state = PivotError
			s.message = "Error during pivot: " + err.Error()

			break
		}
		s.iter++
		// Refresh the derived rows and record the next selection; terminal
		// detection happens at the start of the next Step.
		next, nextLeave, nextStatus := s.t.ComputeDerived(s.dir)
		s.entering, s.leaving = "", ""
		if nextStatus != tableau.OptimalReached {
			s.entering = s.varName(next)
		}
		if nextStatus == tableau.Improvable {
			s.leaving = s.basisName(nextLeave)
		}
	}

	return s.Snapshot()
}

// handleOptimal resolves an optimal tableau for the current phase.
func (s *Session) handleOptimal() {
	if s.phase == PhaseOne {
		s.resolvePhaseOne()

		return
	}
	s.state = Optimal
	s.message = msgOptimal
}

// Solve repeats Step until the session is terminal or the iteration cap
// is reached. ctx is checked between steps only — each pivot is atomic —
// which is the cancellation point a long-running auto-solve exposes.
// Hitting the cap yields the IterationLimit state with its own message;
// it is never reported as Optimal.
func (s *Session) Solve(ctx context.Context) (Snapshot, error) {
	for !s.state.Terminal() {
		if err := ctx.Err(); err != nil {
			return s.Snapshot(), errors.Wrap(err, "session: cancelled between steps")
		}
		if s.iter >= s.opts.MaxIterations {
			s.state = IterationLimit
			s.message = fmt.Sprintf("Stopped after %d iterations without reaching optimality", s.iter)

			break
		}
		s.Step()
	}

	return s.Snapshot(), nil
}

// Reset restores the saved initial tableau, recomputes the derived rows
// and discards all pivot history. The session is Running again.
func (s *Session) Reset() Snapshot {
	s.t = s.init.t.Clone()
	s.phase = s.init.phase
	s.dir = s.init.dir
	s.equations = append([]string(nil), s.init.equations...)
	s.state = Running
	s.iter = 0
	s.message = ""
	s.entering, s.leaving = "", ""
	s.t.ComputeDerived(s.dir)

	return s.Snapshot()
}

// State returns the session's lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Phase returns the phase the session is currently pivoting in.
func (s *Session) Phase() Phase {
	return s.phase
}

// Iteration returns the number of pivots applied since the last Reset.
func (s *Session) Iteration() int {
	return s.iter
}

// ObjectiveValue returns the current objective value in the caller's
// original sign convention: Minimize problems had their objective negated
// at formulation time, so the internal value is flipped back here. During
// Phase 1 the value is the artificial-variable sum and is reported as-is.
func (s *Session) ObjectiveValue() float64 {
	v := s.t.ObjectiveValue()
	if s.phase != PhaseOne && s.prob.Dir == tableau.Minimize {
		return -v
	}

	return v
}

// Solution maps each decision variable name to its value at the current
// basic solution.
func (s *Session) Solution() map[string]float64 {
	vals := s.t.Solution()
	out := make(map[string]float64)
	for i, v := range s.t.Vars() {
		if v.Kind == tableau.Decision {
			out[v.Name] = vals[i]
		}
	}

	return out
}

// Snapshot copies the full presentation state of the current tableau.
func (s *Session) Snapshot() Snapshot {
	vars := s.t.Vars()
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}
	basis := make([]string, s.t.NumRows())
	rows := make([][]float64, s.t.NumRows())
	for r, b := range s.t.Basis() {
		basis[r] = vars[b].Name
		rows[r] = s.t.Row(r)
	}

	return Snapshot{
		Phase:     s.phase,
		State:     s.state,
		Iteration: s.iter,
		Message:   s.message,
		Variables: names,
		Cj:        s.t.Cj(),
		Rows:      rows,
		Basis:     basis,
		Zj:        s.t.Zj(),
		CjZj:      s.t.CjZj(),
		Entering:  s.entering,
		Leaving:   s.leaving,
		Objective: s.ObjectiveValue(),
		Equations: append([]string(nil), s.equations...),
	}
}

func (s *Session) varName(col int) string {
	if col < 0 {
		return ""
	}

	return s.t.Vars()[col].Name
}

func (s *Session) basisName(row int) string {
	if row < 0 {
		return ""
	}

	return s.t.Vars()[s.t.Basis()[row]].Name
}
