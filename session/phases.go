package session

import (
	"math"

	"github.com/katalvlaran/lvlsimplex/formulate"
	"github.com/katalvlaran/lvlsimplex/tableau"
)

// resolvePhaseOne inspects an optimal Phase-1 tableau and either declares
// the original problem infeasible or hands off to Phase 2.
//
// The feasibility test reads the Phase-1 objective value — the Zj entry
// under the RHS column, i.e. the remaining artificial-variable sum. A
// nonzero value (|v| ≥ EpsOptimal) means no feasible point exists; the
// session terminates without ever building a Phase-2 tableau.
func (s *Session) resolvePhaseOne() {
	if math.Abs(s.t.ObjectiveValue()) >= tableau.EpsOptimal {
		s.state = Infeasible
		s.message = msgInfeasible

		return
	}
	s.enterPhaseTwo()
}

// enterPhaseTwo rebuilds the session around the true objective:
//
//  1. Drop every artificial column from the tableau and variable list.
//  2. Restore Cj from the formulation's maximize-form objective — decision
//     variables get their original (sign-adjusted) coefficients, slacks
//     and surpluses get 0.
//  3. Remap the basis to the surviving columns. A row whose basic variable
//     was still artificial (its constraint is redundant or degenerate at
//     the feasibility vertex) falls back to the first available slack
//     column. This mirrors the reference behavior; it is a heuristic, not
//     a principled re-basing, and such a fallback column is generally not
//     an identity column.
//  4. Switch to maximize mode, refresh the derived rows and re-render the
//     equations for display.
func (s *Session) enterPhaseTwo() {
	vars := s.t.Vars()
	oldBasis := s.t.Basis()

	// Surviving columns, in original order, with old→new index mapping.
	keep := make([]int, 0, len(vars))
	newIndex := make([]int, len(vars))
	for j := range newIndex {
		newIndex[j] = -1
	}
	for j, v := range vars {
		if v.Kind != tableau.Artificial {
			newIndex[j] = len(keep)
			keep = append(keep, j)
		}
	}

	newVars := make([]tableau.Variable, len(keep))
	newCj := make([]float64, len(keep))
	for nj, oj := range keep {
		newVars[nj] = vars[oj]
		newCj[nj] = s.origCj[oj]
	}

	rows := make([][]float64, s.t.NumRows())
	for r := range rows {
		old := s.t.Row(r)
		row := make([]float64, len(keep)+1)
		for nj, oj := range keep {
			row[nj] = old[oj]
		}
		row[len(keep)] = old[len(vars)]
		rows[r] = row
	}

	newBasis := make([]int, len(oldBasis))
	used := make(map[int]bool, len(oldBasis))
	for r, b := range oldBasis {
		if vars[b].Kind == tableau.Artificial {
			newBasis[r] = -1

			continue
		}
		newBasis[r] = newIndex[b]
		used[newIndex[b]] = true
	}
	for r, b := range newBasis {
		if b >= 0 {
			continue
		}
		newBasis[r] = fallbackColumn(newVars, used)
		used[newBasis[r]] = true
	}

	t2, err := tableau.New(newVars, newCj, rows, newBasis)
	if err != nil {
		// Only reachable if the fallback found no column at all (more rows
		// than surviving variables), which a well-formed problem cannot
		// produce; surface it rather than crash.
		s.state = PivotError
		s.message = "Error during pivot: " + err.Error()

		return
	}

	s.t = t2
	s.phase = PhaseTwo
	s.dir = tableau.Maximize
	s.message = ""
	s.t.ComputeDerived(s.dir)
	s.equations = formulate.SystemEquations(s.t, s.dir)
}

// fallbackColumn picks a basis column for a row orphaned by artificial
// removal: the first slack not already basic, else the first free column
// of any kind, else column 0.
func fallbackColumn(vars []tableau.Variable, used map[int]bool) int {
	for j, v := range vars {
		if v.Kind == tableau.Slack && !used[j] {
			return j
		}
	}
	for j := range vars {
		if !used[j] {
			return j
		}
	}

	return 0
}
