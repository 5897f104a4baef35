// Package formulate converts a raw problem statement into the initial
// simplex tableau — standard form when every constraint is ≤, Phase-1
// augmented form otherwise.
package formulate

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlsimplex/tableau"
)

// Validate checks the shape contract the engine assumes: a non-empty
// objective and constraint/RHS/relation lists aligned with it. Returns
// ErrEmptyObjective or ErrDimensionMismatch (wrapped with the offending
// row) — the engine itself never re-validates.
func Validate(p Problem) error {
	n := len(p.Objective)
	if n == 0 {
		return ErrEmptyObjective
	}
	m := len(p.Constraints)
	if m == 0 {
		return errors.Wrap(ErrDimensionMismatch, "no constraint rows")
	}
	if len(p.RHS) != m {
		return errors.Wrapf(ErrDimensionMismatch, "have %d constraints but %d right-hand sides", m, len(p.RHS))
	}
	if len(p.Relations) != m {
		return errors.Wrapf(ErrDimensionMismatch, "have %d constraints but %d relations", m, len(p.Relations))
	}
	for i, row := range p.Constraints {
		if len(row) != n {
			return errors.Wrapf(ErrDimensionMismatch, "constraint row %d has %d coefficients, want %d", i, len(row), n)
		}
	}

	return nil
}

// NeedsTwoPhase reports whether the problem requires the Two-Phase method:
// true as soon as any constraint is ≥ or =. Callers route between the
// single-phase and two-phase flows on exactly this predicate.
func NeedsTwoPhase(p Problem) bool {
	for _, rel := range p.Relations {
		if rel != LessEq {
			return true
		}
	}

	return false
}

// Build validates p and constructs its initial tableau.
//
// Single-phase (all constraints ≤):
//
//   - The objective is brought to the internal maximize convention —
//     minimization problems have their coefficients negated here, and the
//     sign is restored only when the session reports results.
//   - One slack variable per constraint (coefficient +1 in its own row),
//     appended after the decision variables; the slacks form the initial
//     basis.
//
// Two-phase (any constraint ≥ or =):
//
//   - Per row: ≤ adds a slack (+1, basic); ≥ adds a surplus (−1) and an
//     artificial (+1, basic); = adds an artificial (+1, basic) only.
//   - Column order: decision variables, all slacks, all surpluses, all
//     artificials.
//   - The tableau carries the Phase-1 objective (coefficient 1 on every
//     artificial, 0 elsewhere, minimized); the internal maximize-form
//     objective is preserved in Formulation.OriginalCj for Phase 2.
//
// Derived rows are computed before returning, so the tableau is ready to
// render and to step. Complexity: O(m·(n+m)).
func Build(p Problem) (*Formulation, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	if NeedsTwoPhase(p) {
		return buildTwoPhase(p)
	}

	return buildStandard(p)
}

// maximizeForm returns the objective under the internal maximize
// convention: coefficients are negated when the caller minimizes.
func maximizeForm(p Problem) []float64 {
	out := append([]float64(nil), p.Objective...)
	if p.Dir == tableau.Minimize {
		for i := range out {
			out[i] = -out[i]
		}
	}

	return out
}

func buildStandard(p Problem) (*Formulation, error) {
	n := len(p.Objective)
	m := len(p.Constraints)
	total := n + m

	vars := make([]tableau.Variable, 0, total)
	for i := 0; i < n; i++ {
		vars = append(vars, tableau.Var(tableau.Decision, i+1))
	}
	for i := 0; i < m; i++ {
		vars = append(vars, tableau.Var(tableau.Slack, i+1))
	}

	cj := make([]float64, total)
	copy(cj, maximizeForm(p))

	rows := make([][]float64, m)
	basis := make([]int, m)
	for i := 0; i < m; i++ {
		row := make([]float64, total+1)
		copy(row, p.Constraints[i])
		row[n+i] = 1 // this row's slack
		row[total] = p.RHS[i]
		rows[i] = row
		basis[i] = n + i
	}

	t, err := tableau.New(vars, cj, rows, basis)
	if err != nil {
		return nil, errors.Wrap(err, "formulate: standard form")
	}
	t.ComputeDerived(tableau.Maximize)

	return &Formulation{
		T:          t,
		TwoPhase:   false,
		OriginalCj: append([]float64(nil), cj...),
		Equations:  Equations(p),
	}, nil
}

func buildTwoPhase(p Problem) (*Formulation, error) {
	n := len(p.Objective)
	m := len(p.Constraints)

	var numSlack, numSurplus, numArt int
	for _, rel := range p.Relations {
		switch rel {
		case LessEq:
			numSlack++
		case GreaterEq:
			numSurplus++
			numArt++
		case Equal:
			numArt++
		}
	}

	// Column order: decisions, slacks, surpluses, artificials.
	slackOff := n
	surplusOff := slackOff + numSlack
	artOff := surplusOff + numSurplus
	total := artOff + numArt

	vars := make([]tableau.Variable, 0, total)
	for i := 0; i < n; i++ {
		vars = append(vars, tableau.Var(tableau.Decision, i+1))
	}
	for i := 0; i < numSlack; i++ {
		vars = append(vars, tableau.Var(tableau.Slack, i+1))
	}
	for i := 0; i < numSurplus; i++ {
		vars = append(vars, tableau.Var(tableau.Surplus, i+1))
	}
	for i := 0; i < numArt; i++ {
		vars = append(vars, tableau.Var(tableau.Artificial, i+1))
	}

	// Phase-1 objective: minimize the sum of artificial variables.
	phaseCj := make([]float64, total)
	for j := artOff; j < total; j++ {
		phaseCj[j] = 1
	}

	rows := make([][]float64, m)
	basis := make([]int, m)
	slackAt, surplusAt, artAt := slackOff, surplusOff, artOff
	for i := 0; i < m; i++ {
		row := make([]float64, total+1)
		copy(row, p.Constraints[i])
		row[total] = p.RHS[i]
		switch p.Relations[i] {
		case LessEq:
			row[slackAt] = 1
			basis[i] = slackAt
			slackAt++
		case GreaterEq:
			row[surplusAt] = -1
			row[artAt] = 1
			basis[i] = artAt
			surplusAt++
			artAt++
		case Equal:
			row[artAt] = 1
			basis[i] = artAt
			artAt++
		}
		rows[i] = row
	}

	// The true objective, held back until Phase 2: decision coefficients in
	// maximize form, 0 on every auxiliary column.
	origCj := make([]float64, total)
	copy(origCj, maximizeForm(p))

	t, err := tableau.New(vars, phaseCj, rows, basis)
	if err != nil {
		return nil, errors.Wrap(err, "formulate: phase-1 form")
	}
	t.ComputeDerived(tableau.Minimize)

	return &Formulation{
		T:          t,
		TwoPhase:   true,
		OriginalCj: origCj,
		Equations:  Equations(p),
	}, nil
}
