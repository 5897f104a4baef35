// Package formulate_test validates problem-shape checking, single-phase vs
// two-phase routing, and the exact layout of both initial tableaus.
package formulate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsimplex/formulate"
	"github.com/katalvlaran/lvlsimplex/tableau"
)

func maxProblem() formulate.Problem {
	return formulate.Problem{
		Objective: []float64{3, 5},
		Constraints: [][]float64{
			{1, 0},
			{0, 2},
			{3, 2},
		},
		RHS:       []float64{4, 12, 18},
		Relations: []formulate.Relation{formulate.LessEq, formulate.LessEq, formulate.LessEq},
		Dir:       tableau.Maximize,
	}
}

func equalityProblem() formulate.Problem {
	return formulate.Problem{
		Objective: []float64{1, 1},
		Constraints: [][]float64{
			{2, 1},
			{1, 2},
		},
		RHS:       []float64{4, 3},
		Relations: []formulate.Relation{formulate.Equal, formulate.Equal},
		Dir:       tableau.Minimize,
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestValidate_EmptyObjective(t *testing.T) {
	err := formulate.Validate(formulate.Problem{})
	require.ErrorIs(t, err, formulate.ErrEmptyObjective)
}

func TestValidate_NoConstraints(t *testing.T) {
	p := formulate.Problem{Objective: []float64{1, 2}}
	require.ErrorIs(t, formulate.Validate(p), formulate.ErrDimensionMismatch)
}

func TestValidate_RHSMismatch(t *testing.T) {
	p := maxProblem()
	p.RHS = p.RHS[:2]
	require.ErrorIs(t, formulate.Validate(p), formulate.ErrDimensionMismatch)
}

func TestValidate_RelationMismatch(t *testing.T) {
	p := maxProblem()
	p.Relations = p.Relations[:1]
	require.ErrorIs(t, formulate.Validate(p), formulate.ErrDimensionMismatch)
}

func TestValidate_ShortConstraintRow(t *testing.T) {
	p := maxProblem()
	p.Constraints[1] = []float64{1}
	err := formulate.Validate(p)
	require.ErrorIs(t, err, formulate.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "row 1", "wrapped error names the offending row")
}

func TestBuild_RejectsMalformedInput(t *testing.T) {
	_, err := formulate.Build(formulate.Problem{})
	require.ErrorIs(t, err, formulate.ErrEmptyObjective)
}

// ------------------------------------------------------------------------
// 2. Routing
// ------------------------------------------------------------------------

func TestNeedsTwoPhase(t *testing.T) {
	require.False(t, formulate.NeedsTwoPhase(maxProblem()))

	p := maxProblem()
	p.Relations[2] = formulate.GreaterEq
	require.True(t, formulate.NeedsTwoPhase(p))

	p.Relations[2] = formulate.Equal
	require.True(t, formulate.NeedsTwoPhase(p))
}

// ------------------------------------------------------------------------
// 3. Standard (single-phase) form
// ------------------------------------------------------------------------

func TestBuild_StandardForm(t *testing.T) {
	f, err := formulate.Build(maxProblem())
	require.NoError(t, err)
	require.False(t, f.TwoPhase)

	vars := f.T.Vars()
	require.Len(t, vars, 5)
	require.Equal(t, "x1", vars[0].Name)
	require.Equal(t, "s3", vars[4].Name)
	require.Equal(t, tableau.Slack, vars[2].Kind)

	// One slack per row, slacks are the initial basis.
	require.Equal(t, []int{2, 3, 4}, f.T.Basis())
	require.Equal(t, []float64{1, 0, 1, 0, 0, 4}, f.T.Row(0))
	require.Equal(t, []float64{0, 2, 0, 1, 0, 12}, f.T.Row(1))
	require.Equal(t, []float64{3, 2, 0, 0, 1, 18}, f.T.Row(2))
	require.Equal(t, []float64{3, 5, 0, 0, 0}, f.T.Cj())
	require.Equal(t, f.T.Cj(), f.OriginalCj)

	// Derived rows are ready before the first step.
	require.Equal(t, []float64{3, 5, 0, 0, 0}, f.T.CjZj())
}

func TestBuild_MinimizeNegatesObjective(t *testing.T) {
	p := maxProblem()
	p.Dir = tableau.Minimize
	f, err := formulate.Build(p)
	require.NoError(t, err)

	// Internal solving is always a maximize problem.
	require.Equal(t, []float64{-3, -5, 0, 0, 0}, f.T.Cj())
}

// ------------------------------------------------------------------------
// 4. Phase-1 (two-phase) form
// ------------------------------------------------------------------------

func TestBuild_TwoPhase_EqualityOnly(t *testing.T) {
	f, err := formulate.Build(equalityProblem())
	require.NoError(t, err)
	require.True(t, f.TwoPhase)

	vars := f.T.Vars()
	require.Len(t, vars, 4) // x1, x2, a1, a2 — no slacks, no surpluses
	require.Equal(t, "a1", vars[2].Name)
	require.Equal(t, "a2", vars[3].Name)

	// Artificials seed the basis and carry the Phase-1 objective.
	require.Equal(t, []int{2, 3}, f.T.Basis())
	require.Equal(t, []float64{0, 0, 1, 1}, f.T.Cj())

	// The true objective is held back in maximize form (minimize, so negated).
	require.Equal(t, []float64{-1, -1, 0, 0}, f.OriginalCj)

	require.Equal(t, []float64{2, 1, 1, 0, 4}, f.T.Row(0))
	require.Equal(t, []float64{1, 2, 0, 1, 3}, f.T.Row(1))
}

func TestBuild_TwoPhase_MixedRelations(t *testing.T) {
	// ≤ gets a slack (basic); ≥ gets a surplus (−1) plus an artificial
	// (basic); = gets an artificial (basic). Column order: x, s, e, a.
	p := formulate.Problem{
		Objective: []float64{1, 2},
		Constraints: [][]float64{
			{1, 1},
			{1, 1},
			{1, -1},
		},
		RHS:       []float64{2, 5, 1},
		Relations: []formulate.Relation{formulate.LessEq, formulate.GreaterEq, formulate.Equal},
		Dir:       tableau.Maximize,
	}
	f, err := formulate.Build(p)
	require.NoError(t, err)

	vars := f.T.Vars()
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}
	require.Equal(t, []string{"x1", "x2", "s1", "e1", "a1", "a2"}, names)

	require.Equal(t, []float64{1, 1, 1, 0, 0, 0, 2}, f.T.Row(0))
	require.Equal(t, []float64{1, 1, 0, -1, 1, 0, 5}, f.T.Row(1))
	require.Equal(t, []float64{1, -1, 0, 0, 0, 1, 1}, f.T.Row(2))

	require.Equal(t, []int{2, 4, 5}, f.T.Basis())
	require.Equal(t, []float64{0, 0, 0, 0, 1, 1}, f.T.Cj())
	require.Equal(t, []float64{1, 2, 0, 0, 0, 0}, f.OriginalCj)
}

func TestBuild_TwoPhase_DerivedRowsUseMinimizeRule(t *testing.T) {
	f, err := formulate.Build(equalityProblem())
	require.NoError(t, err)

	// Phase-1 Zj over the artificial basis: Zj = column sums weighted by 1.
	require.Equal(t, []float64{3, 3, 1, 1, 7}, f.T.Zj())
	require.Equal(t, []float64{-3, -3, 0, 0}, f.T.CjZj())
}
