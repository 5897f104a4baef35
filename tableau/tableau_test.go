// Package tableau_test validates tableau construction, the derived-row
// computation and the pivot selection rules, including tie-breaks and the
// unbounded case.
package tableau_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvlsimplex/tableau"
)

// standardVars returns n decision + m slack variables in tableau order.
func standardVars(n, m int) []tableau.Variable {
	vars := make([]tableau.Variable, 0, n+m)
	for i := 1; i <= n; i++ {
		vars = append(vars, tableau.Var(tableau.Decision, i))
	}
	for i := 1; i <= m; i++ {
		vars = append(vars, tableau.Var(tableau.Slack, i))
	}

	return vars
}

// wyndor is the classic max 3x1+5x2 test problem in standard form:
// x1 ≤ 4, 2x2 ≤ 12, 3x1+2x2 ≤ 18.
func wyndor(t *testing.T) *tableau.Tableau {
	t.Helper()
	tb, err := tableau.New(
		standardVars(2, 3),
		[]float64{3, 5, 0, 0, 0},
		[][]float64{
			{1, 0, 1, 0, 0, 4},
			{0, 2, 0, 1, 0, 12},
			{3, 2, 0, 0, 1, 18},
		},
		[]int{2, 3, 4},
	)
	require.NoError(t, err)

	return tb
}

// ------------------------------------------------------------------------
// 1. Construction validation
// ------------------------------------------------------------------------

func TestNew_EmptyVariables(t *testing.T) {
	_, err := tableau.New(nil, nil, nil, nil)
	require.ErrorIs(t, err, tableau.ErrNoVariables)
}

func TestNew_CjLengthMismatch(t *testing.T) {
	_, err := tableau.New(standardVars(2, 0), []float64{1}, nil, nil)
	require.ErrorIs(t, err, tableau.ErrShapeMismatch)
}

func TestNew_NoRows(t *testing.T) {
	_, err := tableau.New(standardVars(2, 0), []float64{1, 1}, nil, nil)
	require.ErrorIs(t, err, tableau.ErrShapeMismatch)
}

func TestNew_RowWidthMismatch(t *testing.T) {
	_, err := tableau.New(
		standardVars(2, 0),
		[]float64{1, 1},
		[][]float64{{1, 2}}, // missing the RHS column
		[]int{0},
	)
	require.ErrorIs(t, err, tableau.ErrShapeMismatch)
}

func TestNew_BasisLengthMismatch(t *testing.T) {
	_, err := tableau.New(
		standardVars(2, 0),
		[]float64{1, 1},
		[][]float64{{1, 2, 3}},
		[]int{0, 1},
	)
	require.ErrorIs(t, err, tableau.ErrShapeMismatch)
}

func TestNew_BasisOutOfRange(t *testing.T) {
	_, err := tableau.New(
		standardVars(2, 0),
		[]float64{1, 1},
		[][]float64{{1, 2, 3}},
		[]int{5},
	)
	require.ErrorIs(t, err, tableau.ErrBadBasis)
}

// ------------------------------------------------------------------------
// 2. Derived rows and entering/leaving selection
// ------------------------------------------------------------------------

func TestComputeDerived_InitialTableau(t *testing.T) {
	tb := wyndor(t)
	entering, leaving, status := tb.ComputeDerived(tableau.Maximize)

	require.Equal(t, tableau.Improvable, status)
	// With an all-slack basis Zj is zero everywhere and Cj−Zj equals Cj.
	require.Equal(t, []float64{0, 0, 0, 0, 0, 0}, tb.Zj())
	require.Equal(t, []float64{3, 5, 0, 0, 0}, tb.CjZj())
	// Largest reduced cost is x2 (5); ratio test: 12/2=6 beats 18/2=9.
	require.Equal(t, 1, entering)
	require.Equal(t, 1, leaving)
	require.Equal(t, 0.0, tb.ObjectiveValue())
}

func TestComputeDerived_EnteringTieBreaksToFirstColumn(t *testing.T) {
	tb, err := tableau.New(
		standardVars(2, 1),
		[]float64{4, 4, 0},
		[][]float64{{1, 1, 1, 10}},
		[]int{2},
	)
	require.NoError(t, err)

	entering, _, status := tb.ComputeDerived(tableau.Maximize)
	require.Equal(t, tableau.Improvable, status)
	require.Equal(t, 0, entering, "equal reduced costs must keep the first column")
}

func TestComputeDerived_LeavingTieBreaksToFirstRow(t *testing.T) {
	tb, err := tableau.New(
		standardVars(1, 2),
		[]float64{1, 0, 0},
		[][]float64{
			{2, 1, 0, 6}, // ratio 3
			{1, 0, 1, 3}, // ratio 3 as well
		},
		[]int{1, 2},
	)
	require.NoError(t, err)

	_, leaving, status := tb.ComputeDerived(tableau.Maximize)
	require.Equal(t, tableau.Improvable, status)
	require.Equal(t, 0, leaving, "equal ratios must keep the first row")
}

func TestComputeDerived_MinimizeRule(t *testing.T) {
	tb, err := tableau.New(
		standardVars(2, 1),
		[]float64{-2, 3, 0},
		[][]float64{{1, 1, 1, 4}},
		[]int{2},
	)
	require.NoError(t, err)

	entering, leaving, status := tb.ComputeDerived(tableau.Minimize)
	require.Equal(t, tableau.Improvable, status)
	require.Equal(t, 0, entering, "minimize enters the most negative reduced cost")
	require.Equal(t, 0, leaving)
}

func TestComputeDerived_OptimalWhenNoImprovingColumn(t *testing.T) {
	tb, err := tableau.New(
		standardVars(2, 1),
		[]float64{-1, -2, 0},
		[][]float64{{1, 1, 1, 4}},
		[]int{2},
	)
	require.NoError(t, err)

	entering, leaving, status := tb.ComputeDerived(tableau.Maximize)
	require.Equal(t, tableau.OptimalReached, status)
	require.Equal(t, -1, entering)
	require.Equal(t, -1, leaving)
}

func TestComputeDerived_UnboundedColumn(t *testing.T) {
	// max x1 subject to x1 − x2 ≤ 1: after x1 enters, x2 has a positive
	// reduced cost but no positive coefficient in any row.
	tb, err := tableau.New(
		standardVars(2, 1),
		[]float64{1, 0, 0},
		[][]float64{{1, -1, 1, 1}},
		[]int{2},
	)
	require.NoError(t, err)

	entering, leaving, status := tb.ComputeDerived(tableau.Maximize)
	require.Equal(t, tableau.Improvable, status)
	require.NoError(t, tb.Pivot(leaving, entering))

	entering, leaving, status = tb.ComputeDerived(tableau.Maximize)
	require.Equal(t, tableau.Unbounded, status)
	require.Equal(t, 1, entering, "the unbounded column must still be reported")
	require.Equal(t, -1, leaving)
}

func TestComputeDerived_SnapsNoiseToZero(t *testing.T) {
	tb, err := tableau.New(
		standardVars(1, 1),
		[]float64{1e-11, 0}, // below EpsOptimal: must read as exactly 0
		[][]float64{{1, 1, 5}},
		[]int{1},
	)
	require.NoError(t, err)

	_, _, status := tb.ComputeDerived(tableau.Maximize)
	require.Equal(t, tableau.OptimalReached, status)
	require.Equal(t, 0.0, tb.CjZj()[0])
}

// ------------------------------------------------------------------------
// 3. Accessors and solution extraction
// ------------------------------------------------------------------------

func TestSolution_BasicVariablesReadRHS(t *testing.T) {
	tb := wyndor(t)
	tb.ComputeDerived(tableau.Maximize)

	sol := tb.Solution()
	// All-slack basis: decision variables are 0, slacks carry the RHS.
	require.Equal(t, []float64{0, 0, 4, 12, 18}, sol)
}

func TestClone_IsIndependent(t *testing.T) {
	tb := wyndor(t)
	tb.ComputeDerived(tableau.Maximize)

	cp := tb.Clone()
	require.NoError(t, tb.Pivot(1, 1))

	require.Equal(t, []float64{0, 2, 0, 1, 0, 12}, cp.Row(1), "clone must not see pivots on the original")
	require.True(t, scalar.EqualWithinAbs(tb.Row(1)[1], 1, 1e-9))
}
