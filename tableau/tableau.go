// Package tableau implements the simplex tableau data structure and the
// derived-row (Zj / Cj−Zj) computation that drives pivot selection.
package tableau

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Tableau is the augmented matrix of a linear program in equality form,
// together with its column metadata and basis assignment.
//
// Layout:
//
//   - body is m × (n+1): one row per constraint over n variable columns,
//     with the right-hand side in the final column.
//   - vars and cj are aligned by position with the variable columns.
//   - basis holds, per constraint row, the index of the variable currently
//     basic in that row. After any completed pivot the basis column,
//     restricted to constraint rows, is an identity column — the defining
//     invariant of a valid simplex tableau.
//   - zj (length n+1, the RHS entry is the current objective value) and
//     cjzj (length n) are derived; they are stale after Pivot until the
//     next ComputeDerived call.
type Tableau struct {
	body  *mat.Dense
	vars  []Variable
	cj    []float64
	basis []int
	zj    []float64
	cjzj  []float64
}

// New builds a tableau from explicit parts and validates their shape.
//
// Arguments:
//
//   - vars: the n variable columns, in tableau order.
//   - cj:   objective coefficient per variable (length n).
//   - rows: m constraint rows, each of length n+1 (RHS last).
//   - basis: m entries, each a variable index in [0, n).
//
// Stage 1 (Validate): non-empty variables, aligned widths, basis range.
// Stage 2 (Prepare): copy rows into a dense m×(n+1) body.
// Stage 3 (Finalize): return the tableau with derived rows unset —
// callers run ComputeDerived once the solving direction is known.
// Complexity: O(m·n) time and memory.
func New(vars []Variable, cj []float64, rows [][]float64, basis []int) (*Tableau, error) {
	n := len(vars)
	if n == 0 {
		return nil, ErrNoVariables
	}
	if len(cj) != n {
		return nil, ErrShapeMismatch
	}
	if len(rows) == 0 || len(basis) != len(rows) {
		return nil, ErrShapeMismatch
	}
	for _, row := range rows {
		if len(row) != n+1 {
			return nil, ErrShapeMismatch
		}
	}
	for _, b := range basis {
		if b < 0 || b >= n {
			return nil, ErrBadBasis
		}
	}

	body := mat.NewDense(len(rows), n+1, nil)
	for i, row := range rows {
		body.SetRow(i, row)
	}

	return &Tableau{
		body:  body,
		vars:  append([]Variable(nil), vars...),
		cj:    append([]float64(nil), cj...),
		basis: append([]int(nil), basis...),
	}, nil
}

// Clone returns a deep copy of the tableau, derived rows included.
// Sessions save a clone of the initial tableau to support Reset.
func (t *Tableau) Clone() *Tableau {
	return &Tableau{
		body:  mat.DenseCopyOf(t.body),
		vars:  append([]Variable(nil), t.vars...),
		cj:    append([]float64(nil), t.cj...),
		basis: append([]int(nil), t.basis...),
		zj:    append([]float64(nil), t.zj...),
		cjzj:  append([]float64(nil), t.cjzj...),
	}
}

// NumRows returns the number of constraint rows.
func (t *Tableau) NumRows() int {
	r, _ := t.body.Dims()

	return r
}

// NumVars returns the number of variable columns (RHS excluded).
func (t *Tableau) NumVars() int {
	return len(t.vars)
}

// Vars returns a copy of the variable list in column order.
func (t *Tableau) Vars() []Variable {
	return append([]Variable(nil), t.vars...)
}

// Cj returns a copy of the objective coefficients.
func (t *Tableau) Cj() []float64 {
	return append([]float64(nil), t.cj...)
}

// Basis returns a copy of the basis assignment (variable index per row).
func (t *Tableau) Basis() []int {
	return append([]int(nil), t.basis...)
}

// Row returns a copy of constraint row i, RHS included.
func (t *Tableau) Row(i int) []float64 {
	return mat.Row(nil, i, t.body)
}

// RHS returns the right-hand side of constraint row i.
func (t *Tableau) RHS(i int) float64 {
	return t.body.At(i, len(t.vars))
}

// Zj returns a copy of the derived Zj row (length n+1; the final entry is
// the current objective value). Nil until ComputeDerived has run.
func (t *Tableau) Zj() []float64 {
	return append([]float64(nil), t.zj...)
}

// CjZj returns a copy of the derived Cj−Zj row (length n; the RHS column
// has no reduced cost). Nil until ComputeDerived has run.
func (t *Tableau) CjZj() []float64 {
	return append([]float64(nil), t.cjzj...)
}

// ObjectiveValue returns the Zj entry under the RHS column — the value of
// the current objective at the current basic solution.
func (t *Tableau) ObjectiveValue() float64 {
	if len(t.zj) == 0 {
		return 0
	}

	return t.zj[len(t.zj)-1]
}

// Solution returns the value of every variable at the current basic
// solution: the RHS of its basic row for basic variables, 0 otherwise.
func (t *Tableau) Solution() []float64 {
	out := make([]float64, len(t.vars))
	for r, b := range t.basis {
		out[b] = t.RHS(r)
	}

	return out
}

// ComputeDerived recomputes the Zj and Cj−Zj rows and applies the pivot
// selection rule for the given direction.
//
// Returns:
//
//   - entering: variable column chosen to enter the basis, or -1.
//   - leaving:  constraint row chosen to leave, or -1.
//   - status:   Improvable, OptimalReached or Unbounded.
//
// Rules (spelled out because every phase shares them):
//
//  1. Zj[j] = Σ over constraint rows r of Cj[basis[r]] · body[r][j],
//     including the RHS column (there Zj is the objective value).
//  2. (Cj−Zj)[j] = Cj[j] − Zj[j] for variable columns only.
//  3. Both derived rows snap |v| < EpsOptimal to exactly 0.
//  4. Entering (Maximize): stable argmax of Cj−Zj; optimal when the
//     maximum is ≤ EpsOptimal. Entering (Minimize): stable argmin;
//     optimal when the minimum is ≥ −EpsOptimal. Ties keep the first
//     column encountered.
//  5. Leaving: among rows with entering-column coefficient > EpsOptimal,
//     the strictly smallest ratio RHS/coefficient with ratio ≥ −EpsOptimal
//     (slightly negative ratios are admitted to tolerate rounding). Ties
//     keep the first row. No admissible row ⇒ Unbounded.
//
// Complexity: O(m·n) time, O(n) extra memory.
func (t *Tableau) ComputeDerived(dir Direction) (entering, leaving int, status Status) {
	m := t.NumRows()
	n := len(t.vars)

	// Objective coefficients of the current basis, in row order.
	cb := make([]float64, m)
	for r, b := range t.basis {
		cb[r] = t.cj[b]
	}
	cbVec := mat.NewVecDense(m, cb)

	t.zj = make([]float64, n+1)
	t.cjzj = make([]float64, n)
	for j := 0; j <= n; j++ {
		t.zj[j] = snap(mat.Dot(cbVec, t.body.ColView(j)), EpsOptimal)
	}
	for j := 0; j < n; j++ {
		t.cjzj[j] = snap(t.cj[j]-t.zj[j], EpsOptimal)
	}

	entering = t.selectEntering(dir)
	if entering < 0 {
		return -1, -1, OptimalReached
	}

	leaving = t.selectLeaving(entering)
	if leaving < 0 {
		return entering, -1, Unbounded
	}

	return entering, leaving, Improvable
}

// selectEntering applies rule 4: a stable scan for the best reduced cost.
func (t *Tableau) selectEntering(dir Direction) int {
	best := -1
	if dir == Maximize {
		bestVal := EpsOptimal
		for j, v := range t.cjzj {
			if v > bestVal {
				best, bestVal = j, v
			}
		}

		return best
	}

	bestVal := -EpsOptimal
	for j, v := range t.cjzj {
		if v < bestVal {
			best, bestVal = j, v
		}
	}

	return best
}

// selectLeaving applies rule 5: the minimal-ratio test over the entering column.
func (t *Tableau) selectLeaving(entering int) int {
	best := -1
	bestRatio := math.Inf(1)
	for r := 0; r < t.NumRows(); r++ {
		coeff := t.body.At(r, entering)
		if coeff <= EpsOptimal {
			continue
		}
		ratio := t.RHS(r) / coeff
		if ratio < -EpsOptimal {
			continue
		}
		if ratio < bestRatio {
			best, bestRatio = r, ratio
		}
	}

	return best
}

// snap flattens floating-point noise: values with |v| < eps become exactly 0.
func snap(v, eps float64) float64 {
	if math.Abs(v) < eps {
		return 0
	}

	return v
}
