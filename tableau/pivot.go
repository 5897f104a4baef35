package tableau

import "math"

// Pivot performs one Gauss–Jordan elimination step on (row, col): the
// entering variable at column col replaces the basic variable of row row.
//
// Stage 1 (Validate): indices in range, pivot element ≥ EpsPivot in
// magnitude. Nothing is mutated on failure — the caller's tableau stays at
// the pre-pivot state, so a degenerate pivot is recoverable.
// Stage 2 (Normalize): divide the pivot row by the pivot element, snapping
// |v| < EpsPivot to 0.
// Stage 3 (Eliminate): for every other constraint row subtract
// factor × pivotRow where factor is that row's entering-column coefficient;
// rows whose factor is already ~0 are skipped; results snap below EpsPivot.
// Stage 4 (Rebase): record col as the basic variable of row.
//
// The derived Zj / Cj−Zj rows are NOT touched here; callers recompute them
// via ComputeDerived, which keeps Pivot a pure row transformation.
// Complexity: O(m·n) time, O(1) extra memory.
func (t *Tableau) Pivot(row, col int) error {
	m := t.NumRows()
	n := len(t.vars)
	if row < 0 || row >= m || col < 0 || col >= n {
		return ErrOutOfRange
	}

	pivot := t.body.At(row, col)
	if math.Abs(pivot) < EpsPivot {
		return ErrDegeneratePivot
	}

	// Normalize the pivot row in place.
	pr := t.body.RawRowView(row)
	for j := range pr {
		pr[j] = snap(pr[j]/pivot, EpsPivot)
	}

	// Eliminate the entering column from every other row.
	for r := 0; r < m; r++ {
		if r == row {
			continue
		}
		factor := t.body.At(r, col)
		if math.Abs(factor) < EpsPivot {
			continue
		}
		tr := t.body.RawRowView(r)
		for j := range tr {
			tr[j] = snap(tr[j]-factor*pr[j], EpsPivot)
		}
	}

	t.basis[row] = col

	return nil
}
