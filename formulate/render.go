package formulate

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlsimplex/tableau"
)

// Equations renders a problem statement as human-readable lines: the
// objective, each constraint with its relational operator, and the
// non-negativity condition. The rendering is display-only — nothing in
// the engine consumes it.
func Equations(p Problem) []string {
	n := len(p.Objective)
	names := make([]string, n)
	for i := range names {
		names[i] = tableau.Var(tableau.Decision, i+1).Name
	}

	out := make([]string, 0, len(p.Constraints)+3)
	verb := "Maximize"
	if p.Dir == tableau.Minimize {
		verb = "Minimize"
	}
	out = append(out, verb+" Z = "+linear(p.Objective, names))
	out = append(out, "subject to:")
	for i, row := range p.Constraints {
		out = append(out, linear(row, names)+" "+p.Relations[i].String()+" "+num(p.RHS[i]))
	}
	out = append(out, strings.Join(names, ", ")+" ≥ 0")

	return out
}

// SystemEquations renders the current augmented system of a tableau: the
// active objective over all variables and each constraint row as an
// equality. The session layer re-derives this on every phase transition.
func SystemEquations(t *tableau.Tableau, dir tableau.Direction) []string {
	vars := t.Vars()
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}

	out := make([]string, 0, t.NumRows()+2)
	verb := "Maximize"
	if dir == tableau.Minimize {
		verb = "Minimize"
	}
	out = append(out, verb+" Z = "+linear(t.Cj(), names))
	for r := 0; r < t.NumRows(); r++ {
		row := t.Row(r)
		out = append(out, linear(row[:len(names)], names)+" = "+num(row[len(names)]))
	}
	out = append(out, strings.Join(names, ", ")+" ≥ 0")

	return out
}

// linear renders Σ coeff·name, skipping zero coefficients and eliding
// unit coefficients ("x1 - x2", not "1x1 - 1x2"). An all-zero combination
// renders as "0".
func linear(coeffs []float64, names []string) string {
	var b strings.Builder
	for i, c := range coeffs {
		if c == 0 {
			continue
		}
		switch {
		case b.Len() == 0 && c < 0:
			b.WriteString("-")
		case b.Len() > 0 && c < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if abs := num(absFloat(c)); abs != "1" {
			b.WriteString(abs)
		}
		b.WriteString(names[i])
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
