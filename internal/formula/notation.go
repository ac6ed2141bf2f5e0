package formula

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/csheth/vectorlen/internal/form"
)

// Notation builds the notation for s. Before a computation is requested it
// ends in a bare "=" waiting for the value; with a value it substitutes the
// parsed inputs; with invalid inputs only the symbolic formula remains.
func Notation(s form.State) string {
	symbolic := Symbolic(s.Mode(), s.Dimension())
	display := form.Present(s)
	switch display.Kind {
	case form.DisplayPlaceholder:
		return symbolic + " ="
	case form.DisplayInvalid:
		return symbolic
	}
	ops, ok := form.Operands(s)
	if !ok {
		return symbolic
	}
	var terms []string
	if s.Mode() == form.ModePoints {
		start, end := ops[0], ops[1]
		for i := range end {
			terms = append(terms, fmt.Sprintf("(%s - %s)^2", FormatNumber(end[i]), wrapNegative(start[i])))
		}
	} else {
		for _, v := range ops[0] {
			terms = append(terms, wrapNegative(v)+"^2")
		}
	}
	return fmt.Sprintf("%s = \\sqrt{%s} = %s", symbolic, strings.Join(terms, " + "), FormatNumber(display.Value))
}

// Symbolic returns the formula in terms of component names only.
func Symbolic(mode form.Mode, d form.Dimension) string {
	terms := make([]string, 0, int(d))
	for i := 1; i <= int(d); i++ {
		if mode == form.ModePoints {
			terms = append(terms, fmt.Sprintf("(b_%d - a_%d)^2", i, i))
		} else {
			terms = append(terms, fmt.Sprintf("a_%d^2", i))
		}
	}
	lhs := `\left|\vec{a}\right|`
	if mode == form.ModePoints {
		lhs = `\left|\overline{AB}\right|`
	}
	return fmt.Sprintf("%s = \\sqrt{%s}", lhs, strings.Join(terms, " + "))
}

// FormatNumber prints v with at most four decimals and no trailing zeros.
// Magnitudes of 1e15 and above have no fractional digits left to round.
func FormatNumber(v float64) string {
	rounded := v
	if math.Abs(v) < 1e15 {
		rounded = math.Round(v*1e4) / 1e4
	}
	if rounded == 0 {
		// drop negative zero
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func wrapNegative(v float64) string {
	text := FormatNumber(v)
	if strings.HasPrefix(text, "-") {
		return "(" + text + ")"
	}
	return text
}
