package formula

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/vectorlen/internal/form"
)

func TestRenderInline(t *testing.T) {
	t.Parallel()

	cases := []struct {
		notation string
		want     string
	}{
		{`\sqrt{3^2 + 4^2}`, "√(3² + 4²)"},
		{`\sqrt 9`, "√9"},
		{`\left|\vec{a}\right| = \sqrt{a_1^2 + a_2^2}`, "|a\u20d7| = √(a₁² + a₂²)"},
		{`\left|\overline{AB}\right|`, "|A\u0305B\u0305|"},
		{`(b_1 - a_1)^2`, "(b₁ - a₁)²"},
		{`x^{y}`, "x^y"},
		{`x^{ab}`, "x^(ab)"},
		{`a   \cdot  b`, "a · b"},
		{`\text{len} = 1`, "len = 1"},
		{`\left. x \right\|`, "x ‖"},
	}
	for _, tc := range cases {
		got, err := TermRenderer{}.Render(tc.notation, false)
		if err != nil {
			t.Fatalf("Render(%q) error = %v", tc.notation, err)
		}
		if got != tc.want {
			t.Fatalf("Render(%q) = %q, want %q", tc.notation, got, tc.want)
		}
	}
}

func TestRenderRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, notation := range []string{
		`\sqrt{x`,
		`\foo`,
		`x^`,
		`a_`,
		`}`,
		`\`,
		`\left?`,
		`\text{open`,
		`{{a}`,
	} {
		_, err := TermRenderer{}.Render(notation, false)
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("Render(%q) error = %v, want ErrMalformed", notation, err)
		}
	}
}

func TestRenderBlockCenters(t *testing.T) {
	t.Parallel()

	got, err := TermRenderer{Width: 20}.Render(`\sqrt{4}`, true)
	if err != nil {
		t.Fatalf("Render error = %v", err)
	}
	if lipgloss.Width(got) != 20 {
		t.Fatalf("block width = %d, want 20 (%q)", lipgloss.Width(got), got)
	}
	if !strings.HasPrefix(got, " ") || strings.TrimSpace(got) != "√4" {
		t.Fatalf("block output not centered: %q", got)
	}

	inline, _ := TermRenderer{Width: 20}.Render(`\sqrt{4}`, false)
	if inline != "√4" {
		t.Fatalf("inline output should not be padded: %q", inline)
	}
}

func TestSafeReturnsPlaceholder(t *testing.T) {
	t.Parallel()

	if got := Safe(TermRenderer{}, `\unknown{x}`, true); got != InvalidPlaceholder {
		t.Fatalf("Safe = %q, want %q", got, InvalidPlaceholder)
	}
	if got := Safe(TermRenderer{}, `a_1`, false); got != "a₁" {
		t.Fatalf("Safe = %q, want a₁", got)
	}
}

func apply(t *testing.T, s form.State, actions ...form.Action) form.State {
	t.Helper()
	for _, action := range actions {
		var err error
		s, err = form.Apply(s, action)
		if err != nil {
			t.Fatalf("Apply(%T) error = %v", action, err)
		}
	}
	return s
}

func TestNotationStates(t *testing.T) {
	t.Parallel()

	s := form.New()
	symbolic := `\left|\vec{a}\right| = \sqrt{a_1^2 + a_2^2}`
	if got := Notation(s); got != symbolic+" =" {
		t.Fatalf("placeholder notation = %q", got)
	}

	s = apply(t, s,
		form.EditSlot{Group: form.GroupVector, Index: 0, Text: "3"},
		form.EditSlot{Group: form.GroupVector, Index: 1, Text: "-4"},
		form.RequestCompute{},
	)
	want := symbolic + ` = \sqrt{3^2 + (-4)^2} = 5`
	if got := Notation(s); got != want {
		t.Fatalf("value notation = %q, want %q", got, want)
	}
	rendered, err := TermRenderer{}.Render(Notation(s), false)
	if err != nil {
		t.Fatalf("render value notation: %v", err)
	}
	if rendered != "|a\u20d7| = √(a₁² + a₂²) = √(3² + (-4)²) = 5" {
		t.Fatalf("rendered = %q", rendered)
	}

	s = apply(t, s, form.EditSlot{Group: form.GroupVector, Index: 1, Text: "x"}, form.RequestCompute{})
	if got := Notation(s); got != symbolic {
		t.Fatalf("invalid notation = %q, want %q", got, symbolic)
	}
}

func TestNotationPoints(t *testing.T) {
	t.Parallel()

	s := apply(t, form.New(),
		form.SetMode{Mode: form.ModePoints},
		form.EditSlot{Group: form.GroupStart, Index: 0, Text: "-1"},
		form.EditSlot{Group: form.GroupEnd, Index: 0, Text: "2"},
		form.EditSlot{Group: form.GroupEnd, Index: 1, Text: "4"},
		form.RequestCompute{},
	)
	want := `\left|\overline{AB}\right| = \sqrt{(b_1 - a_1)^2 + (b_2 - a_2)^2} = \sqrt{(2 - (-1))^2 + (4 - 0)^2} = 5`
	if got := Notation(s); got != want {
		t.Fatalf("notation = %q, want %q", got, want)
	}
	if _, err := (TermRenderer{}).Render(Notation(s), true); err != nil {
		t.Fatalf("points notation should render: %v", err)
	}
}

func TestSymbolicCoversEveryDimension(t *testing.T) {
	t.Parallel()

	for _, d := range form.Dimensions {
		for _, m := range form.Modes {
			notation := Symbolic(m, d)
			if got := strings.Count(notation, "^2"); got != int(d) {
				t.Fatalf("Symbolic(%s, %d) has %d squared terms", m, d, got)
			}
			if _, err := (TermRenderer{}).Render(notation, false); err != nil {
				t.Fatalf("Symbolic(%s, %d) does not render: %v", m, d, err)
			}
		}
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		5:          "5",
		2.5:        "2.5",
		math.Sqrt2: "1.4142",
		-0.00001:   "0",
		12.345678:  "12.3457",
		-3:         "-3",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Fatalf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatNumberHugeFinite(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{1e15, 1e305, -math.MaxFloat64} {
		got := FormatNumber(v)
		if want := strconv.FormatFloat(v, 'f', -1, 64); got != want {
			t.Fatalf("FormatNumber(%g) = %q, want %q", v, got, want)
		}
	}
}
