package guide

import (
	"fmt"

	"github.com/csheth/vectorlen/internal/form"
)

// Step is one short explanatory note shown under the formula.
type Step struct {
	Title       string
	Description string
}

// Metadata carries just enough context for tailoring the notes.
type Metadata struct {
	Mode      form.Mode
	Dimension form.Dimension
}

// Build returns the notes explaining how the length is obtained in the
// current mode.
func Build(meta Metadata) []Step {
	d := int(meta.Dimension)
	if !meta.Dimension.Valid() {
		d = int(form.Dimensions[0])
	}
	if meta.Mode == form.ModePoints {
		return []Step{
			{
				Title:       "Вектор через точки",
				Description: fmt.Sprintf("Вектор AB задано початковою точкою A(a₁; …; a%s) та кінцевою точкою B(b₁; …; b%s). Його координати дорівнюють різниці координат кінця та початку: bᵢ − aᵢ.", subscriptDigit(d), subscriptDigit(d)),
			},
			{
				Title:       "Довжина",
				Description: "Довжина вектора AB дорівнює відстані між точками A і B: квадратний корінь із суми квадратів різниць відповідних координат.",
			},
			{
				Title:       "Формат введення",
				Description: "Кожна координата є числом; дробову частину можна відокремити крапкою або комою, наприклад 2.5 або 2,5.",
			},
		}
	}
	return []Step{
		{
			Title:       "Вектор через координати",
			Description: fmt.Sprintf("Вектор a задано %d координатами (a₁; …; a%s) у %d-вимірному евклідовому просторі.", d, subscriptDigit(d), d),
		},
		{
			Title:       "Довжина",
			Description: "Довжина (модуль) вектора дорівнює квадратному кореню із суми квадратів його координат. Довжина нульового вектора дорівнює нулю.",
		},
		{
			Title:       "Формат введення",
			Description: "Кожна координата є числом; дробову частину можна відокремити крапкою або комою, наприклад 2.5 або 2,5.",
		},
	}
}

func subscriptDigit(d int) string {
	if d < 0 || d > 9 {
		return fmt.Sprintf("_%d", d)
	}
	return string(rune('₀' + d))
}
