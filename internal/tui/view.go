package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/vectorlen/internal/form"
	"github.com/csheth/vectorlen/internal/formula"
	"github.com/csheth/vectorlen/internal/guide"
)

func (m *model) View() string {
	parts := []string{
		m.heroView(),
		m.selectorsView(),
		m.inputsView(),
		m.resultView(),
		m.notesView(),
	}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	if m.helpVisible {
		parts = append(parts, m.keyLegendView(), m.helpView())
	}
	parts = append(parts, m.sessionMeterView(), m.footerView())
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		heroTitleStyle.Render(heroTitle),
		taglineStyle.Render(heroTagline),
	)
}

func (m *model) selectorsView() string {
	target := m.focusTarget()
	dimension := selectorView(form.DimensionOptions(), fmt.Sprintf("%d", int(m.state.Dimension())), target.kind == focusDimension)
	mode := selectorView(form.ModeOptions(), string(m.state.Mode()), target.kind == focusMode)
	return strings.Join([]string{
		labelStyle.Render(dimensionLabel) + " " + dimension,
		labelStyle.Render(modeLabel) + " " + mode,
	}, "\n")
}

// selectorView renders the current option of a select widget.
func selectorView(options []form.Option, value string, focused bool) string {
	label := value
	for _, option := range options {
		if option.Value == value {
			label = option.Label
			break
		}
	}
	if focused {
		return selectFocusStyle.Render("‹ " + label + " ›")
	}
	return selectStyle.Render(label)
}

func (m *model) inputsView() string {
	if m.state.Mode() == form.ModePoints {
		return joinNonEmpty([]string{
			m.groupView("Початкова точка A", form.GroupStart),
			m.groupView("Кінцева точка B", form.GroupEnd),
		})
	}
	return m.groupView("Координати вектора a", form.GroupVector)
}

func (m *model) groupView(title string, g form.Group) string {
	cells := make([]string, 0, len(m.inputs[g]))
	for i := range m.inputs[g] {
		cells = append(cells, m.inputs[g][i].View())
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, interleave(cells, "  ")...)
	return sectionHeaderStyle.Render(title) + "\n" + row
}

func (m *model) resultView() string {
	notation := formula.Notation(m.state)
	rendered := formula.Safe(m.renderer(true), notation, true)
	lines := []string{formulaBoxStyle.Render(rendered)}
	switch display := form.Present(m.state); display.Kind {
	case form.DisplayValue:
		lines = append(lines, resultStyle.Render(fmt.Sprintf("Довжина вектора: %s", formula.FormatNumber(display.Value))))
	case form.DisplayInvalid:
		lines = append(lines, errorStyle.Render(invalidDataLabel))
	}
	return strings.Join(lines, "\n")
}

func (m *model) notesView() string {
	steps := guide.Build(guide.Metadata{Mode: m.state.Mode(), Dimension: m.state.Dimension()})
	wrap := m.wrapWidth(2)
	lines := make([]string, 0, len(steps))
	for _, step := range steps {
		text := wordwrap.String(step.Title+". "+step.Description, wrap)
		lines = append(lines, helperStyle.Render(text))
	}
	return strings.Join(lines, "\n")
}

func (m *model) footerView() string {
	m.refreshLogIfDirty()
	return joinNonEmpty([]string{
		sectionHeaderStyle.Render("Журнал сесії"),
		m.logViewport.View(),
	})
}

func (m *model) sessionMeterView() string {
	outcome := "результат приховано"
	switch form.Present(m.state).Kind {
	case form.DisplayValue:
		outcome = "результат готовий"
	case form.DisplayInvalid:
		outcome = "некоректні дані"
	}
	stats := []string{
		fmt.Sprintf("Розмірність %d", int(m.state.Dimension())),
		m.state.Mode().Label(),
		fmt.Sprintf("Обчислень %d", m.computeCount),
		outcome,
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) keyLegendView() string {
	hints := m.keys.legend()
	rows := []string{sectionHeaderStyle.Render("Клавіші")}
	const columns = 3
	for i := 0; i < len(hints); i += columns {
		end := i + columns
		if end > len(hints) {
			end = len(hints)
		}
		var cells []string
		for _, hint := range hints[i:end] {
			help := hint.Help()
			k := keyStyle.Render(help.Key)
			desc := keyDescStyle.Render(" " + help.Desc + "  ")
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, k, desc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func (m *model) helpView() string {
	lines := []string{
		sectionHeaderStyle.Render("Як користуватися"),
		helperStyle.Render("• Tab і Shift+Tab перемикають поля; ← / → змінюють розмірність або форму представлення."),
		helperStyle.Render("• введіть координати числами, дробову частину можна відокремити крапкою або комою."),
		helperStyle.Render("• Enter обчислює довжину; будь-яка зміна приховує попередній результат."),
		helperStyle.Render("• Ctrl+Y копіює результат, F1 ховає цю підказку, Esc або Ctrl+C завершують роботу."),
	}
	return helpBoxStyle.Render(strings.Join(lines, "\n"))
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

func interleave(items []string, sep string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}
