package tui

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/vectorlen/internal/form"
	"github.com/csheth/vectorlen/internal/formula"
)

type actionID string

const (
	actionCompute    actionID = "compute"
	actionCopyResult actionID = "copy"
	actionToggleHelp actionID = "help"
)

func (m *model) commandAvailable(id actionID) bool {
	switch id {
	case actionCompute, actionToggleHelp:
		return true
	case actionCopyResult:
		return form.Present(m.state).Kind == form.DisplayValue
	default:
		return false
	}
}

func (m *model) actionComputeCmd() tea.Cmd {
	if !m.dispatch(form.RequestCompute{}) {
		return nil
	}
	m.computeCount++
	display := form.Present(m.state)
	rendered := formula.Safe(m.renderer(false), formula.Notation(m.state), false)
	switch display.Kind {
	case form.DisplayValue:
		m.appendLog("result", rendered)
		m.infoMessage = fmt.Sprintf("Довжина: %s", formula.FormatNumber(display.Value))
	case form.DisplayInvalid:
		m.appendLog("invalid", fmt.Sprintf("%s: %s", invalidDataLabel, m.activeTextsSummary()))
		m.infoMessage = "Перевірте координати: кожне поле має містити число."
	}
	log.Printf("[tui] compute #%d mode=%s dim=%d outcome=%s", m.computeCount, m.state.Mode(), int(m.state.Dimension()), display.Kind)
	return nil
}

func (m *model) actionCopyResultCmd() tea.Cmd {
	if !m.commandAvailable(actionCopyResult) {
		m.infoMessage = "Немає результату для копіювання. Спершу натисніть Enter."
		return nil
	}
	value := formula.FormatNumber(form.Present(m.state).Value)
	if err := m.config.Clipboard(value); err != nil {
		m.errorMessage = fmt.Sprintf("clipboard error: %v", err)
		m.appendLog("error", m.errorMessage)
		return nil
	}
	m.infoMessage = fmt.Sprintf("Скопійовано %s до буфера обміну.", value)
	return nil
}

func (m *model) actionToggleHelpCmd() tea.Cmd {
	m.helpVisible = !m.helpVisible
	return nil
}

// renderer returns the configured formula renderer, or a terminal renderer
// sized to the current layout.
func (m *model) renderer(block bool) formula.Renderer {
	if m.config.Renderer != nil {
		return m.config.Renderer
	}
	if !block {
		return formula.TermRenderer{}
	}
	return formula.TermRenderer{Width: m.layout.viewportWidth - formulaBoxStyle.GetHorizontalFrameSize()}
}

func (m *model) activeTextsSummary() string {
	summary := ""
	for i, g := range form.ActiveGroups(m.state.Mode()) {
		if i > 0 {
			summary += "; "
		}
		summary += fmt.Sprintf("%q", m.state.Texts(g))
	}
	return previewText(summary, logPreviewLimit)
}

func (m *model) appendLog(kind, content string) {
	m.logEntries = append(m.logEntries, logEntry{Kind: kind, Content: content})
	m.logDirty = true
}
