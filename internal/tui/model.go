package tui

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/vectorlen/internal/form"
	"github.com/csheth/vectorlen/internal/formula"
)

// Config wires runtime options into the TUI program.
type Config struct {
	// Dimension and Mode seed the form; zero values keep the defaults.
	Dimension form.Dimension
	Mode      form.Mode
	// Renderer overrides the terminal formula renderer.
	Renderer formula.Renderer
	// Clipboard receives copied results. Defaults to the system clipboard.
	Clipboard func(string) error
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.Clipboard == nil {
		config.Clipboard = clipboard.WriteAll
	}
	vp := viewport.New(80, 6)

	m := &model{
		config:      config,
		state:       form.New(),
		keys:        newKeyMap(),
		layout:      newPageLayout(),
		logViewport: vp,
		logDirty:    true,
		infoMessage: resultPendingHint,
	}
	if config.Dimension != 0 {
		m.dispatch(form.SetDimension{Dimension: config.Dimension})
	}
	if config.Mode != "" {
		m.dispatch(form.SetMode{Mode: config.Mode})
	}
	m.rebuildInputs()
	return m
}

type model struct {
	config Config
	state  form.State
	keys   keyMap
	layout pageLayout

	inputs      [3][]textinput.Model
	focus       int
	logViewport viewport.Model
	logEntries  []logEntry
	logDirty    bool

	infoMessage  string
	errorMessage string
	helpVisible  bool
	computeCount int
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.logViewport.Width = m.layout.viewportWidth
		m.logViewport.Height = m.layout.logHeight
		m.logDirty = true
		return m, nil
	}
	if input := m.focusedInput(); input != nil {
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	target := m.focusTarget()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.actionToggleHelpCmd()
		return nil
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	case key.Matches(msg, m.keys.Compute):
		return m.actionComputeCmd()
	case key.Matches(msg, m.keys.Copy):
		return m.actionCopyResultCmd()
	}
	if target.kind != focusSlot {
		switch {
		case key.Matches(msg, m.keys.Left):
			m.cycleSelector(target.kind, -1)
		case key.Matches(msg, m.keys.Right):
			m.cycleSelector(target.kind, 1)
		case key.Matches(msg, m.keys.HelpRune):
			m.actionToggleHelpCmd()
		}
		return nil
	}
	return m.editSlot(target, msg)
}

// editSlot forwards a key to the focused text input and records the new
// text in the form state when it changed.
func (m *model) editSlot(target focusTarget, msg tea.KeyMsg) tea.Cmd {
	input := &m.inputs[target.group][target.index]
	before := input.Value()
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if after := input.Value(); after != before {
		m.dispatch(form.EditSlot{Group: target.group, Index: target.index, Text: after})
	}
	return cmd
}

// dispatch applies action to the form state. Rejected actions leave the
// state untouched and surface in the error line.
func (m *model) dispatch(action form.Action) bool {
	next, err := form.Apply(m.state, action)
	if err != nil {
		log.Printf("[form] %T rejected: %v", action, err)
		m.errorMessage = err.Error()
		return false
	}
	m.state = next
	m.errorMessage = ""
	return true
}

func (m *model) cycleSelector(kind focusKind, delta int) {
	switch kind {
	case focusDimension:
		current := indexOf(len(form.Dimensions), func(i int) bool { return form.Dimensions[i] == m.state.Dimension() })
		next := form.Dimensions[wrapIndex(current+delta, len(form.Dimensions))]
		if m.dispatch(form.SetDimension{Dimension: next}) {
			m.rebuildInputs()
			m.infoMessage = fmt.Sprintf("Розмірність змінено на %d; координати скинуто.", int(next))
		}
	case focusMode:
		current := indexOf(len(form.Modes), func(i int) bool { return form.Modes[i] == m.state.Mode() })
		next := form.Modes[wrapIndex(current+delta, len(form.Modes))]
		if m.dispatch(form.SetMode{Mode: next}) {
			m.infoMessage = fmt.Sprintf("Форма представлення: %s.", next.Label())
		}
	}
}

// rebuildInputs recreates every slot input from the form state. Called after
// a dimension change, when slot counts differ.
func (m *model) rebuildInputs() {
	for _, g := range []form.Group{form.GroupVector, form.GroupStart, form.GroupEnd} {
		texts := m.state.Texts(g)
		inputs := make([]textinput.Model, len(texts))
		for i, text := range texts {
			input := textinput.New()
			input.Prompt = slotPrompt(g, i)
			// unlimited: oversized pastes must reach the form intact
			input.CharLimit = 0
			input.Width = slotInputWidth
			input.SetValue(text)
			inputs[i] = input
		}
		m.inputs[g] = inputs
	}
	targets := m.focusTargets()
	if m.focus >= len(targets) {
		m.focus = len(targets) - 1
	}
	m.applyFocus()
}

// focusTargets lists the Tab ring for the current mode and dimension.
func (m *model) focusTargets() []focusTarget {
	targets := []focusTarget{{kind: focusDimension}, {kind: focusMode}}
	for _, g := range form.ActiveGroups(m.state.Mode()) {
		for i := 0; i < int(m.state.Dimension()); i++ {
			targets = append(targets, focusTarget{kind: focusSlot, group: g, index: i})
		}
	}
	return targets
}

func (m *model) focusTarget() focusTarget {
	targets := m.focusTargets()
	if m.focus < 0 || m.focus >= len(targets) {
		return targets[0]
	}
	return targets[m.focus]
}

func (m *model) focusedInput() *textinput.Model {
	target := m.focusTarget()
	if target.kind != focusSlot {
		return nil
	}
	return &m.inputs[target.group][target.index]
}

func (m *model) moveFocus(delta int) tea.Cmd {
	targets := m.focusTargets()
	m.focus = wrapIndex(m.focus+delta, len(targets))
	return m.applyFocus()
}

// applyFocus focuses the input under the cursor and blurs all others.
func (m *model) applyFocus() tea.Cmd {
	target := m.focusTarget()
	var cmd tea.Cmd
	for g := range m.inputs {
		for i := range m.inputs[g] {
			input := &m.inputs[g][i]
			if target.kind == focusSlot && form.Group(g) == target.group && i == target.index {
				cmd = input.Focus()
				input.CursorEnd()
				continue
			}
			input.Blur()
		}
	}
	return cmd
}

func slotPrompt(g form.Group, index int) string {
	name := "a"
	if g == form.GroupEnd {
		name = "b"
	}
	return fmt.Sprintf("%s%c = ", name, '₁'+rune(index))
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func indexOf(n int, match func(int) bool) int {
	for i := 0; i < n; i++ {
		if match(i) {
			return i
		}
	}
	return 0
}
