package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/vectorlen/internal/form"
)

const heroTitle = "Довжина вектора"

const heroTagline = "Обчислення довжини вектора у 2–6-вимірному просторі."

const (
	dimensionLabel    = "Розмірність вектора:"
	modeLabel         = "Форма представлення вектора:"
	invalidDataLabel  = "Некоректні вхідні дані"
	resultPendingHint = "Натисніть Enter, щоб обчислити довжину."
)

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	slotInputWidth            = 8
	logPreviewLimit           = 160
)

type focusKind int

const (
	focusDimension focusKind = iota
	focusMode
	focusSlot
)

// focusTarget is one stop of the Tab ring.
type focusTarget struct {
	kind  focusKind
	group form.Group
	index int
}

type logEntry struct {
	Kind    string
	Content string
}

var (
	heroAccentColor        = lipgloss.Color("#ffb703")
	heroSecondaryTextColor = lipgloss.Color("#8d99ae")

	heroTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor)
	taglineStyle       = lipgloss.NewStyle().Foreground(heroSecondaryTextColor).Italic(true)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	labelStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#d9d9d9")).Padding(0, 1)
	selectFocusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	formulaBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
	resultStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a3be8c"))
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle           = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	legendBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
	helpBoxStyle       = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#7f5af0")).Padding(1, 2)
)
