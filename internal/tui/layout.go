package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

type pageLayout struct {
	windowWidth   int
	windowHeight  int
	viewportWidth int
	logHeight     int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth: 80,
		logHeight:     6,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth
	// selectors, inputs, formula box, notes and status bar
	const chrome = 24
	usable := height - chrome
	l.logHeight = usable / 2
	if l.logHeight < 3 {
		l.logHeight = 3
	}
}

func (m *model) buildLogContent() string {
	var cb strings.Builder
	if len(m.logEntries) == 0 {
		cb.WriteString(helperStyle.Render("Тут з'являтимуться результати обчислень."))
		return cb.String()
	}
	wrap := m.wrapWidth(4)
	for idx, entry := range m.logEntries {
		cb.WriteString(helperStyle.Render(logLabel(entry.Kind)))
		cb.WriteRune('\n')
		body := wordwrap.String(entry.Content, wrap)
		if entry.Kind == "error" || entry.Kind == "invalid" {
			body = errorStyle.Render(body)
		}
		cb.WriteString(indentMultiline(body, "  "))
		if idx < len(m.logEntries)-1 {
			cb.WriteRune('\n')
		}
	}
	return cb.String()
}

func (m *model) refreshLogIfDirty() {
	if !m.logDirty {
		return
	}
	m.logDirty = false
	m.logViewport.SetContent(m.buildLogContent())
	m.logViewport.GotoBottom()
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func (m *model) wrapWidth(padding int) int {
	width := m.layout.viewportWidth
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}

func previewText(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return strings.TrimSpace(string(runes[:limit])) + "…"
}

func logLabel(kind string) string {
	switch kind {
	case "result":
		return "Результат"
	case "invalid":
		return "Помилка введення"
	case "error":
		return "Помилка"
	default:
		return kind
	}
}
