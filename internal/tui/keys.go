package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Left     key.Binding
	Right    key.Binding
	Compute  key.Binding
	Copy     key.Binding
	Help     key.Binding
	HelpRune key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("Esc", "Вийти"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("Tab/↓", "Наступне поле"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("Shift+Tab/↑", "Попереднє поле"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "Попередній варіант"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", " "),
			key.WithHelp("→", "Наступний варіант"),
		),
		Compute: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Обчислити"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("Ctrl+Y", "Копіювати результат"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "Підказка"),
		),
		HelpRune: key.NewBinding(
			key.WithKeys("?"),
		),
	}
}

// legend lists the bindings shown in the cheatsheet, in display order.
func (k keyMap) legend() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Left, k.Right, k.Compute, k.Copy, k.Help, k.Quit}
}
