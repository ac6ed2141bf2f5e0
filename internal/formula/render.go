// Package formula renders the small TeX dialect used by the calculator into
// terminal text, and builds the notation shown for a form state.
package formula

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// InvalidPlaceholder replaces any notation the renderer cannot parse.
const InvalidPlaceholder = "Invalid LaTeX"

// ErrMalformed is wrapped by every parse failure.
var ErrMalformed = errors.New("formula: malformed notation")

// Renderer turns a notation string into displayable markup.
type Renderer interface {
	Render(notation string, block bool) (string, error)
}

// TermRenderer renders notation as Unicode text. Block output is centered
// within Width columns when Width is positive.
type TermRenderer struct {
	Width int
}

// Render implements Renderer.
func (r TermRenderer) Render(notation string, block bool) (string, error) {
	p := &parser{src: []rune(notation)}
	out, err := p.sequence(false)
	if err != nil {
		return "", err
	}
	out = collapseSpaces(out)
	if block && r.Width > 0 {
		return lipgloss.PlaceHorizontal(r.Width, lipgloss.Center, out), nil
	}
	return out, nil
}

// Safe renders notation and substitutes InvalidPlaceholder on failure.
func Safe(r Renderer, notation string, block bool) string {
	out, err := r.Render(notation, block)
	if err != nil {
		return InvalidPlaceholder
	}
	return out
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", ErrMalformed, fmt.Sprintf(format, args...), p.pos)
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

// sequence consumes tokens until EOF, or until the closing brace of the
// current group when inGroup is set.
func (p *parser) sequence(inGroup bool) (string, error) {
	var b strings.Builder
	for !p.eof() {
		r := p.src[p.pos]
		switch r {
		case '}':
			if !inGroup {
				return "", p.errorf("unexpected '}'")
			}
			p.pos++
			return b.String(), nil
		case '^', '_':
			p.pos++
			arg, err := p.argument()
			if err != nil {
				return "", err
			}
			b.WriteString(script(arg, r == '^'))
		default:
			token, err := p.token()
			if err != nil {
				return "", err
			}
			b.WriteString(token)
		}
	}
	if inGroup {
		return "", p.errorf("missing '}'")
	}
	return b.String(), nil
}

// token consumes one group, command or plain rune.
func (p *parser) token() (string, error) {
	r := p.src[p.pos]
	switch r {
	case '{':
		p.pos++
		return p.sequence(true)
	case '\\':
		p.pos++
		return p.command()
	case '^', '_', '}':
		return "", p.errorf("unexpected %q", r)
	default:
		p.pos++
		return string(r), nil
	}
}

func (p *parser) argument() (string, error) {
	for !p.eof() && p.src[p.pos] == ' ' {
		p.pos++
	}
	if p.eof() {
		return "", p.errorf("missing argument")
	}
	return p.token()
}

func (p *parser) command() (string, error) {
	if p.eof() {
		return "", p.errorf("dangling '\\'")
	}
	start := p.pos
	for !p.eof() && unicode.IsLetter(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		// control symbol such as \, or \|
		p.pos++
	}
	name := string(p.src[start:p.pos])
	switch name {
	case "sqrt":
		arg, err := p.argument()
		if err != nil {
			return "", err
		}
		if len([]rune(arg)) == 1 {
			return "√" + arg, nil
		}
		return "√(" + arg + ")", nil
	case "vec":
		arg, err := p.argument()
		if err != nil {
			return "", err
		}
		return arg + "\u20d7", nil
	case "overline":
		arg, err := p.argument()
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for _, r := range arg {
			b.WriteRune(r)
			b.WriteRune('\u0305')
		}
		return b.String(), nil
	case "left", "right":
		return p.delimiter()
	case "text":
		if p.eof() || p.src[p.pos] != '{' {
			return "", p.errorf("\\text needs a braced argument")
		}
		p.pos++
		end := p.pos
		for end < len(p.src) && p.src[end] != '}' {
			end++
		}
		if end == len(p.src) {
			return "", p.errorf("missing '}'")
		}
		text := string(p.src[p.pos:end])
		p.pos = end + 1
		return text, nil
	case "cdot":
		return "·", nil
	case "times":
		return "×", nil
	case "ldots", "dots":
		return "…", nil
	case "quad":
		return "\u2003", nil
	case ",", " ":
		return " ", nil
	case "|":
		return "‖", nil
	case "{", "}":
		return name, nil
	default:
		return "", p.errorf("unknown command \\%s", name)
	}
}

func (p *parser) delimiter() (string, error) {
	if p.eof() {
		return "", p.errorf("missing delimiter")
	}
	r := p.src[p.pos]
	p.pos++
	switch r {
	case '|', '(', ')', '[', ']':
		return string(r), nil
	case '.':
		return "", nil
	case '\\':
		if !p.eof() && p.src[p.pos] == '|' {
			p.pos++
			return "‖", nil
		}
	}
	return "", p.errorf("bad delimiter %q", r)
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'o': 'ₒ', 'x': 'ₓ', 'i': 'ᵢ',
	'j': 'ⱼ', 'k': 'ₖ', 'n': 'ₙ',
}

// script maps arg onto Unicode super- or subscript runes, falling back to
// the caret/underscore form when a rune has no scripted variant.
func script(arg string, super bool) string {
	table, marker := subscripts, "_"
	if super {
		table, marker = superscripts, "^"
	}
	var b strings.Builder
	for _, r := range arg {
		mapped, ok := table[r]
		if !ok {
			if len([]rune(arg)) == 1 {
				return marker + arg
			}
			return marker + "(" + arg + ")"
		}
		b.WriteRune(mapped)
	}
	return b.String()
}

// collapseSpaces squeezes runs of ASCII spaces, which carry no meaning in
// math notation.
func collapseSpaces(s string) string {
	var b strings.Builder
	prevSpace := true
	for _, r := range s {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}
