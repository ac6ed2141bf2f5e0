// Package form models the calculator form as an explicit state value and a
// pure transition function, and derives the displayed result from it.
package form

import (
	"errors"
	"fmt"
)

// DefaultText is the value every coordinate slot takes after a dimension
// change.
const DefaultText = "0"

var (
	ErrUnsupportedDimension = errors.New("form: unsupported dimension")
	ErrUnknownMode          = errors.New("form: unknown mode")
	ErrUnknownGroup         = errors.New("form: unknown coordinate group")
	ErrSlotOutOfRange       = errors.New("form: coordinate slot out of range")
	ErrUnknownAction        = errors.New("form: unknown action")
)

// State is a snapshot of the form. The zero value is not usable; start from
// New. Every text group always holds exactly Dimension entries.
type State struct {
	dimension     Dimension
	mode          Mode
	vector        []string
	start         []string
	end           []string
	resultVisible bool
}

// New returns the initial state: two dimensions, coordinates mode, every
// slot "0" and the result hidden.
func New() State {
	return State{
		dimension: 2,
		mode:      ModeCoordinates,
		vector:    defaultTexts(2),
		start:     defaultTexts(2),
		end:       defaultTexts(2),
	}
}

func (s State) Dimension() Dimension { return s.dimension }
func (s State) Mode() Mode           { return s.mode }
func (s State) ResultVisible() bool  { return s.resultVisible }

// Texts returns a copy of the named group.
func (s State) Texts(g Group) []string {
	return append([]string(nil), s.group(g)...)
}

// Text returns a single slot, or "" when the slot does not exist.
func (s State) Text(g Group, index int) string {
	texts := s.group(g)
	if index < 0 || index >= len(texts) {
		return ""
	}
	return texts[index]
}

func (s State) group(g Group) []string {
	switch g {
	case GroupVector:
		return s.vector
	case GroupStart:
		return s.start
	case GroupEnd:
		return s.end
	default:
		return nil
	}
}

// Action is a user intent applied to a State by Apply.
type Action interface {
	isAction()
}

// SetDimension resets every group to Dimension default slots.
type SetDimension struct{ Dimension Dimension }

// SetMode switches between coordinates and points input.
type SetMode struct{ Mode Mode }

// EditSlot replaces the text of a single coordinate slot.
type EditSlot struct {
	Group Group
	Index int
	Text  string
}

// RequestCompute makes the result visible. Validation happens on read.
type RequestCompute struct{}

func (SetDimension) isAction()   {}
func (SetMode) isAction()        {}
func (EditSlot) isAction()       {}
func (RequestCompute) isAction() {}

// Apply returns the state that follows s after action. On error s is
// returned unchanged. The returned state never shares slices with s.
func Apply(s State, action Action) (State, error) {
	switch a := action.(type) {
	case SetDimension:
		if !a.Dimension.Valid() {
			return s, fmt.Errorf("%w: %d", ErrUnsupportedDimension, int(a.Dimension))
		}
		n := int(a.Dimension)
		return State{
			dimension: a.Dimension,
			mode:      s.mode,
			vector:    defaultTexts(n),
			start:     defaultTexts(n),
			end:       defaultTexts(n),
		}, nil
	case SetMode:
		if !a.Mode.Valid() {
			return s, fmt.Errorf("%w: %q", ErrUnknownMode, string(a.Mode))
		}
		next := s.clone()
		next.mode = a.Mode
		next.resultVisible = false
		return next, nil
	case EditSlot:
		if a.Group < GroupVector || a.Group > GroupEnd {
			return s, fmt.Errorf("%w: %s", ErrUnknownGroup, a.Group)
		}
		if a.Index < 0 || a.Index >= int(s.dimension) {
			return s, fmt.Errorf("%w: %s[%d] with dimension %d", ErrSlotOutOfRange, a.Group, a.Index, int(s.dimension))
		}
		next := s.clone()
		next.group(a.Group)[a.Index] = a.Text
		next.resultVisible = false
		return next, nil
	case RequestCompute:
		next := s.clone()
		next.resultVisible = true
		return next, nil
	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}
}

func (s State) clone() State {
	s.vector = append([]string(nil), s.vector...)
	s.start = append([]string(nil), s.start...)
	s.end = append([]string(nil), s.end...)
	return s
}

func defaultTexts(n int) []string {
	texts := make([]string, n)
	for i := range texts {
		texts[i] = DefaultText
	}
	return texts
}
