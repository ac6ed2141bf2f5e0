package form

import "fmt"

// Dimension is the number of components of every vector and point in a
// session.
type Dimension int

// Dimensions lists the supported dimensions in selector order.
var Dimensions = []Dimension{2, 3, 4, 5, 6}

// Valid reports whether d is one of the supported dimensions.
func (d Dimension) Valid() bool {
	for _, candidate := range Dimensions {
		if d == candidate {
			return true
		}
	}
	return false
}

// Mode selects how the vector is entered.
type Mode string

const (
	// ModeCoordinates reads the vector directly from its components.
	ModeCoordinates Mode = "coords"
	// ModePoints reads the vector as the displacement between two points.
	ModePoints Mode = "points"
)

// Modes lists the supported modes in selector order.
var Modes = []Mode{ModeCoordinates, ModePoints}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeCoordinates || m == ModePoints
}

// Label returns the human-readable selector label.
func (m Mode) Label() string {
	switch m {
	case ModeCoordinates:
		return "Координатами"
	case ModePoints:
		return "Точками"
	default:
		return string(m)
	}
}

// ParseMode resolves a selector value into a Mode.
func ParseMode(value string) (Mode, error) {
	m := Mode(value)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
	return m, nil
}

// Group names one of the three coordinate text groups.
type Group int

const (
	GroupVector Group = iota
	GroupStart
	GroupEnd
)

func (g Group) String() string {
	switch g {
	case GroupVector:
		return "vector"
	case GroupStart:
		return "start"
	case GroupEnd:
		return "end"
	default:
		return fmt.Sprintf("group(%d)", int(g))
	}
}

// ActiveGroups returns the groups that feed the result in mode m.
func ActiveGroups(m Mode) []Group {
	if m == ModePoints {
		return []Group{GroupStart, GroupEnd}
	}
	return []Group{GroupVector}
}

// Option is one entry of a selector widget.
type Option struct {
	Value string
	Label string
}

// DimensionOptions returns the dimension selector entries.
func DimensionOptions() []Option {
	options := make([]Option, 0, len(Dimensions))
	for _, d := range Dimensions {
		value := fmt.Sprintf("%d", int(d))
		options = append(options, Option{Value: value, Label: value})
	}
	return options
}

// ModeOptions returns the mode selector entries.
func ModeOptions() []Option {
	options := make([]Option, 0, len(Modes))
	for _, m := range Modes {
		options = append(options, Option{Value: string(m), Label: m.Label()})
	}
	return options
}
