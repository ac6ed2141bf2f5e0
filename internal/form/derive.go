package form

import (
	"github.com/csheth/vectorlen/internal/coords"
	"github.com/csheth/vectorlen/internal/geometry"
)

// Result is the derived length. Defined is false when the active inputs do
// not all parse.
type Result struct {
	Value   float64
	Defined bool
}

// Derive validates the groups active in the current mode and computes the
// length. It does not look at ResultVisible.
func Derive(s State) Result {
	if s.mode == ModePoints {
		start, ok := coords.ParseVector(s.start)
		if !ok {
			return Result{}
		}
		end, ok := coords.ParseVector(s.end)
		if !ok {
			return Result{}
		}
		return Result{Value: geometry.PointDistance(start, end), Defined: true}
	}
	vector, ok := coords.ParseVector(s.vector)
	if !ok {
		return Result{}
	}
	return Result{Value: geometry.VectorLength(vector), Defined: true}
}

// DisplayKind enumerates what the result area shows.
type DisplayKind int

const (
	// DisplayPlaceholder is shown until the user asks for a computation.
	DisplayPlaceholder DisplayKind = iota
	// DisplayValue carries a computed length.
	DisplayValue
	// DisplayInvalid flags that some active input did not parse.
	DisplayInvalid
)

func (k DisplayKind) String() string {
	switch k {
	case DisplayValue:
		return "value"
	case DisplayInvalid:
		return "invalid"
	default:
		return "placeholder"
	}
}

// Display is the visibility-gated view of a Result.
type Display struct {
	Kind  DisplayKind
	Value float64
}

// Present gates Derive behind ResultVisible.
func Present(s State) Display {
	if !s.resultVisible {
		return Display{Kind: DisplayPlaceholder}
	}
	result := Derive(s)
	if !result.Defined {
		return Display{Kind: DisplayInvalid}
	}
	return Display{Kind: DisplayValue, Value: result.Value}
}

// Operands returns the parsed inputs of the active groups, one slice per
// group in ActiveGroups order. ok is false if any active group is invalid.
func Operands(s State) ([][]float64, bool) {
	groups := ActiveGroups(s.mode)
	out := make([][]float64, 0, len(groups))
	for _, g := range groups {
		values, ok := coords.ParseVector(s.group(g))
		if !ok {
			return nil, false
		}
		out = append(out, values)
	}
	return out, true
}
