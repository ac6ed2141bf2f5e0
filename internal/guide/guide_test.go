package guide

import (
	"strings"
	"testing"

	"github.com/csheth/vectorlen/internal/form"
)

func TestBuildCoordinates(t *testing.T) {
	t.Parallel()

	steps := Build(Metadata{Mode: form.ModeCoordinates, Dimension: 4})
	if len(steps) == 0 {
		t.Fatal("expected notes for coordinates mode")
	}
	if !strings.Contains(steps[0].Description, "4-вимірному") || !strings.Contains(steps[0].Description, "a₄") {
		t.Fatalf("first note not tailored to dimension: %q", steps[0].Description)
	}
}

func TestBuildPoints(t *testing.T) {
	t.Parallel()

	steps := Build(Metadata{Mode: form.ModePoints, Dimension: 6})
	if steps[0].Title != "Вектор через точки" {
		t.Fatalf("unexpected first note %q", steps[0].Title)
	}
	if !strings.Contains(steps[0].Description, "b₆") {
		t.Fatalf("points note should reference the last coordinate: %q", steps[0].Description)
	}
}

func TestBuildFallsBackOnUnsupportedDimension(t *testing.T) {
	t.Parallel()

	steps := Build(Metadata{Mode: form.ModeCoordinates, Dimension: 9})
	if !strings.Contains(steps[0].Description, "2-вимірному") {
		t.Fatalf("unsupported dimension should fall back to 2: %q", steps[0].Description)
	}
}
