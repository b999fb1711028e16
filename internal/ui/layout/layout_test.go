package layout

import (
	"strings"
	"testing"
)

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Base vs Optimized", "http://localhost:8000", 120)
	for _, want := range []string{"Mathduel", "Base vs Optimized", "http://localhost:8000"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Solve"}, {Key: "Tab", Description: "Example"}}, 80)
	for _, want := range []string{"Enter", "Solve", "Tab", "Example"} {
		if !strings.Contains(f, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}

func TestSizeThresholds(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected too small below MinWidth")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("expected minimum size to fit")
	}
	if !IsCompactWidth(CompactWidthThreshold - 1) {
		t.Error("expected compact below threshold")
	}
}
