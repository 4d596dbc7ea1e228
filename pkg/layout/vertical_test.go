package layout

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestVertical_TopStacking(t *testing.T) {
	c := NewContainer(VerticalStrategy{})
	c.NodeStyle().Padding = 0.1
	first := newTestLeaf(Style{Height: 0.25, Margin: 0.05})
	second := newTestLeaf(Style{Height: 0.5})
	if err := c.Add(first, second); err != nil {
		t.Fatalf("add: %v", err)
	}

	c.Refresh(1, 1)

	// Children are refreshed against the padding-reduced space (0.8 x 0.8).
	if !approx(first.computed.Height, 0.2) {
		t.Fatalf("first height = %g, want 0.2", first.computed.Height)
	}
	if !approx(second.computed.Height, 0.4) {
		t.Fatalf("second height = %g, want 0.4", second.computed.Height)
	}

	// Offsets accumulate padding, margins, and prior heights.
	if y := first.group.Position().Y(); !approx(y, -0.15) {
		t.Fatalf("first y = %g, want -0.15", y)
	}
	if y := second.group.Position().Y(); !approx(y, -0.4) {
		t.Fatalf("second y = %g, want -0.4", y)
	}

	// No overlap: first spans [-0.15, -0.35], second starts at -0.4.
	firstBottom := first.group.Position().Y() - first.computed.Height
	if second.group.Position().Y() > firstBottom+1e-12 {
		t.Fatalf("children overlap: first bottom %g, second top %g",
			firstBottom, second.group.Position().Y())
	}
}

func TestVertical_BottomStacking(t *testing.T) {
	c := NewContainer(VerticalStrategy{})
	leaf := newTestLeaf(Style{Height: 0.2, Margin: 0.05, Align: AlignBottom})
	if err := c.Add(leaf); err != nil {
		t.Fatalf("add: %v", err)
	}

	c.Refresh(1, 1)

	if y := leaf.group.Position().Y(); !approx(y, -0.75) {
		t.Fatalf("bottom-aligned y = %g, want -0.75", y)
	}
}

func TestVertical_HorizontalPositions(t *testing.T) {
	cases := []struct {
		pos   Position
		wantX float64
	}{
		{PositionLeft, 0},
		{PositionRight, 0.5},
		{PositionCenter, 0.25},
	}
	for _, tc := range cases {
		c := NewContainer(VerticalStrategy{})
		leaf := newTestLeaf(Style{Width: 0.5, Height: 0.2, Position: tc.pos})
		if err := c.Add(leaf); err != nil {
			t.Fatalf("add: %v", err)
		}
		c.Refresh(1, 1)

		if x := leaf.group.Position().X(); !approx(x, tc.wantX) {
			t.Fatalf("%s: x = %g, want %g", tc.pos, x, tc.wantX)
		}
	}
}

func TestVertical_FullByDeclaredHeights(t *testing.T) {
	cases := []struct {
		name    string
		heights []float64
		want    bool
	}{
		{"empty", nil, false},
		{"under", []float64{0.5, 0.25}, false},
		{"exact", []float64{0.5, 0.25, 0.25}, true},
		{"exact_permuted", []float64{0.25, 0.5, 0.25}, true},
		{"over", []float64{0.5, 0.5, 0.25}, true},
	}
	for _, tc := range cases {
		c := NewContainer(VerticalStrategy{})
		for _, h := range tc.heights {
			if err := c.Add(newTestLeaf(Style{Height: h})); err != nil {
				t.Fatalf("%s: add: %v", tc.name, err)
			}
		}
		if got := c.Full(); got != tc.want {
			t.Fatalf("%s: Full() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestVertical_FullIgnoresLayoutState(t *testing.T) {
	// Fullness depends only on declared style heights, never on refresh
	// having run.
	c := NewContainer(VerticalStrategy{})
	if err := c.Add(newTestLeaf(Style{Height: 0.5}), newTestLeaf(Style{Height: 0.5})); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !c.Full() {
		t.Fatalf("expected fullness without any refresh")
	}
}

func TestVertical_CenterAlignWarnsWithoutFailing(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.New(&buf))
	defer SetLogger(nil)

	c := NewContainer(VerticalStrategy{})
	leaf := newTestLeaf(Style{Height: 0.2, Align: AlignCenter})
	if err := c.Add(leaf); err != nil {
		t.Fatalf("add: %v", err)
	}
	c.Refresh(1, 1)

	if !strings.Contains(buf.String(), "center") {
		t.Fatalf("expected a warning about center alignment, got %q", buf.String())
	}
	// Falls back to top stacking instead of failing the layout.
	if y := leaf.group.Position().Y(); !approx(y, 0) {
		t.Fatalf("center-aligned y = %g, want top fallback 0", y)
	}
}
