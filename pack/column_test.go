package pack

import (
	"testing"

	"github.com/agiangrant/grouped/geom"
)

func TestColumn(t *testing.T) {
	tests := []struct {
		name  string
		sizes []geom.Size
	}{
		{"single", []geom.Size{geom.Sz(200, 50)}},
		{"uniform", []geom.Size{geom.Sz(300, 60), geom.Sz(300, 60), geom.Sz(300, 60)}},
		{"mixed widths", []geom.Size{geom.Sz(120, 40), geom.Sz(340, 70), geom.Sz(200, 55), geom.Sz(10, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Column(tt.sizes)
			if len(items) != len(tt.sizes) {
				t.Fatalf("len(items) = %d, want %d", len(items), len(tt.sizes))
			}

			width := 0
			for _, s := range tt.sizes {
				width = max(width, s.Width)
			}

			top := 0
			for i, item := range items {
				g := item.Geometry
				if g.X != 0 || g.Width != width {
					t.Errorf("item %d spans x=%d w=%d, want x=0 w=%d", i, g.X, g.Width, width)
				}
				if g.Y != top {
					t.Errorf("item %d top = %d, want %d (no gap)", i, g.Y, top)
				}
				if g.Height != tt.sizes[i].Height {
					t.Errorf("item %d height = %d, want %d", i, g.Height, tt.sizes[i].Height)
				}
				if !item.Sides.Has(geom.Left | geom.Right) {
					t.Errorf("item %d sides = %v, want Left and Right", i, item.Sides)
				}
				if got := item.Sides.Has(geom.Top); got != (i == 0) {
					t.Errorf("item %d Top = %v", i, got)
				}
				if got := item.Sides.Has(geom.Bottom); got != (i == len(items)-1) {
					t.Errorf("item %d Bottom = %v", i, got)
				}
				top += g.Height
			}
		})
	}
}

func TestColumnSingleItemHasAllSides(t *testing.T) {
	items := Column([]geom.Size{geom.Sz(100, 20)})
	if items[0].Sides != geom.AllSides {
		t.Errorf("sides = %v, want %v", items[0].Sides, geom.AllSides)
	}
}

func TestColumnPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty input")
		}
	}()
	Column(nil)
}
