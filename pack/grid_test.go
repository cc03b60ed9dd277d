package pack

import (
	"fmt"
	"testing"

	"github.com/agiangrant/grouped/geom"
)

const (
	testMaxWidth = 430
	testMinWidth = 100
	testSkip     = 4
)

func checkGrid(t *testing.T, sizes []geom.Size, items []Item) {
	t.Helper()
	if len(items) != len(sizes) {
		t.Fatalf("len(items) = %d, want %d", len(items), len(sizes))
	}
	for i, item := range items {
		g := item.Geometry
		if g.Empty() {
			t.Errorf("item %d is empty: %v", i, g)
		}
		if g.X < 0 || g.Y < 0 || g.Right() > testMaxWidth {
			t.Errorf("item %d out of bounds: %v", i, g)
		}
		if item.Sides.Has(geom.Left) && g.X != 0 {
			t.Errorf("item %d has Left side but x = %d", i, g.X)
		}
		if item.Sides.Has(geom.Top) && g.Y != 0 {
			t.Errorf("item %d has Top side but y = %d", i, g.Y)
		}
		for j := i + 1; j < len(items); j++ {
			if g.Intersects(items[j].Geometry) {
				t.Errorf("items %d and %d overlap: %v %v", i, j, g, items[j].Geometry)
			}
		}
	}
	bounds := Bounds(items)
	for i, item := range items {
		if item.Sides.Has(geom.Bottom) && item.Geometry.Bottom() != bounds.Height {
			t.Errorf("item %d has Bottom side but ends at %d of %d", i, item.Geometry.Bottom(), bounds.Height)
		}
	}
}

func TestGridOne(t *testing.T) {
	items := Grid([]geom.Size{geom.Sz(800, 600)}, testMaxWidth, testMinWidth, testSkip)
	want := geom.R(0, 0, 430, 322)
	if items[0].Geometry != want {
		t.Errorf("geometry = %v, want %v", items[0].Geometry, want)
	}
	if items[0].Sides != geom.AllSides {
		t.Errorf("sides = %v, want all", items[0].Sides)
	}
}

func TestGridTwoSquares(t *testing.T) {
	items := Grid([]geom.Size{geom.Sz(500, 500), geom.Sz(500, 500)}, testMaxWidth, testMinWidth, testSkip)
	if items[0].Geometry != geom.R(0, 0, 213, 213) {
		t.Errorf("first = %v", items[0].Geometry)
	}
	if items[1].Geometry != geom.R(217, 0, 213, 213) {
		t.Errorf("second = %v", items[1].Geometry)
	}
	if items[0].Sides.Has(geom.Right) || !items[1].Sides.Has(geom.Right) {
		t.Errorf("unexpected right sides %v %v", items[0].Sides, items[1].Sides)
	}
}

func TestGridShapes(t *testing.T) {
	shapes := map[string][]geom.Size{
		"two wide":       {geom.Sz(1600, 900), geom.Sz(1600, 900)},
		"two mixed":      {geom.Sz(600, 900), geom.Sz(900, 700)},
		"three tall":     {geom.Sz(600, 1000), geom.Sz(800, 600), geom.Sz(800, 800)},
		"three wide":     {geom.Sz(1200, 700), geom.Sz(800, 800), geom.Sz(600, 900)},
		"four wide":      {geom.Sz(800, 600), geom.Sz(600, 800), geom.Sz(800, 800), geom.Sz(400, 600)},
		"four tall":      {geom.Sz(500, 900), geom.Sz(800, 600), geom.Sz(800, 800), geom.Sz(700, 500)},
		"four extreme":   {geom.Sz(1600, 900), geom.Sz(100, 1000), geom.Sz(100, 1000), geom.Sz(2000, 1000)},
		"panorama pair":  {geom.Sz(3000, 500), geom.Sz(800, 800)},
		"five":           {geom.Sz(800, 600), geom.Sz(600, 800), geom.Sz(800, 800), geom.Sz(400, 600), geom.Sz(1000, 700)},
		"seven portrait": repeatSize(geom.Sz(600, 900), 7),
		"ten landscape":  repeatSize(geom.Sz(1280, 720), 10),
	}
	for name, sizes := range shapes {
		t.Run(name, func(t *testing.T) {
			checkGrid(t, sizes, Grid(sizes, testMaxWidth, testMinWidth, testSkip))
		})
	}
}

func TestGridManyItemsFallsBackToRowsOfThree(t *testing.T) {
	sizes := repeatSize(geom.Sz(500, 500), 13)
	checkGrid(t, sizes, Grid(sizes, testMaxWidth, testMinWidth, testSkip))
}

func TestGridEmpty(t *testing.T) {
	if got := Grid(nil, testMaxWidth, testMinWidth, testSkip); got != nil {
		t.Errorf("Grid(nil) = %v, want nil", got)
	}
}

func TestCropRatios(t *testing.T) {
	tests := []struct {
		average float64
		in      float64
		want    float64
	}{
		{1.5, 0.5, 1},
		{1.5, 3.5, complexMaxRatio},
		{0.9, 1.8, 1},
		{0.9, 0.3, complexMinRatio},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%v", tt.average, tt.in), func(t *testing.T) {
			if got := cropRatios([]float64{tt.in}, tt.average)[0]; got != tt.want {
				t.Errorf("cropRatios = %v, want %v", got, tt.want)
			}
		})
	}
}

func repeatSize(s geom.Size, n int) []geom.Size {
	out := make([]geom.Size, n)
	for i := range out {
		out[i] = s
	}
	return out
}
