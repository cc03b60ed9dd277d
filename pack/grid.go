package pack

import (
	"math"
	"slices"
	"strings"

	"github.com/agiangrant/grouped/geom"
)

const (
	wideRatio   = 1.2
	narrowRatio = 0.8

	// Ratios are cropped into these bounds before the multi-row search.
	complexMaxRatio = 2.75
	complexMinRatio = 0.6667
)

// Grid is the default album packer. One to four items use fixed templates
// picked from their aspect proportions; five or more items, or any item wider
// than 2:1, go through a search over row splits that keeps the total height
// closest to the target.
func Grid(sizes []geom.Size, maxWidth, minWidth, skip int) []Item {
	return newGridLayouter(sizes, maxWidth, minWidth, skip).layout()
}

type gridLayouter struct {
	sizes       []geom.Size
	ratios      []float64
	proportions string
	count       int

	maxWidth  int
	maxHeight int
	minWidth  int
	spacing   int

	averageRatio float64
	maxSizeRatio float64
}

func newGridLayouter(sizes []geom.Size, maxWidth, minWidth, skip int) *gridLayouter {
	g := &gridLayouter{
		sizes:     sizes,
		ratios:    make([]float64, len(sizes)),
		count:     len(sizes),
		maxWidth:  maxWidth,
		maxHeight: maxWidth,
		minWidth:  minWidth,
		spacing:   skip,
	}

	var proportions strings.Builder
	sum := 0.
	for i, size := range sizes {
		ratio := float64(max(size.Width, 1)) / float64(max(size.Height, 1))
		g.ratios[i] = ratio
		sum += ratio
		switch {
		case ratio > wideRatio:
			proportions.WriteByte('w')
		case ratio < narrowRatio:
			proportions.WriteByte('n')
		default:
			proportions.WriteByte('q')
		}
	}
	g.proportions = proportions.String()
	if g.count > 0 {
		g.averageRatio = sum / float64(g.count)
	}
	if g.maxHeight > 0 {
		g.maxSizeRatio = float64(g.maxWidth) / float64(g.maxHeight)
	}
	return g
}

func round(v float64) int {
	return int(math.Round(v))
}

func (g *gridLayouter) layout() []Item {
	switch {
	case g.count == 0:
		return nil
	case g.count == 1:
		return g.layoutOne()
	case g.count >= 5 || slices.ContainsFunc(g.ratios, func(r float64) bool { return r > 2 }):
		return g.layoutComplex()
	}

	var result []Item
	switch g.count {
	case 2:
		result = g.layoutTwo()
	case 3:
		result = g.layoutThree()
	default:
		result = g.layoutFour()
	}
	if !g.fits(result) {
		// Extreme ratio mixes can push a template out of bounds.
		return g.layoutComplex()
	}
	return result
}

func (g *gridLayouter) fits(items []Item) bool {
	for _, item := range items {
		r := item.Geometry
		if r.Empty() || r.X < 0 || r.Y < 0 || r.Right() > g.maxWidth {
			return false
		}
	}
	return true
}

func (g *gridLayouter) layoutOne() []Item {
	size := g.sizes[0]
	width := g.maxWidth
	height := max(size.Height, 1) * width / max(size.Width, 1)
	return []Item{
		{Geometry: geom.R(0, 0, width, max(height, 1)), Sides: geom.AllSides},
	}
}

func (g *gridLayouter) layoutTwo() []Item {
	switch {
	case g.proportions == "ww" &&
		g.averageRatio > 1.4*g.maxSizeRatio &&
		g.ratios[1]-g.ratios[0] < 0.2:
		return g.layoutTwoTopBottom()
	case g.proportions == "ww" || g.proportions == "qq":
		return g.layoutTwoLeftRightEqual()
	}
	return g.layoutTwoLeftRight()
}

func (g *gridLayouter) layoutTwoTopBottom() []Item {
	width := g.maxWidth
	height := round(min(
		float64(width)/g.ratios[0],
		float64(width)/g.ratios[1],
		float64(g.maxHeight-g.spacing)/2))
	return []Item{
		{Geometry: geom.R(0, 0, width, height), Sides: geom.Left | geom.Top | geom.Right},
		{Geometry: geom.R(0, height+g.spacing, width, height), Sides: geom.Left | geom.Bottom | geom.Right},
	}
}

func (g *gridLayouter) layoutTwoLeftRightEqual() []Item {
	width := (g.maxWidth - g.spacing) / 2
	height := round(min(
		float64(width)/g.ratios[0],
		float64(width)/g.ratios[1],
		float64(g.maxHeight)))
	return []Item{
		{Geometry: geom.R(0, 0, width, height), Sides: geom.Top | geom.Left | geom.Bottom},
		{Geometry: geom.R(width+g.spacing, 0, width, height), Sides: geom.Top | geom.Right | geom.Bottom},
	}
}

func (g *gridLayouter) layoutTwoLeftRight() []Item {
	available := float64(g.maxWidth - g.spacing)
	minimalWidth := round(float64(g.minWidth) * 1.5)
	secondWidth := min(
		round(max(0.4*available, available/g.ratios[0]/(1/g.ratios[0]+1/g.ratios[1]))),
		g.maxWidth-g.spacing-minimalWidth)
	firstWidth := g.maxWidth - secondWidth - g.spacing
	height := min(g.maxHeight, round(min(
		float64(firstWidth)/g.ratios[0],
		float64(secondWidth)/g.ratios[1])))
	return []Item{
		{Geometry: geom.R(0, 0, firstWidth, height), Sides: geom.Top | geom.Left | geom.Bottom},
		{Geometry: geom.R(firstWidth+g.spacing, 0, secondWidth, height), Sides: geom.Top | geom.Right | geom.Bottom},
	}
}

func (g *gridLayouter) layoutThree() []Item {
	if g.proportions[0] == 'n' {
		return g.layoutThreeLeftAndOther()
	}
	return g.layoutThreeTopAndOther()
}

func (g *gridLayouter) layoutThreeLeftAndOther() []Item {
	firstHeight := g.maxHeight
	thirdHeight := round(min(
		float64(g.maxHeight-g.spacing)/2,
		g.ratios[1]*float64(g.maxWidth-g.spacing)/(g.ratios[2]+g.ratios[1])))
	secondHeight := firstHeight - thirdHeight - g.spacing
	rightWidth := max(g.minWidth, round(min(
		float64(g.maxWidth-g.spacing)/2,
		float64(thirdHeight)*g.ratios[2],
		float64(secondHeight)*g.ratios[1])))
	leftWidth := min(round(float64(firstHeight)*g.ratios[0]), g.maxWidth-g.spacing-rightWidth)
	return []Item{
		{Geometry: geom.R(0, 0, leftWidth, firstHeight), Sides: geom.Top | geom.Left | geom.Bottom},
		{Geometry: geom.R(leftWidth+g.spacing, 0, rightWidth, secondHeight), Sides: geom.Top | geom.Right},
		{Geometry: geom.R(leftWidth+g.spacing, secondHeight+g.spacing, rightWidth, thirdHeight), Sides: geom.Bottom | geom.Right},
	}
}

func (g *gridLayouter) layoutThreeTopAndOther() []Item {
	firstWidth := g.maxWidth
	firstHeight := round(min(
		float64(firstWidth)/g.ratios[0],
		float64(g.maxHeight-g.spacing)*0.66))
	secondWidth := (g.maxWidth - g.spacing) / 2
	secondHeight := min(g.maxHeight-firstHeight-g.spacing, round(min(
		float64(secondWidth)/g.ratios[1],
		float64(secondWidth)/g.ratios[2])))
	thirdWidth := firstWidth - secondWidth - g.spacing
	return []Item{
		{Geometry: geom.R(0, 0, firstWidth, firstHeight), Sides: geom.Left | geom.Top | geom.Right},
		{Geometry: geom.R(0, firstHeight+g.spacing, secondWidth, secondHeight), Sides: geom.Bottom | geom.Left},
		{Geometry: geom.R(secondWidth+g.spacing, firstHeight+g.spacing, thirdWidth, secondHeight), Sides: geom.Bottom | geom.Right},
	}
}

func (g *gridLayouter) layoutFour() []Item {
	if g.proportions[0] == 'w' {
		return g.layoutFourTopAndOther()
	}
	return g.layoutFourLeftAndOther()
}

func (g *gridLayouter) layoutFourTopAndOther() []Item {
	w := g.maxWidth
	inner := float64(g.maxWidth - 2*g.spacing)
	h0 := round(min(float64(w)/g.ratios[0], float64(g.maxHeight-g.spacing)*0.66))
	h := round(inner / (g.ratios[1] + g.ratios[2] + g.ratios[3]))
	w0 := max(g.minWidth, round(min(inner*0.4, float64(h)*g.ratios[1])))
	w2 := round(max(float64(g.minWidth), inner*0.33, float64(h)*g.ratios[3]))
	w1 := w - w0 - w2 - 2*g.spacing
	h1 := min(g.maxHeight-h0-g.spacing, h)
	row := h0 + g.spacing
	return []Item{
		{Geometry: geom.R(0, 0, w, h0), Sides: geom.Left | geom.Top | geom.Right},
		{Geometry: geom.R(0, row, w0, h1), Sides: geom.Bottom | geom.Left},
		{Geometry: geom.R(w0+g.spacing, row, w1, h1), Sides: geom.Bottom},
		{Geometry: geom.R(w0+g.spacing+w1+g.spacing, row, w2, h1), Sides: geom.Right | geom.Bottom},
	}
}

func (g *gridLayouter) layoutFourLeftAndOther() []Item {
	h := g.maxHeight
	w0 := round(min(float64(h)*g.ratios[0], float64(g.maxWidth-g.spacing)*0.6))
	w := round(float64(g.maxHeight-2*g.spacing) / (1/g.ratios[1] + 1/g.ratios[2] + 1/g.ratios[3]))
	h0 := round(float64(w) / g.ratios[1])
	h1 := round(float64(w) / g.ratios[2])
	h2 := h - h0 - h1 - 2*g.spacing
	w1 := g.maxWidth - w0 - g.spacing
	x := w0 + g.spacing
	return []Item{
		{Geometry: geom.R(0, 0, w0, h), Sides: geom.Top | geom.Left | geom.Bottom},
		{Geometry: geom.R(x, 0, w1, h0), Sides: geom.Top | geom.Right},
		{Geometry: geom.R(x, h0+g.spacing, w1, h1), Sides: geom.Right},
		{Geometry: geom.R(x, h0+h1+2*g.spacing, w1, h2), Sides: geom.Right | geom.Bottom},
	}
}

// attempt is one candidate split of the items into rows.
type attempt struct {
	lineCounts []int
	heights    []float64
}

func (g *gridLayouter) layoutComplex() []Item {
	ratios := cropRatios(g.ratios, g.averageRatio)
	maxHeight := float64(g.maxWidth * 4 / 3)

	multiHeight := func(offset, count int) float64 {
		sum := 0.
		for _, r := range ratios[offset : offset+count] {
			sum += r
		}
		return float64(g.maxWidth-(count-1)*g.spacing) / sum
	}
	var attempts []attempt
	push := func(lineCounts ...int) {
		heights := make([]float64, 0, len(lineCounts))
		offset := 0
		for _, count := range lineCounts {
			heights = append(heights, multiHeight(offset, count))
			offset += count
		}
		attempts = append(attempts, attempt{lineCounts: lineCounts, heights: heights})
	}

	n := g.count
	for first := 1; first < n; first++ {
		second := n - first
		if first > 3 || second > 3 {
			continue
		}
		push(first, second)
	}
	secondMax := 3
	if g.averageRatio < 0.85 {
		secondMax = 4
	}
	for first := 1; first < n-1; first++ {
		for second := 1; second < n-first; second++ {
			third := n - first - second
			if first > 3 || second > secondMax || third > 3 {
				continue
			}
			push(first, second, third)
		}
	}
	for first := 1; first < n-1; first++ {
		for second := 1; second < n-first; second++ {
			for third := 1; third < n-first-second; third++ {
				fourth := n - first - second - third
				if first > 3 || second > 3 || third > 3 || fourth > 3 {
					continue
				}
				push(first, second, third, fourth)
			}
		}
	}
	if len(attempts) == 0 {
		// More items than four rows of three can hold.
		var counts []int
		for left := n; left > 0; left -= 3 {
			counts = append(counts, min(left, 3))
		}
		push(counts...)
	}

	var best *attempt
	bestDiff := 0.
	for i := range attempts {
		a := &attempts[i]
		lineCount := len(a.lineCounts)
		total := float64(g.spacing * (lineCount - 1))
		for _, h := range a.heights {
			total += h
		}
		bad1 := 1.
		if slices.Min(a.heights) < float64(g.minWidth) {
			bad1 = 1.5
		}
		bad2 := 1.
		for line := 1; line < lineCount; line++ {
			if a.lineCounts[line-1] > a.lineCounts[line] {
				bad2 = 1.5
				break
			}
		}
		diff := math.Abs(total-maxHeight) * bad1 * bad2
		if best == nil || diff < bestDiff {
			best = a
			bestDiff = diff
		}
	}

	result := make([]Item, n)
	rowCount := len(best.lineCounts)
	index := 0
	y := 0
	for row := 0; row < rowCount; row++ {
		colCount := best.lineCounts[row]
		lineHeight := best.heights[row]
		height := round(lineHeight)
		x := 0
		for col := 0; col < colCount; col++ {
			sides := geom.PartNone
			if row == 0 {
				sides |= geom.Top
			}
			if row == rowCount-1 {
				sides |= geom.Bottom
			}
			if col == 0 {
				sides |= geom.Left
			}
			if col == colCount-1 {
				sides |= geom.Right
			}
			width := g.maxWidth - x
			if col != colCount-1 {
				width = round(ratios[index] * lineHeight)
			}
			result[index] = Item{Geometry: geom.R(x, y, width, height), Sides: sides}
			x += width + g.spacing
			index++
		}
		y += height + g.spacing
	}
	return result
}

func cropRatios(ratios []float64, averageRatio float64) []float64 {
	result := make([]float64, len(ratios))
	for i, ratio := range ratios {
		if averageRatio > 1.1 {
			result[i] = min(max(ratio, 1.), complexMaxRatio)
		} else {
			result[i] = min(max(ratio, complexMinRatio), 1.)
		}
	}
	return result
}
