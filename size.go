package grouped

import (
	"fmt"
	"math"

	"github.com/agiangrant/grouped/geom"
	"github.com/agiangrant/grouped/pack"
)

// InitDimensions measures every member and packs them at their natural
// size. The result is cached as MaxWidth and MinHeight and becomes the
// reference frame for later Resize calls.
func (g *Group) InitDimensions() geom.Size {
	size := g.countOptimalSize()
	g.maxWidth, g.minHeight = size.Width, size.Height
	return size
}

// Resize lays the members out for width and returns the resulting group
// size. InitDimensions must have been called since the last rebuild.
func (g *Group) Resize(width int) geom.Size {
	size := g.countCurrentSize(width)
	g.width, g.height = size.Width, size.Height
	return size
}

// ResizeGetHeight is Resize returning only the height.
func (g *Group) ResizeGetHeight(width int) int {
	return g.Resize(width).Height
}

// MaxWidth is the natural width from the last InitDimensions.
func (g *Group) MaxWidth() int { return g.maxWidth }

// MinHeight is the natural height from the last InitDimensions.
func (g *Group) MinHeight() int { return g.minHeight }

// Width is the width from the last Resize.
func (g *Group) Width() int { return g.width }

// Height is the height from the last Resize.
func (g *Group) Height() int { return g.height }

func (g *Group) countOptimalSize() geom.Size {
	count := len(g.parts)
	sizes := acquireSizeSlice(count)
	defer releaseSizeSlice(sizes)

	maxWidth := 0
	if g.mode == ModeColumn {
		for _, part := range g.parts {
			part.content.InitDimensions()
			maxWidth = max(maxWidth, part.content.MaxWidth())
		}
	}
	for i, part := range g.parts {
		sizes[i] = part.content.SizeForGroupingOptimal(maxWidth, i == count-1)
	}

	var layout []pack.Item
	if g.mode == ModeGrid {
		layout = g.packer(sizes, g.style.MaxGridWidth, g.style.MinGridWidth, g.style.GridSkip)
	} else {
		layout = pack.Column(sizes)
	}
	if len(layout) != count {
		panic(fmt.Sprintf("grouped: packer returned %d rectangles for %d parts", len(layout), count))
	}

	minHeight := 0
	for i, item := range layout {
		maxWidth = max(maxWidth, item.Geometry.Right())
		minHeight = max(minHeight, item.Geometry.Bottom())
		g.parts[i].initialGeometry = item.Geometry
		g.parts[i].sides = item.Sides
	}
	minHeight += g.captionExtent(maxWidth)

	logger.Debug("optimal group size", "mode", g.mode.String(), "width", maxWidth, "height", minHeight)
	return geom.Sz(maxWidth, minHeight)
}

func (g *Group) countCurrentSize(newWidth int) geom.Size {
	newWidth = min(newWidth, g.maxWidth)
	newHeight := 0
	switch {
	case g.mode == ModeGrid && newWidth < g.style.MinGridWidth:
		logger.Debug("width below grid minimum", "width", newWidth, "min", g.style.MinGridWidth)
		for _, part := range g.parts {
			part.geometry = geom.Rect{}
		}
		return geom.Sz(newWidth, 0)
	case g.mode == ModeColumn:
		top := 0
		for i, part := range g.parts {
			size := part.content.SizeForGrouping(newWidth, i == len(g.parts)-1)
			part.geometry = geom.R(0, top, newWidth, size.Height)
			top += size.Height
		}
		newHeight = top
	default:
		newHeight = g.rescale(newWidth)
	}
	newHeight += g.captionExtent(newWidth)
	return geom.Sz(newWidth, newHeight)
}

// rescale scales the initial geometry down to newWidth. Far edges are scaled
// together with the gap that follows them and the rescaled gap is taken off
// again, so every gap in the group ends up the same size.
func (g *Group) rescale(newWidth int) int {
	initialSpacing := g.style.GridSkip
	factor := float64(newWidth) / float64(g.maxWidth)
	scale := func(v int) int {
		return int(math.Round(float64(v) * factor))
	}
	spacing := scale(initialSpacing)

	newHeight := 0
	for _, part := range g.parts {
		initial := part.initialGeometry
		needRightSkip := !part.sides.Has(geom.Right)
		needBottomSkip := !part.sides.Has(geom.Bottom)

		initialRight := initial.Right()
		initialBottom := initial.Bottom()
		if needRightSkip {
			initialRight += initialSpacing
		}
		if needBottomSkip {
			initialBottom += initialSpacing
		}

		left := scale(initial.X)
		top := scale(initial.Y)
		width := scale(initialRight) - left
		height := scale(initialBottom) - top
		if needRightSkip {
			width -= spacing
		}
		if needBottomSkip {
			height -= spacing
		}
		part.geometry = geom.R(left, top, width, height)

		newHeight = max(newHeight, top+height)
	}
	return newHeight
}

// captionExtent is the height the caption adds below the media at width.
func (g *Group) captionExtent(width int) int {
	if g.caption.Empty() {
		return 0
	}
	pad := g.style.CaptionPadding
	extent := g.style.CaptionGap + g.caption.Height(width-pad.Left-pad.Right)
	if g.host.BubbleBottom() {
		extent += pad.Bottom
	}
	return extent
}

// captionTop is the y of the caption's first line for the current size.
func (g *Group) captionTop(captionWidth int) int {
	top := g.height - g.caption.Height(captionWidth)
	if g.host.BubbleBottom() {
		top -= g.style.CaptionPadding.Bottom
	}
	return top
}

func (g *Group) captionWidth() int {
	pad := g.style.CaptionPadding
	return g.width - pad.Left - pad.Right
}
