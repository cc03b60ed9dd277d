package pack

import "github.com/agiangrant/grouped/geom"

// Column stacks sizes top to bottom with no gap, every rectangle spanning the
// widest input width. All items touch the left and right edges; the first
// also touches the top and the last the bottom.
func Column(sizes []geom.Size) []Item {
	if len(sizes) == 0 {
		panic("pack: Column called with no sizes")
	}

	width := 0
	for _, size := range sizes {
		width = max(width, size.Width)
	}

	result := make([]Item, 0, len(sizes))
	top := 0
	for _, size := range sizes {
		result = append(result, Item{
			Geometry: geom.R(0, top, width, size.Height),
			Sides:    geom.Left | geom.Right,
		})
		top += size.Height
	}
	result[0].Sides |= geom.Top
	result[len(result)-1].Sides |= geom.Bottom
	return result
}
