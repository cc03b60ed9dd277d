// Package pack turns a list of item sizes into rectangles for a media group.
//
// Column stacks items at a shared width. Grid is the default packer for
// photo and video albums; callers may supply any other Func.
package pack

import "github.com/agiangrant/grouped/geom"

// Item is one packed rectangle together with the outer group edges it touches.
type Item struct {
	Geometry geom.Rect
	Sides    geom.RectPart
}

// Func packs sizes into at most maxWidth pixels, keeping skip pixels between
// neighbours. Implementations must return exactly one Item per size.
// sizes is only valid for the duration of the call and must not be retained.
type Func func(sizes []geom.Size, maxWidth, minWidth, skip int) []Item

// Bounds returns the right-most and bottom-most edges over all items.
func Bounds(items []Item) geom.Size {
	var size geom.Size
	for _, item := range items {
		size.Width = max(size.Width, item.Geometry.Right())
		size.Height = max(size.Height, item.Geometry.Bottom())
	}
	return size
}
