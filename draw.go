package grouped

import "github.com/agiangrant/grouped/geom"

// Painter is the drawing surface handed through to delegates.
type Painter interface {
	FillRect(r geom.Rect, fill Fill)
	DrawText(x, y, width int, text string, selected bool)
}

// Fill describes how a member rectangle is painted.
type Fill struct {
	Kind     Kind
	Label    string
	Corners  geom.RectPart
	Selected bool
}

// DrawRequest is everything a delegate needs to paint itself as a member.
type DrawRequest struct {
	Clip      geom.Rect
	Selection Selection
	Geometry  geom.Rect
	Sides     geom.RectPart
	Corners   geom.RectPart
	// Cache belongs to the member and stays valid for the duration of the
	// call only.
	Cache *PaintCache
	Last  bool
}

// Draw paints every member and then the caption.
func (g *Group) Draw(p Painter, clip geom.Rect, sel Selection) {
	for i, part := range g.parts {
		partSelection := Selection{}
		if sel.Full() || sel.IsGroupItem(i) {
			partSelection = FullSelection
		}
		part.content.DrawGrouped(p, DrawRequest{
			Clip:      clip,
			Selection: partSelection,
			Geometry:  part.geometry,
			Sides:     part.sides,
			Corners:   g.CornersFromSides(part.sides),
			Cache:     &part.cache,
			Last:      i == len(g.parts)-1,
		})
	}

	if g.caption.Empty() {
		return
	}
	captionw := g.captionWidth()
	g.caption.Draw(p, g.style.CaptionPadding.Left, g.captionTop(captionw), captionw, sel.Full())
}
