package grouped

import "github.com/agiangrant/grouped/geom"

// CornersFromSides returns the corners of a member that may be rounded.
// Top corners round only at the top of the bubble; bottom corners only at
// its bottom and only while no caption sits below the media.
func (g *Group) CornersFromSides(sides geom.RectPart) geom.RectPart {
	result := geom.CornersFromSides(sides)
	if !g.host.BubbleTop() {
		result &^= geom.TopLeft | geom.TopRight
	}
	if !g.host.BubbleBottom() || !g.caption.Empty() {
		result &^= geom.BottomLeft | geom.BottomRight
	}
	return result
}

// NeedsBubble reports whether the group is drawn inside message chrome.
func (g *Group) NeedsBubble() bool {
	return g.needBubble
}

// UpdateNeedBubbleState picks the caption source among the members and
// recomputes NeedsBubble. Apply calls it after every rebuild; hosts call it
// again when their decorations change.
func (g *Group) UpdateNeedBubbleState() {
	g.caption = emptyCaption{}
	if part := g.captionPart(); part != nil && g.newCaption != nil {
		if c := g.newCaption(part.media.Text()); c != nil {
			g.caption = c
		}
	}
	g.needBubble = g.computeNeedBubble()
}

// captionPart returns the member whose text captions the group. A column
// uses its last member; a grid uses its only member with text and shows no
// caption when several have text.
func (g *Group) captionPart() *Part {
	if len(g.parts) == 0 {
		return nil
	}
	if g.mode == ModeColumn {
		last := g.parts[len(g.parts)-1]
		if last.media.Text() == "" {
			return nil
		}
		return last
	}
	var result *Part
	for _, part := range g.parts {
		if part.media.Text() == "" {
			continue
		}
		if result != nil {
			return nil
		}
		result = part
	}
	return result
}

func (g *Group) computeNeedBubble() bool {
	if !g.caption.Empty() || g.mode == ModeColumn {
		return true
	}
	return g.host.Decorations().Any()
}
