package grouped

import "github.com/agiangrant/grouped/geom"

// PointState classifies a point against the group.
type PointState int

const (
	PointOutside PointState = iota
	PointInside
	PointGroupPart
)

func (s PointState) String() string {
	switch s {
	case PointInside:
		return "inside"
	case PointGroupPart:
		return "part"
	}
	return "outside"
}

// CursorState is the cursor shape a hit-test asks for.
type CursorState int

const (
	CursorNone CursorState = iota
	CursorPointer
	CursorText
	CursorDate
)

func (c CursorState) String() string {
	switch c {
	case CursorPointer:
		return "pointer"
	case CursorText:
		return "text"
	case CursorDate:
		return "date"
	}
	return "none"
}

// ClickHandler is an action exposed by a member or the caption. The group
// routes handlers between delegates but never runs them.
type ClickHandler interface {
	// Label describes the action for status lines and logs.
	Label() string
}

// StateRequest carries hit-test options.
type StateRequest struct {
	// ForText asks for text-selection cursor semantics.
	ForText bool
}

// TextState is the result of a hit-test.
type TextState struct {
	ItemID RecordID
	Link   ClickHandler
	Cursor CursorState
}

// PointState reports whether p is outside the group, on a member, or inside
// the group but on no member (caption or background).
func (g *Group) PointState(p geom.Point) PointState {
	if !geom.R(0, 0, g.width, g.height).Contains(p) {
		return PointOutside
	}
	for _, part := range g.parts {
		if part.geometry.Contains(p) {
			return PointGroupPart
		}
	}
	return PointInside
}

// PartState asks the first member under p for its state and tags the result
// with that member's record. Without a member under p the result carries
// the host record and nothing else.
func (g *Group) PartState(p geom.Point, req StateRequest) TextState {
	for i, part := range g.parts {
		if !part.geometry.Contains(p) {
			continue
		}
		last := i == len(g.parts)-1
		result := part.content.StateGrouped(part.geometry, part.sides, p, req, last)
		result.ItemID = part.record
		return result
	}
	return TextState{ItemID: g.host.Record()}
}

// TextStateAt is PartState falling back to the caption when no member
// produced a link. Outside the caption the host's date badge asks for the
// date cursor.
func (g *Group) TextStateAt(p geom.Point, req StateRequest) TextState {
	result := g.PartState(p, req)
	if result.Link == nil && !g.caption.Empty() {
		captionw := g.captionWidth()
		captiony := g.captionTop(captionw)
		left := g.style.CaptionPadding.Left
		if !geom.R(left, captiony, captionw, g.height-captiony).Contains(p) {
			return result
		}
		state := g.caption.State(p.Sub(geom.Pt(left, captiony)), captionw, req)
		state.ItemID = g.host.Record()
		return state
	}
	if g.NeedInfoDisplay() && g.infoRect().Contains(p) {
		result.Cursor = CursorDate
	}
	return result
}

// NeedInfoDisplay reports whether the host draws its date badge over the
// group. Column groups never carry one.
func (g *Group) NeedInfoDisplay() bool {
	if g.mode == ModeColumn {
		return false
	}
	h, ok := g.host.(InfoHost)
	return ok && h.InfoDisplay().Shown()
}

// infoRect is the date badge anchored at the group's bottom-right corner.
func (g *Group) infoRect() geom.Rect {
	badge := g.host.(InfoHost).InfoDisplay().Badge
	return geom.R(g.width-badge.Width, g.height-badge.Height, badge.Width, badge.Height)
}
