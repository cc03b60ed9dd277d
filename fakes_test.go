package grouped

import (
	"github.com/agiangrant/grouped/geom"
	"github.com/agiangrant/grouped/pack"
)

type fakeLink struct{ name string }

func (l *fakeLink) Label() string { return l.name }

type fakeMedia struct {
	id           RecordID
	kind         Kind
	text         string
	size         geom.Size
	maxWidth     int
	notGroupable bool

	created int
	content *fakeContent
}

func photo(w, h int) *fakeMedia {
	return &fakeMedia{id: NewRecordID(), kind: KindPhoto, size: geom.Sz(w, h)}
}

func file(maxWidth, height int) *fakeMedia {
	return &fakeMedia{id: NewRecordID(), kind: KindFile, size: geom.Sz(maxWidth, height), maxWidth: maxWidth}
}

func (m *fakeMedia) Record() RecordID   { return m.id }
func (m *fakeMedia) Kind() Kind         { return m.kind }
func (m *fakeMedia) Text() string       { return m.text }
func (m *fakeMedia) CanBeGrouped() bool { return !m.notGroupable }

func (m *fakeMedia) CreateContent(host Host) Content {
	m.created++
	m.content = &fakeContent{media: m, link: &fakeLink{name: "open " + m.id.String()}}
	return m.content
}

func medias(ms ...*fakeMedia) []Media {
	out := make([]Media, len(ms))
	for i, m := range ms {
		out[i] = m
	}
	return out
}

type fakeContent struct {
	media *fakeMedia
	link  ClickHandler

	released    bool
	inited      int
	heavy       bool
	stops       int
	checks      int
	unloads     int
	refreshedTo RecordID
	active      bool
	pressed     bool
	stateLast   bool
	drawn       []DrawRequest
}

func (c *fakeContent) InitDimensions() { c.inited++ }
func (c *fakeContent) MaxWidth() int   { return c.media.maxWidth }

func (c *fakeContent) SizeForGroupingOptimal(maxWidth int, last bool) geom.Size {
	if DetectMode(c.media) == ModeColumn {
		return geom.Sz(maxWidth, c.media.size.Height)
	}
	return c.media.size
}

func (c *fakeContent) SizeForGrouping(width int, last bool) geom.Size {
	return geom.Sz(width, c.media.size.Height)
}

func (c *fakeContent) DrawGrouped(p Painter, req DrawRequest) {
	c.drawn = append(c.drawn, req)
	if req.Cache.Key == 0 {
		req.Cache.Key = uint64(req.Geometry.Width)
		c.heavy = true
	}
}

func (c *fakeContent) StateGrouped(geometry geom.Rect, sides geom.RectPart, point geom.Point, req StateRequest, last bool) TextState {
	c.stateLast = last
	return TextState{Link: c.link, Cursor: CursorPointer}
}

func (c *fakeContent) ToggleSelectionByHandlerClick(h ClickHandler) bool { return h == c.link }
func (c *fakeContent) DragItemByHandler(h ClickHandler) bool             { return h == c.link }
func (c *fakeContent) ClickHandlerActiveChanged(h ClickHandler, active bool) {
	if h == c.link {
		c.active = active
	}
}
func (c *fakeContent) ClickHandlerPressedChanged(h ClickHandler, pressed bool) {
	if h == c.link {
		c.pressed = pressed
	}
}

func (c *fakeContent) StopAnimation()              { c.stops++ }
func (c *fakeContent) CheckAnimation()             { c.checks++ }
func (c *fakeContent) HasHeavyPart() bool          { return c.heavy }
func (c *fakeContent) UnloadHeavyPart()            { c.unloads++; c.heavy = false }
func (c *fakeContent) RefreshParentID(id RecordID) { c.refreshedTo = id }
func (c *fakeContent) Caption() string             { return c.media.text }
func (c *fakeContent) Photo() *Photo {
	if c.media.kind != KindPhoto {
		return nil
	}
	return &Photo{ID: c.media.id, Width: c.media.size.Width, Height: c.media.size.Height}
}
func (c *fakeContent) Document() *Document {
	if c.media.kind == KindPhoto {
		return nil
	}
	return &Document{ID: c.media.id}
}
func (c *fakeContent) SharedMediaTypes() SharedMediaTypes { return SharedPhoto }
func (c *fakeContent) Release()                           { c.released = true }

// fakeCaption is one line of lineHeight pixels whatever the width.
type fakeCaption struct {
	text string
}

const fakeLineHeight = 20

func newFakeCaption(text string) Caption { return &fakeCaption{text: text} }

func (c *fakeCaption) Empty() bool  { return c.text == "" }
func (c *fakeCaption) Text() string { return c.text }
func (c *fakeCaption) Height(width int) int {
	if c.text == "" {
		return 0
	}
	return fakeLineHeight
}
func (c *fakeCaption) Draw(p Painter, x, y, width int, selected bool) {
	p.DrawText(x, y, width, c.text, selected)
}
func (c *fakeCaption) State(point geom.Point, width int, req StateRequest) TextState {
	return TextState{Cursor: CursorText}
}

type recordingPainter struct {
	fills []geom.Rect
	texts []string
	textY []int
}

func (p *recordingPainter) FillRect(r geom.Rect, fill Fill) { p.fills = append(p.fills, r) }
func (p *recordingPainter) DrawText(x, y, width int, text string, selected bool) {
	p.texts = append(p.texts, text)
	p.textY = append(p.textY, y)
}

// albumPacker lays four items out as a 2x2 album 800 wide with a 4px gap
// and records the arguments it was called with.
type albumPacker struct {
	calls    int
	sizes    []geom.Size
	maxWidth int
	minWidth int
	skip     int
}

func (a *albumPacker) pack(sizes []geom.Size, maxWidth, minWidth, skip int) []pack.Item {
	a.calls++
	a.sizes = append([]geom.Size(nil), sizes...)
	a.maxWidth, a.minWidth, a.skip = maxWidth, minWidth, skip
	return []pack.Item{
		{Geometry: geom.R(0, 0, 398, 300), Sides: geom.Top | geom.Left},
		{Geometry: geom.R(402, 0, 398, 300), Sides: geom.Top | geom.Right},
		{Geometry: geom.R(0, 304, 398, 300), Sides: geom.Bottom | geom.Left},
		{Geometry: geom.R(402, 304, 398, 300), Sides: geom.Bottom | geom.Right},
	}
}

func albumStyle() Style {
	style := DefaultStyle()
	style.MaxGridWidth = 800
	return style
}
