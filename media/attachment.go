package media

import (
	"path"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/agiangrant/grouped"
	"github.com/agiangrant/grouped/geom"
)

// Row metrics of a file or audio entry, in pixels. GlyphWidth is the
// advance of one terminal cell of text.
const (
	rowPadding  = 10
	thumbSide   = 36
	thumbGap    = 8
	rowHeight   = thumbSide + 2*rowPadding
	lineSkip    = 18
	GlyphWidth  = 7
	minRowWidth = 200
	maxRowWidth = 430
)

var thumbRectSize = geom.Sz(thumbSide, thumbSide)

// Attachment draws a file or audio track as one row of a column group.
type Attachment struct {
	item     *Item
	open     *Link
	toggle   *Link
	maxWidth int

	loaded   bool
	playing  bool
	active   bool
	pressed  bool
	released bool
}

func newAttachment(it *Item) *Attachment {
	name := it.FileName
	if name == "" {
		name = shortID(it.ID)
	}
	return &Attachment{
		item:   it,
		open:   &Link{Action: ActionOpen, Record: it.ID, name: name},
		toggle: &Link{Action: ActionToggleSelection, Record: it.ID, name: name},
	}
}

// InitDimensions measures the widest text line of the row.
func (a *Attachment) InitDimensions() {
	cells := max(runewidth.StringWidth(a.item.FileName), runewidth.StringWidth(a.status()))
	width := 2*rowPadding + thumbSide + thumbGap + cells*GlyphWidth
	a.maxWidth = min(max(width, minRowWidth), maxRowWidth)
}

func (a *Attachment) MaxWidth() int { return a.maxWidth }

func (a *Attachment) SizeForGroupingOptimal(maxWidth int, last bool) geom.Size {
	return geom.Sz(maxWidth, rowHeight)
}

func (a *Attachment) SizeForGrouping(width int, last bool) geom.Size {
	return geom.Sz(width, rowHeight)
}

func (a *Attachment) status() string {
	size := formatSize(a.item.FileSize)
	if a.item.Type == grouped.KindAudio && a.item.Duration > 0 {
		return formatDuration(a.item.Duration) + " · " + size
	}
	return size
}

func (a *Attachment) icon() string {
	if a.item.Type == grouped.KindAudio {
		if a.playing {
			return "❚❚"
		}
		return "▶"
	}
	ext := strings.TrimPrefix(path.Ext(a.item.FileName), ".")
	if ext == "" {
		return "FILE"
	}
	return runewidth.Truncate(strings.ToUpper(ext), 4, "")
}

func (a *Attachment) thumbRect(geometry geom.Rect) geom.Rect {
	return geom.R(geometry.X+rowPadding, geometry.Y+rowPadding, thumbSide, thumbSide)
}

func (a *Attachment) DrawGrouped(p grouped.Painter, req grouped.DrawRequest) {
	a.loaded = true
	icon := a.icon()
	if cached, _ := req.Cache.Image.(string); cached != icon {
		req.Cache.Key = sizeKey(thumbRectSize)
		req.Cache.Image = icon
	}

	selected := req.Selection.Full()
	thumb := a.thumbRect(req.Geometry)
	p.FillRect(thumb, grouped.Fill{
		Kind:     a.item.Type,
		Label:    icon,
		Corners:  geom.AllCorners,
		Selected: selected,
	})

	x := thumb.Right() + thumbGap
	width := req.Geometry.Right() - rowPadding - x
	if width <= 0 {
		return
	}
	p.DrawText(x, thumb.Y, width, a.item.FileName, selected)
	p.DrawText(x, thumb.Y+lineSkip, width, a.status(), selected)
}

func (a *Attachment) StateGrouped(geometry geom.Rect, sides geom.RectPart, point geom.Point, req grouped.StateRequest, last bool) grouped.TextState {
	if !geometry.Contains(point) {
		return grouped.TextState{}
	}
	checkbox := geom.R(geometry.Right()-rowPadding-toggleSize, geometry.Y+(rowHeight-toggleSize)/2, toggleSize, toggleSize)
	if geometry.Width >= minRowWidth && checkbox.Contains(point) {
		return grouped.TextState{Link: a.toggle, Cursor: grouped.CursorPointer}
	}
	if a.thumbRect(geometry).Contains(point) {
		return grouped.TextState{Link: a.open, Cursor: grouped.CursorPointer}
	}
	if req.ForText {
		return grouped.TextState{Cursor: grouped.CursorText}
	}
	return grouped.TextState{Link: a.open, Cursor: grouped.CursorPointer}
}

func (a *Attachment) ToggleSelectionByHandlerClick(h grouped.ClickHandler) bool {
	return h == a.toggle
}

func (a *Attachment) DragItemByHandler(h grouped.ClickHandler) bool {
	return h == a.open
}

func (a *Attachment) ClickHandlerActiveChanged(h grouped.ClickHandler, active bool) {
	if h == a.open || h == a.toggle {
		a.active = active
	}
}

func (a *Attachment) ClickHandlerPressedChanged(h grouped.ClickHandler, pressed bool) {
	if h == a.open || h == a.toggle {
		a.pressed = pressed
	}
}

func (a *Attachment) StopAnimation() { a.playing = false }

// CheckAnimation keeps an audio track playing only while the row is loaded.
func (a *Attachment) CheckAnimation() {
	if !a.loaded || a.released {
		a.playing = false
	}
}

// SetPlaying starts or stops audio playback. Files ignore it.
func (a *Attachment) SetPlaying(playing bool) {
	a.playing = playing && a.item.Type == grouped.KindAudio && !a.released
}

func (a *Attachment) HasHeavyPart() bool { return a.loaded }

func (a *Attachment) UnloadHeavyPart() {
	a.loaded = false
	a.playing = false
}

func (a *Attachment) RefreshParentID(id grouped.RecordID) {
	a.open.Record = id
	a.toggle.Record = id
}

func (a *Attachment) Caption() string       { return a.item.Caption }
func (a *Attachment) Photo() *grouped.Photo { return nil }

func (a *Attachment) Document() *grouped.Document {
	return &grouped.Document{
		ID:       a.item.ID,
		Name:     a.item.FileName,
		Size:     a.item.FileSize,
		Duration: a.item.Duration,
		Audio:    a.item.Type == grouped.KindAudio,
	}
}

func (a *Attachment) SharedMediaTypes() grouped.SharedMediaTypes {
	if a.item.Type == grouped.KindAudio {
		return grouped.SharedMusicFile
	}
	return grouped.SharedFile
}

func (a *Attachment) Release() {
	a.released = true
	a.loaded = false
	a.playing = false
}

// Playing reports whether an audio track is playing.
func (a *Attachment) Playing() bool { return a.playing }

// Active reports whether one of the row's links is hovered.
func (a *Attachment) Active() bool { return a.active }

// Pressed reports whether one of the row's links is held down.
func (a *Attachment) Pressed() bool { return a.pressed }

// Released reports whether the group has let go of the row.
func (a *Attachment) Released() bool { return a.released }
