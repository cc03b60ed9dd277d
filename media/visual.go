package media

import (
	"fmt"

	"github.com/agiangrant/grouped"
	"github.com/agiangrant/grouped/geom"
)

// toggleSize is the side of the selection checkbox in a cell's top right
// corner. Cells narrower than two checkboxes have none.
const toggleSize = 24

// Visual draws a photo or a video as one album cell.
type Visual struct {
	item   *Item
	open   *Link
	toggle *Link

	loaded   bool
	playing  bool
	active   bool
	pressed  bool
	released bool
}

func newVisual(it *Item) *Visual {
	name := fmt.Sprintf("%s %s", it.Type, shortID(it.ID))
	return &Visual{
		item:   it,
		open:   &Link{Action: ActionOpen, Record: it.ID, name: name},
		toggle: &Link{Action: ActionToggleSelection, Record: it.ID, name: name},
	}
}

func shortID(id grouped.RecordID) string {
	return id.String()[:8]
}

// InitDimensions is a no-op: cells are measured from the pixel size alone.
func (v *Visual) InitDimensions() {}

func (v *Visual) MaxWidth() int {
	return v.naturalSize().Width
}

func (v *Visual) naturalSize() geom.Size {
	return geom.Sz(max(v.item.Width, 1), max(v.item.Height, 1))
}

func (v *Visual) SizeForGroupingOptimal(maxWidth int, last bool) geom.Size {
	return v.naturalSize()
}

func (v *Visual) SizeForGrouping(width int, last bool) geom.Size {
	n := v.naturalSize()
	return geom.Sz(width, max(1, width*n.Height/n.Width))
}

func (v *Visual) DrawGrouped(p grouped.Painter, req grouped.DrawRequest) {
	v.loaded = true
	if key := sizeKey(req.Geometry.Size()); req.Cache.Key != key {
		req.Cache.Key = key
		req.Cache.Image = v.thumbnail()
	}
	label, _ := req.Cache.Image.(string)
	p.FillRect(req.Geometry, grouped.Fill{
		Kind:     v.item.Type,
		Label:    label,
		Corners:  req.Corners,
		Selected: req.Selection.Full(),
	})
}

func sizeKey(s geom.Size) uint64 {
	return uint64(uint32(s.Width))<<32 | uint64(uint32(s.Height))
}

func (v *Visual) thumbnail() string {
	if v.item.Type == grouped.KindVideo {
		return "▶ " + formatDuration(v.item.Duration)
	}
	return fmt.Sprintf("%dx%d", v.item.Width, v.item.Height)
}

func (v *Visual) StateGrouped(geometry geom.Rect, sides geom.RectPart, point geom.Point, req grouped.StateRequest, last bool) grouped.TextState {
	if !geometry.Contains(point) {
		return grouped.TextState{}
	}
	if geometry.Width >= 2*toggleSize {
		checkbox := geom.R(geometry.Right()-toggleSize, geometry.Y, toggleSize, toggleSize)
		if checkbox.Contains(point) {
			return grouped.TextState{Link: v.toggle, Cursor: grouped.CursorPointer}
		}
	}
	return grouped.TextState{Link: v.open, Cursor: grouped.CursorPointer}
}

func (v *Visual) ToggleSelectionByHandlerClick(h grouped.ClickHandler) bool {
	return h == v.toggle
}

func (v *Visual) DragItemByHandler(h grouped.ClickHandler) bool {
	return h == v.open
}

func (v *Visual) ClickHandlerActiveChanged(h grouped.ClickHandler, active bool) {
	if v.owns(h) {
		v.active = active
	}
}

func (v *Visual) ClickHandlerPressedChanged(h grouped.ClickHandler, pressed bool) {
	if v.owns(h) {
		v.pressed = pressed
	}
}

func (v *Visual) owns(h grouped.ClickHandler) bool {
	return h == v.open || h == v.toggle
}

func (v *Visual) StopAnimation() {
	v.playing = false
}

// CheckAnimation starts muted autoplay for a video whose frames are loaded.
func (v *Visual) CheckAnimation() {
	if v.item.Type == grouped.KindVideo && v.loaded && !v.released {
		v.playing = true
	}
}

func (v *Visual) HasHeavyPart() bool { return v.loaded }

func (v *Visual) UnloadHeavyPart() {
	v.loaded = false
	v.playing = false
}

func (v *Visual) RefreshParentID(id grouped.RecordID) {
	v.open.Record = id
	v.toggle.Record = id
}

func (v *Visual) Caption() string { return v.item.Caption }

func (v *Visual) Photo() *grouped.Photo {
	if v.item.Type != grouped.KindPhoto {
		return nil
	}
	return &grouped.Photo{ID: v.item.ID, Width: v.item.Width, Height: v.item.Height}
}

func (v *Visual) Document() *grouped.Document {
	if v.item.Type != grouped.KindVideo {
		return nil
	}
	return &grouped.Document{
		ID:       v.item.ID,
		Name:     v.item.FileName,
		Size:     v.item.FileSize,
		Duration: v.item.Duration,
		Video:    true,
	}
}

func (v *Visual) SharedMediaTypes() grouped.SharedMediaTypes {
	if v.item.Type == grouped.KindVideo {
		return grouped.SharedVideo | grouped.SharedPhotoVideo
	}
	return grouped.SharedPhoto | grouped.SharedPhotoVideo
}

func (v *Visual) Release() {
	v.released = true
	v.loaded = false
	v.playing = false
}

// Playing reports whether a video is animating.
func (v *Visual) Playing() bool { return v.playing }

// Active reports whether one of the cell's links is hovered.
func (v *Visual) Active() bool { return v.active }

// Pressed reports whether one of the cell's links is held down.
func (v *Visual) Pressed() bool { return v.pressed }

// Released reports whether the group has let go of the cell.
func (v *Visual) Released() bool { return v.released }
