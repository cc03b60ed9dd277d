package grouped

import "github.com/agiangrant/grouped/geom"

// Decorations are the message chrome flags that force a bubble around a
// grid group.
type Decorations struct {
	Comments               bool
	ExternalReply          bool
	ViaBot                 bool
	DisplayedReply         bool
	DisplayedForwardedFrom bool
	DisplayedFromName      bool
}

// Any reports whether at least one decoration is shown.
func (d Decorations) Any() bool {
	return d.Comments || d.ExternalReply || d.ViaBot ||
		d.DisplayedReply || d.DisplayedForwardedFrom || d.DisplayedFromName
}

// Host is the message element a group is rendered inside.
type Host interface {
	// Record is the group's own record, reported by hit-tests that land on
	// no member.
	Record() RecordID
	// BubbleTop reports whether the group is the visual top of its bubble.
	BubbleTop() bool
	// BubbleBottom reports whether the group is the visual bottom of its bubble.
	BubbleBottom() bool
	Decorations() Decorations
}

// InfoDisplay describes the date badge a host overlays on the bottom-right
// corner of a grid group.
type InfoDisplay struct {
	// Pending is set while the message is not sent yet.
	Pending     bool
	UnderCursor bool
	LastAndSelf bool
	// Badge is the size of the date badge. A zero size shows none.
	Badge geom.Size
}

// Shown reports whether the badge is drawn.
func (d InfoDisplay) Shown() bool {
	return !d.Badge.Empty() && (d.Pending || d.UnderCursor || d.LastAndSelf)
}

// InfoHost is a Host that draws a date badge over grid groups.
type InfoHost interface {
	Host
	InfoDisplay() InfoDisplay
}

// StaticHost is a Host with fixed answers.
type StaticHost struct {
	ID     RecordID
	Top    bool
	Bottom bool
	Decor  Decorations
	Info   InfoDisplay
}

func (h *StaticHost) Record() RecordID         { return h.ID }
func (h *StaticHost) BubbleTop() bool          { return h.Top }
func (h *StaticHost) BubbleBottom() bool       { return h.Bottom }
func (h *StaticHost) Decorations() Decorations { return h.Decor }
func (h *StaticHost) InfoDisplay() InfoDisplay { return h.Info }
