package grouped

import (
	"time"

	"github.com/agiangrant/grouped/geom"
)

// MaxSize is the largest number of members a group holds.
const MaxSize = 10

// Kind is the media flavour of a candidate.
type Kind int

const (
	KindPhoto Kind = iota
	KindVideo
	KindFile
	KindAudio
)

func (k Kind) String() string {
	switch k {
	case KindPhoto:
		return "photo"
	case KindVideo:
		return "video"
	case KindFile:
		return "file"
	case KindAudio:
		return "audio"
	}
	return "unknown"
}

// Mode is the layout family of a group.
type Mode int

const (
	// ModeGrid packs thumbnails into rows.
	ModeGrid Mode = iota
	// ModeColumn stacks items at one shared width.
	ModeColumn
)

func (m Mode) String() string {
	if m == ModeColumn {
		return "column"
	}
	return "grid"
}

// DetectMode returns ModeColumn for file-like documents that are not videos
// and ModeGrid for everything else.
func DetectMode(m Media) Mode {
	switch m.Kind() {
	case KindFile, KindAudio:
		return ModeColumn
	}
	return ModeGrid
}

// Media is one candidate for a group, as supplied by the caller.
type Media interface {
	Record() RecordID
	Kind() Kind
	// Text is the message text attached to this record, used as the group
	// caption source.
	Text() string
	CanBeGrouped() bool
	// CreateContent builds the renderable delegate for this record. The
	// returned Content is owned by the part that requested it.
	CreateContent(host Host) Content
}

// Content is the renderable delegate of one member.
type Content interface {
	InitDimensions()
	MaxWidth() int
	SizeForGroupingOptimal(maxWidth int, last bool) geom.Size
	SizeForGrouping(width int, last bool) geom.Size

	DrawGrouped(p Painter, req DrawRequest)
	StateGrouped(geometry geom.Rect, sides geom.RectPart, point geom.Point, req StateRequest, last bool) TextState

	ToggleSelectionByHandlerClick(h ClickHandler) bool
	DragItemByHandler(h ClickHandler) bool
	ClickHandlerActiveChanged(h ClickHandler, active bool)
	ClickHandlerPressedChanged(h ClickHandler, pressed bool)

	StopAnimation()
	CheckAnimation()
	HasHeavyPart() bool
	UnloadHeavyPart()
	RefreshParentID(id RecordID)

	Caption() string
	Photo() *Photo
	Document() *Document
	SharedMediaTypes() SharedMediaTypes

	// Release drops everything the delegate holds. It is called before the
	// owning group tears down the rest of its state.
	Release()
}

// Photo describes an image record.
type Photo struct {
	ID            RecordID
	Width, Height int
}

// Document describes a file record.
type Document struct {
	ID       RecordID
	Name     string
	Size     int64
	Duration time.Duration
	Video    bool
	Audio    bool
}

// SharedMediaTypes is the set of shared-media sections a record belongs to.
type SharedMediaTypes uint8

const (
	SharedPhoto SharedMediaTypes = 1 << iota
	SharedVideo
	SharedPhotoVideo
	SharedFile
	SharedMusicFile
)
