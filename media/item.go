// Package media provides the content delegates a grouped.Group lays out:
// photos and videos packed into albums, files and audio stacked in columns.
package media

import (
	"time"

	"github.com/agiangrant/grouped"
)

// Item is a single media record of a message.
type Item struct {
	ID      grouped.RecordID
	Type    grouped.Kind
	Caption string

	// Width and Height are the pixel dimensions of a photo or video.
	Width  int
	Height int

	// FileName and FileSize describe a document.
	FileName string
	FileSize int64

	Duration time.Duration

	// Ungroupable marks records that must be shown on their own, such as
	// expiring media.
	Ungroupable bool
}

// NewPhoto returns a photo record.
func NewPhoto(id grouped.RecordID, width, height int, caption string) *Item {
	return &Item{ID: id, Type: grouped.KindPhoto, Width: width, Height: height, Caption: caption}
}

// NewVideo returns a video record.
func NewVideo(id grouped.RecordID, width, height int, duration time.Duration, caption string) *Item {
	return &Item{ID: id, Type: grouped.KindVideo, Width: width, Height: height, Duration: duration, Caption: caption}
}

// NewFile returns a generic document record.
func NewFile(id grouped.RecordID, name string, size int64, caption string) *Item {
	return &Item{ID: id, Type: grouped.KindFile, FileName: name, FileSize: size, Caption: caption}
}

// NewAudio returns a music file record.
func NewAudio(id grouped.RecordID, name string, size int64, duration time.Duration, caption string) *Item {
	return &Item{ID: id, Type: grouped.KindAudio, FileName: name, FileSize: size, Duration: duration, Caption: caption}
}

func (it *Item) Record() grouped.RecordID { return it.ID }
func (it *Item) Kind() grouped.Kind       { return it.Type }
func (it *Item) Text() string             { return it.Caption }

func (it *Item) CanBeGrouped() bool {
	if it.Ungroupable {
		return false
	}
	switch it.Type {
	case grouped.KindPhoto, grouped.KindVideo, grouped.KindFile, grouped.KindAudio:
		return true
	}
	return false
}

// CreateContent returns the delegate drawing this record inside a group.
func (it *Item) CreateContent(host grouped.Host) grouped.Content {
	switch it.Type {
	case grouped.KindFile, grouped.KindAudio:
		return newAttachment(it)
	}
	return newVisual(it)
}
