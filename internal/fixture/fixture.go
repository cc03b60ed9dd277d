// Package fixture loads album descriptions from TOML files.
package fixture

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/grouped"
	"github.com/agiangrant/grouped/geom"
	"github.com/agiangrant/grouped/media"
)

//go:embed samples/*.toml
var samples embed.FS

// Album is one message with its host flags and media records.
type Album struct {
	Host  Host    `toml:"host"`
	Media []Media `toml:"media"`
}

// Host describes the message bubble the group is drawn in.
type Host struct {
	ID            string `toml:"id"`
	Top           bool   `toml:"top"`
	Bottom        bool   `toml:"bottom"`
	Comments      bool   `toml:"comments"`
	ExternalReply bool   `toml:"external_reply"`
	ViaBot        bool   `toml:"via_bot"`
	Reply         bool   `toml:"reply"`
	Forwarded     bool   `toml:"forwarded"`
	FromName      bool   `toml:"from_name"`
	Pending       bool   `toml:"pending"`
	UnderCursor   bool   `toml:"under_cursor"`
	LastAndSelf   bool   `toml:"last_and_self"`
	BadgeWidth    int    `toml:"badge_width"`
	BadgeHeight   int    `toml:"badge_height"`
}

// Media is one record of the album.
type Media struct {
	ID          string `toml:"id"`
	Kind        string `toml:"kind"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Name        string `toml:"name"`
	Size        int64  `toml:"size"`
	Duration    string `toml:"duration"`
	Caption     string `toml:"caption"`
	Ungroupable bool   `toml:"ungroupable"`
}

// Parse decodes an album and fills in missing record ids.
func Parse(data []byte) (*Album, error) {
	var a Album
	if err := toml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse album: %w", err)
	}
	if a.Host.ID == "" {
		a.Host.ID = grouped.NewRecordID().String()
	}
	for i := range a.Media {
		if a.Media[i].ID == "" {
			a.Media[i].ID = grouped.NewRecordID().String()
		}
	}
	return &a, nil
}

// Load reads an album file.
func Load(path string) (*Album, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	a, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Sample returns a built-in album by name.
func Sample(name string) (*Album, error) {
	data, err := samples.ReadFile(path.Join("samples", name+".toml"))
	if err != nil {
		return nil, fmt.Errorf("unknown sample %q (have %s)", name, strings.Join(SampleNames(), ", "))
	}
	return Parse(data)
}

// SampleNames lists the built-in albums.
func SampleNames() []string {
	entries, _ := samples.ReadDir("samples")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}

// Marshal encodes the album back to TOML.
func (a *Album) Marshal() ([]byte, error) {
	return toml.Marshal(a)
}

// ParseKind maps a kind name to grouped.Kind.
func ParseKind(s string) (grouped.Kind, error) {
	switch strings.ToLower(s) {
	case "photo":
		return grouped.KindPhoto, nil
	case "video":
		return grouped.KindVideo, nil
	case "file", "document":
		return grouped.KindFile, nil
	case "audio", "music":
		return grouped.KindAudio, nil
	}
	return 0, fmt.Errorf("unknown media kind %q", s)
}

// Build turns the album into a host and media items ready for grouped.New.
func (a *Album) Build() (*grouped.StaticHost, []grouped.Media, error) {
	hostID, err := grouped.ParseRecordID(a.Host.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("host id: %w", err)
	}
	host := &grouped.StaticHost{
		ID:     hostID,
		Top:    a.Host.Top,
		Bottom: a.Host.Bottom,
		Decor: grouped.Decorations{
			Comments:               a.Host.Comments,
			ExternalReply:          a.Host.ExternalReply,
			ViaBot:                 a.Host.ViaBot,
			DisplayedReply:         a.Host.Reply,
			DisplayedForwardedFrom: a.Host.Forwarded,
			DisplayedFromName:      a.Host.FromName,
		},
		Info: grouped.InfoDisplay{
			Pending:     a.Host.Pending,
			UnderCursor: a.Host.UnderCursor,
			LastAndSelf: a.Host.LastAndSelf,
			Badge:       geom.Sz(a.Host.BadgeWidth, a.Host.BadgeHeight),
		},
	}

	items := make([]grouped.Media, 0, len(a.Media))
	for i, m := range a.Media {
		item, err := m.item()
		if err != nil {
			return nil, nil, fmt.Errorf("media %d: %w", i, err)
		}
		items = append(items, item)
	}
	return host, items, nil
}

func (m Media) item() (*media.Item, error) {
	id, err := grouped.ParseRecordID(m.ID)
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}
	kind, err := ParseKind(m.Kind)
	if err != nil {
		return nil, err
	}
	var duration time.Duration
	if m.Duration != "" {
		if duration, err = time.ParseDuration(m.Duration); err != nil {
			return nil, fmt.Errorf("duration: %w", err)
		}
	}
	return &media.Item{
		ID:          id,
		Type:        kind,
		Caption:     m.Caption,
		Width:       m.Width,
		Height:      m.Height,
		FileName:    m.Name,
		FileSize:    m.Size,
		Duration:    duration,
		Ungroupable: m.Ungroupable,
	}, nil
}
