package grouped

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Padding is the inset around the caption block.
type Padding struct {
	Left   int `toml:"left"`
	Right  int `toml:"right"`
	Bottom int `toml:"bottom"`
}

// Style holds the spacing constants the sizing engine works with.
type Style struct {
	// MinGridWidth is the narrowest width a grid group is packed at.
	// Below it Resize reports a zero height.
	MinGridWidth int `toml:"min_grid_width"`
	// MaxGridWidth is the width handed to the grid packer.
	MaxGridWidth int `toml:"max_grid_width"`
	// GridSkip is the gap between neighbouring grid cells.
	GridSkip int `toml:"grid_skip"`

	CaptionPadding Padding `toml:"caption_padding"`
	// CaptionGap separates the media from the caption below it.
	CaptionGap int `toml:"caption_gap"`
}

// DefaultStyle returns the stock desktop metrics.
func DefaultStyle() Style {
	return Style{
		MinGridWidth: 100,
		MaxGridWidth: 430,
		GridSkip:     4,
		CaptionPadding: Padding{
			Left:   13,
			Right:  13,
			Bottom: 8,
		},
		CaptionGap: 5,
	}
}

// Validate checks the style for values the sizing engine cannot work with.
func (s Style) Validate() error {
	switch {
	case s.MinGridWidth <= 0:
		return fmt.Errorf("%w: min_grid_width must be positive, got %d", ErrInvalidStyle, s.MinGridWidth)
	case s.MaxGridWidth < s.MinGridWidth:
		return fmt.Errorf("%w: max_grid_width %d is below min_grid_width %d", ErrInvalidStyle, s.MaxGridWidth, s.MinGridWidth)
	case s.GridSkip < 0 || s.CaptionGap < 0:
		return fmt.Errorf("%w: spacing must not be negative", ErrInvalidStyle)
	case s.CaptionPadding.Left < 0 || s.CaptionPadding.Right < 0 || s.CaptionPadding.Bottom < 0:
		return fmt.Errorf("%w: caption padding must not be negative", ErrInvalidStyle)
	}
	return nil
}

// ParseStyle decodes TOML on top of DefaultStyle, so absent keys keep their
// defaults.
func ParseStyle(data []byte) (Style, error) {
	style := DefaultStyle()
	if err := toml.Unmarshal(data, &style); err != nil {
		return DefaultStyle(), fmt.Errorf("failed to parse style: %w", err)
	}
	if err := style.Validate(); err != nil {
		return DefaultStyle(), err
	}
	return style, nil
}

// LoadStyle reads a style file. A missing file yields DefaultStyle.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultStyle(), nil
	}
	if err != nil {
		return DefaultStyle(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	style, err := ParseStyle(data)
	if err != nil {
		return style, fmt.Errorf("%s: %w", path, err)
	}
	return style, nil
}

// SaveStyle writes s to path as TOML.
func SaveStyle(path string, s Style) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal style: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
