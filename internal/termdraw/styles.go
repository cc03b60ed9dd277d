package termdraw

import "github.com/charmbracelet/lipgloss"

// Styles colours each kind of cell.
type Styles struct {
	Photo    lipgloss.Style
	Video    lipgloss.Style
	File     lipgloss.Style
	Audio    lipgloss.Style
	Text     lipgloss.Style
	Selected lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Photo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0")).Background(lipgloss.Color("#2E5E8C")),
		Video:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#7A3E8C")),
		File:     lipgloss.NewStyle().Foreground(lipgloss.Color("#1B1B1B")).Background(lipgloss.Color("#D8B25A")),
		Audio:    lipgloss.NewStyle().Foreground(lipgloss.Color("#1B1B1B")).Background(lipgloss.Color("#6FBF73")),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().Reverse(true),
	}
}

func (s Styles) style(v cell) lipgloss.Style {
	var base lipgloss.Style
	switch v.tone {
	case tonePhoto:
		base = s.Photo
	case toneVideo:
		base = s.Video
	case toneFile:
		base = s.File
	case toneAudio:
		base = s.Audio
	case toneText:
		base = s.Text
	default:
		base = lipgloss.NewStyle()
	}
	if v.selected {
		return base.Inherit(s.Selected)
	}
	return base
}
