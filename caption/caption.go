// Package caption lays out the text shown under a media group.
package caption

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/agiangrant/grouped"
	"github.com/agiangrant/grouped/geom"
)

// Metrics converts between pixels and text cells.
type Metrics struct {
	GlyphWidth int
	LineHeight int
}

// DefaultMetrics matches the glyph advance used by file rows.
var DefaultMetrics = Metrics{GlyphWidth: 7, LineHeight: 18}

// Block is a word-wrapped caption.
type Block struct {
	text    string
	metrics Metrics

	wrapWidth int
	lines     []string
}

// New returns a caption using DefaultMetrics.
func New(text string) *Block {
	return NewWithMetrics(text, DefaultMetrics)
}

// NewWithMetrics returns a caption measured with m.
func NewWithMetrics(text string, m Metrics) *Block {
	return &Block{text: strings.TrimSpace(text), metrics: m, wrapWidth: -1}
}

// Factory returns a grouped.CaptionFactory producing captions measured with m.
func Factory(m Metrics) grouped.CaptionFactory {
	return func(text string) grouped.Caption {
		return NewWithMetrics(text, m)
	}
}

func (b *Block) Empty() bool  { return b.text == "" }
func (b *Block) Text() string { return b.text }

// Lines returns the caption wrapped to width pixels. Words are kept whole
// unless a single word is wider than the line.
func (b *Block) Lines(width int) []string {
	if b.text == "" {
		return nil
	}
	if width == b.wrapWidth {
		return b.lines
	}
	cells := max(1, width/b.metrics.GlyphWidth)
	wrapped := wrap.String(wordwrap.String(b.text, cells), cells)

	split := strings.Split(wrapped, "\n")
	lines := make([]string, len(split))
	for i, line := range split {
		lines[i] = strings.TrimRight(line, " ")
	}
	b.lines, b.wrapWidth = lines, width
	return lines
}

func (b *Block) Height(width int) int {
	return len(b.Lines(width)) * b.metrics.LineHeight
}

func (b *Block) Draw(p grouped.Painter, x, y, width int, selected bool) {
	for i, line := range b.Lines(width) {
		p.DrawText(x, y+i*b.metrics.LineHeight, width, line, selected)
	}
}

// State reports a URL link under point, or a text cursor over any other
// glyph. point is relative to the caption's top left corner.
func (b *Block) State(point geom.Point, width int, req grouped.StateRequest) grouped.TextState {
	lines := b.Lines(width)
	if point.X < 0 || point.Y < 0 {
		return grouped.TextState{}
	}
	row := point.Y / b.metrics.LineHeight
	if row >= len(lines) {
		return grouped.TextState{}
	}
	col := point.X / b.metrics.GlyphWidth
	word, ok := wordAt(lines[row], col)
	if !ok {
		return grouped.TextState{}
	}
	if !req.ForText && isURL(word) {
		return grouped.TextState{Link: &URL{Target: word}, Cursor: grouped.CursorPointer}
	}
	return grouped.TextState{Cursor: grouped.CursorText}
}

// wordAt returns the space-separated word covering cell col of line. ok is
// false past the end of the line.
func wordAt(line string, col int) (word string, ok bool) {
	cells, start := 0, 0
	for i, r := range line {
		w := runewidth.RuneWidth(r)
		if col >= cells && col < cells+w {
			if r == ' ' {
				return "", true
			}
			end := strings.IndexByte(line[i:], ' ')
			if end < 0 {
				return line[start:], true
			}
			return line[start : i+end], true
		}
		cells += w
		if r == ' ' {
			start = i + 1
		}
	}
	return "", false
}

func isURL(word string) bool {
	return strings.HasPrefix(word, "https://") || strings.HasPrefix(word, "http://")
}

// URL is the click handler of a link inside a caption.
type URL struct {
	Target string
}

func (u *URL) Label() string { return u.Target }
