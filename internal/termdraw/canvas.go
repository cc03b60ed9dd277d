// Package termdraw rasterizes a group onto terminal cells.
package termdraw

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/agiangrant/grouped"
	"github.com/agiangrant/grouped/geom"
)

// Metrics is the pixel size of one terminal cell.
type Metrics struct {
	CellWidth  int
	CellHeight int
}

// DefaultMetrics lines text cells up with the glyph advance and line height
// the media and caption packages measure with.
var DefaultMetrics = Metrics{CellWidth: 7, CellHeight: 18}

type tone uint8

const (
	toneNone tone = iota
	tonePhoto
	toneVideo
	toneFile
	toneAudio
	toneText
)

func toneOf(k grouped.Kind) tone {
	switch k {
	case grouped.KindVideo:
		return toneVideo
	case grouped.KindFile:
		return toneFile
	case grouped.KindAudio:
		return toneAudio
	}
	return tonePhoto
}

type cell struct {
	r        rune
	tone     tone
	selected bool
	// cont marks the right half of a double-width rune.
	cont bool
}

// Canvas is a grid of cells implementing grouped.Painter.
type Canvas struct {
	metrics Metrics
	cols    int
	rows    int
	cells   []cell
	styles  Styles
}

// New returns a blank canvas covering width x height pixels.
func New(width, height int, m Metrics) *Canvas {
	if m.CellWidth <= 0 || m.CellHeight <= 0 {
		m = DefaultMetrics
	}
	c := &Canvas{
		metrics: m,
		cols:    max(0, (width+m.CellWidth-1)/m.CellWidth),
		rows:    max(0, (height+m.CellHeight-1)/m.CellHeight),
		styles:  DefaultStyles(),
	}
	c.cells = make([]cell, c.cols*c.rows)
	c.Clear()
	return c
}

// SetStyles replaces the colours used by Render.
func (c *Canvas) SetStyles(s Styles) { c.styles = s }

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int { return c.rows }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
}

// CellAt converts a cell position back to the pixel at its centre.
func (c *Canvas) CellAt(col, row int) geom.Point {
	return geom.Pt(col*c.metrics.CellWidth+c.metrics.CellWidth/2, row*c.metrics.CellHeight+c.metrics.CellHeight/2)
}

func (c *Canvas) col(px int) int { return (px + c.metrics.CellWidth/2) / c.metrics.CellWidth }
func (c *Canvas) row(px int) int { return (px + c.metrics.CellHeight/2) / c.metrics.CellHeight }

func (c *Canvas) set(x, y int, v cell) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.cells[y*c.cols+x] = v
}

// FillRect draws a member box. Boxes of at least 3x3 cells get a border
// with rounded glyphs on the requested corners and the label centred
// inside; smaller ones are filled with the label on their first row.
func (c *Canvas) FillRect(r geom.Rect, fill grouped.Fill) {
	if r.Empty() {
		return
	}
	x0, y0 := c.col(r.X), c.row(r.Y)
	x1, y1 := max(c.col(r.Right()), x0+1), max(c.row(r.Bottom()), y0+1)
	w, h := x1-x0, y1-y0
	t := toneOf(fill.Kind)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y, cell{r: ' ', tone: t, selected: fill.Selected})
		}
	}

	if w < 3 || h < 3 {
		c.write(x0, y0, w, fill.Label, t, fill.Selected)
		return
	}

	border := func(x, y int, r rune) {
		c.set(x, y, cell{r: r, tone: t, selected: fill.Selected})
	}
	for x := x0 + 1; x < x1-1; x++ {
		border(x, y0, '─')
		border(x, y1-1, '─')
	}
	for y := y0 + 1; y < y1-1; y++ {
		border(x0, y, '│')
		border(x1-1, y, '│')
	}
	border(x0, y0, corner(fill.Corners, geom.TopLeft, '╭', '┌'))
	border(x1-1, y0, corner(fill.Corners, geom.TopRight, '╮', '┐'))
	border(x0, y1-1, corner(fill.Corners, geom.BottomLeft, '╰', '└'))
	border(x1-1, y1-1, corner(fill.Corners, geom.BottomRight, '╯', '┘'))

	inner := w - 2
	label := runewidth.Truncate(fill.Label, inner, "…")
	pad := (inner - runewidth.StringWidth(label)) / 2
	c.write(x0+1+pad, y0+h/2, inner-pad, label, t, fill.Selected)
}

func corner(corners, which geom.RectPart, rounded, square rune) rune {
	if corners.Has(which) {
		return rounded
	}
	return square
}

// DrawText writes text truncated to width pixels.
func (c *Canvas) DrawText(x, y, width int, text string, selected bool) {
	cells := width / c.metrics.CellWidth
	if cells <= 0 {
		return
	}
	c.write(x/c.metrics.CellWidth, y/c.metrics.CellHeight, cells, runewidth.Truncate(text, cells, "…"), toneText, selected)
}

func (c *Canvas) write(x, y, cells int, text string, t tone, selected bool) {
	end := x + cells
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > end {
			return
		}
		c.set(x, y, cell{r: r, tone: t, selected: selected})
		if w == 2 {
			c.set(x+1, y, cell{tone: t, selected: selected, cont: true})
		}
		x += w
	}
}

// Plain returns the canvas without colours, trailing blanks trimmed.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for y := 0; y < c.rows; y++ {
		var line strings.Builder
		for _, v := range c.cells[y*c.cols : (y+1)*c.cols] {
			if !v.cont {
				line.WriteRune(v.r)
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		if y < c.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Render returns the canvas styled with lipgloss, one line per row.
func (c *Canvas) Render() string {
	lines := make([]string, c.rows)
	for y := 0; y < c.rows; y++ {
		row := c.cells[y*c.cols : (y+1)*c.cols]
		var b strings.Builder
		var run strings.Builder
		start := 0
		flush := func(end int) {
			if run.Len() > 0 {
				b.WriteString(c.styles.style(row[start]).Render(run.String()))
				run.Reset()
			}
			start = end
		}
		for x, v := range row {
			if v.tone != row[start].tone || v.selected != row[start].selected {
				flush(x)
			}
			if !v.cont {
				run.WriteRune(v.r)
			}
		}
		flush(len(row))
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
