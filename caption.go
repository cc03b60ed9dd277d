package grouped

import "github.com/agiangrant/grouped/geom"

// Caption is a laid-out text block shown under the media.
type Caption interface {
	Empty() bool
	Text() string
	Height(width int) int
	Draw(p Painter, x, y, width int, selected bool)
	State(point geom.Point, width int, req StateRequest) TextState
}

// CaptionFactory lays out caption text.
type CaptionFactory func(text string) Caption

type emptyCaption struct{}

func (emptyCaption) Empty() bool                                   { return true }
func (emptyCaption) Text() string                                  { return "" }
func (emptyCaption) Height(int) int                                { return 0 }
func (emptyCaption) Draw(Painter, int, int, int, bool)             {}
func (emptyCaption) State(geom.Point, int, StateRequest) TextState { return TextState{} }
