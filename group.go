// Package grouped composes several media records of one message into a
// single album or playlist geometry.
//
// A Group owns its members, computes their natural packing once per
// InitDimensions call and rescales it for narrower widths on Resize. Hit
// testing, selection bands and drawing read the geometry of the last Resize.
// A Group is not safe for concurrent use.
package grouped

import (
	"fmt"

	"github.com/agiangrant/grouped/pack"
)

// Group is the combined visual entity of up to MaxSize media records.
type Group struct {
	host       Host
	style      Style
	packer     pack.Func
	newCaption CaptionFactory

	mode       Mode
	parts      []*Part
	caption    Caption
	needBubble bool

	maxWidth  int
	minHeight int
	width     int
	height    int
}

// Option configures a Group.
type Option func(*Group)

// WithStyle replaces DefaultStyle.
func WithStyle(s Style) Option {
	return func(g *Group) { g.style = s }
}

// WithPacker replaces pack.Grid for grid groups.
func WithPacker(f pack.Func) Option {
	return func(g *Group) {
		if f != nil {
			g.packer = f
		}
	}
}

// WithCaptionFactory sets how caption text is turned into a Caption. Without
// it groups never show a caption.
func WithCaptionFactory(f CaptionFactory) Option {
	return func(g *Group) { g.newCaption = f }
}

// New builds a group from medias. Candidates past MaxSize are ignored.
func New(host Host, medias []Media, opts ...Option) (*Group, error) {
	if host == nil {
		return nil, fmt.Errorf("grouped: nil host")
	}
	g := &Group{
		host:    host,
		style:   DefaultStyle(),
		packer:  pack.Grid,
		caption: emptyCaption{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.style.Validate(); err != nil {
		return nil, err
	}
	if err := g.Apply(medias); err != nil {
		return nil, err
	}
	return g, nil
}

// Apply updates the members to match medias. When the records are unchanged
// the existing members and their delegates are kept as they are; otherwise
// the group is rebuilt. Callers re-measure afterwards.
func (g *Group) Apply(medias []Media) error {
	if len(medias) > MaxSize {
		medias = medias[:MaxSize]
	}
	if len(medias) == 0 {
		return ErrNoEligibleMedia
	}

	mode, eligible := filterByMode(medias)
	candidate := make([]RecordID, len(eligible))
	for i, m := range eligible {
		candidate[i] = m.Record()
	}
	if Diff(g.Records(), candidate) == Reuse {
		logger.Debug("group parts reused", "count", len(g.parts))
		return nil
	}

	for _, m := range eligible {
		if !m.CanBeGrouped() {
			return fmt.Errorf("%w: record %s", ErrNotGroupable, m.Record())
		}
	}

	g.releaseParts()
	g.mode = mode
	for _, m := range eligible {
		g.parts = append(g.parts, newPart(m, g.host))
	}
	if len(g.parts) > MaxSize {
		panic(fmt.Sprintf("grouped: %d parts exceed the limit of %d", len(g.parts), MaxSize))
	}

	g.maxWidth, g.minHeight, g.width, g.height = 0, 0, 0, 0
	g.UpdateNeedBubbleState()
	logger.Debug("group rebuilt", "count", len(g.parts), "mode", g.mode.String())
	return nil
}

// filterByMode fixes the mode from the first candidate and drops every
// candidate of another mode.
func filterByMode(medias []Media) (Mode, []Media) {
	mode := DetectMode(medias[0])
	eligible := make([]Media, 0, len(medias))
	for _, m := range medias {
		if DetectMode(m) != mode {
			logger.Debug("skipping media of another mode",
				"record", m.Record().String(), "kind", m.Kind().String(), "mode", mode.String())
			continue
		}
		eligible = append(eligible, m)
	}
	return mode, eligible
}

// Close releases every member. The group must not be used afterwards.
func (g *Group) Close() {
	g.releaseParts()
	g.caption = emptyCaption{}
	g.host = nil
}

func (g *Group) releaseParts() {
	for _, part := range g.parts {
		part.release()
	}
	g.parts = nil
}

// Mode returns the layout family fixed by the first member.
func (g *Group) Mode() Mode { return g.mode }

// Style returns the spacing constants in use.
func (g *Group) Style() Style { return g.style }

// Len returns the number of members.
func (g *Group) Len() int { return len(g.parts) }

// Part returns member i.
func (g *Group) Part(i int) *Part { return g.parts[i] }

// Parts returns the members in order. The slice must not be modified.
func (g *Group) Parts() []*Part { return g.parts }

// Records returns the member identities in order.
func (g *Group) Records() []RecordID {
	ids := make([]RecordID, len(g.parts))
	for i, part := range g.parts {
		ids[i] = part.record
	}
	return ids
}

// CaptionBlock returns the caption attached to the whole group.
func (g *Group) CaptionBlock() Caption { return g.caption }

// main is the member that stands for the whole group.
func (g *Group) main() Content {
	if len(g.parts) == 0 {
		panic("grouped: representative requested from an empty group")
	}
	return g.parts[len(g.parts)-1].content
}
