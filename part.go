package grouped

import "github.com/agiangrant/grouped/geom"

// PaintCache is a per-member slot a content delegate may keep rendered
// output in between frames. The delegate decides when Key no longer matches
// what Image was rendered from; the group only owns the slot.
type PaintCache struct {
	Key   uint64
	Image any
}

// Reset empties the cache.
func (c *PaintCache) Reset() {
	c.Key = 0
	c.Image = nil
}

// Part is one member of a group.
type Part struct {
	record  RecordID
	media   Media
	content Content

	initialGeometry geom.Rect
	geometry        geom.Rect
	sides           geom.RectPart

	cache PaintCache
}

func newPart(media Media, host Host) *Part {
	return &Part{
		record:  media.Record(),
		media:   media,
		content: media.CreateContent(host),
	}
}

// Record returns the identity of the record this part renders.
func (p *Part) Record() RecordID { return p.record }

// Kind returns the media kind of the record.
func (p *Part) Kind() Kind { return p.media.Kind() }

// Content returns the part's delegate.
func (p *Part) Content() Content { return p.content }

// InitialGeometry is the rectangle from the last full layout pass.
func (p *Part) InitialGeometry() geom.Rect { return p.initialGeometry }

// Geometry is the rectangle for the current width.
func (p *Part) Geometry() geom.Rect { return p.geometry }

// Sides reports which outer group edges the part touches.
func (p *Part) Sides() geom.RectPart { return p.sides }

func (p *Part) release() {
	p.cache.Reset()
	if p.content != nil {
		p.content.Release()
		p.content = nil
	}
}
