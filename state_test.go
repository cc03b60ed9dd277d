package grouped

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agiangrant/grouped/geom"
)

func TestPointStateCoversGroup(t *testing.T) {
	g, _ := newAlbum(t, &StaticHost{})
	g.InitDimensions()
	size := g.Resize(400)

	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			p := geom.Pt(x, y)
			onPart := false
			for _, part := range g.Parts() {
				if part.Geometry().Contains(p) {
					onPart = true
				}
			}
			want := PointInside
			if onPart {
				want = PointGroupPart
			}
			require.Equal(t, want, g.PointState(p), "point %v", p)
		}
	}

	require.Equal(t, PointGroupPart, g.PointState(geom.Pt(10, 10)))
	require.Equal(t, PointInside, g.PointState(geom.Pt(199, 10)))
	for _, p := range []geom.Point{geom.Pt(-1, 0), geom.Pt(400, 0), geom.Pt(0, 302), geom.Pt(0, -1)} {
		require.Equal(t, PointOutside, g.PointState(p), "point %v", p)
	}
}

func TestPartState(t *testing.T) {
	host := &StaticHost{ID: NewRecordID()}
	g, _ := newAlbum(t, host)
	g.InitDimensions()
	g.Resize(400)

	first := g.Part(0).Content().(*fakeContent)
	state := g.PartState(geom.Pt(10, 10), StateRequest{})
	require.Equal(t, g.Part(0).Record(), state.ItemID)
	require.Same(t, first.link, state.Link)
	require.Equal(t, CursorPointer, state.Cursor)
	require.False(t, first.stateLast)

	last := g.Part(3).Content().(*fakeContent)
	state = g.PartState(geom.Pt(250, 200), StateRequest{})
	require.Equal(t, g.Part(3).Record(), state.ItemID)
	require.True(t, last.stateLast)

	state = g.PartState(geom.Pt(199, 10), StateRequest{})
	require.Equal(t, TextState{ItemID: host.ID}, state)
}

func TestTextStateAtCaption(t *testing.T) {
	host := &StaticHost{ID: NewRecordID(), Bottom: true}
	a, b, c := file(200, 40), file(320, 50), file(250, 60)
	c.text = "playlist"
	g, err := New(host, medias(a, b, c), WithCaptionFactory(newFakeCaption))
	require.NoError(t, err)
	g.InitDimensions()
	require.Equal(t, 183, g.ResizeGetHeight(200))

	state := g.TextStateAt(geom.Pt(20, 160), StateRequest{ForText: true})
	require.Equal(t, TextState{ItemID: host.ID, Cursor: CursorText}, state)

	state = g.TextStateAt(geom.Pt(5, 160), StateRequest{})
	require.Equal(t, TextState{ItemID: host.ID}, state)

	state = g.TextStateAt(geom.Pt(20, 152), StateRequest{})
	require.Equal(t, TextState{ItemID: host.ID}, state)

	state = g.TextStateAt(geom.Pt(20, 45), StateRequest{})
	require.Equal(t, b.id, state.ItemID)
	require.Same(t, b.content.link, state.Link)
}

func TestTextStateAtDateBadge(t *testing.T) {
	host := &StaticHost{ID: NewRecordID(), Info: InfoDisplay{LastAndSelf: true, Badge: geom.Sz(60, 20)}}
	g, _ := newAlbum(t, host)
	g.InitDimensions()
	g.Resize(400)
	require.True(t, g.NeedInfoDisplay())

	state := g.TextStateAt(geom.Pt(390, 295), StateRequest{})
	require.Equal(t, CursorDate, state.Cursor)
	require.Equal(t, g.Part(3).Record(), state.ItemID)
	require.NotNil(t, state.Link)

	state = g.TextStateAt(geom.Pt(300, 200), StateRequest{})
	require.Equal(t, CursorPointer, state.Cursor)
}

func TestNeedInfoDisplay(t *testing.T) {
	badge := geom.Sz(60, 20)
	tests := []struct {
		name   string
		info   InfoDisplay
		column bool
		want   bool
	}{
		{"hidden", InfoDisplay{Badge: badge}, false, false},
		{"pending", InfoDisplay{Pending: true, Badge: badge}, false, true},
		{"under cursor", InfoDisplay{UnderCursor: true, Badge: badge}, false, true},
		{"last and self", InfoDisplay{LastAndSelf: true, Badge: badge}, false, true},
		{"no badge", InfoDisplay{UnderCursor: true}, false, false},
		{"column", InfoDisplay{UnderCursor: true, Badge: badge}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := medias(photo(100, 100), photo(200, 100))
			if tt.column {
				items = medias(file(200, 40), file(200, 40))
			}
			g, err := New(&StaticHost{Info: tt.info}, items)
			require.NoError(t, err)
			require.Equal(t, tt.want, g.NeedInfoDisplay())
		})
	}
}

func TestStateStrings(t *testing.T) {
	require.Equal(t, "outside", PointOutside.String())
	require.Equal(t, "part", PointGroupPart.String())
	require.Equal(t, "text", CursorText.String())
	require.Equal(t, "date", CursorDate.String())
	require.Equal(t, "grid", ModeGrid.String())
	require.Equal(t, "column", ModeColumn.String())
	require.Equal(t, "audio", KindAudio.String())
	require.Equal(t, "reuse", Reuse.String())
}
