package fixture

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agiangrant/grouped"
	"github.com/agiangrant/grouped/geom"
	"github.com/agiangrant/grouped/media"
)

const albumTOML = `
[host]
id = "6f1c2b8e-3d4a-4c5b-9e6f-7a8b9c0d1e2f"
bottom = true
via_bot = true
under_cursor = true
badge_width = 56
badge_height = 22

[[media]]
id = "11111111-2222-4333-8444-555555555555"
kind = "photo"
width = 800
height = 600
caption = "first"

[[media]]
kind = "video"
width = 640
height = 360
duration = "1m5s"
`

func TestParseAndBuild(t *testing.T) {
	a, err := Parse([]byte(albumTOML))
	require.NoError(t, err)
	require.Len(t, a.Media, 2)
	require.NotEmpty(t, a.Media[1].ID)

	host, items, err := a.Build()
	require.NoError(t, err)
	require.Equal(t, "6f1c2b8e-3d4a-4c5b-9e6f-7a8b9c0d1e2f", host.ID.String())
	require.True(t, host.Bottom)
	require.False(t, host.Top)
	require.True(t, host.Decor.ViaBot)
	require.True(t, host.Decor.Any())
	require.Equal(t, grouped.InfoDisplay{UnderCursor: true, Badge: geom.Sz(56, 22)}, host.Info)
	require.True(t, host.Info.Shown())

	require.Len(t, items, 2)
	first := items[0].(*media.Item)
	require.Equal(t, "11111111-2222-4333-8444-555555555555", first.ID.String())
	require.Equal(t, grouped.KindPhoto, first.Type)
	require.Equal(t, "first", first.Caption)
	require.Equal(t, 65*time.Second, items[1].(*media.Item).Duration)

	_, again, err := a.Build()
	require.NoError(t, err)
	require.Equal(t, items[1].Record(), again[1].Record())
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"kind", "[[media]]\nkind = \"sticker\"\n"},
		{"duration", "[[media]]\nkind = \"video\"\nduration = \"soon\"\n"},
		{"id", "[[media]]\nid = \"nope\"\nkind = \"photo\"\n"},
		{"host id", "[host]\nid = \"nope\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse([]byte(tt.data))
			require.NoError(t, err)
			_, _, err = a.Build()
			require.Error(t, err)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("[[media]\n"))
	require.Error(t, err)
}

func TestParseKind(t *testing.T) {
	for name, want := range map[string]grouped.Kind{
		"photo":    grouped.KindPhoto,
		"Video":    grouped.KindVideo,
		"document": grouped.KindFile,
		"music":    grouped.KindAudio,
	} {
		got, err := ParseKind(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "album.toml")
	require.NoError(t, os.WriteFile(path, []byte(albumTOML), 0644))

	a, err := Load(path)
	require.NoError(t, err)
	require.Len(t, a.Media, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestMarshalKeepsIDs(t *testing.T) {
	a, err := Parse([]byte(albumTOML))
	require.NoError(t, err)
	data, err := a.Marshal()
	require.NoError(t, err)

	b, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSamples(t *testing.T) {
	require.Equal(t, []string{"album", "playlist", "wide"}, SampleNames())

	for _, name := range SampleNames() {
		t.Run(name, func(t *testing.T) {
			a, err := Sample(name)
			require.NoError(t, err)
			host, items, err := a.Build()
			require.NoError(t, err)

			g, err := grouped.New(host, items)
			require.NoError(t, err)
			require.Equal(t, len(items), g.Len())
			size := g.InitDimensions()
			require.Positive(t, size.Width)
			require.Positive(t, size.Height)
		})
	}

	_, err := Sample("nope")
	require.ErrorContains(t, err, "album, playlist, wide")
}
