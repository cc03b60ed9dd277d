package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/grouped"
	"github.com/agiangrant/grouped/media"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	style := filepath.Join(t.TempDir(), "style.toml")
	cmd.SetArgs(append(args, "--style", style, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

func TestLayout(t *testing.T) {
	out, err := run(t, "layout", "sample:album", "sample:playlist")
	require.NoError(t, err)
	require.Contains(t, out, "sample:album  grid")
	require.Contains(t, out, `caption "Weekend in the mountains"`)
	require.Contains(t, out, "sample:playlist  column")
	require.Contains(t, out, "audio")
	require.Less(t, strings.Index(out, "sample:album"), strings.Index(out, "sample:playlist"))
}

func TestLayoutShowsDateBadge(t *testing.T) {
	out, err := run(t, "layout", "sample:wide")
	require.NoError(t, err)
	require.Contains(t, out, "  date")
}

func TestLayoutMissingFile(t *testing.T) {
	_, err := run(t, "layout", "sample:album", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestResize(t *testing.T) {
	out, err := run(t, "resize", "sample:album", "300", "50")
	require.NoError(t, err)
	require.Contains(t, out, "width 300:")
	require.Contains(t, out, "width 50: 50x0")
	require.Contains(t, out, "below the grid minimum of 100")

	_, err = run(t, "resize", "sample:album", "wide")
	require.ErrorContains(t, err, "invalid width")
}

func TestHit(t *testing.T) {
	out, err := run(t, "hit", "sample:playlist", "30", "20", "--width", "300")
	require.NoError(t, err)
	require.Contains(t, out, "open 01 - Opening.mp3")
	require.Contains(t, out, "part")
	require.Contains(t, out, "pointer")
}

func TestSelect(t *testing.T) {
	out, err := run(t, "select", "sample:playlist", "0", "2", "--width", "300")
	require.NoError(t, err)
	require.Contains(t, out, "112")
	require.Contains(t, out, "87")

	out, err = run(t, "select", "sample:playlist", "--full", "--width", "300")
	require.NoError(t, err)
	require.Contains(t, out, "text: Full set from Saturday")

	_, err = run(t, "select", "sample:playlist", "9")
	require.ErrorContains(t, err, "out of range")
}

func TestDraw(t *testing.T) {
	out, err := run(t, "draw", "sample:album", "--width", "430", "--select", "0,1")
	require.NoError(t, err)
	require.Contains(t, out, "╭")
	require.Contains(t, out, "Weekend")

	_, err = run(t, "draw", "sample:album", "--width", "60")
	require.ErrorContains(t, err, "below the grid minimum")
}

func TestSamples(t *testing.T) {
	out, err := run(t, "samples")
	require.NoError(t, err)
	require.Equal(t, "sample:album\nsample:playlist\nsample:wide\n", out)

	out, err = run(t, "samples", "playlist")
	require.NoError(t, err)
	require.Contains(t, out, "liner-notes.pdf")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func newTestPreview(t *testing.T, src string) *previewModel {
	t.Helper()
	a := &app{v: viper.New(), style: grouped.DefaultStyle(), settings: settings{Width: 430, NoColor: true}}
	g, err := a.openGroup(src)
	require.NoError(t, err)
	t.Cleanup(g.Close)
	return newPreviewModel(a, g, src, a.layoutWidth(g))
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPreviewKeys(t *testing.T) {
	m := newTestPreview(t, "sample:album")
	start := m.group.Width()

	m.Update(keyPress("a"))
	require.True(t, m.sel.Full())
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, m.sel.Empty())

	m.Update(keyPress("h"))
	require.Equal(t, start-widthStep, m.group.Width())
	m.Update(keyPress("l"))
	m.Update(keyPress("l"))
	require.Equal(t, m.group.MaxWidth(), m.group.Width())

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)

	view := m.View()
	require.Contains(t, view, "sample:album")
	require.Contains(t, view, "quit")
}

func TestPreviewClick(t *testing.T) {
	m := newTestPreview(t, "sample:album")
	part := m.group.Part(0)
	g := part.Geometry()
	col := (g.X + g.Width/2) / 7
	row := (g.Y + g.Height/2) / 18

	m.Update(tea.MouseMsg{X: col + previewLeftCols, Y: row + previewHeaderRows, Action: tea.MouseActionMotion})
	require.True(t, part.Content().(*media.Visual).Active())

	m.Update(tea.MouseMsg{X: col + previewLeftCols, Y: row + previewHeaderRows, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, strings.HasPrefix(m.status, "open photo "), m.status)
}

func TestPreviewToggle(t *testing.T) {
	m := newTestPreview(t, "sample:album")
	m.toggle(1)
	require.True(t, m.sel.IsGroupItem(1))
	m.toggle(1)
	require.True(t, m.sel.Empty())

	m.sel = grouped.FullSelection
	m.toggle(0)
	require.False(t, m.sel.IsGroupItem(0))
	require.True(t, m.sel.IsGroupItem(3))
}
