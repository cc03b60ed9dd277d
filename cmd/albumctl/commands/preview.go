package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/agiangrant/grouped"
	"github.com/agiangrant/grouped/geom"
	"github.com/agiangrant/grouped/internal/termdraw"
	"github.com/agiangrant/grouped/media"
)

var (
	previewTitleStyle  = lipgloss.NewStyle().Bold(true)
	previewStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)
	previewFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// widthStep is how far one key press narrows or widens the layout.
const widthStep = 4 * 7

type previewKeys struct {
	Narrow key.Binding
	Widen  key.Binding
	All    key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

func newPreviewKeys() previewKeys {
	return previewKeys{
		Narrow: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "narrower")),
		Widen:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "wider")),
		All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k previewKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Narrow, k.Widen, k.All, k.Clear, k.Quit}
}

func (k previewKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// previewHeaderRows is the number of terminal rows above the album: the
// title line and the frame's top border.
const previewHeaderRows = 2

// previewLeftCols is the frame border plus its padding.
const previewLeftCols = 2

type previewModel struct {
	app    *app
	group  *grouped.Group
	name   string
	width  int
	sel    grouped.Selection
	status string
	hover  grouped.ClickHandler
	canvas *termdraw.Canvas

	keys previewKeys
	help help.Model
}

func newPreviewModel(a *app, g *grouped.Group, name string, width int) *previewModel {
	m := &previewModel{
		app:   a,
		group: g,
		name:  name,
		keys:  newPreviewKeys(),
		help:  help.New(),
	}
	m.resize(width)
	return m
}

func (m *previewModel) resize(width int) {
	size := m.group.Resize(max(width, 1))
	m.width = size.Width
	m.canvas = termdraw.New(size.Width, size.Height, termdraw.DefaultMetrics)
	m.group.CheckAnimation()
}

func (m *previewModel) Init() tea.Cmd { return nil }

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.app.settings.Width == 0 {
			m.resize((msg.Width - 2*previewLeftCols) * termdraw.DefaultMetrics.CellWidth)
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.group.StopAnimation()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Narrow):
			m.resize(m.width - widthStep)
		case key.Matches(msg, m.keys.Widen):
			m.resize(min(m.width+widthStep, m.group.MaxWidth()))
		case key.Matches(msg, m.keys.All):
			m.sel = grouped.FullSelection
		case key.Matches(msg, m.keys.Clear):
			m.sel = grouped.Selection{}
			m.status = ""
		}
	case tea.MouseMsg:
		m.mouse(msg)
	}
	return m, nil
}

func (m *previewModel) mouse(msg tea.MouseMsg) {
	col, row := msg.X-previewLeftCols, msg.Y-previewHeaderRows
	if col < 0 || row < 0 {
		return
	}
	p := m.canvas.CellAt(col, row)
	state := m.group.TextStateAt(p, grouped.StateRequest{})

	if state.Link != m.hover {
		if m.hover != nil {
			m.group.ClickHandlerActiveChanged(m.hover, false)
		}
		if state.Link != nil {
			m.group.ClickHandlerActiveChanged(state.Link, true)
		}
		m.hover = state.Link
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if state.Link == nil {
		m.status = fmt.Sprintf("%s at %d,%d", m.group.PointState(p), p.X, p.Y)
		return
	}
	index := m.indexOf(state.ItemID)
	switch {
	case m.group.ToggleSelectionByHandlerClick(state.Link) && index >= 0:
		m.toggle(index)
		m.status = fmt.Sprintf("toggled #%d", index)
	case index >= 0:
		if a, ok := m.group.Part(index).Content().(*media.Attachment); ok {
			a.SetPlaying(!a.Playing())
		}
		m.status = state.Link.Label()
	default:
		m.status = state.Link.Label()
	}
}

func (m *previewModel) indexOf(id grouped.RecordID) int {
	for i, part := range m.group.Parts() {
		if part.Record() == id {
			return i
		}
	}
	return -1
}

func (m *previewModel) toggle(index int) {
	if m.sel.Full() || m.sel.IsGroupItem(index) {
		m.sel = m.sel.RemoveGroupItem(index)
		return
	}
	m.sel = m.sel.AddGroupItem(index)
}

func (m *previewModel) View() string {
	m.canvas.Clear()
	m.group.Draw(m.canvas, m.canvasClip(), m.sel)
	body := m.canvas.Render()
	if m.app.settings.NoColor {
		body = m.canvas.Plain()
	}

	var b strings.Builder
	b.WriteString(previewTitleStyle.Render(fmt.Sprintf("%s  %s  %dx%d", m.name, m.group.Mode(), m.group.Width(), m.group.Height())))
	b.WriteString("\n")
	b.WriteString(previewFrameStyle.Render(body))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(previewStatusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *previewModel) canvasClip() geom.Rect {
	return geom.R(0, 0, m.group.Width(), m.group.Height())
}

func addPreview(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "preview ALBUM",
		Short: "Explore an album interactively: resize, hover and click members.",
		Example: `
albumctl preview sample:album
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.openGroup(args[0])
			if err != nil {
				return err
			}
			defer g.Close()

			m := newPreviewModel(a, g, args[0], a.layoutWidth(g))
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
			return err
		},
	}
	topLevel.AddCommand(cmd)
}
