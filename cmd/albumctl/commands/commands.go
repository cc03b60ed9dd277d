// Package commands implements the albumctl command tree.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/agiangrant/grouped"
	"github.com/agiangrant/grouped/caption"
	"github.com/agiangrant/grouped/internal/fixture"
	"github.com/agiangrant/grouped/internal/termdraw"
)

const defaultStylePath = "~/.config/albumctl/style.toml"

// settings are the global flags after viper has merged flags, environment
// and defaults.
type settings struct {
	StylePath string
	Width     int
	NoColor   bool
	Verbose   bool
}

type app struct {
	v        *viper.Viper
	settings settings
	style    grouped.Style
}

func New() *cobra.Command {
	a := &app{v: viper.New(), style: grouped.DefaultStyle()}

	cmd := &cobra.Command{
		Use:           "albumctl",
		Short:         "Lay out, inspect and preview grouped media albums.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("style", defaultStylePath, "Style file with the group spacing constants.")
	flags.Int("width", 0, "Layout width in pixels. 0 fits the terminal.")
	flags.Bool("no-color", false, "Disable colored output.")
	flags.BoolP("verbose", "v", false, "Log layout decisions to stderr.")
	_ = a.v.BindPFlags(flags)
	a.v.SetEnvPrefix("ALBUMCTL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	addCommands(cmd, a)
	return cmd
}

func addCommands(topLevel *cobra.Command, a *app) {
	addLayout(topLevel, a)
	addResize(topLevel, a)
	addHit(topLevel, a)
	addSelect(topLevel, a)
	addDraw(topLevel, a)
	addPreview(topLevel, a)
	addSamples(topLevel)
	addVersion(topLevel)
}

func (a *app) setup() error {
	a.settings = settings{
		StylePath: a.v.GetString("style"),
		Width:     a.v.GetInt("width"),
		NoColor:   a.v.GetBool("no-color"),
		Verbose:   a.v.GetBool("verbose"),
	}

	if a.settings.NoColor {
		color.NoColor = true
	}
	if a.settings.Verbose {
		grouped.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	path, err := homedir.Expand(a.settings.StylePath)
	if err != nil {
		return fmt.Errorf("style path: %w", err)
	}
	a.style, err = grouped.LoadStyle(path)
	return err
}

// loadAlbum reads a fixture file, or a built-in album when src is
// "sample:NAME".
func loadAlbum(src string) (*fixture.Album, error) {
	if name, ok := strings.CutPrefix(src, "sample:"); ok {
		return fixture.Sample(name)
	}
	return fixture.Load(src)
}

func (a *app) openGroup(src string) (*grouped.Group, error) {
	album, err := loadAlbum(src)
	if err != nil {
		return nil, err
	}
	host, items, err := album.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	g, err := grouped.New(host, items,
		grouped.WithStyle(a.style),
		grouped.WithCaptionFactory(caption.Factory(caption.DefaultMetrics)),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	g.InitDimensions()
	return g, nil
}

// layoutWidth is the --width setting, or the terminal width in pixels when
// it is unset and stdout is a terminal, or the group's natural width.
func (a *app) layoutWidth(g *grouped.Group) int {
	if a.settings.Width > 0 {
		return a.settings.Width
	}
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
		return cols * termdraw.DefaultMetrics.CellWidth
	}
	return g.MaxWidth()
}

func shortID(id grouped.RecordID) string {
	return id.String()[:8]
}
