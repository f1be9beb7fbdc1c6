// Package catalog builds, renders, writes and inspects the emoji catalog page.
package catalog

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/rs/zerolog/log"

	"emojicatalog/config"
	"emojicatalog/display"
	"emojicatalog/emoji"
	"emojicatalog/galleries"
	"emojicatalog/theme"
)

// tilesPerRow sets the page width in tiles on wide screens.
const tilesPerRow = 12

var (
	//go:embed templates/*.tmpl
	templateFS embed.FS

	pageTemplate = template.Must(template.New("catalog").ParseFS(templateFS, "templates/*.tmpl"))
)

// Page is the complete, validated model of one catalog document.
type Page struct {
	Title      string
	Hint       string
	Stylesheet string
	TileSize   int
	GlyphSize  int
	MaxWidth   int
	Fonts      config.Fonts
	Theme      template.CSS
	Scheme     theme.Scheme
	Sections   []galleries.Section
	Controls   []display.Control
	Script     display.Script
}

// Build validates records and lays out every registered gallery.
// Records are consumed read-only and their order is preserved.
func Build(cfg *config.Config, records []emoji.Record) (*Page, error) {
	if err := emoji.Validate(records); err != nil {
		return nil, err
	}
	filter := emoji.Filter{Include: cfg.Include, Exclude: cfg.Exclude}
	selected := filter.Select(records)
	log.Debug().
		Int("records", len(records)).
		Int("selected", len(selected)).
		Msg("records selected")

	initial := display.State{}
	p := &Page{
		Title:      cfg.Title,
		Hint:       cfg.Hint,
		Stylesheet: cfg.Stylesheet,
		TileSize:   cfg.TileSize,
		GlyphSize:  cfg.Galleries.System.FontSize,
		MaxWidth:   cfg.TileSize * tilesPerRow,
		Fonts:      cfg.Fonts,
		Theme:      theme.CSS(cfg.Theme.Light, cfg.Theme.Dark),
		Scheme:     initial.Scheme(),
		Controls:   display.Controls(),
		Script:     display.ScriptData(),
	}
	for _, g := range galleries.Build(cfg) {
		p.Sections = append(p.Sections, g.Section(selected))
	}
	return p, nil
}

// Tiles returns the number of tiles per gallery.
func (p *Page) Tiles() int {
	if len(p.Sections) == 0 {
		return 0
	}
	return len(p.Sections[0].Tiles)
}

// Render writes the page markup to w.
func Render(w io.Writer, p *Page) error {
	if err := pageTemplate.ExecuteTemplate(w, "page", p); err != nil {
		return fmt.Errorf("render catalog: %w", err)
	}
	return nil
}
