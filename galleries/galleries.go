package galleries

import (
	"emojicatalog/display"
	"emojicatalog/emoji"
)

// Tile is one clickable element of a gallery. Exactly one of Image and
// Glyph is set.
type Tile struct {
	Hexcode string // copy payload
	Alt     string
	Title   string
	Image   string // image src relative to the page
	Glyph   string // literal emoji for font-rendered galleries
}

// Section is a rendered gallery container.
type Section struct {
	ID     display.Gallery
	Hidden bool
	Tiles  []Tile
}

// Gallery turns the selected records into one section.
type Gallery interface {
	Name() display.Gallery
	Section(records []emoji.Record) Section
}

// initiallyHidden reports the inline hidden state for a fresh page.
func initiallyHidden(g display.Gallery) bool {
	return display.State{}.Visible() != g
}
