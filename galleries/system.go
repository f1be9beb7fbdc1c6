package galleries

import (
	"emojicatalog/config"
	"emojicatalog/display"
	"emojicatalog/emoji"
)

func init() {
	Register(GallerySpec{
		Name:  display.GallerySystem,
		Build: func(*config.Config) Gallery { return SystemGallery{} },
	})
}

// SystemGallery renders the literal glyph with whatever font the page applies.
type SystemGallery struct{}

func (SystemGallery) Name() display.Gallery { return display.GallerySystem }

func (SystemGallery) Section(records []emoji.Record) Section {
	tiles := make([]Tile, 0, len(records))
	for _, r := range records {
		tiles = append(tiles, Tile{
			Hexcode: r.Hexcode,
			Title:   r.Title(),
			Glyph:   r.Emoji,
		})
	}
	return Section{ID: display.GallerySystem, Hidden: initiallyHidden(display.GallerySystem), Tiles: tiles}
}
