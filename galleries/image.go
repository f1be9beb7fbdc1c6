package galleries

import (
	"path"

	"emojicatalog/config"
	"emojicatalog/display"
	"emojicatalog/emoji"
)

func init() {
	Register(GallerySpec{
		Name: display.GalleryColor,
		Build: func(cfg *config.Config) Gallery {
			return NewImageGallery(display.GalleryColor, cfg.Galleries.Color.Dir)
		},
	})
	Register(GallerySpec{
		Name: display.GalleryBlack,
		Build: func(cfg *config.Config) Gallery {
			return NewImageGallery(display.GalleryBlack, cfg.Galleries.Black.Dir)
		},
	})
}

// ImageGallery renders one PNG per record from a fixed directory.
type ImageGallery struct {
	name display.Gallery
	dir  string
}

func NewImageGallery(name display.Gallery, dir string) *ImageGallery {
	return &ImageGallery{name: name, dir: dir}
}

func (g *ImageGallery) Name() display.Gallery { return g.name }

func (g *ImageGallery) Section(records []emoji.Record) Section {
	tiles := make([]Tile, 0, len(records))
	for _, r := range records {
		tiles = append(tiles, Tile{
			Hexcode: r.Hexcode,
			Alt:     r.Annotation,
			Title:   r.Title(),
			Image:   path.Join(g.dir, r.Hexcode+".png"),
		})
	}
	return Section{ID: g.name, Hidden: initiallyHidden(g.name), Tiles: tiles}
}
