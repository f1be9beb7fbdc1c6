package galleries

import (
	"emojicatalog/config"
	"emojicatalog/display"
)

// GallerySpec describes how to build a gallery from config.
type GallerySpec struct {
	Name  display.Gallery
	Build func(*config.Config) Gallery
}

var (
	reg      = map[display.Gallery]GallerySpec{}
	regOrder []display.Gallery
)

// Register adds a gallery spec if not already present. Subsequent registrations
// with the same name overwrite the spec but preserve original ordering.
func Register(spec GallerySpec) {
	if _, exists := reg[spec.Name]; !exists {
		regOrder = append(regOrder, spec.Name)
	}
	reg[spec.Name] = spec
}

// Build returns gallery instances in the order:
// 1. Order of gallery tables as specified in the config file.
// 2. Remaining registered galleries in registration order.
// Every registered gallery is built; the page controller needs all of them.
func Build(cfg *config.Config) []Gallery {
	seen := map[display.Gallery]struct{}{}
	out := make([]Gallery, 0, len(regOrder))
	appendIf := func(name display.Gallery) {
		spec, ok := reg[name]
		if !ok {
			return // unknown name in config
		}
		if _, dup := seen[name]; dup {
			return
		}
		out = append(out, spec.Build(cfg))
		seen[name] = struct{}{}
	}
	for _, n := range cfg.GalleryOrder() {
		appendIf(display.Gallery(n))
	}
	for _, n := range regOrder {
		appendIf(n)
	}
	return out
}
