// Package display models the catalog page's client-side controller: four
// toggles mapped onto exactly one visible gallery, a font-face class and a
// color scheme. The embedded page script is driven by the same priority
// table (see ScriptData), so the page and this package cannot disagree.
package display

import (
	"fmt"

	"emojicatalog/theme"
)

// Gallery identifies one of the mutually exclusive rendered sections.
type Gallery string

const (
	GalleryColor  Gallery = "color"
	GalleryBlack  Gallery = "black"
	GallerySystem Gallery = "system"
)

// Galleries lists every gallery in registration order.
func Galleries() []Gallery {
	return []Gallery{GalleryColor, GalleryBlack, GallerySystem}
}

// Toggle names one checkbox on the page.
type Toggle string

const (
	ToggleSystem Toggle = "system"
	ToggleFont   Toggle = "font"
	ToggleBlack  Toggle = "black"
	ToggleMode   Toggle = "mode"
)

// Font-face classes applied to the system gallery.
const (
	FontClassBlack = "omBlack"
	FontClassColor = "omColor"
)

// Rule shows Gallery when the When toggle is on.
type Rule struct {
	When    Toggle  `json:"when"`
	Gallery Gallery `json:"gallery"`
}

// Rules is the visibility priority order, highest first.
var Rules = []Rule{
	{When: ToggleFont, Gallery: GallerySystem},
	{When: ToggleSystem, Gallery: GallerySystem},
	{When: ToggleBlack, Gallery: GalleryBlack},
}

// Fallback is shown when no rule applies.
const Fallback = GalleryColor

// State is the full set of toggle values. The zero value is the state of a
// freshly loaded page.
type State struct {
	System bool
	Font   bool
	Black  bool
	Dark   bool
}

// Set returns s with toggle t switched to on.
func (s State) Set(t Toggle, on bool) (State, error) {
	switch t {
	case ToggleSystem:
		s.System = on
	case ToggleFont:
		s.Font = on
	case ToggleBlack:
		s.Black = on
	case ToggleMode:
		s.Dark = on
	default:
		return s, fmt.Errorf("unknown toggle %q", t)
	}
	return s, nil
}

// On reports the value of toggle t; unknown toggles are off.
func (s State) On(t Toggle) bool {
	switch t {
	case ToggleSystem:
		return s.System
	case ToggleFont:
		return s.Font
	case ToggleBlack:
		return s.Black
	case ToggleMode:
		return s.Dark
	}
	return false
}

// Visible returns the single gallery shown for s.
func (s State) Visible() Gallery {
	for _, r := range Rules {
		if s.On(r.When) {
			return r.Gallery
		}
	}
	return Fallback
}

// FontClass returns the class applied to the system gallery, or "".
func (s State) FontClass() string {
	if !s.Font {
		return ""
	}
	if s.Black {
		return FontClassBlack
	}
	return FontClassColor
}

func (s State) Scheme() theme.Scheme {
	if s.Dark {
		return theme.SchemeDark
	}
	return theme.SchemeLight
}

// View is everything the page shows for a State.
type View struct {
	Visible   Gallery      `json:"visible"`
	Hidden    []Gallery    `json:"hidden"`
	FontClass string       `json:"font_class,omitempty"`
	Scheme    theme.Scheme `json:"scheme"`
}

func (s State) View() View {
	v := View{
		Visible:   s.Visible(),
		FontClass: s.FontClass(),
		Scheme:    s.Scheme(),
	}
	for _, g := range Galleries() {
		if g != v.Visible {
			v.Hidden = append(v.Hidden, g)
		}
	}
	return v
}
