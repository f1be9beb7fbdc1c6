package theme

import (
	"fmt"
	"html/template"
	"strings"
)

// Scheme is the value of the body color-scheme attribute.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// Palette holds the CSS variable values for one scheme.
// Values are trusted config and emitted verbatim into the page stylesheet.
type Palette struct {
	Background string `toml:"background" yaml:"background"`
	Hover      string `toml:"hover" yaml:"hover"`
}

var (
	DefaultLight = Palette{
		Background: "white",
		Hover:      `url("guidelines/openmoji-template.svg") #fff`,
	}
	DefaultDark = Palette{
		Background: "#17181c",
		Hover:      "#333",
	}
)

// Or returns p with empty fields filled from fallback.
func (p Palette) Or(fallback Palette) Palette {
	if strings.TrimSpace(p.Background) == "" {
		p.Background = fallback.Background
	}
	if strings.TrimSpace(p.Hover) == "" {
		p.Hover = fallback.Hover
	}
	return p
}

// CSS renders the per-scheme variable blocks consumed by the page stylesheet.
func CSS(light, dark Palette) template.CSS {
	var b strings.Builder
	writeBlock(&b, SchemeDark, dark)
	writeBlock(&b, SchemeLight, light)
	return template.CSS(b.String())
}

func writeBlock(b *strings.Builder, s Scheme, p Palette) {
	fmt.Fprintf(b, "body[color-scheme='%s'] {\n", s)
	fmt.Fprintf(b, "    --background-color-body: %s;\n", sanitize(p.Background))
	fmt.Fprintf(b, "    --background-hover: %s;\n", sanitize(p.Hover))
	b.WriteString("}\n")
}

// sanitize keeps a palette value from closing the declaration or the style element.
func sanitize(v string) string {
	v = strings.NewReplacer(";", "", "{", "", "}", "", "<", "").Replace(v)
	return strings.TrimSpace(v)
}
