package catalog

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"emojicatalog/display"
)

// SectionSummary is what a rendered gallery container holds.
type SectionSummary struct {
	ID       string
	Hidden   bool
	Payloads []string // data-hexcode of each button, in document order
}

// Summary is the structural outline of a rendered catalog.
type Summary struct {
	Title    string
	Scheme   string
	Sections []SectionSummary
}

// Inspect parses a rendered catalog and extracts its galleries.
func Inspect(r io.Reader) (*Summary, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	ids := map[string]bool{}
	for _, g := range display.Galleries() {
		ids[string(g)] = true
	}
	s := &Summary{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Title:
				if n.FirstChild != nil {
					s.Title = n.FirstChild.Data
				}
			case atom.Body:
				s.Scheme, _ = attr(n, "color-scheme")
			case atom.Div:
				if id, _ := attr(n, "id"); ids[id] {
					s.Sections = append(s.Sections, section(n, id))
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return s, nil
}

func section(n *html.Node, id string) SectionSummary {
	_, hidden := attr(n, "hidden")
	sec := SectionSummary{ID: id, Hidden: hidden}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Button {
			if v, ok := attr(n, "data-hexcode"); ok {
				sec.Payloads = append(sec.Payloads, v)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sec
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Section returns the summary for the gallery with the given id.
func (s *Summary) Section(id display.Gallery) (SectionSummary, bool) {
	for _, sec := range s.Sections {
		if sec.ID == string(id) {
			return sec, true
		}
	}
	return SectionSummary{}, false
}

// Visible returns the ids of sections without the hidden attribute.
func (s *Summary) Visible() []string {
	var out []string
	for _, sec := range s.Sections {
		if !sec.Hidden {
			out = append(out, sec.ID)
		}
	}
	return out
}

// Check verifies the freshly generated page invariants: every gallery is
// present once, only the fallback gallery is visible, and all galleries
// carry the same payloads in the same order.
func (s *Summary) Check() error {
	var errs []error
	for _, g := range display.Galleries() {
		n := 0
		for _, sec := range s.Sections {
			if sec.ID == string(g) {
				n++
			}
		}
		if n != 1 {
			errs = append(errs, fmt.Errorf("gallery %s appears %d times", g, n))
		}
	}
	visible := s.Visible()
	if len(visible) != 1 || visible[0] != string(display.Fallback) {
		errs = append(errs, fmt.Errorf("visible galleries %v, want [%s]", visible, display.Fallback))
	}
	for i := 1; i < len(s.Sections); i++ {
		if !slices.Equal(s.Sections[i].Payloads, s.Sections[0].Payloads) {
			errs = append(errs, fmt.Errorf("gallery %s payloads differ from %s", s.Sections[i].ID, s.Sections[0].ID))
		}
	}
	return errors.Join(errs...)
}
