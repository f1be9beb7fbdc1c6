package emoji

import "github.com/bmatcuk/doublestar/v4"

// Filter selects records by group path ("<group>/<subgroups>").
// An empty Include keeps everything; Exclude wins over Include.
// Patterns are expected to be validated already (see config).
type Filter struct {
	Include []string
	Exclude []string
}

// Select returns the base records f keeps, in input order.
func (f Filter) Select(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range Base(records) {
		if f.keep(r.Path()) {
			out = append(out, r)
		}
	}
	return out
}

func (f Filter) keep(path string) bool {
	if len(f.Include) > 0 && !matchAny(f.Include, path) {
		return false
	}
	return !matchAny(f.Exclude, path)
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, path); err == nil && ok {
			return true
		}
	}
	return false
}
