package emoji

import "fmt"

// LoadError reports an input collection that could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return "load emoji list: " + e.Err.Error()
	}
	return fmt.Sprintf("load emoji list %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MalformedRecordError identifies a record that cannot be rendered.
type MalformedRecordError struct {
	Index   int
	Hexcode string // may be empty when the hexcode itself is the problem
	Field   string
	Reason  string
}

func (e *MalformedRecordError) Error() string {
	if e.Hexcode != "" {
		return fmt.Sprintf("record %d (%s): %s %s", e.Index, e.Hexcode, e.Field, e.Reason)
	}
	return fmt.Sprintf("record %d: %s %s", e.Index, e.Field, e.Reason)
}
