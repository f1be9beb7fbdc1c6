// Package emoji loads, validates and selects the emoji records a catalog is
// built from.
package emoji

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Record is one entry of the emoji metadata list.
type Record struct {
	Hexcode    string `json:"hexcode"`
	Annotation string `json:"annotation"`
	Emoji      string `json:"emoji"`
	Skintone   string `json:"skintone"`
	Group      string `json:"group,omitempty"`
	Subgroups  string `json:"subgroups,omitempty"`
}

// IsBase reports whether r is the non-skin-toned form.
func (r Record) IsBase() bool {
	return r.Skintone == ""
}

// Title is the tooltip text shared by every gallery.
func (r Record) Title() string {
	return r.Annotation + " - " + r.Hexcode
}

// Path is the slash-joined group and subgroup used by selection filters.
func (r Record) Path() string {
	return r.Group + "/" + r.Subgroups
}

// LoadFile reads a JSON array of records. Files ending in .gz or .zst are
// decompressed first.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		defer zr.Close()
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		defer zr.Close()
		r = zr
	}

	records, err := Decode(r)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return records, nil
}

// Decode reads a JSON array of records from r. Anything other than an array,
// including null, is a LoadError.
func Decode(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, &LoadError{Err: errors.New("input is not a JSON array")}
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{Err: fmt.Errorf("decode: %w", err)}
	}
	return records, nil
}

// Validate checks that every record can produce a correct, clickable tile.
// It stops at the first malformed record.
func Validate(records []Record) error {
	for i, r := range records {
		if r.Hexcode == "" {
			return &MalformedRecordError{Index: i, Field: "hexcode", Reason: "is missing"}
		}
		if !validHexcode(r.Hexcode) {
			return &MalformedRecordError{Index: i, Field: "hexcode", Reason: fmt.Sprintf("%q is not a codepoint sequence", r.Hexcode)}
		}
		if strings.TrimSpace(r.Annotation) == "" {
			return &MalformedRecordError{Index: i, Hexcode: r.Hexcode, Field: "annotation", Reason: "is missing"}
		}
	}
	return nil
}

// validHexcode accepts hyphen-separated runs of hex digits, e.g. 1F600 or
// 1F3F4-E0067-E0062.
func validHexcode(s string) bool {
	for _, part := range strings.Split(s, "-") {
		if part == "" || len(part) > 6 {
			return false
		}
		for _, c := range part {
			switch {
			case c >= '0' && c <= '9', c >= 'A' && c <= 'F', c >= 'a' && c <= 'f':
			default:
				return false
			}
		}
	}
	return true
}

// Base returns the records without a skin tone, in input order.
func Base(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.IsBase() {
			out = append(out, r)
		}
	}
	return out
}
