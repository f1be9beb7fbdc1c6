package catalog

import (
	"bytes"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"emojicatalog/config"
	"emojicatalog/emoji"
)

// Result summarizes one generation run.
type Result struct {
	Output   string
	Bytes    int
	Records  int
	Tiles    int
	Sidecars []string
}

// Generate loads cfg.Input, renders the catalog in memory and writes it to
// cfg.Output. Nothing is written unless loading, validation and rendering
// all succeed.
func Generate(cfg *config.Config) (*Result, error) {
	start := time.Now()
	records, err := emoji.LoadFile(cfg.Input)
	if err != nil {
		return nil, err
	}
	page, err := Build(cfg, records)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Render(&buf, page); err != nil {
		return nil, err
	}
	sidecars, err := WriteFile(cfg.Output, buf.Bytes(), cfg.Compress)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Output:   cfg.Output,
		Bytes:    buf.Len(),
		Records:  len(records),
		Tiles:    page.Tiles(),
		Sidecars: sidecars,
	}
	log.Info().
		Str("input", cfg.Input).
		Str("output", res.Output).
		Int("records", res.Records).
		Int("tiles", res.Tiles).
		Str("size", humanize.Bytes(uint64(res.Bytes))).
		Strs("sidecars", res.Sidecars).
		Dur("took", time.Since(start)).
		Msg("catalog written")
	return res, nil
}
