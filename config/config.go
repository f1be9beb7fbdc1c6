package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"

	"emojicatalog/theme"
)

// ErrNoConfig is returned alongside defaults when no config file was found.
var ErrNoConfig = errors.New("no config file found; using defaults")

type Config struct {
	Title      string    `toml:"title" yaml:"title"`
	Hint       string    `toml:"hint" yaml:"hint"`
	Input      string    `toml:"input" yaml:"input"`
	Output     string    `toml:"output" yaml:"output"`
	Stylesheet string    `toml:"stylesheet" yaml:"stylesheet"` // external web font stylesheet
	TileSize   int       `toml:"tile_size" yaml:"tile_size"`   // px, default 72
	Include    []string  `toml:"include" yaml:"include"`       // doublestar patterns on "group/subgroups"
	Exclude    []string  `toml:"exclude" yaml:"exclude"`
	Compress   []string  `toml:"compress" yaml:"compress"` // sidecar encodings: gzip, zstd
	Galleries  Galleries `toml:"galleries" yaml:"galleries"`
	Fonts      Fonts     `toml:"fonts" yaml:"fonts"`
	Theme      Theme     `toml:"theme" yaml:"theme"`
	Watch      Watch     `toml:"watch" yaml:"watch"`

	galleryOrder []string // order of gallery tables as they appeared in the file
	source       string   // file the config was loaded from, if any
}

type Galleries struct {
	Color  ImageGallery  `toml:"color" yaml:"color"`
	Black  ImageGallery  `toml:"black" yaml:"black"`
	System SystemGallery `toml:"system" yaml:"system"`
}

type ImageGallery struct {
	Dir string `toml:"dir" yaml:"dir"` // image directory relative to the output file
}

type SystemGallery struct {
	FontSize int `toml:"font_size" yaml:"font_size"` // glyph size in px (default 44)
}

// Fonts are the OpenMoji font files referenced by @font-face rules.
type Fonts struct {
	Black string `toml:"black" yaml:"black"`
	Color string `toml:"color" yaml:"color"`
}

type Theme struct {
	Light theme.Palette `toml:"light" yaml:"light"`
	Dark  theme.Palette `toml:"dark" yaml:"dark"`
}

type Watch struct {
	DebounceMs int `toml:"debounce_ms" yaml:"debounce_ms"` // default 200
}

const (
	EncodingGzip = "gzip"
	EncodingZstd = "zstd"
)

func Defaults() *Config {
	return &Config{
		Title:      "OpenMoji Catalog",
		Hint:       "click to copy codepoint",
		Input:      filepath.Join("data", "openmoji.json"),
		Output:     "index.html",
		Stylesheet: "https://fonts.googleapis.com/css2?family=Source+Sans+Pro:ital@0;1&display=swap",
		TileSize:   72,
		Galleries: Galleries{
			Color:  ImageGallery{Dir: "color/72x72"},
			Black:  ImageGallery{Dir: "black/72x72"},
			System: SystemGallery{FontSize: 44},
		},
		Fonts: Fonts{
			Black: "font/OpenMoji-Black.ttf",
			Color: "font/OpenMoji-Color.ttf",
		},
		Theme: Theme{Light: theme.DefaultLight, Dark: theme.DefaultDark},
		Watch: Watch{DebounceMs: 200},
	}
}

// Load loads configuration from explicit path or discovered search path.
// Precedence: provided path else first existing search path else defaults.
// Missing file yields defaults and ErrNoConfig; read and parse errors return
// defaults plus the error. Invalid values are normalized, except malformed
// filter patterns, which are reported as errors.
func Load(path string) (*Config, error) {
	defaults := Defaults()
	chosen := path
	if chosen == "" {
		for _, p := range searchPaths() {
			if _, err := os.Stat(p); err == nil {
				chosen = p
				break
			}
		}
	}
	if chosen == "" {
		return defaults, ErrNoConfig
	}
	data, err := os.ReadFile(chosen)
	if err != nil {
		return defaults, fmt.Errorf("read config: %w", err)
	}
	cfg := Defaults()
	switch strings.ToLower(filepath.Ext(chosen)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, cfg)
	default:
		err = decodeTOML(data, cfg)
	}
	if err != nil {
		return defaults, fmt.Errorf("parse config %s: %w", chosen, err)
	}
	if err := cfg.normalize(); err != nil {
		return defaults, fmt.Errorf("config %s: %w", chosen, err)
	}
	cfg.source = chosen
	return cfg, nil
}

// decodeTOML overlays data onto cfg and records gallery table order.
func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	seen := map[string]struct{}{}
	for _, k := range md.Keys() {
		if len(k) == 2 && k[0] == "galleries" {
			name := k[1]
			if _, ok := seen[name]; !ok {
				cfg.galleryOrder = append(cfg.galleryOrder, name)
				seen[name] = struct{}{}
			}
		}
	}
	return nil
}

func searchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, "emojicatalog", "config.toml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", "emojicatalog", "config.toml"))
	}
	return out
}

// Normalize re-applies clamping and validation, e.g. after CLI overrides.
func (c *Config) Normalize() error {
	return c.normalize()
}

// normalize clamps and validates config values after decoding.
func (c *Config) normalize() error {
	def := Defaults()
	if strings.TrimSpace(c.Title) == "" {
		c.Title = def.Title
	}
	if c.Input == "" {
		c.Input = def.Input
	}
	if c.Output == "" {
		c.Output = def.Output
	}
	c.TileSize = clampInt(c.TileSize, 16, 512, def.TileSize)
	c.Galleries.System.FontSize = clampInt(c.Galleries.System.FontSize, 8, 256, def.Galleries.System.FontSize)
	c.Galleries.Color.Dir = cleanDir(c.Galleries.Color.Dir, def.Galleries.Color.Dir)
	c.Galleries.Black.Dir = cleanDir(c.Galleries.Black.Dir, def.Galleries.Black.Dir)
	if c.Fonts.Black == "" {
		c.Fonts.Black = def.Fonts.Black
	}
	if c.Fonts.Color == "" {
		c.Fonts.Color = def.Fonts.Color
	}
	c.Theme.Light = c.Theme.Light.Or(theme.DefaultLight)
	c.Theme.Dark = c.Theme.Dark.Or(theme.DefaultDark)
	c.Watch.DebounceMs = clampInt(c.Watch.DebounceMs, 10, 10000, def.Watch.DebounceMs)
	c.Compress = normalizeEncodings(c.Compress)
	for _, p := range append(append([]string{}, c.Include...), c.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid filter pattern %q", p)
		}
	}
	return nil
}

// Source returns the path the config was loaded from, or "" for defaults.
func (c *Config) Source() string {
	return c.source
}

// GalleryOrder returns a copy of the gallery order slice (may be empty).
func (c *Config) GalleryOrder() []string {
	if len(c.galleryOrder) == 0 {
		return nil
	}
	out := make([]string, len(c.galleryOrder))
	copy(out, c.galleryOrder)
	return out
}

func clampInt(val, min, max, fallback int) int {
	if val == 0 && fallback != 0 { // allow zero to trigger fallback when min>0
		val = fallback
	}
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func cleanDir(dir, fallback string) string {
	dir = strings.Trim(strings.TrimSpace(dir), "/")
	if dir == "" {
		return fallback
	}
	return dir
}

// normalizeEncodings lowercases, dedupes and drops unknown encodings.
func normalizeEncodings(in []string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, e := range in {
		e = strings.ToLower(strings.TrimSpace(e))
		if !validEncoding(e) {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

func validEncoding(e string) bool {
	switch e {
	case EncodingGzip, EncodingZstd:
		return true
	}
	return false
}
