package catalog

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"emojicatalog/config"
	"emojicatalog/display"
	"emojicatalog/emoji"
)

var scenario = []emoji.Record{
	{Hexcode: "1F600", Annotation: "grinning face", Emoji: "😀", Skintone: ""},
	{Hexcode: "1F600-1F3FB", Annotation: "grinning face: light skin tone", Emoji: "😀🏻", Skintone: "1F3FB"},
}

var mixed = []emoji.Record{
	{Hexcode: "1F44B", Annotation: "waving hand", Emoji: "👋", Group: "people-body", Subgroups: "hand-fingers-open"},
	{Hexcode: "1F44B-1F3FF", Annotation: "waving hand: dark skin tone", Emoji: "👋🏿", Skintone: "1F3FF", Group: "people-body", Subgroups: "hand-fingers-open"},
	{Hexcode: "1F600", Annotation: "grinning face", Emoji: "😀", Group: "smileys-emotion", Subgroups: "face-smiling"},
	{Hexcode: "2764-FE0F", Annotation: `red "heart" <3`, Emoji: "❤️", Group: "smileys-emotion", Subgroups: "heart"},
	{Hexcode: "E000", Annotation: "openmoji", Emoji: "", Group: "extras-openmoji", Subgroups: "symbol-other"},
}

func render(t *testing.T, cfg *config.Config, records []emoji.Record) []byte {
	t.Helper()
	page, err := Build(cfg, records)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var buf bytes.Buffer
	if err := Render(&buf, page); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.Bytes()
}

func inspect(t *testing.T, markup []byte) *Summary {
	t.Helper()
	s, err := Inspect(bytes.NewReader(markup))
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	return s
}

func TestSkintoneScenario(t *testing.T) {
	markup := render(t, config.Defaults(), scenario)
	s := inspect(t, markup)

	if len(s.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %+v", s.Sections)
	}
	for _, sec := range s.Sections {
		if want := []string{"1F600"}; !reflect.DeepEqual(sec.Payloads, want) {
			t.Errorf("%s payloads: got %v, want %v", sec.ID, sec.Payloads, want)
		}
	}
	if bytes.Contains(markup, []byte("1F600-1F3FB")) {
		t.Error("skin tone variant leaked into output")
	}
}

func TestTileCountEqualsBaseRecords(t *testing.T) {
	s := inspect(t, render(t, config.Defaults(), mixed))
	want := len(emoji.Base(mixed))
	for _, sec := range s.Sections {
		if len(sec.Payloads) != want {
			t.Errorf("%s: %d tiles, want %d", sec.ID, len(sec.Payloads), want)
		}
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	s := inspect(t, render(t, config.Defaults(), mixed))
	var want []string
	for _, r := range emoji.Base(mixed) {
		want = append(want, r.Hexcode)
	}
	for _, sec := range s.Sections {
		if !reflect.DeepEqual(sec.Payloads, want) {
			t.Errorf("%s: got %v, want %v", sec.ID, sec.Payloads, want)
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	a := render(t, config.Defaults(), mixed)
	b := render(t, config.Defaults(), mixed)
	if !bytes.Equal(a, b) {
		t.Error("rendering the same input twice produced different output")
	}
}

func TestInitialVisibility(t *testing.T) {
	s := inspect(t, render(t, config.Defaults(), mixed))
	if got := s.Visible(); !reflect.DeepEqual(got, []string{"color"}) {
		t.Errorf("visible: got %v", got)
	}
	if s.Scheme != "light" || s.Title != "OpenMoji Catalog" {
		t.Errorf("unexpected page header: %+v", s)
	}
	if err := s.Check(); err != nil {
		t.Errorf("check: %v", err)
	}
}

func TestRenderedTileMarkup(t *testing.T) {
	markup := string(render(t, config.Defaults(), scenario))
	for _, want := range []string{
		`src="color/72x72/1F600.png"`,
		`src="black/72x72/1F600.png"`,
		`alt="grinning face"`,
		`title="grinning face - 1F600"`,
		`<p title="grinning face - 1F600">😀</p>`,
		`width="72" height="72"`,
		`url('font/OpenMoji-Black.ttf')`,
		`font-size: 44px`,
		`id="fontCheckbox" autocomplete="off"`,
		`Toggle Background Color`,
		`"rules":`,
	} {
		if !strings.Contains(markup, want) {
			t.Errorf("markup missing %q", want)
		}
	}
}

func TestAnnotationIsEscaped(t *testing.T) {
	markup := string(render(t, config.Defaults(), mixed))
	if strings.Contains(markup, `red "heart" <3`) {
		t.Error("annotation was not escaped")
	}
	s := inspect(t, []byte(markup))
	sec, ok := s.Section(display.GalleryColor)
	if !ok || len(sec.Payloads) != 4 || sec.Payloads[2] != "2764-FE0F" {
		t.Errorf("unexpected color section: %+v", sec)
	}
}

func TestFilterAndGalleryOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `exclude = ["extras-*/**"]
[galleries.system]
[galleries.black]
dir = "black/svg"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	markup := render(t, cfg, mixed)
	s := inspect(t, markup)

	var ids []string
	for _, sec := range s.Sections {
		ids = append(ids, sec.ID)
		if want := []string{"1F44B", "1F600", "2764-FE0F"}; !reflect.DeepEqual(sec.Payloads, want) {
			t.Errorf("%s: got %v, want %v", sec.ID, sec.Payloads, want)
		}
	}
	if want := []string{"system", "black", "color"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("section order: got %v, want %v", ids, want)
	}
	if !bytes.Contains(markup, []byte(`src="black/svg/1F44B.png"`)) {
		t.Error("black gallery ignored configured dir")
	}
	if err := s.Check(); err != nil {
		t.Errorf("check: %v", err)
	}
}

func TestBuildMalformedRecord(t *testing.T) {
	records := append([]emoji.Record{}, scenario...)
	records = append(records, emoji.Record{Hexcode: "1F601", Emoji: "😁"})
	_, err := Build(config.Defaults(), records)
	var me *emoji.MalformedRecordError
	if !errors.As(err, &me) || me.Index != 2 || me.Field != "annotation" {
		t.Fatalf("expected MalformedRecordError at 2, got %v", err)
	}
}

func TestCheckDetectsBrokenPages(t *testing.T) {
	good := inspect(t, render(t, config.Defaults(), mixed))

	twoVisible := *good
	twoVisible.Sections = append([]SectionSummary{}, good.Sections...)
	twoVisible.Sections[1].Hidden = false
	if err := twoVisible.Check(); err == nil {
		t.Error("expected error for two visible galleries")
	}

	missing := *good
	missing.Sections = good.Sections[:2]
	if err := missing.Check(); err == nil {
		t.Error("expected error for missing gallery")
	}

	uneven := *good
	uneven.Sections = append([]SectionSummary{}, good.Sections...)
	uneven.Sections[2].Payloads = uneven.Sections[2].Payloads[1:]
	if err := uneven.Check(); err == nil {
		t.Error("expected error for uneven galleries")
	}
}

func writeInput(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "openmoji.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Defaults()
	cfg.Input = writeInput(t, dir, `[
		{"hexcode":"1F600","annotation":"grinning face","emoji":"😀","skintone":""},
		{"hexcode":"1F600-1F3FB","annotation":"grinning face: light skin tone","emoji":"😀🏻","skintone":"1F3FB"}
	]`)
	cfg.Output = filepath.Join(dir, "site", "index.html")
	cfg.Compress = []string{config.EncodingGzip, config.EncodingZstd}

	res, err := Generate(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Records != 2 || res.Tiles != 1 || len(res.Sidecars) != 2 {
		t.Errorf("unexpected result: %+v", res)
	}

	page, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bytes != len(page) {
		t.Errorf("result size %d, file size %d", res.Bytes, len(page))
	}
	if err := inspect(t, page).Check(); err != nil {
		t.Errorf("check: %v", err)
	}

	gzData, err := os.ReadFile(cfg.Output + ".gz")
	if err != nil {
		t.Fatal(err)
	}
	zr, err := gzip.NewReader(bytes.NewReader(gzData))
	if err != nil {
		t.Fatal(err)
	}
	unzipped, err := io.ReadAll(zr)
	if err != nil || !bytes.Equal(unzipped, page) {
		t.Errorf("gzip sidecar mismatch (err %v)", err)
	}

	zstData, err := os.ReadFile(cfg.Output + ".zst")
	if err != nil {
		t.Fatal(err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer dec.Close()
	unzstd, err := dec.DecodeAll(zstData, nil)
	if err != nil || !bytes.Equal(unzstd, page) {
		t.Errorf("zstd sidecar mismatch (err %v)", err)
	}
}

func TestGenerateWritesNothingOnError(t *testing.T) {
	tests := map[string]string{
		"load":      `{"hexcode":"1F600"}`,
		"malformed": `[{"hexcode":"1F600","emoji":"😀","skintone":""}]`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := config.Defaults()
			cfg.Input = writeInput(t, dir, body)
			cfg.Output = filepath.Join(dir, "index.html")

			if _, err := Generate(cfg); err == nil {
				t.Fatal("expected error")
			}
			if _, err := os.Stat(cfg.Output); !errors.Is(err, os.ErrNotExist) {
				t.Errorf("output should not exist, stat err: %v", err)
			}
		})
	}
}

func TestWriteFileError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := WriteFile(filepath.Join(blocker, "index.html"), []byte("x"), nil)
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("expected WriteError, got %v", err)
	}

	_, err = WriteFile(filepath.Join(dir, "index.html"), []byte("x"), []string{"brotli"})
	if !errors.As(err, &we) {
		t.Fatalf("expected WriteError for unknown encoding, got %v", err)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	if err := os.WriteFile(path, []byte("old content that is longer"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := WriteFile(path, []byte("new"), nil); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("got %q", got)
	}
}
