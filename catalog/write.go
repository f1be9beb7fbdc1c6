package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"emojicatalog/config"
)

// WriteError reports a failure to write the artifact or one of its sidecars.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

var sidecarExt = map[string]string{
	config.EncodingGzip: ".gz",
	config.EncodingZstd: ".zst",
}

// WriteFile writes data to path, overwriting it, followed by one
// precompressed sidecar per encoding. It returns the sidecar paths written.
func WriteFile(path string, data []byte, encodings []string) ([]string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &WriteError{Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, &WriteError{Path: path, Err: err}
	}
	var sidecars []string
	for _, enc := range encodings {
		ext, ok := sidecarExt[enc]
		if !ok {
			return sidecars, &WriteError{Path: path, Err: fmt.Errorf("unknown encoding %q", enc)}
		}
		out := path + ext
		compressed, err := compress(enc, data)
		if err != nil {
			return sidecars, &WriteError{Path: out, Err: err}
		}
		if err := os.WriteFile(out, compressed, 0o644); err != nil {
			return sidecars, &WriteError{Path: out, Err: err}
		}
		sidecars = append(sidecars, out)
	}
	return sidecars, nil
}

func compress(enc string, data []byte) ([]byte, error) {
	switch enc {
	case config.EncodingGzip:
		var buf bytes.Buffer
		zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
		if err != nil {
			return nil, err
		}
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case config.EncodingZstd:
		zw, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, err
		}
		defer zw.Close()
		return zw.EncodeAll(data, nil), nil
	}
	return nil, fmt.Errorf("unknown encoding %q", enc)
}
