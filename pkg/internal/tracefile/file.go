package tracefile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

type gzipReadCloser struct {
	io.Reader
	gz   *gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Close() error {
	gzErr := g.gz.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return gzErr
}

// Open opens a trace file for scanning. Files with a .gz suffix are
// decompressed on the fly; captured traces are routinely gzipped because a
// full instruction log for even a small transform runs to millions of lines.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace %s: %w", path, err)
	}

	if !strings.HasSuffix(path, ".gz") {
		return file, nil
	}

	gz, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("open gzip trace %s: %w", path, err)
	}
	return &gzipReadCloser{Reader: gz, gz: gz, file: file}, nil
}
