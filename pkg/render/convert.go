package render

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/matzehuels/tabsheet/pkg/errors"
)

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, "pdf")
}

// PagesToPDF converts one SVG document per page into a multi-page PDF.
// rsvg-convert reads multiple documents only from files, so the pages are
// staged in a temporary directory.
func PagesToPDF(pages [][]byte) ([]byte, error) {
	switch len(pages) {
	case 0:
		return nil, errors.New(errors.ErrCodeRenderFailed, "no pages to convert")
	case 1:
		return ToPDF(pages[0])
	}
	dir, err := os.MkdirTemp("", "tabsheet-pdf-*")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "create staging directory")
	}
	defer os.RemoveAll(dir)

	args := make([]string, 0, len(pages))
	for i, svg := range pages {
		path := filepath.Join(dir, fmt.Sprintf("page-%04d.svg", i+1))
		if err := os.WriteFile(path, svg, 0o600); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "stage page %d", i+1)
		}
		args = append(args, path)
	}
	return rsvgConvert(nil, "pdf", args...)
}

// ToPNG converts SVG bytes to PNG using rsvg-convert with the given scale factor.
// Scale of 2.0 produces a 2x resolution image.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// rsvgConvert shells out to rsvg-convert for format conversion.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	if svg != nil {
		cmd.Stdin = bytes.NewReader(svg)
	}

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "rsvg-convert: %s", errBuf.String())
	}
	return out.Bytes(), nil
}
