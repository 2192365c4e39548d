// Package mockup renders the screen catalog to files:
// one image per screen and format, named {seq:02d}_{slug}.{ext},
// plus an optional manifest recording what was written.
package mockup

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/unitrack/mockups/wfpdf"
	"github.com/unitrack/mockups/wfraster"
	"github.com/unitrack/mockups/wireframe"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is an output file format, named by its extension.
type Format string

const (
	PNG Format = "png"
	PDF Format = "pdf"
)

// Formats lists the supported formats.
var Formats = []Format{PNG, PDF}

// ParseFormat accepts a case insensitive extension, with or without dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ParseFormats parses a list of formats, removing duplicates.
// An empty list means PNG only.
func ParseFormats(list []string) ([]Format, error) {
	var out []Format
	seen := map[Format]bool{}
	for _, s := range list {
		// accept "png,pdf" as a single value
		for _, part := range strings.Split(s, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			f, err := ParseFormat(part)
			if err != nil {
				return nil, err
			}
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	if len(out) == 0 {
		out = []Format{PNG}
	}
	return out, nil
}

// FileName returns the output name of a screen.
func FileName(seq int, slug string, f Format) string {
	return fmt.Sprintf("%02d_%s.%s", seq, slug, f)
}

// encoder writes one layout in a given format.
type encoder interface {
	encode(l *wireframe.Layout, w io.Writer) error
}

type pngEncoder struct {
	fonts *wfraster.Fonts
}

func (e pngEncoder) encode(l *wireframe.Layout, w io.Writer) error {
	var img image.Image = wfraster.Rasterize(l, e.fonts)
	return png.Encode(w, img)
}

type pdfEncoder struct{}

func (pdfEncoder) encode(l *wireframe.Layout, w io.Writer) error {
	return wfpdf.Render(l, w)
}
