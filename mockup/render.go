package mockup

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/unitrack/mockups/screens"
	"github.com/unitrack/mockups/wfraster"
	"github.com/unitrack/mockups/wireframe"
	"golang.org/x/crypto/blake2b"
)

// Renderer writes the screens to OutDir.
// The zero value is not usable: see Config.Renderer or NewRenderer.
type Renderer struct {
	OutDir   string
	Formats  []Format
	Palette  screens.Palette
	Screens  []screens.Screen
	Manifest bool    // write manifest.yaml after the screens
	FontSize float64 // zero keeps the default text size

	// Progress, if not nil, is called after each written file.
	Progress func(path string)
}

// NewRenderer returns a renderer writing every screen as PNG to outDir,
// with the default palette.
func NewRenderer(outDir string) *Renderer {
	return &Renderer{
		OutDir:   outDir,
		Formats:  []Format{PNG},
		Palette:  screens.DefaultPalette(),
		Screens:  screens.Catalog(),
		Manifest: true,
	}
}

// Layout builds the layout of `s` with the renderer settings.
func (r *Renderer) Layout(s screens.Screen) *wireframe.Layout {
	l := s.Build(r.Palette)
	l.SetTextSize(r.FontSize)
	return l
}

// Render writes every screen in every format, in catalog order,
// and returns the written paths in the same order.
// A layout with a shape outside its canvas is rejected before
// being encoded. The first failure aborts the run: the paths
// written so far are returned along with the error.
func (r *Renderer) Render() ([]string, error) {
	if err := screens.ValidateStacks(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", r.OutDir, err)
	}
	fonts, err := wfraster.NewFonts()
	if err != nil {
		return nil, err
	}
	encoders := map[Format]encoder{
		PNG: pngEncoder{fonts: fonts},
		PDF: pdfEncoder{},
	}

	var (
		paths    []string
		manifest Manifest
	)
	for _, s := range r.Screens {
		l := r.Layout(s)
		if err := l.Validate(); err != nil {
			return paths, err
		}
		for _, f := range r.Formats {
			enc, ok := encoders[f]
			if !ok {
				return paths, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
			}
			name := FileName(s.Seq, s.Slug, f)
			path := filepath.Join(r.OutDir, name)
			digest, err := writeFile(path, func(w io.Writer) error { return enc.encode(l, w) })
			if err != nil {
				return paths, fmt.Errorf("write %s: %w", path, err)
			}
			paths = append(paths, path)
			manifest.Files = append(manifest.Files, Entry{
				File: name, Screen: s.Slug, Format: f,
				Width: l.Width, Height: l.Height, Digest: digest,
			})
			if r.Progress != nil {
				r.Progress(path)
			}
		}
	}

	if r.Manifest {
		if err := manifest.write(r.OutDir); err != nil {
			return paths, err
		}
	}
	return paths, nil
}

// writeFile writes through a temporary file renamed into place,
// so that an existing file is never left half written.
// It returns the hex blake2b-256 digest of the content.
func writeFile(path string, write func(w io.Writer) error) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return "", err
	}
	tmp := f.Name()
	fail := func(err error) (string, error) {
		f.Close()
		os.Remove(tmp)
		return "", err
	}

	h, err := blake2b.New256(nil)
	if err != nil {
		return fail(err)
	}
	if err := write(io.MultiWriter(f, h)); err != nil {
		return fail(err)
	}
	if err := f.Chmod(0o644); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// hashReader returns the hex blake2b-256 digest of r.
func hashReader(r io.Reader) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
