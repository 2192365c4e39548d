package wfraster

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts caches the faces used for text primitives.
// The Go fonts are embedded, so the output does not
// depend on the fonts installed on the machine.
type Fonts struct {
	regular, bold *opentype.Font
	faces         map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

// NewFonts parses the embedded Go regular and bold fonts.
func NewFonts() (*Fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing Go regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing Go bold font: %w", err)
	}
	return &Fonts{regular: regular, bold: bold, faces: make(map[faceKey]font.Face)}, nil
}

// Face returns the face for the given pixel size.
// A nil *Fonts, or a size the font can't be scaled to,
// falls back to the 7x13 bitmap face.
func (fs *Fonts) Face(size float64, bold bool) font.Face {
	if fs == nil {
		return basicfont.Face7x13
	}
	key := faceKey{size: size, bold: bold}
	if face, ok := fs.faces[key]; ok {
		return face
	}
	f := fs.regular
	if bold {
		f = fs.bold
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // one point per pixel
		Hinting: font.HintingFull,
	})
	if err != nil {
		face = basicfont.Face7x13
	}
	fs.faces[key] = face
	return face
}
