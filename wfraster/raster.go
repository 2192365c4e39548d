// Implements a raster backend to render wireframe layouts,
// by wrapping rasterx.
package wfraster

import (
	"image"
	"image/draw"

	"github.com/srwiley/rasterx"
	"github.com/unitrack/mockups/wireframe"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var _ wireframe.Driver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	img    *image.RGBA
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
	fonts  *Fonts
}

// NewRenderer returns a renderer painting on `img`.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
func NewRenderer(img *image.RGBA, fonts *Fonts) *Renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Renderer{
		img:    img,
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
		fonts:  fonts,
	}
}

// Rasterize paints the background then the shapes of `l`
// into a new image of the layout size.
func Rasterize(l *wireframe.Layout, fonts *Fonts) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(l.Background), image.Point{}, draw.Src)
	l.Draw(NewRenderer(img, fonts))
	return img
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f wireframe.Filler, s wireframe.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

// DrawText draws each line of `t` with its top at the anchor,
// the following lines being spaced by t.LineHeight().
func (rd *Renderer) DrawText(t wireframe.Text) {
	face := rd.fonts.Face(t.FontSize(), t.Bold)
	d := font.Drawer{Dst: rd.img, Src: image.NewUniform(t.Color), Face: face}
	ascent := face.Metrics().Ascent
	for i, line := range t.Lines() {
		y := t.At.Y + float64(i)*t.LineHeight()
		d.Dot = fixed.Point26_6{X: fixed.Int26_6(t.At.X * 64), Y: fixed.Int26_6(y*64) + ascent}
		d.DrawString(line)
	}
}

type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(color wireframe.Color, opacity float64) {
	f.Filler.SetColor(rasterx.ApplyOpacity(color, opacity))
}

type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(color wireframe.Color, opacity float64) {
	s.Dasher.SetColor(rasterx.ApplyOpacity(color, opacity))
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		wireframe.Round: rasterx.Round,
		wireframe.Bevel: rasterx.Bevel,
		wireframe.Miter: rasterx.Miter,
	}

	capToFunc = [...]rasterx.CapFunc{
		wireframe.ButtCap:   rasterx.ButtCap,
		wireframe.SquareCap: rasterx.SquareCap,
		wireframe.RoundCap:  rasterx.RoundCap,
	}

	// gap used on the convex side of joins, matching the join mode
	joinToGap = [...]rasterx.GapFunc{
		wireframe.Round: rasterx.RoundGap,
		wireframe.Bevel: rasterx.FlatGap,
		wireframe.Miter: rasterx.FlatGap,
	}
)

func (s stroker) SetStrokeOptions(options wireframe.StrokeOptions) {
	join := options.Join
	s.Dasher.SetStroke(
		options.LineWidth, join.MiterLimit, capToFunc[join.Cap],
		capToFunc[join.Cap], joinToGap[join.LineJoin],
		joinToJoin[join.LineJoin], nil, 0,
	)
}
