// Implements a PDF backend to render wireframe layouts,
// by wrapping github.com/jung-kurt/gofpdf.
package wfpdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/unitrack/mockups/wireframe"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ wireframe.Driver  = Renderer{}
	_ wireframe.Filler  = (*filler)(nil)
	_ wireframe.Stroker = stroker{}
)

// baselineRatio places the baseline of the core fonts
// below the top-left anchor of a text.
const baselineRatio = 0.8

// epoch is used as creation and modification date so that the output
// only depends on the layout.
var epoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

type Renderer struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *gofpdf.Fpdf
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the given `pdf`, on its current page.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf, translate: pdf.UnicodeTranslatorFromDescriptor("")}
}

// NewDocument returns a one page document whose page has the size
// of the layout canvas, one point per canvas unit.
func NewDocument(l *wireframe.Layout) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(l.Width), Ht: float64(l.Height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(epoch)
	pdf.SetModificationDate(epoch)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(l.Name, true)
	pdf.AddPage()
	return pdf
}

// Render writes `l` as a one page PDF document into `w`.
func Render(l *wireframe.Layout, w io.Writer) error {
	pdf := NewDocument(l)
	if bg := l.Background; !bg.IsZero() {
		pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
		pdf.Rect(0, 0, float64(l.Width), float64(l.Height), "F")
	}
	l.Draw(NewRenderer(pdf))
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf for %s: %w", l.Name, err)
	}
	return nil
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (f wireframe.Filler, s wireframe.Stroker) {
	if willFill {
		f = &filler{pather: pather{r.pdf}}
	}
	if willStroke {
		s = stroker{pather{r.pdf}}
	}
	return f, s
}

// DrawText uses the Helvetica core font, so characters outside
// the cp1252 code page are not rendered.
func (r Renderer) DrawText(t wireframe.Text) {
	style := ""
	if t.Bold {
		style = "B"
	}
	size := t.FontSize()
	r.pdf.SetFont("Helvetica", style, size)
	r.pdf.SetTextColor(int(t.Color.R), int(t.Color.G), int(t.Color.B))
	r.pdf.SetAlpha(float64(t.Color.A)/255, "")
	for i, line := range t.Lines() {
		y := t.At.Y + float64(i)*t.LineHeight() + size*baselineRatio
		r.pdf.Text(t.At.X, y, r.translate(line))
	}
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p pather) Clear() {}

func (p pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.CurveTo(cx, cy, x, y)
}

func (p pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

func (f *filler) SetColor(color wireframe.Color, opacity float64) {
	f.pdf.SetFillColor(int(color.R), int(color.G), int(color.B))
	f.pdf.SetAlpha(opacity*float64(color.A)/255, "")
}

func (f *filler) Draw() {
	styleStr := "f*"
	if f.useNonZeroWinding {
		styleStr = "f"
	}
	f.pdf.DrawPath(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (s stroker) SetColor(color wireframe.Color, opacity float64) {
	s.pdf.SetDrawColor(int(color.R), int(color.G), int(color.B))
	s.pdf.SetAlpha(opacity*float64(color.A)/255, "")
}

func (s stroker) Draw() {
	s.pdf.DrawPath("D")
}

var (
	joinToStyle = [...]string{
		wireframe.Round: "round",
		wireframe.Bevel: "bevel",
		wireframe.Miter: "miter",
	}

	capToStyle = [...]string{
		wireframe.ButtCap:   "butt",
		wireframe.SquareCap: "square",
		wireframe.RoundCap:  "round",
	}
)

// SetStrokeOptions ignores the miter limit, which gofpdf doesn't expose.
func (s stroker) SetStrokeOptions(options wireframe.StrokeOptions) {
	s.pdf.SetLineWidth(float64(options.LineWidth) / 64)
	s.pdf.SetLineJoinStyle(joinToStyle[options.Join.LineJoin])
	s.pdf.SetLineCapStyle(capToStyle[options.Join.Cap])
}
