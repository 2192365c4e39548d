package wireframe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func assertBox(t *testing.T, want, got Box) {
	t.Helper()
	const eps = 1e-6
	assert.InDelta(t, want.X0, got.X0, eps, "X0")
	assert.InDelta(t, want.Y0, got.Y0, eps, "Y0")
	assert.InDelta(t, want.X1, got.X1, eps, "X1")
	assert.InDelta(t, want.Y1, got.Y1, eps, "Y1")
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#009944", want: RGB(0x00, 0x99, 0x44)},
		{in: "ffffff", want: RGB(255, 255, 255)},
		{in: "#abc", want: RGB(0xaa, 0xbb, 0xcc)},
		{in: "#00336680", want: Color{R: 0, G: 0x33, B: 0x66, A: 0x80}},
		{in: "#12345", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#003366", RGB(0, 51, 102).Hex())
	assert.Equal(t, "none", Color{}.Hex())

	r, g, b, a := RGB(255, 0, 0).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})
}

func TestShapeExtents(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  Box
	}{
		{"rect", Rect{Box: B(20, 60, 380, 130), Style: Filled(RGB(0, 0, 0))}, B(20, 60, 380, 130)},
		{"stroked rect", Rect{Box: B(50, 120, 140, 200), Style: Outlined(RGB(0, 0, 0), 2)}, B(49, 119, 141, 201)},
		{"round rect", RoundRect{Box: B(40, 150, 360, 280), Radius: 15, Style: Filled(RGB(1, 1, 1))}, B(40, 150, 360, 280)},
		{"ellipse", Ellipse{Box: B(60, 170, 130, 240), Style: Filled(RGB(1, 1, 1))}, B(60, 170, 130, 240)},
		{"polygon", Polygon{Points: []Point{{80, 170}, {100, 170}, {90, 190}}, Style: Filled(RGB(1, 1, 1))}, B(80, 170, 100, 190)},
		{"line", Line{Points: []Point{{30, 100}, {370, 100}}, Color: RGB(1, 1, 1), Width: 8}, B(26, 96, 374, 104)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertBox(t, tt.want, tt.shape.Extent())
		})
	}
}

func TestRoundRectRadiusClamp(t *testing.T) {
	// a pill: the radius is larger than half the height
	pill := RoundRect{Box: B(150, 760, 250, 770), Radius: 50}
	assertBox(t, pill.Box, pill.Path().Extent())

	// no radius degenerates to a rectangle
	flat := RoundRect{Box: B(0, 0, 10, 10)}
	assert.Equal(t, Rect{Box: B(0, 0, 10, 10)}.Path().String(), flat.Path().String())
}

func TestCubicExtent(t *testing.T) {
	var p Path
	p.Start(toFixedP(0, 0))
	p.CubeBezier(toFixedP(0, 100), toFixedP(100, 100), toFixedP(100, 0))
	ext := p.Extent()
	// the curve peaks at 3/4 of the control polygon height
	assertBox(t, B(0, 0, 100, 75), ext)

	// monotonic curve: the end points bound it
	var q Path
	q.Start(toFixedP(10, 10))
	q.CubeBezier(toFixedP(20, 20), toFixedP(30, 30), toFixedP(40, 40))
	q.Line(toFixedP(0, 40))
	assertBox(t, B(0, 10, 40, 40), q.Extent())

	assert.Equal(t, Box{}, Path(nil).Extent())
}

func TestPathString(t *testing.T) {
	p := Rect{Box: B(0, 0, 2, 1)}.Path()
	assert.Equal(t, "M0.000,0.000 L2.000,0.000 L2.000,1.000 L0.000,1.000 Z", p.String())
}

func TestStack(t *testing.T) {
	s := Stack{Start: 245, RowHeight: 90, BlockHeight: 80}
	require.NoError(t, s.Validate())
	for i := 0; i < 4; i++ {
		assert.Equal(t, 245+float64(i)*90, s.Y(i))
		if i > 0 {
			assert.False(t, s.Block(i-1, 40, 360).Overlaps(s.Block(i, 40, 360)))
		}
	}
	assert.Equal(t, 245+3*90+80.0, s.End(4))
	assert.Equal(t, 245.0, s.End(0))

	assert.Error(t, Stack{Start: 0, RowHeight: 30, BlockHeight: 40}.Validate())
	assert.Error(t, Stack{Start: 0, RowHeight: 30}.Validate())
	// touching blocks are fine
	assert.NoError(t, Stack{RowHeight: 40, BlockHeight: 40}.Validate())
}

func TestValidate(t *testing.T) {
	l := New("test", 400, 800, RGB(255, 255, 255))
	l.Add(Rect{Box: B(20, 10, 380, 790), Style: Filled(RGB(0, 0, 0))})
	l.Add(T(390, 20, "text may overflow", RGB(0, 0, 0)))
	require.NoError(t, l.Validate())

	l.Add(Ellipse{Box: B(390, 10, 410, 30), Style: Filled(RGB(0, 0, 0))})
	assert.Error(t, l.Validate())

	assert.Error(t, New("empty", 0, 800, Color{}).Validate())
}

func TestTextMetrics(t *testing.T) {
	txt := T(50, 120, "Admin\nBuilding", RGB(0, 0, 0))
	assert.Equal(t, []string{"Admin", "Building"}, txt.Lines())
	assert.Equal(t, float64(DefaultTextSize), txt.FontSize())
	ext := txt.Extent()
	assert.Equal(t, 50.0, ext.X0)
	assert.InDelta(t, 120+2*DefaultTextSize*lineSpacing, ext.Y1, 1e-9)
}

func TestSetTextSize(t *testing.T) {
	l := New("sizes", 100, 100, Color{})
	l.Add(T(0, 0, "a", Color{}), Text{Content: "b", Size: 26}, Rect{Box: B(0, 0, 1, 1)})
	l.SetTextSize(6.5)
	assert.Equal(t, 6.5, l.Texts("a")[0].Size)
	assert.Equal(t, 13.0, l.Texts("b")[0].Size)
	assert.Equal(t, KindRect, l.Shapes[2].Kind())
}

func TestDescribe(t *testing.T) {
	green := RGB(0, 153, 76)
	d := Describe(RoundRect{Box: B(60, 475, 340, 505), Radius: 10, Style: Outlined(green, 2)})
	assert.Equal(t, "round-rect", d.Kind)
	assert.Nil(t, d.Fill)
	require.NotNil(t, d.Outline)
	assert.Equal(t, green, *d.Outline)
	assert.Equal(t, 2.0, d.Width)

	d = Describe(T(80, 480, "Available", green))
	assert.Equal(t, "Available", d.Text)
	assert.Equal(t, []Point{{80, 480}}, d.Points)
	assert.Equal(t, float64(DefaultTextSize), d.Size)
}

// recorder is a Driver logging the calls it receives
type recorder struct {
	calls []string
}

type recordingDrawer struct {
	r    *recorder
	name string
}

func (d recordingDrawer) log(format string, args ...interface{}) {
	d.r.calls = append(d.r.calls, d.name+" "+fmt.Sprintf(format, args...))
}

func (d recordingDrawer) Clear() {}
func (d recordingDrawer) Start(a fixed.Point26_6) { d.log("start") }
func (d recordingDrawer) Line(b fixed.Point26_6) {}
func (d recordingDrawer) QuadBezier(b, c fixed.Point26_6) {}
func (d recordingDrawer) CubeBezier(b, c, e fixed.Point26_6) {}
func (d recordingDrawer) Stop(closeLoop bool) {}
func (d recordingDrawer) SetColor(c Color, opacity float64) { d.log("color %s", c) }
func (d recordingDrawer) Draw() { d.log("draw") }
func (d recordingDrawer) SetWinding(useNonZeroWinding bool) {}
func (d recordingDrawer) SetStrokeOptions(options StrokeOptions) { d.log("width %d", options.LineWidth) }

func (r *recorder) SetupDrawers(willFill, willStroke bool) (f Filler, s Stroker) {
	if willFill {
		f = recordingDrawer{r: r, name: "fill"}
	}
	if willStroke {
		s = recordingDrawer{r: r, name: "stroke"}
	}
	return f, s
}

func (r *recorder) DrawText(t Text) {
	r.calls = append(r.calls, "text "+t.Content)
}

func TestDrawOrder(t *testing.T) {
	white, blue := RGB(255, 255, 255), RGB(0, 51, 102)
	l := New("order", 100, 100, white)
	l.Add(
		Ellipse{Box: B(10, 10, 40, 40), Style: FilledOutlined(white, blue, 3)},
		T(12, 20, "CK", blue),
		Line{Points: []Point{{0, 50}, {100, 50}}, Color: blue, Width: 1},
		Rect{Box: B(0, 0, 10, 10)}, // no paint: skipped
	)
	var r recorder
	l.Draw(&r)
	assert.Equal(t, []string{
		"fill start", "fill color #ffffff", "fill draw",
		"stroke width 192", "stroke start", "stroke color #003366", "stroke draw",
		"text CK",
		"stroke width 64", "stroke start", "stroke color #003366", "stroke draw",
	}, r.calls)
}
