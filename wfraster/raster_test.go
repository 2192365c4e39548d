package wfraster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitrack/mockups/wireframe"
)

var (
	white = wireframe.RGB(255, 255, 255)
	green = wireframe.RGB(0, 153, 76)
	blue  = wireframe.RGB(0, 51, 102)
)

func toPngBytes(m image.Image) ([]byte, error) {
	var b bytes.Buffer
	err := png.Encode(&b, m)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func sample() *wireframe.Layout {
	l := wireframe.New("sample", 200, 100, white)
	l.Add(
		wireframe.Rect{Box: wireframe.B(10, 10, 90, 90), Style: wireframe.Filled(green)},
		wireframe.Ellipse{Box: wireframe.B(50, 40, 70, 60), Style: wireframe.Filled(blue)}, // over the rect
		wireframe.Line{Points: []wireframe.Point{{X: 100, Y: 50}, {X: 190, Y: 50}}, Color: blue, Width: 6},
		wireframe.RoundRect{Box: wireframe.B(110, 70, 190, 95), Radius: 8, Style: wireframe.Outlined(green, 2)},
	)
	return l
}

func TestRasterizeGeometry(t *testing.T) {
	img := Rasterize(sample(), nil)
	require.Equal(t, image.Rect(0, 0, 200, 100), img.Bounds())

	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgbaAt(img, 2, 2), "background")
	assert.Equal(t, color.RGBA{0, 153, 76, 255}, rgbaAt(img, 20, 20), "rect fill")
	assert.Equal(t, color.RGBA{0, 51, 102, 255}, rgbaAt(img, 60, 50), "later shapes cover earlier ones")
	assert.Equal(t, color.RGBA{0, 51, 102, 255}, rgbaAt(img, 150, 50), "line stroke")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgbaAt(img, 150, 60), "line is 6 wide")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgbaAt(img, 150, 82), "outlined shape is not filled")
}

func countNot(img *image.RGBA, r image.Rectangle, c color.RGBA) int {
	var n int
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) != c {
				n++
			}
		}
	}
	return n
}

func TestDrawText(t *testing.T) {
	fonts, err := NewFonts()
	require.NoError(t, err)

	l := wireframe.New("text", 200, 60, white)
	l.Add(wireframe.T(10, 10, "Admin\nBuilding", blue))
	img := Rasterize(l, fonts)

	bg := color.RGBA{255, 255, 255, 255}
	// both lines are inked, below the anchor
	assert.Positive(t, countNot(img, image.Rect(0, 10, 200, 26), bg))
	assert.Positive(t, countNot(img, image.Rect(0, 26, 200, 44), bg))
	assert.Zero(t, countNot(img, image.Rect(0, 0, 200, 8), bg))

	// the bitmap fallback also draws
	img = Rasterize(l, nil)
	assert.Positive(t, countNot(img, img.Bounds(), bg))
}

func TestFaceCache(t *testing.T) {
	fonts, err := NewFonts()
	require.NoError(t, err)
	a := fonts.Face(13, false)
	assert.Same(t, a, fonts.Face(13, false))
	assert.NotSame(t, a, fonts.Face(13, true))
}

func TestDeterministic(t *testing.T) {
	fonts, err := NewFonts()
	require.NoError(t, err)
	l := sample()
	l.Add(wireframe.Text{At: wireframe.Point{X: 12, Y: 12}, Content: "UniTrack", Color: white, Size: 16, Bold: true})

	b1, err := toPngBytes(Rasterize(l, fonts))
	require.NoError(t, err)
	b2, err := toPngBytes(Rasterize(l, fonts))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(b1, b2), "rendering the same layout twice must give the same image")
}
