package wfpdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitrack/mockups/wireframe"
)

func sample() *wireframe.Layout {
	white, blue, green := wireframe.RGB(255, 255, 255), wireframe.RGB(0, 51, 102), wireframe.RGB(0, 153, 76)
	l := wireframe.New("sample", 400, 800, white)
	l.Add(
		wireframe.Rect{Box: wireframe.B(0, 0, 400, 60), Style: wireframe.Filled(blue)},
		wireframe.Text{At: wireframe.Point{X: 20, Y: 20}, Content: "UniTrack", Color: white, Size: 16, Bold: true},
		wireframe.RoundRect{Box: wireframe.B(60, 475, 340, 505), Radius: 10, Style: wireframe.Outlined(green, 2)},
		wireframe.Ellipse{Box: wireframe.B(70, 480, 90, 500), Style: wireframe.FilledOutlined(green, blue, 1)},
		wireframe.Line{Points: []wireframe.Point{{X: 30, Y: 100}, {X: 370, Y: 100}, {X: 370, Y: 300}}, Color: blue, Width: 8},
		wireframe.T(20, 700, "Café • 2nd floor\nRoom 204", blue),
	)
	return l
}

func TestRender(t *testing.T) {
	var out bytes.Buffer
	err := Render(sample(), &out)
	require.NoError(t, err)

	b := out.Bytes()
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
	assert.True(t, bytes.Contains(b, []byte("/MediaBox [0 0 400.00 800.00]")), "page has the canvas size")
}

func TestRenderIsReproducible(t *testing.T) {
	var b1, b2 bytes.Buffer
	require.NoError(t, Render(sample(), &b1))
	require.NoError(t, Render(sample(), &b2))
	assert.Equal(t, b1.Bytes(), b2.Bytes())

	// the info dictionary never carries the current time
	content := b1.String()
	assert.Contains(t, content, "/CreationDate (D:20200101000000)")
	assert.Contains(t, content, "/ModDate (D:20200101000000)")
}

func TestRenderUncompressed(t *testing.T) {
	l := sample()
	pdf := NewDocument(l)
	pdf.SetCompression(false)
	l.Draw(NewRenderer(pdf))
	require.NoError(t, pdf.Error())

	var out bytes.Buffer
	require.NoError(t, pdf.Output(&out))
	content := out.String()
	// stroke and fill painting operators
	assert.Contains(t, content, "\nS\n")
	assert.Contains(t, content, "\nf\n")
	// bezier curves for the rounded shapes
	assert.Contains(t, content, " c\n")
	assert.Contains(t, content, "(UniTrack) Tj")
}
