package wficon

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitrack/mockups/wireframe"
)

func TestEmbeddedIcons(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	target := wireframe.B(100, 200, 124, 224)
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			icon, err := Load(name)
			require.NoError(t, err)
			assert.Equal(t, []string{name}, icon.Titles)

			shapes := icon.Shapes(target, wireframe.RGB(0, 153, 76))
			require.NotEmpty(t, shapes)
			for _, s := range shapes {
				assert.True(t, s.Extent().Inside(target), "%s %v outside %v", s.Kind(), s.Extent(), target)
			}
		})
	}
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("rocket")
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoad("rocket") })
}

const sample = `<?xml version="1.0" encoding="ISO-8859-1"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="10 10 20 10">
  <title>caf` + "\xe9" + `</title>
  <g fill="currentColor" stroke="#003366" stroke-width="2">
    <rect x="10" y="10" width="10" height="10"/>
    <circle cx="25" cy="15" r="5" style="stroke:none"/>
  </g>
  <polyline points="10,10 20,20 30,10" fill="none" stroke="currentColor"/>
  <polygon points="10,20 30,20 20,10" fill="none" stroke="none"/>
  <path d="M 0 0 L 10 10"/>
</svg>`

func TestReadIconStream(t *testing.T) {
	icon, err := ReadIconStream(strings.NewReader(sample), IgnoreErrorMode)
	require.NoError(t, err)
	assert.Equal(t, Bounds{X: 10, Y: 10, W: 20, H: 10}, icon.ViewBox)
	assert.Equal(t, []string{"café"}, icon.Titles, "charset is decoded")

	green := wireframe.RGB(0, 153, 76)
	blue := wireframe.RGB(0, 51, 102)
	// viewBox is scaled by 2
	shapes := icon.Shapes(wireframe.B(0, 0, 40, 20), green)
	require.Len(t, shapes, 3, "invisible polygon and unsupported path are dropped")

	assert.Equal(t, wireframe.Rect{
		Box:   wireframe.B(0, 0, 20, 20),
		Style: wireframe.FilledOutlined(green, blue, 4),
	}, shapes[0])
	assert.Equal(t, wireframe.Ellipse{
		Box:   wireframe.B(20, 0, 40, 20),
		Style: wireframe.Style{Fill: green, Width: 4},
	}, shapes[1])
	assert.Equal(t, wireframe.Line{
		Points: []wireframe.Point{{X: 0, Y: 0}, {X: 20, Y: 20}, {X: 40, Y: 0}},
		Color:  green,
		Width:  2,
	}, shapes[2])
}

func TestErrorModes(t *testing.T) {
	_, err := ReadIconStream(strings.NewReader(sample), StrictErrorMode)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path")

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	_, err = ReadIconStream(strings.NewReader(sample), WarnErrorMode)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Cannot process svg element path")
}

func TestInvalidIcons(t *testing.T) {
	tests := []struct {
		name string
		svg  string
	}{
		{"empty", ""},
		{"bad viewBox", `<svg viewBox="0 0 24"></svg>`},
		{"no size", `<svg><rect width="2" height="2"/></svg>`},
		{"odd points", `<svg viewBox="0 0 24 24"><polygon points="1,2 3"/></svg>`},
		{"bad color", `<svg viewBox="0 0 24 24"><rect width="2" height="2" fill="url(#grad)"/></svg>`},
		{"bad number", `<svg viewBox="0 0 24 24"><circle r="2em"/></svg>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadIconStream(strings.NewReader(tt.svg), IgnoreErrorMode)
			assert.Error(t, err)
		})
	}

	_, err := ReadIconStream(strings.NewReader(`<svg viewBox="0 0 24"></svg>`), IgnoreErrorMode)
	assert.ErrorIs(t, err, ErrParamMismatch)
}
