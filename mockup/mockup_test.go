package mockup

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitrack/mockups/screens"
	"github.com/unitrack/mockups/wireframe"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "01_login_screen.png", FileName(1, "login_screen", PNG))
	assert.Equal(t, "07_admin_dashboard.pdf", FileName(7, "admin_dashboard", PDF))
	assert.Equal(t, "12_x.png", FileName(12, "x", PNG))
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in      []string
		want    []Format
		wantErr bool
	}{
		{in: nil, want: []Format{PNG}},
		{in: []string{"PNG", ".pdf"}, want: []Format{PNG, PDF}},
		{in: []string{"pdf,png", "pdf"}, want: []Format{PDF, PNG}},
		{in: []string{"gif"}, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormats(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownFormat)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	return img
}

func TestRenderLogin(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mockups") // created by Render
	login, _ := screens.Lookup("login_screen")
	r := NewRenderer(dir)
	r.Screens = []screens.Screen{login}
	r.Manifest = false

	paths, err := r.Render()
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "01_login_screen.png")}, paths)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary file is left")

	img := decodePNG(t, paths[0])
	assert.Equal(t, image.Rect(0, 0, 400, 800), img.Bounds())
	// inside the frame, between the status bar and the logo
	c := color.NRGBAModel.Convert(img.At(200, 100)).(color.NRGBA)
	assert.GreaterOrEqual(t, c.R, uint8(245))
	assert.GreaterOrEqual(t, c.G, uint8(245))
	assert.GreaterOrEqual(t, c.B, uint8(245))
}

func TestRenderIdempotent(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir)
	r.Formats = []Format{PNG, PDF}

	var progress []string
	r.Progress = func(path string) { progress = append(progress, path) }

	first, err := r.Render()
	require.NoError(t, err)
	require.Len(t, first, 14)
	assert.Equal(t, first, progress)
	m1, err := ReadManifest(dir)
	require.NoError(t, err)

	second, err := r.Render()
	require.NoError(t, err)
	m2, err := ReadManifest(dir)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, m1, m2)
	for _, e := range m1.Files {
		assert.Equal(t, 400, e.Width)
		assert.Equal(t, 800, e.Height)
		assert.Len(t, e.Digest, 64)
	}
	assert.Equal(t, "01_login_screen.png", m1.Files[0].File)
	assert.Equal(t, "07_admin_dashboard.pdf", m1.Files[13].File)

	for _, p := range first {
		if filepath.Ext(p) == ".png" {
			assert.Equal(t, image.Rect(0, 0, 400, 800), decodePNG(t, p).Bounds(), p)
		}
	}

	require.NoError(t, Check(dir, screens.Catalog(), []Format{PNG, PDF}))
}

func TestRenderUnwritableDir(t *testing.T) {
	// a regular file where the directory should be
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	paths, err := NewRenderer(filepath.Join(file, "mockups")).Render()
	require.Error(t, err)
	assert.Empty(t, paths)
	assert.Contains(t, err.Error(), "create output dir")
	var pathErr *fs.PathError
	assert.True(t, errors.As(err, &pathErr))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	catalog := screens.Catalog()

	err := Check(dir, catalog, []Format{PNG})
	var missing *MissingError
	require.True(t, errors.As(err, &missing))
	assert.Len(t, missing.Files, 7)
	assert.Equal(t, "01_login_screen.png", missing.Files[0])

	r := NewRenderer(dir)
	r.Screens = catalog[:2]
	_, err = r.Render()
	require.NoError(t, err)

	require.NoError(t, Check(dir, catalog[:2], []Format{PNG}))
	err = Check(dir, catalog, []Format{PNG})
	require.True(t, errors.As(err, &missing))
	assert.Len(t, missing.Files, 5)

	// tampered output
	require.NoError(t, os.WriteFile(filepath.Join(dir, "02_staff_dashboard.png"), []byte("x"), 0o644))
	err = Check(dir, catalog[:2], []Format{PNG})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "02_staff_dashboard.png differs")
}

func TestConfigRenderer(t *testing.T) {
	c := DefaultConfig()
	c.Formats = []string{"png,pdf"}
	c.Palette = map[string]string{"green": "#00aa00"}
	c.Only = []string{"live_map", "login_screen"}
	c.OutputDir = ""

	r, err := c.Renderer()
	require.NoError(t, err)
	assert.Equal(t, DefaultOutputDir, r.OutDir)
	assert.Equal(t, []Format{PNG, PDF}, r.Formats)
	require.Len(t, r.Screens, 2)
	assert.Equal(t, "login_screen", r.Screens[0].Slug, "catalog order is kept")
	assert.Equal(t, uint8(0xaa), r.Palette.Green.G)

	for name, bad := range map[string]Config{
		"format":  {Formats: []string{"bmp"}},
		"palette": {Palette: map[string]string{"green": "#00aa"}},
		"screen":  {Only: []string{"splash"}},
		"font":    {FontSize: -1},
	} {
		_, err := bad.Renderer()
		assert.Error(t, err, name)
	}
	_, err = Config{Formats: []string{"bmp"}}.Renderer()
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRenderRejectsShapesOffCanvas(t *testing.T) {
	dir := t.TempDir()
	login, _ := screens.Lookup("login_screen")
	broken := screens.Screen{Seq: 2, Slug: "broken", Build: func(p screens.Palette) *wireframe.Layout {
		l := wireframe.New("broken", screens.Width, screens.Height, p.White)
		l.Add(wireframe.Rect{Box: wireframe.B(350, 10, 450, 60), Style: wireframe.Filled(p.DarkBlue)})
		return l
	}}
	r := NewRenderer(dir)
	r.Screens = []screens.Screen{login, broken}
	r.Manifest = false

	paths, err := r.Render()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside the 400x800 canvas")
	assert.Equal(t, []string{filepath.Join(dir, "01_login_screen.png")}, paths)
	_, err = os.Stat(filepath.Join(dir, "02_broken.png"))
	assert.True(t, os.IsNotExist(err))
}
