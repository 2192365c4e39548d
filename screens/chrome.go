package screens

import (
	"fmt"

	"github.com/unitrack/mockups/wficon"
	"github.com/unitrack/mockups/wireframe"
)

const (
	// Width and Height are the canvas size of every screen.
	Width  = 400
	Height = 800

	smallSize = 11 // secondary text
	titleSize = 15 // header titles
)

// newScreen allocates the canvas and draws the phone frame.
func newScreen(name string, bg wireframe.Color, p Palette) *wireframe.Layout {
	l := wireframe.New(name, Width, Height, bg)
	Frame(l, p)
	return l
}

// Frame draws the phone body, the status bar and the home indicator.
func Frame(l *wireframe.Layout, p Palette) {
	w, h := float64(l.Width), float64(l.Height)
	l.Add(
		wireframe.RoundRect{Box: wireframe.B(20, 10, w-20, h-10), Radius: 30, Style: wireframe.FilledOutlined(p.White, p.DarkBlue, 3)},
		wireframe.Rect{Box: wireframe.B(20, 10, w-20, 60), Style: wireframe.Filled(p.DarkBlue)},
		wireframe.T(40, 25, "9:41", p.White),
		wireframe.T(w-80, 25, "100%", p.White),
		wireframe.RoundRect{Box: wireframe.B(w/2-50, h-40, w/2+50, h-30), Radius: 5, Style: wireframe.Filled(p.Gray)},
	)
}

// NavItem is one cell of the bottom navigation.
type NavItem struct {
	Label  string
	Icon   string  // embedded glyph name
	X      float64 // center of the cell
	Active bool
}

var navEntries = [...]struct{ label, icon string }{
	{"Home", "home"},
	{"Map", "map"},
	{"Profile", "profile"},
	{"Settings", "settings"},
}

// NavItems returns the four navigation cells of a canvas of the given width.
// It panics if active is not in [0, 4).
func NavItems(width float64, active int) []NavItem {
	if active < 0 || active >= len(navEntries) {
		panic(fmt.Sprintf("screens: invalid active navigation index %d", active))
	}
	cell := (width - 40) / float64(len(navEntries))
	out := make([]NavItem, len(navEntries))
	for i, e := range navEntries {
		out[i] = NavItem{
			Label:  e.label,
			Icon:   e.icon,
			X:      20 + float64(i)*cell + cell/2,
			Active: i == active,
		}
	}
	return out
}

// BottomNav draws the navigation strip, highlighting the `active` cell.
func BottomNav(l *wireframe.Layout, p Palette, active int) {
	w, h := float64(l.Width), float64(l.Height)
	navY := h - 100
	l.Add(wireframe.Rect{Box: wireframe.B(20, navY, w-20, h-50), Style: wireframe.FilledOutlined(p.White, p.LightGray, 1)})
	for _, item := range NavItems(w, active) {
		c := p.Neutral()
		if item.Active {
			c = p.Accent()
		}
		glyph(l, item.Icon, wireframe.B(item.X-10, navY+12, item.X+10, navY+32), c)
		l.Add(wireframe.T(item.X-20, navY+45, item.Label, c))
	}
}

// header draws the colored title strip under the status bar.
func header(l *wireframe.Layout, fill wireframe.Color, title wireframe.Text) {
	l.Add(wireframe.Rect{Box: wireframe.B(20, 60, float64(l.Width)-20, 130), Style: wireframe.Filled(fill)}, title)
}

func title(x, y float64, content string, c wireframe.Color) wireframe.Text {
	return wireframe.Text{At: wireframe.Point{X: x, Y: y}, Content: content, Color: c, Size: titleSize, Bold: true}
}

func small(x, y float64, content string, c wireframe.Color) wireframe.Text {
	return wireframe.Text{At: wireframe.Point{X: x, Y: y}, Content: content, Color: c, Size: smallSize}
}

// glyph draws the embedded icon `name` in box, with `c` as current color.
func glyph(l *wireframe.Layout, name string, box wireframe.Box, c wireframe.Color) {
	l.Add(wficon.MustLoad(name).Shapes(box, c)...)
}

// labeled draws a 13 px glyph followed by a text, both in color c.
func labeled(l *wireframe.Layout, icon string, x, y float64, content string, c wireframe.Color) {
	glyph(l, icon, wireframe.B(x, y+1, x+13, y+14), c)
	l.Add(wireframe.T(x+18, y, content, c))
}

// card draws a white rounded panel.
func card(l *wireframe.Layout, box wireframe.Box, radius float64, p Palette) {
	l.Add(wireframe.RoundRect{Box: box, Radius: radius, Style: wireframe.Filled(p.White)})
}
