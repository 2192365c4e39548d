package screens

import (
	"fmt"
	"sort"
	"strings"

	"github.com/unitrack/mockups/wireframe"
)

// Status is the availability of a faculty member.
type Status uint8

const (
	Available Status = iota
	InClass          // busy
	Meeting          // unavailable
)

func (s Status) String() string {
	switch s {
	case Available:
		return "Available"
	case InClass:
		return "In Class"
	case Meeting:
		return "Meeting"
	default:
		return "<unknown Status>"
	}
}

// Palette holds the named colors of the mockups.
// It is passed by value to the builders, which never modify it.
type Palette struct {
	White      wireframe.Color
	Black      wireframe.Color
	DarkBlue   wireframe.Color
	LightBlue  wireframe.Color
	Green      wireframe.Color
	LightGreen wireframe.Color
	Gray       wireframe.Color
	LightGray  wireframe.Color
	Red        wireframe.Color
	Orange     wireframe.Color
	MapGreen   wireframe.Color
}

// DefaultPalette returns the UniTrack colors.
func DefaultPalette() Palette {
	return Palette{
		White:      wireframe.RGB(255, 255, 255),
		Black:      wireframe.RGB(0, 0, 0),
		DarkBlue:   wireframe.RGB(0, 51, 102),
		LightBlue:  wireframe.RGB(230, 242, 255),
		Green:      wireframe.RGB(0, 153, 76),
		LightGreen: wireframe.RGB(220, 255, 220),
		Gray:       wireframe.RGB(128, 128, 128),
		LightGray:  wireframe.RGB(240, 240, 240),
		Red:        wireframe.RGB(220, 53, 69),
		Orange:     wireframe.RGB(255, 165, 0),
		MapGreen:   wireframe.RGB(220, 235, 220),
	}
}

// Status returns the color used for `s` on every screen.
// It panics on an unknown status.
func (p Palette) Status(s Status) wireframe.Color {
	switch s {
	case Available:
		return p.Green
	case InClass:
		return p.Orange
	case Meeting:
		return p.Red
	default:
		panic(fmt.Sprintf("screens: invalid status %d", s))
	}
}

// Accent is the color of the active elements.
func (p Palette) Accent() wireframe.Color { return p.Green }

// Neutral is the color of the inactive elements.
func (p Palette) Neutral() wireframe.Color { return p.Gray }

func (p *Palette) fields() map[string]*wireframe.Color {
	return map[string]*wireframe.Color{
		"white":       &p.White,
		"black":       &p.Black,
		"dark_blue":   &p.DarkBlue,
		"light_blue":  &p.LightBlue,
		"green":       &p.Green,
		"light_green": &p.LightGreen,
		"gray":        &p.Gray,
		"light_gray":  &p.LightGray,
		"red":         &p.Red,
		"orange":      &p.Orange,
		"map_green":   &p.MapGreen,
	}
}

// ColorNames returns the sorted keys accepted by WithOverrides.
func ColorNames() []string {
	var p Palette
	var out []string
	for name := range p.fields() {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// WithOverrides returns a copy of `p` where the colors named in
// `overrides` (see ColorNames) are replaced by the given hex values.
func (p Palette) WithOverrides(overrides map[string]string) (Palette, error) {
	fields := p.fields()
	for name, hex := range overrides {
		field, ok := fields[strings.ToLower(name)]
		if !ok {
			return p, fmt.Errorf("unknown palette color %q (expected one of %s)",
				name, strings.Join(ColorNames(), ", "))
		}
		c, err := wireframe.ParseHex(hex)
		if err != nil {
			return p, fmt.Errorf("palette color %s: %w", name, err)
		}
		*field = c
	}
	return p, nil
}
