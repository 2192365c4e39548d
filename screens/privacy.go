package screens

import "github.com/unitrack/mockups/wireframe"

// privacyRows stacks the settings of the privacy screen.
var privacyRows = wireframe.Stack{Start: 150, RowHeight: 95, BlockHeight: 80}

type setting struct {
	title, description string
	enabled            bool
}

var privacySettings = []setting{
	{"Location Sharing", "Allow students to see your location", true},
	{"Auto-Off After Hours", "Disable at 5:00 PM daily", true},
	{"Campus Only", "Only share within campus bounds", true},
	{"Show Status", "Display availability status", true},
	{"Allow Messages", "Receive student queries", false},
}

// toggle draws a switch whose right edge is at x1.
func toggle(l *wireframe.Layout, p Palette, x1, y float64, on bool) {
	track, knob := p.Gray, wireframe.B(x1-47, y+3, x1-25, y+27)
	if on {
		track, knob = p.Green, wireframe.B(x1-25, y+3, x1-3, y+27)
	}
	l.Add(
		wireframe.RoundRect{Box: wireframe.B(x1-50, y, x1, y+30), Radius: 15, Style: wireframe.Filled(track)},
		wireframe.Ellipse{Box: knob, Style: wireframe.Filled(p.White)},
	)
}

// privacyNotice returns the box of the notice placed under the
// settings ending at `y`. It ends on the top edge of the bottom nav.
func privacyNotice(y float64) wireframe.Box {
	return wireframe.B(40, y+10, Width-40, y+90)
}

// PrivacySettings draws the location sharing controls.
func PrivacySettings(p Palette) *wireframe.Layout {
	l := newScreen("privacy_settings", p.LightGray, p)
	w := float64(l.Width)

	header(l, p.DarkBlue, title(40, 85, "← Privacy Settings", p.White))

	for i, s := range privacySettings {
		box := privacyRows.Block(i, 40, w-40)
		y := box.Y0
		card(l, box, 12, p)
		l.Add(
			wireframe.T(60, y+15, s.title, p.Black),
			small(60, y+42, s.description, p.Gray),
		)
		toggle(l, p, w-60, y+25, s.enabled)
	}

	notice := privacyNotice(privacyRows.End(len(privacySettings)))
	l.Add(wireframe.RoundRect{Box: notice, Radius: 12, Style: wireframe.Filled(p.LightGreen)})
	labeled(l, "lock", 60, notice.Y0+20, "Your privacy is protected", p.Green)
	l.Add(small(60, notice.Y0+45, "No location history is stored", p.Gray))

	BottomNav(l, p, 3)
	return l
}
