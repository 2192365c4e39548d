package screens

import "github.com/unitrack/mockups/wireframe"

// statusButtons stacks the availability choices of the staff dashboard.
var statusButtons = wireframe.Stack{Start: 475, RowHeight: 35, BlockHeight: 30}

// StaffDashboard draws the faculty member home screen.
func StaffDashboard(p Palette) *wireframe.Layout {
	l := newScreen("staff_dashboard", p.LightGray, p)
	w := float64(l.Width)

	header(l, p.DarkBlue, title(40, 80, "UniTrack - Staff", p.White))
	l.Add(wireframe.T(w-100, 85, "Online", p.Status(Available)))

	// profile
	card(l, wireframe.B(40, 150, w-40, 280), 15, p)
	l.Add(
		wireframe.Ellipse{Box: wireframe.B(60, 170, 130, 240), Style: wireframe.FilledOutlined(p.LightBlue, p.DarkBlue, 2)},
		wireframe.Text{At: wireframe.Point{X: 84, Y: 196}, Content: "CK", Color: p.DarkBlue, Size: 16, Bold: true},
		wireframe.T(150, 180, "Christian Keth", p.Black),
		wireframe.T(150, 205, "Faculty Member", p.Gray),
	)
	labeled(l, "pin", 150, 230, "Admin Building", p.Green)

	// location sharing toggle, on
	card(l, wireframe.B(40, 300, w-40, 400), 15, p)
	l.Add(
		wireframe.T(60, 320, "Location Sharing", p.Black),
		wireframe.RoundRect{Box: wireframe.B(w-120, 315, w-60, 355), Radius: 20, Style: wireframe.Filled(p.Green)},
		wireframe.Ellipse{Box: wireframe.B(w-90, 320, w-65, 350), Style: wireframe.Filled(p.White)},
		wireframe.T(60, 360, "You are visible to students", p.Green),
	)

	// current status, the first one is selected
	card(l, wireframe.B(40, 420, w-40, 580), 15, p)
	l.Add(wireframe.T(60, 440, "Current Status", p.Black))
	for i, s := range []Status{Available, InClass, Meeting} {
		box := statusButtons.Block(i, 60, w-60)
		c := p.Status(s)
		if i == 0 {
			l.Add(
				wireframe.RoundRect{Box: box, Radius: 10, Style: wireframe.Filled(c)},
				wireframe.T(80, box.Y0+5, s.String(), p.White),
			)
		} else {
			l.Add(
				wireframe.RoundRect{Box: box, Radius: 10, Style: wireframe.Outlined(c, 2)},
				wireframe.T(80, box.Y0+5, s.String(), c),
			)
		}
	}

	// quick message
	card(l, wireframe.B(40, 600, w-40, 680), 15, p)
	l.Add(
		wireframe.T(60, 620, "Quick Message", p.Black),
		wireframe.RoundRect{Box: wireframe.B(60, 645, w-60, 670), Radius: 8, Style: wireframe.Filled(p.LightGray)},
		small(70, 651, "Back in 10 minutes...", p.Gray),
	)

	BottomNav(l, p, 0)
	return l
}
