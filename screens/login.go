package screens

import "github.com/unitrack/mockups/wireframe"

// Login draws the sign in screen. It has no bottom navigation.
func Login(p Palette) *wireframe.Layout {
	l := newScreen("login_screen", p.White, p)
	w := float64(l.Width)

	// logo
	l.Add(
		wireframe.Ellipse{Box: wireframe.B(w/2-60, 150, w/2+60, 270), Style: wireframe.FilledOutlined(p.Green, p.DarkBlue, 3)},
		title(w/2-45, 190, "UniTrack", p.White),
		wireframe.T(w/2-80, 290, "Find Faculty. Save Time.", p.Gray),
		wireframe.T(60, 350, "Sign in with SKSU Email", p.Black),
	)

	// form
	l.Add(wireframe.RoundRect{Box: wireframe.B(40, 380, w-40, 430), Radius: 10, Style: wireframe.Filled(p.LightGray)})
	labeled(l, "mail", 60, 395, "student@sksu.edu.ph", p.Gray)
	l.Add(wireframe.RoundRect{Box: wireframe.B(40, 450, w-40, 500), Radius: 10, Style: wireframe.Filled(p.LightGray)})
	labeled(l, "lock", 60, 465, "••••••••••", p.Gray)

	l.Add(
		wireframe.RoundRect{Box: wireframe.B(40, 530, w-40, 585), Radius: 12, Style: wireframe.Filled(p.Green)},
		wireframe.Text{At: wireframe.Point{X: w/2 - 30, Y: 548}, Content: "Sign In", Color: p.White, Bold: true},
	)

	// divider
	l.Add(
		wireframe.Line{Points: []wireframe.Point{{X: 40, Y: 620}, {X: w/2 - 30, Y: 620}}, Color: p.Gray, Width: 1},
		wireframe.T(w/2-15, 612, "or", p.Gray),
		wireframe.Line{Points: []wireframe.Point{{X: w/2 + 20, Y: 620}, {X: w - 40, Y: 620}}, Color: p.Gray, Width: 1},
		wireframe.T(w/2-60, 650, "Continue as:", p.Gray),
	)

	for i, role := range []string{"Student", "Faculty"} {
		x := 80 + float64(i)*140
		l.Add(
			wireframe.RoundRect{Box: wireframe.B(x, 680, x+100, 715), Radius: 8, Style: wireframe.Outlined(p.Green, 2)},
			wireframe.T(x+25, 690, role, p.Green),
		)
	}
	return l
}
