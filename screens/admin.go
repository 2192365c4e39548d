package screens

import "github.com/unitrack/mockups/wireframe"

// departmentRows stacks the department lines of the admin dashboard.
var departmentRows = wireframe.Stack{Start: 450, RowHeight: 40, BlockHeight: 20}

var departments = []struct{ name, online string }{
	{"IT Department", "12 online"},
	{"CS Department", "8 online"},
	{"Math Department", "5 online"},
}

var activity = []struct {
	hour  string
	value float64
}{
	{"9AM", 30}, {"12PM", 80}, {"3PM", 50}, {"Now", 65},
}

// AdminDashboard draws the usage overview for administrators.
func AdminDashboard(p Palette) *wireframe.Layout {
	l := newScreen("admin_dashboard", p.LightGray, p)
	w := float64(l.Width)

	header(l, p.DarkBlue, title(40, 85, "UniTrack Admin", p.White))

	stats := []struct {
		label, value string
		color        wireframe.Color
	}{
		{"Faculty Online", "24", p.Green},
		{"Students Active", "156", p.DarkBlue},
	}
	cardWidth := float64(int(w-60) / 2)
	for i, s := range stats {
		x := 40 + float64(i)*(cardWidth+10)
		card(l, wireframe.B(x, 145, x+cardWidth, 220), 12, p)
		l.Add(
			wireframe.Text{At: wireframe.Point{X: x + 20, Y: 158}, Content: s.value, Color: s.color, Size: 20, Bold: true},
			wireframe.T(x+20, 190, s.label, p.Gray),
		)
	}

	// bar chart
	card(l, wireframe.B(40, 240, w-40, 380), 12, p)
	labeled(l, "chart", 60, 255, "Today's Activity", p.Black)
	const barWidth, baseline = 50, 360
	for i, a := range activity {
		x := 70 + float64(i)*75
		l.Add(
			wireframe.Rect{Box: wireframe.B(x, baseline-a.value, x+barWidth, baseline), Style: wireframe.Filled(p.Green)},
			small(x+15, baseline+2, a.hour, p.Gray),
		)
	}

	card(l, wireframe.B(40, 400, w-40, 580), 12, p)
	labeled(l, "clipboard", 60, 415, "Departments", p.Black)
	for i, d := range departments {
		y := departmentRows.Y(i)
		l.Add(
			wireframe.T(60, y, d.name, p.Black),
			wireframe.T(w-120, y, d.online, p.Green),
		)
	}

	// quick actions
	card(l, wireframe.B(40, 600, w-40, 680), 12, p)
	l.Add(wireframe.T(60, 615, "Quick Actions", p.Black))
	actions := []struct{ icon, label string }{
		{"", "+ Add User"},
		{"chart", "Reports"},
		{"settings", "Settings"},
	}
	for i, a := range actions {
		x := 60 + float64(i)*100
		l.Add(wireframe.RoundRect{Box: wireframe.B(x, 640, x+90, 670), Radius: 8, Style: wireframe.Filled(p.LightBlue)})
		if a.icon == "" {
			l.Add(small(x+10, 648, a.label, p.DarkBlue))
			continue
		}
		glyph(l, a.icon, wireframe.B(x+8, 649, x+20, 661), p.DarkBlue)
		l.Add(small(x+24, 648, a.label, p.DarkBlue))
	}

	BottomNav(l, p, 0)
	return l
}
