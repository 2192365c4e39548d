package screens

import "github.com/unitrack/mockups/wireframe"

// directoryCards stacks the faculty cards of the student directory.
var directoryCards = wireframe.Stack{Start: 245, RowHeight: 90, BlockHeight: 80}

type faculty struct {
	name, department string
	status           Status
}

var directoryEntries = []faculty{
	{"Dr. Santos", "IT Department", Available},
	{"Prof. Garcia", "CS Department", InClass},
	{"Dr. Reyes", "IT Department", Available},
	{"Prof. Cruz", "Math Dept", Meeting},
}

var directoryTabs = []string{"All", "Available", "Department"}

// selectedTab is the highlighted filter of the directory.
const selectedTab = 1

// StudentDirectory draws the faculty search screen.
func StudentDirectory(p Palette) *wireframe.Layout {
	l := newScreen("student_directory", p.LightGray, p)
	w := float64(l.Width)

	header(l, p.Green, title(40, 80, "UniTrack - Find Faculty", p.White))

	card(l, wireframe.B(40, 145, w-40, 185), 10, p)
	labeled(l, "search", 60, 158, "Search faculty...", p.Gray)

	tabWidth := float64(int(w-80) / len(directoryTabs))
	for i, tab := range directoryTabs {
		x := 40 + float64(i)*tabWidth
		box := wireframe.B(x, 195, x+tabWidth-5, 225)
		if i == selectedTab {
			l.Add(
				wireframe.RoundRect{Box: box, Radius: 8, Style: wireframe.Filled(p.Green)},
				wireframe.T(x+15, 202, tab, p.White),
			)
		} else {
			l.Add(
				wireframe.RoundRect{Box: box, Radius: 8, Style: wireframe.Outlined(p.Green, 2)},
				wireframe.T(x+15, 202, tab, p.Green),
			)
		}
	}

	for i, f := range directoryEntries {
		box := directoryCards.Block(i, 40, w-40)
		y := box.Y0
		card(l, box, 12, p)
		l.Add(
			wireframe.Ellipse{Box: wireframe.B(55, y+15, 100, y+60), Style: wireframe.FilledOutlined(p.LightBlue, p.DarkBlue, 2)},
			wireframe.T(115, y+15, f.name, p.Black),
			wireframe.T(115, y+40, f.department, p.Gray),
			wireframe.RoundRect{Box: wireframe.B(w-130, y+25, w-55, y+50), Radius: 10, Style: wireframe.Filled(p.Status(f.status))},
			small(w-124, y+31, f.status.String(), p.White),
			wireframe.Text{At: wireframe.Point{X: w - 50, Y: y + 29}, Content: "→", Color: p.DarkBlue, Bold: true},
		)
	}

	BottomNav(l, p, 0)
	return l
}
