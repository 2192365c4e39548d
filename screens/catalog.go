// Package screens builds the wireframe layouts of the UniTrack app:
// the phone chrome shared by every screen, and one builder per screen.
// Builders are pure: they only depend on the palette they are given.
package screens

import (
	"errors"
	"fmt"
	"sort"

	"github.com/unitrack/mockups/wireframe"
)

// Builder returns the layout of one screen.
type Builder func(Palette) *wireframe.Layout

// Screen is one entry of the catalog.
type Screen struct {
	Seq   int    // position in the output, starting at 1
	Slug  string // file name stem
	Title string
	Build Builder
}

// Catalog returns the screens, in output order.
func Catalog() []Screen {
	return []Screen{
		{1, "login_screen", "Login", Login},
		{2, "staff_dashboard", "Staff Dashboard", StaffDashboard},
		{3, "student_directory", "Student Directory", StudentDirectory},
		{4, "live_map", "Live Map", LiveMap},
		{5, "navigation", "Navigation", Navigation},
		{6, "privacy_settings", "Privacy Settings", PrivacySettings},
		{7, "admin_dashboard", "Admin Dashboard", AdminDashboard},
	}
}

// Lookup returns the screen with the given slug.
func Lookup(slug string) (Screen, bool) {
	for _, s := range Catalog() {
		if s.Slug == slug {
			return s, true
		}
	}
	return Screen{}, false
}

// Stacks returns the row stacks used by the list screens.
func Stacks() map[string]wireframe.Stack {
	return map[string]wireframe.Stack{
		"directory cards":   directoryCards,
		"privacy rows":      privacyRows,
		"status buttons":    statusButtons,
		"admin departments": departmentRows,
	}
}

// ValidateStacks returns an error naming every stack whose blocks overlap.
func ValidateStacks() error {
	stacks := Stacks()
	names := make([]string, 0, len(stacks))
	for name := range stacks {
		names = append(names, name)
	}
	sort.Strings(names)
	var errs []error
	for _, name := range names {
		if err := stacks[name].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
