package galaxy

import (
	"fmt"
	"sort"
	"strings"
)

// SortOrder is the direction ornaments are depth-sorted in before drawing.
type SortOrder int

const (
	// ZDescending paints the largest rotated z (farthest) first.
	ZDescending SortOrder = iota
	// ZAscending paints the smallest rotated z first.
	ZAscending
)

func (o SortOrder) String() string {
	if o == ZAscending {
		return "ascending"
	}
	return "descending"
}

// Profile is one presentation variant of the galaxy. Profiles are independent
// presets; none of them is the reference the others deviate from.
type Profile struct {
	Name string

	Ornaments int
	Stars     int
	StarSpeed float64

	Sort  SortOrder
	Glass *GlassStyle

	Palette Palette

	// Damping is the fraction of the remaining distance the rotation covers per frame.
	Damping float64
	// FieldOfView is the perspective constant for ornaments.
	FieldOfView float64
	// MobileBreakpoint is the width below which the galaxy is centered instead of
	// pushed to the right.
	MobileBreakpoint float64
}

// DefaultGlass is the frosted panel attached by the Glass profile.
var DefaultGlass = GlassStyle{
	Coverage:  0.65,
	FadeStart: 0.55,
	Blur:      10,
	Tint:      Tint{Color: mustHex("#030712"), Alpha: 0.35},
}

// Hero has a drifting starfield and sorts by ascending z.
var Hero = Profile{
	Name:             "hero",
	Ornaments:        40,
	Stars:            150,
	StarSpeed:        2,
	Sort:             ZAscending,
	Palette:          DefaultPalette,
	Damping:          0.05,
	FieldOfView:      400,
	MobileBreakpoint: 768,
}

// Glass has no starfield, paints strictly back to front and frosts the text side.
var Glass = Profile{
	Name:             "glass",
	Ornaments:        40,
	Sort:             ZDescending,
	Glass:            &DefaultGlass,
	Palette:          DefaultPalette,
	Damping:          0.05,
	FieldOfView:      400,
	MobileBreakpoint: 768,
}

var profiles = map[string]Profile{
	Hero.Name:  Hero,
	Glass.Name: Glass,
}

// ProfileNames lists the preset names in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProfileByName returns the preset called name.
func ProfileByName(name string) (Profile, error) {
	p, ok := profiles[strings.ToLower(name)]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (want one of %s)", name, strings.Join(ProfileNames(), ", "))
	}
	return p, nil
}
