// Package catalog holds the fixed prompt examples and style set used to
// populate the studio form and drive random suggestions.
package catalog

import "errors"

// Style identifies one of the fixed aesthetic categories applied to
// generation. The set never changes at runtime.
type Style string

const (
	StyleModern    Style = "modern"
	StyleAbstract  Style = "abstract"
	StyleNature    Style = "nature"
	StyleMinimal   Style = "minimal"
	StyleArtistic  Style = "artistic"
	StyleGeometric Style = "geometric"
	StyleGradient  Style = "gradient"
	StyleNeon      Style = "neon"
)

var ErrUnknownStyle = errors.New("unknown style")

// styles preserves presentation order; descriptions are keyed off it.
var styles = []Style{
	StyleModern,
	StyleAbstract,
	StyleNature,
	StyleMinimal,
	StyleArtistic,
	StyleGeometric,
	StyleGradient,
	StyleNeon,
}

var descriptions = map[Style]string{
	StyleModern:    "Clean contemporary looks with bold shapes and colors",
	StyleAbstract:  "Freeform compositions of color, texture and motion",
	StyleNature:    "Landscapes, skies, plants and other natural scenery",
	StyleMinimal:   "Sparse layouts, soft palettes and plenty of negative space",
	StyleArtistic:  "Painterly renderings with visible brushwork and texture",
	StyleGeometric: "Patterns built from lines, polygons and symmetry",
	StyleGradient:  "Smooth color blends flowing across the screen",
	StyleNeon:      "Glowing accents and vivid light on dark backgrounds",
}

// Example pairs a ready-made prompt with the style it was written for.
type Example struct {
	Prompt      string
	Style       Style
	Description string
}

var Examples = []Example{
	{"Sunset over mountains with purple clouds", StyleNature, "Warm alpenglow fading into dusk"},
	{"Misty forest at dawn with rays of light", StyleNature, "Quiet woodland atmosphere"},
	{"Flowing liquid metal in deep blues", StyleAbstract, "Fluid metallic swirls"},
	{"Skyline of glass towers at golden hour", StyleModern, "Contemporary city mood"},
	{"Single white line on charcoal background", StyleMinimal, "One stroke, nothing else"},
	{"Watercolor koi pond with floating petals", StyleArtistic, "Soft painted scene"},
	{"Interlocking triangles in muted pastels", StyleGeometric, "Tessellated pattern"},
	{"Peach to indigo sky blend", StyleGradient, "Smooth twilight gradient"},
	{"Neon jellyfish drifting through dark water", StyleNeon, "Bioluminescent glow"},
	{"Rain-slicked street reflecting pink signs", StyleNeon, "Cyberpunk alley at night"},
}

// Describe returns the fixed description for a known style.
func Describe(s Style) (string, error) {
	d, ok := descriptions[s]
	if !ok {
		return "", ErrUnknownStyle
	}
	return d, nil
}

func IsValid(s Style) bool {
	_, ok := descriptions[s]
	return ok
}

// All returns the styles in presentation order.
func All() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}
