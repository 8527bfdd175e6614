package color

import "math"

// NamedColor is a labeled entry of the reference palette.
type NamedColor struct {
	Name  string `yaml:"name" json:"name"`
	Color Color  `yaml:"color" json:"color"`
}

// ReferencePalette is the fixed table Classify picks names from. Entries
// are scanned in this order and the first one wins a tie, so the order
// must not change.
var ReferencePalette = []NamedColor{
	{Name: "Black", Color: Color{0, 0, 0}},
	{Name: "White", Color: Color{255, 255, 255}},
	{Name: "Red", Color: Color{255, 0, 0}},
	{Name: "Rose", Color: Color{255, 0, 127}},
	{Name: "Magenta", Color: Color{255, 0, 255}},
	{Name: "Violet", Color: Color{127, 0, 255}},
	{Name: "Blue", Color: Color{0, 0, 255}},
	{Name: "Azure", Color: Color{0, 127, 255}},
	{Name: "Cyan", Color: Color{0, 255, 255}},
	{Name: "Spring Green", Color: Color{0, 255, 127}},
	{Name: "Green", Color: Color{0, 255, 0}},
	{Name: "Chartreuse Green", Color: Color{127, 255, 0}},
	{Name: "Yellow", Color: Color{255, 255, 0}},
	{Name: "Orange", Color: Color{255, 127, 0}},
}

// Palette returns a copy of ReferencePalette.
func Palette() []NamedColor {
	out := make([]NamedColor, len(ReferencePalette))
	copy(out, ReferencePalette)
	return out
}

// Distance is the Euclidean distance between two colors in RGB space.
func Distance(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Nearest returns the palette entry closest to c and its distance.
func Nearest(c Color) (NamedColor, float64) {
	closest := ReferencePalette[0]
	minDistance := math.Inf(1)

	for _, entry := range ReferencePalette {
		// strict: an equidistant later entry never replaces an earlier one
		if d := Distance(c, entry.Color); d < minDistance {
			minDistance = d
			closest = entry
		}
	}
	return closest, minDistance
}

// Classify returns the name of the palette entry closest to c.
func Classify(c Color) string {
	nc, _ := Nearest(c)
	return nc.Name
}
