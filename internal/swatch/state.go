package swatch

import (
	"errors"
	"fmt"

	"swatchctl/internal/color"
)

// ErrOutOfRange is returned by Remove when the index does not address a
// saved color.
var ErrOutOfRange = errors.New("index out of range")

// DefaultColor is the working color of a fresh session.
var DefaultColor = color.Color{R: 128, G: 128, B: 128}

// Display is the set of values derived from the working color.
type Display struct {
	R          uint8  `yaml:"r" json:"r"`
	G          uint8  `yaml:"g" json:"g"`
	B          uint8  `yaml:"b" json:"b"`
	Hex        string `yaml:"hex" json:"hex"`
	Hue        int    `yaml:"hue" json:"hue"`
	Saturation int    `yaml:"saturation" json:"saturation"`
	Lightness  int    `yaml:"lightness" json:"lightness"`
	Name       string `yaml:"name" json:"name"`
}

// Color returns the RGB triple of the display.
func (d Display) Color() color.Color {
	return color.Color{R: d.R, G: d.G, B: d.B}
}

// HSL returns the HSL triple of the display.
func (d Display) HSL() color.HSL {
	return color.HSL{Hue: d.Hue, Saturation: d.Saturation, Lightness: d.Lightness}
}

// Describe derives every display value of c.
func Describe(c color.Color) Display {
	hsl := c.HSL()
	return Display{
		R:          c.R,
		G:          c.G,
		B:          c.B,
		Hex:        c.Hex(),
		Hue:        hsl.Hue,
		Saturation: hsl.Saturation,
		Lightness:  hsl.Lightness,
		Name:       color.Classify(c),
	}
}

// SavedColor is a snapshot of a color and the hex and name it had when it
// was saved. It is never recomputed.
type SavedColor struct {
	R    uint8  `yaml:"r" json:"r"`
	G    uint8  `yaml:"g" json:"g"`
	B    uint8  `yaml:"b" json:"b"`
	Hex  string `yaml:"hex" json:"hex"`
	Name string `yaml:"name" json:"name"`
}

// Color returns the RGB triple of the snapshot.
func (s SavedColor) Color() color.Color {
	return color.Color{R: s.R, G: s.G, B: s.B}
}

// State owns the working color and the saved colors.
type State struct {
	current color.Color
	saved   []SavedColor
}

// New returns a State with the given working color and no saved colors.
func New(initial color.Color) *State {
	return &State{current: initial}
}

// Color returns the working color.
func (s *State) Color() color.Color {
	return s.current
}

// SetColor replaces the whole working color.
func (s *State) SetColor(c color.Color) {
	s.current = c
}

// SetChannel clamps raw and stores it in one channel of the working color.
// Out-of-range numbers are clamped; only non-numeric input is an error.
func (s *State) SetChannel(ch color.Channel, raw any) error {
	v, err := color.Clamp(raw)
	if err != nil {
		return fmt.Errorf("set channel %s: %w", ch, err)
	}
	s.current = s.current.With(ch, v)
	return nil
}

// SetChannelByName is SetChannel addressed by "r", "g" or "b".
func (s *State) SetChannelByName(name string, raw any) error {
	ch, err := color.ParseChannel(name)
	if err != nil {
		return err
	}
	return s.SetChannel(ch, raw)
}

// Adjust moves one channel by delta, clamping at the bounds.
func (s *State) Adjust(ch color.Channel, delta int) {
	v := int(s.current.Get(ch)) + delta
	s.current = s.current.With(ch, color.ClampInt(v))
}

// Display derives the hex, HSL and name of the working color. Nothing is
// cached; each call reflects the current color.
func (s *State) Display() Display {
	return Describe(s.current)
}

// Save appends a snapshot of the working color and returns it.
func (s *State) Save() SavedColor {
	d := s.Display()
	sc := SavedColor{R: d.R, G: d.G, B: d.B, Hex: d.Hex, Name: d.Name}
	s.saved = append(s.saved, sc)
	return sc
}

// Remove deletes the saved color at index, keeping the order of the rest.
func (s *State) Remove(index int) error {
	if index < 0 || index >= len(s.saved) {
		return fmt.Errorf("remove saved color %d of %d: %w", index, len(s.saved), ErrOutOfRange)
	}
	s.saved = append(s.saved[:index:index], s.saved[index+1:]...)
	return nil
}

// Saved returns a copy of the saved colors in order.
func (s *State) Saved() []SavedColor {
	out := make([]SavedColor, len(s.saved))
	copy(out, s.saved)
	return out
}

// Len returns the number of saved colors.
func (s *State) Len() int {
	return len(s.saved)
}
