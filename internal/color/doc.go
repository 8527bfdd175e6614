// Package color is the color model and classification engine of swatchctl.
//
// It holds the pure, side-effect free logic behind the swatch: clamping raw
// channel input, converting an RGB triple to its hexadecimal and HSL
// representations, and naming a color after the closest entry of a fixed
// reference palette.
//
// # Channels
//
// A Color is a value type with three 8-bit channels. Raw input from a UI or
// a command line goes through Clamp, which coerces the value to a number and
// clamps it into [0,255]:
//
//	v, err := color.Clamp("300") // 255, nil
//	v, err = color.Clamp("12.9") // 12, nil
//	v, err = color.Clamp("abc")  // 0, ErrInvalidInput
//
// # Conversions
//
//	c := color.Color{R: 255, G: 127, B: 0}
//	c.Hex()        // "#ff7f00"
//	c.HSL()        // {30 100 50}
//	color.Classify(c) // "Orange"
//
// # Classification
//
// Classify measures the Euclidean distance in RGB space to every entry of
// ReferencePalette, in declaration order, and keeps the first strictly
// smaller one. When several entries are equidistant the one declared first
// wins, so the palette order is part of the result.
//
// # Thread Safety
//
// Every function in this package is stateless and safe for concurrent use.
package color
