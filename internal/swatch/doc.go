// Package swatch holds the working color of a swatch session and the
// ordered list of colors the user saved from it.
//
// A State is owned by a single caller (the TUI model or one CLI command)
// and is not safe for concurrent use. Every mutation validates its input
// before touching the state, so a failed call leaves the State unchanged.
//
//	s := swatch.New(color.Color{R: 255, G: 0, B: 0})
//	s.Save()
//	_ = s.SetChannelByName("g", "255")
//	s.Save()
//	_ = s.Remove(0)
//	s.Saved() // [{255 255 0 #ffff00 Yellow}]
package swatch
