package color

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ErrInvalidInput is returned when a value cannot be interpreted as a
// channel, a channel name or a hex color.
var ErrInvalidInput = errors.New("invalid input")

// MaxChannel is the largest value a channel can hold.
const MaxChannel = 255

// Channel identifies one of the three components of a Color.
type Channel int

const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
)

// Channels lists the channels in display order.
var Channels = []Channel{ChannelR, ChannelG, ChannelB}

// String returns the short channel id used at the UI boundary.
func (ch Channel) String() string {
	switch ch {
	case ChannelR:
		return "r"
	case ChannelG:
		return "g"
	case ChannelB:
		return "b"
	default:
		return "unknown"
	}
}

// Label returns the upper-case label shown next to a channel input.
func (ch Channel) Label() string {
	return strings.ToUpper(ch.String())
}

// ParseChannel maps "r", "g" or "b" (any case) to a Channel.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "red":
		return ChannelR, nil
	case "g", "green":
		return ChannelG, nil
	case "b", "blue":
		return ChannelB, nil
	}
	return 0, fmt.Errorf("unknown channel %q: %w", s, ErrInvalidInput)
}

// Color is an RGB color with 8-bit channels. It is a value type: changing a
// channel produces a new Color.
type Color struct {
	R uint8 `yaml:"r" json:"r"`
	G uint8 `yaml:"g" json:"g"`
	B uint8 `yaml:"b" json:"b"`
}

// RGB builds a Color from integers, clamping each one into range.
func RGB(r, g, b int) Color {
	return Color{R: ClampInt(r), G: ClampInt(g), B: ClampInt(b)}
}

// Get returns the value of a single channel.
func (c Color) Get(ch Channel) uint8 {
	switch ch {
	case ChannelG:
		return c.G
	case ChannelB:
		return c.B
	default:
		return c.R
	}
}

// With returns a copy of c with one channel replaced.
func (c Color) With(ch Channel, v uint8) Color {
	switch ch {
	case ChannelR:
		c.R = v
	case ChannelG:
		c.G = v
	case ChannelB:
		c.B = v
	}
	return c
}

// RGBString renders the color as "rgb(r, g, b)".
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ClampInt clamps an integer into [0,255].
func ClampInt(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > MaxChannel {
		return MaxChannel
	}
	return uint8(v)
}

// Clamp converts a raw channel value to a number and clamps it into
// [0,255], truncating any fractional part. Empty strings and nil count as
// 0. Values that are not numeric, and NaN, return ErrInvalidInput.
func Clamp(v any) (uint8, error) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		v = s
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("channel value %v: %w", v, ErrInvalidInput)
	}
	if math.IsNaN(f) {
		return 0, fmt.Errorf("channel value is NaN: %w", ErrInvalidInput)
	}

	switch {
	case f <= 0:
		return 0, nil
	case f >= MaxChannel:
		return MaxChannel, nil
	}
	return uint8(math.Trunc(f)), nil
}
