package color

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  uint8
	}{
		{"in range int", 128, 128},
		{"zero", 0, 0},
		{"upper bound", 255, 255},
		{"above range", 300, 255},
		{"below range", -5, 0},
		{"fraction truncated", 12.9, 12},
		{"negative fraction", -0.5, 0},
		{"fraction above range", 255.7, 255},
		{"positive infinity", math.Inf(1), 255},
		{"negative infinity", math.Inf(-1), 0},
		{"numeric string", "42", 42},
		{"padded string", "  42 ", 42},
		{"fractional string", "99.99", 99},
		{"large string", "1000", 255},
		{"exponent string", "1e1", 10},
		{"empty string", "", 0},
		{"blank string", "   ", 0},
		{"nil", nil, 0},
		{"uint8", uint8(7), 7},
		{"int64", int64(-1), 0},
		{"json number", json.Number("64"), 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clamp(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClamp_InvalidInput(t *testing.T) {
	inputs := []any{"abc", "12px", "#ff", math.NaN(), struct{}{}, []int{1}}

	for _, in := range inputs {
		got, err := Clamp(in)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %v", in)
		assert.Equal(t, uint8(0), got)
	}
}

func TestClamp_Idempotent(t *testing.T) {
	inputs := []any{-1000, -1, 0, 1, 127.5, 254.999, 255, 256, 1e9, "17", "-3"}

	for _, in := range inputs {
		once, err := Clamp(in)
		require.NoError(t, err)
		twice, err := Clamp(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %v", in)
	}
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, uint8(0), ClampInt(-20))
	assert.Equal(t, uint8(0), ClampInt(0))
	assert.Equal(t, uint8(200), ClampInt(200))
	assert.Equal(t, uint8(255), ClampInt(255))
	assert.Equal(t, uint8(255), ClampInt(4096))
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in   string
		want Channel
	}{
		{"r", ChannelR},
		{"G", ChannelG},
		{" b ", ChannelB},
		{"red", ChannelR},
		{"Blue", ChannelB},
	}
	for _, tt := range tests {
		got, err := ParseChannel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseChannel("a")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestChannel_String(t *testing.T) {
	assert.Equal(t, "r", ChannelR.String())
	assert.Equal(t, "G", ChannelG.Label())
	assert.Equal(t, "b", ChannelB.String())
	assert.Equal(t, "unknown", Channel(7).String())
}

func TestColor_With(t *testing.T) {
	base := Color{R: 10, G: 20, B: 30}

	changed := base.With(ChannelG, 200)

	assert.Equal(t, Color{R: 10, G: 200, B: 30}, changed)
	assert.Equal(t, Color{R: 10, G: 20, B: 30}, base, "original must not change")
	assert.Equal(t, uint8(200), changed.Get(ChannelG))
	assert.Equal(t, uint8(10), changed.Get(ChannelR))
	assert.Equal(t, uint8(30), changed.Get(ChannelB))
}

func TestRGB(t *testing.T) {
	assert.Equal(t, Color{R: 0, G: 128, B: 255}, RGB(-4, 128, 999))
	assert.Equal(t, "rgb(0, 128, 255)", RGB(-4, 128, 999).RGBString())
}
