package swatch

import (
	"testing"

	"swatchctl/internal/color"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New(DefaultColor)

	assert.Equal(t, color.Color{R: 128, G: 128, B: 128}, s.Color())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Saved())
}

func TestSetChannel(t *testing.T) {
	tests := []struct {
		name string
		ch   color.Channel
		raw  any
		want color.Color
	}{
		{"red in range", color.ChannelR, 255, color.Color{R: 255, G: 128, B: 128}},
		{"green clamped high", color.ChannelG, 999, color.Color{R: 128, G: 255, B: 128}},
		{"blue clamped low", color.ChannelB, -20, color.Color{R: 128, G: 128, B: 0}},
		{"string value", color.ChannelR, "17", color.Color{R: 17, G: 128, B: 128}},
		{"empty string", color.ChannelG, "", color.Color{R: 128, G: 0, B: 128}},
		{"fraction", color.ChannelB, 63.8, color.Color{R: 128, G: 128, B: 63}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(DefaultColor)
			require.NoError(t, s.SetChannel(tt.ch, tt.raw))
			assert.Equal(t, tt.want, s.Color())
		})
	}
}

func TestSetChannel_InvalidInputLeavesStateUnchanged(t *testing.T) {
	s := New(color.Color{R: 1, G: 2, B: 3})

	err := s.SetChannel(color.ChannelG, "twelve")

	assert.ErrorIs(t, err, color.ErrInvalidInput)
	assert.Equal(t, color.Color{R: 1, G: 2, B: 3}, s.Color())
}

func TestSetChannelByName(t *testing.T) {
	s := New(DefaultColor)

	require.NoError(t, s.SetChannelByName("r", 255))
	require.NoError(t, s.SetChannelByName("g", "127"))
	require.NoError(t, s.SetChannelByName("B", 0))
	assert.Equal(t, color.Color{R: 255, G: 127, B: 0}, s.Color())

	err := s.SetChannelByName("alpha", 10)
	assert.ErrorIs(t, err, color.ErrInvalidInput)
	assert.Equal(t, color.Color{R: 255, G: 127, B: 0}, s.Color())
}

func TestSetChannel_DoesNotAliasPreviousColor(t *testing.T) {
	s := New(DefaultColor)
	before := s.Color()

	require.NoError(t, s.SetChannel(color.ChannelR, 0))

	assert.Equal(t, DefaultColor, before)
	assert.NotEqual(t, before, s.Color())
}

func TestAdjust(t *testing.T) {
	s := New(color.Color{R: 250, G: 5, B: 100})

	s.Adjust(color.ChannelR, 16)
	s.Adjust(color.ChannelG, -16)
	s.Adjust(color.ChannelB, 1)

	assert.Equal(t, color.Color{R: 255, G: 0, B: 101}, s.Color())
}

func TestDisplay(t *testing.T) {
	s := New(color.Color{R: 255, G: 127, B: 0})

	d := s.Display()

	assert.Equal(t, Display{
		R: 255, G: 127, B: 0,
		Hex:        "#ff7f00",
		Hue:        30,
		Saturation: 100,
		Lightness:  50,
		Name:       "Orange",
	}, d)
	assert.Equal(t, s.Color(), d.Color())
	assert.Equal(t, color.HSL{Hue: 30, Saturation: 100, Lightness: 50}, d.HSL())
}

func TestDisplay_MidGray(t *testing.T) {
	d := New(DefaultColor).Display()

	assert.Equal(t, "#808080", d.Hex)
	assert.Equal(t, color.HSL{Hue: 0, Saturation: 0, Lightness: 50}, d.HSL())
	assert.Equal(t, "Rose", d.Name)
}

func TestDisplay_FollowsWorkingColor(t *testing.T) {
	s := New(color.Color{})
	assert.Equal(t, "Black", s.Display().Name)

	s.SetColor(color.Color{R: 255, G: 255, B: 255})
	assert.Equal(t, "White", s.Display().Name)
	assert.Equal(t, "#ffffff", s.Display().Hex)

	require.NoError(t, s.SetChannel(color.ChannelG, 0))
	require.NoError(t, s.SetChannel(color.ChannelB, 0))
	assert.Equal(t, "Red", s.Display().Name)
	assert.Equal(t, 0, s.Display().Hue)
}

func TestSave(t *testing.T) {
	s := New(color.Color{R: 255, G: 127, B: 0})

	sc := s.Save()

	assert.Equal(t, SavedColor{R: 255, G: 127, B: 0, Hex: "#ff7f00", Name: "Orange"}, sc)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []SavedColor{sc}, s.Saved())
	assert.Equal(t, color.Color{R: 255, G: 127, B: 0}, sc.Color())
}

func TestSave_AllowsDuplicates(t *testing.T) {
	s := New(DefaultColor)

	s.Save()
	s.Save()

	require.Equal(t, 2, s.Len())
	assert.Equal(t, s.Saved()[0], s.Saved()[1])
}

func TestSave_SnapshotIgnoresLaterChanges(t *testing.T) {
	s := New(color.Color{R: 255})
	s.Save()

	require.NoError(t, s.SetChannel(color.ChannelB, 255))

	saved := s.Saved()
	require.Len(t, saved, 1)
	assert.Equal(t, SavedColor{R: 255, G: 0, B: 0, Hex: "#ff0000", Name: "Red"}, saved[0])
	assert.Equal(t, "Magenta", s.Display().Name)
}

func TestSaved_ReturnsCopy(t *testing.T) {
	s := New(DefaultColor)
	s.Save()

	view := s.Saved()
	view[0].Name = "Changed"

	assert.Equal(t, "Rose", s.Saved()[0].Name)
}

func TestRemove_SaveRedGreenRemoveFirst(t *testing.T) {
	s := New(color.Color{R: 255})
	s.Save()
	s.SetColor(color.Color{G: 255})
	s.Save()

	require.NoError(t, s.Remove(0))

	assert.Equal(t, []SavedColor{{R: 0, G: 255, B: 0, Hex: "#00ff00", Name: "Green"}}, s.Saved())
}

func TestRemove_PreservesOrder(t *testing.T) {
	s := New(color.Color{})
	for _, v := range []int{10, 20, 30, 40} {
		s.SetColor(color.RGB(v, 0, 0))
		s.Save()
	}

	require.NoError(t, s.Remove(1))

	var reds []uint8
	for _, sc := range s.Saved() {
		reds = append(reds, sc.R)
	}
	assert.Equal(t, []uint8{10, 30, 40}, reds)

	require.NoError(t, s.Remove(2))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, uint8(30), s.Saved()[1].R)
}

func TestRemove_OutOfRange(t *testing.T) {
	s := New(DefaultColor)
	s.Save()

	for _, idx := range []int{-1, 1, 42} {
		err := s.Remove(idx)
		assert.ErrorIs(t, err, ErrOutOfRange, "index %d", idx)
	}
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Remove(0))
	assert.ErrorIs(t, s.Remove(0), ErrOutOfRange)
	assert.Equal(t, 0, s.Len())
}

func TestDescribe(t *testing.T) {
	d := Describe(color.Color{R: 0, G: 0, B: 255})

	assert.Equal(t, "#0000ff", d.Hex)
	assert.Equal(t, 240, d.Hue)
	assert.Equal(t, "Blue", d.Name)
}
