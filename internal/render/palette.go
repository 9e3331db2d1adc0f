package render

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	// ErrPaletteExhausted indicates a winner index with no palette colour.
	ErrPaletteExhausted = errors.New("render: winner index exceeds palette size")

	// ErrUnknownPalette indicates a palette name that is not registered.
	ErrUnknownPalette = errors.New("render: unknown palette")
)

// Palette is an ordered list of candidate colours; candidate i gets Colors[i].
type Palette struct {
	Name   string
	Colors []color.RGBA
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// Available palettes
var (
	// ColorBrewer "Paired", 12 classes
	PalettePaired = Palette{
		Name: "paired",
		Colors: []color.RGBA{
			rgb(0xa6cee3), rgb(0x1f78b4), rgb(0xb2df8a), rgb(0x33a02c),
			rgb(0xfb9a99), rgb(0xe31a1c), rgb(0xfdbf6f), rgb(0xff7f00),
			rgb(0xcab2d6), rgb(0x6a3d9a), rgb(0xffff99), rgb(0xb15928),
		},
	}

	// ColorBrewer "Set3", 12 classes
	PaletteSet3 = Palette{
		Name: "set3",
		Colors: []color.RGBA{
			rgb(0x8dd3c7), rgb(0xffffb3), rgb(0xbebada), rgb(0xfb8072),
			rgb(0x80b1d3), rgb(0xfdb462), rgb(0xb3de69), rgb(0xfccde5),
			rgb(0xd9d9d9), rgb(0xbc80bd), rgb(0xccebc5), rgb(0xffed6f),
		},
	}

	Palettes = []Palette{
		PalettePaired,
		PaletteSet3,
	}
)

func (p Palette) Len() int { return len(p.Colors) }

// Color returns the colour of candidate i.
func (p Palette) Color(i int) (color.RGBA, error) {
	if i < 0 || i >= len(p.Colors) {
		return color.RGBA{}, fmt.Errorf("%w: index %d, palette %q has %d colours", ErrPaletteExhausted, i, p.Name, len(p.Colors))
	}
	return p.Colors[i], nil
}

// Hex returns the colour of candidate i as #rrggbb, or "" when out of range.
func (p Palette) Hex(i int) string {
	c, err := p.Color(i)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// GetPalette returns a palette by name.
func GetPalette(name string) (Palette, error) {
	for _, p := range Palettes {
		if p.Name == name {
			return p, nil
		}
	}
	return Palette{}, fmt.Errorf("%w: %s", ErrUnknownPalette, name)
}

// PaletteNames returns list of available palette names
func PaletteNames() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}
