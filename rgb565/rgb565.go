package rgb565

import "image/color"

// Color is a packed RGB565 value (5 bits red, 6 bits green, 5 bits blue).
// It is transmitted to the controller big-endian, high byte first.
type Color uint16

// New packs an 8-bit-per-channel RGB color into RGB565.
func New(r, g, b uint8) Color {
	return Color(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// RGBA converts the Color to standard 16-bit-per-channel RGBA.
// The short bit patterns are replicated to fill all 16 bits, so both the
// minimum (all zeros) and maximum (all ones) channel values map exactly.
func (c Color) RGBA() (r, g, b, a uint32) {
	rBits := uint32(c & 0xF800) // RRRRR00000000000
	gBits := uint32(c & 0x07E0) // 00000GGGGGG00000
	bBits := uint32(c & 0x001F) // 00000000000BBBBB
	r = rBits | rBits>>5 | rBits>>10 | rBits>>15
	g = gBits<<5 | gBits>>1 | gBits>>7
	b = bBits<<11 | bBits<<6 | bBits<<1 | bBits>>4
	a = 0xFFFF
	return
}

// toColor converts any color.Color to Color.
func toColor(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color(r&0xF800 | (g&0xFC00)>>5 | (b&0xF800)>>11)
}

// Model converts colors to Color.
var Model = color.ModelFunc(toColor)

// Classic TFT palette.
const (
	Black  Color = 0x0000
	White  Color = 0xFFFF
	Gray   Color = 0x8410
	Red    Color = 0xF800
	Maroon Color = 0x8000
	Green  Color = 0x07E0
	Forest Color = 0x0400
	Yellow Color = 0xFFE0
	Cyan   Color = 0x07FF
	Blue   Color = 0x001F
	Navy   Color = 0x0010
	Purple Color = 0xF81F
)
