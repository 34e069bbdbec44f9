// Package bitfont describes the fixed-cell bitmap fonts rendered by the
// ST7735 text renderer.
//
// A Font stores its glyphs column-major: one byte per pixel column, with bit
// 0 as the topmost row. Glyphs are laid out consecutively for the covered
// codepoint range, Width bytes per glyph. The built-in Default font is an
// 8x8 ASCII font covering codepoints 32 to 127.
package bitfont

// Font is a fixed-cell bitmap font descriptor.
type Font struct {
	Width  int  // glyph cell width in pixels (bytes per glyph)
	Height int  // glyph cell height in pixels (must be <= 8)
	Start  rune // first covered codepoint, inclusive
	End    rune // last covered codepoint, inclusive
	// Bitmap holds the glyph columns, Width bytes per glyph, one byte per
	// column, bit 0 = top row.
	Bitmap []byte
}

// Glyph returns the column bytes for r. ok is false when r is outside the
// covered range; callers are expected to skip such runes silently.
func (f *Font) Glyph(r rune) (cols []byte, ok bool) {
	if r < f.Start || r > f.End {
		return nil, false
	}
	off := int(r-f.Start) * f.Width
	return f.Bitmap[off : off+f.Width], true
}

// Default is the built-in 8x8 font.
var Default = &Font{
	Width:  8,
	Height: 8,
	Start:  32,
	End:    127,
	Bitmap: font8x8[:],
}
