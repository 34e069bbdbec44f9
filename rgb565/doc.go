// Package rgb565 provides the 16-bit RGB565 color format used by the ST7735
// display controller.
//
// Each pixel is two bytes with 5 bits of red, 6 bits of green and 5 bits of
// blue, transmitted big-endian:
//
//	bit 15        8  7         0
//	    RRRRRGGG     GGGBBBBB
//	    high byte    low byte
//
// This package provides:
//
// - Color: a color type holding a packed RGB565 value
// - Model: a color model for converting standard Go colors to Color
// - Named constants for the classic TFT palette (Black, White, Red, ...)
//
// Example usage:
//
//	// Pack an 8-bit-per-channel color
//	orange := rgb565.New(255, 165, 0)
//
//	// Use a named color
//	bg := rgb565.Navy
//
//	// Convert from a standard Go color
//	c := rgb565.Model.Convert(color.RGBA{R: 0x40, G: 0x80, B: 0xC0, A: 0xFF})
package rgb565
