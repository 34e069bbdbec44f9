package st7735

import (
	"periph.io/x/devices/v3/st7735/bitfont"
	"periph.io/x/devices/v3/st7735/rgb565"
)

// TextOpts configures DrawText. The zero value selects the built-in 8x8
// font at 1:1 scale.
type TextOpts struct {
	Font           *bitfont.Font // nil for bitfont.Default
	ScaleX, ScaleY int           // values below 1 are treated as 1
}

// DrawText renders text starting at (x, y). Runes outside the font's range
// are skipped silently but still advance the cursor by one cell. Text wraps
// to a new line, one blank pixel row below the current one, when the next
// glyph would cross the right edge; rendering stops silently once a new line
// would start below the display.
//
// opts can be nil to use defaults.
func (d *Dev) DrawText(x, y int, text string, c rgb565.Color, opts *TextOpts) error {
	if d.halted {
		return errHalted
	}
	f := bitfont.Default
	sx, sy := 1, 1
	if opts != nil {
		if opts.Font != nil {
			f = opts.Font
		}
		if opts.ScaleX > 1 {
			sx = opts.ScaleX
		}
		if opts.ScaleY > 1 {
			sy = opts.ScaleY
		}
	}

	px := x
	adv := f.Width * sx
	lineH := f.Height*sy + 1 // keep lines separated by one pixel row
	for _, r := range text {
		if err := d.drawChar(px, y, r, c, f, sx, sy); err != nil {
			return err
		}
		px += adv
		if px+adv > d.w {
			y += lineH
			if y > d.h {
				break
			}
			px = x
		}
	}
	return nil
}

// drawChar renders one glyph cell at (x, y). At 1:1 scale each lit bit is a
// single pixel write; at larger scales each lit bit becomes one sx x sy
// block fill (one window per lit source pixel, not per glyph).
func (d *Dev) drawChar(x, y int, r rune, c rgb565.Color, f *bitfont.Font, sx, sy int) error {
	cols, ok := f.Glyph(r)
	if !ok {
		return nil
	}

	if sx <= 1 && sy <= 1 {
		for i, col := range cols {
			for j := 0; j < f.Height; j++ {
				if col&1 != 0 {
					if err := d.pixel(x+i, y+j, c); err != nil {
						return err
					}
				}
				col >>= 1
			}
		}
		return nil
	}

	n := sx * sy
	for i, col := range cols {
		bx := x + i*sx
		by := y
		for j := 0; j < f.Height; j++ {
			if col&1 != 0 {
				if err := d.setWindow(bx, by, bx+sx-1, by+sy-1); err != nil {
					return err
				}
				if err := d.stream(c, n); err != nil {
					return err
				}
			}
			by += sy
			col >>= 1
		}
	}
	return nil
}
