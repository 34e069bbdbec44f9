package st7735

import (
	"math"

	"periph.io/x/devices/v3/st7735/rgb565"
)

// All drawing primitives take logical (post-rotation) coordinates and clamp
// them into the display bounds before any hardware window is programmed.
// Out-of-bounds requests are clipped or dropped silently, never reported as
// errors; only transport faults surface.

func clamp(lo, hi, v int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// pixel plots a single pixel without the halted check, for reuse by the
// compound primitives.
func (d *Dev) pixel(x, y int, c rgb565.Color) error {
	if x < 0 || x >= d.w || y < 0 || y >= d.h {
		return nil
	}
	if err := d.setWindow(x, y, x, y); err != nil {
		return err
	}
	return d.stream(c, 1)
}

// Pixel sets the pixel at (x, y). Out-of-bounds coordinates are ignored.
func (d *Dev) Pixel(x, y int, c rgb565.Color) error {
	if d.halted {
		return errHalted
	}
	return d.pixel(x, y, c)
}

// HLine draws a horizontal line of l pixels starting at (x, y). A negative
// length draws leftward. The run is clipped to the display; a partially
// clipped line streams only its visible pixels.
func (d *Dev) HLine(x, y, l int, c rgb565.Color) error {
	if d.halted {
		return errHalted
	}
	if l == 0 {
		return nil
	}
	ex := x + l - 1
	if l < 0 {
		ex = x + l + 1
	}
	if ex < x {
		x, ex = ex, x
	}
	x = clamp(0, d.w-1, x)
	ex = clamp(0, d.w-1, ex)
	y = clamp(0, d.h-1, y)
	if err := d.setWindow(x, y, ex, y); err != nil {
		return err
	}
	return d.stream(c, ex-x+1)
}

// VLine draws a vertical line of l pixels starting at (x, y). A negative
// length draws upward. The run is clipped to the display.
func (d *Dev) VLine(x, y, l int, c rgb565.Color) error {
	if d.halted {
		return errHalted
	}
	if l == 0 {
		return nil
	}
	ey := y + l - 1
	if l < 0 {
		ey = y + l + 1
	}
	if ey < y {
		y, ey = ey, y
	}
	x = clamp(0, d.w-1, x)
	y = clamp(0, d.h-1, y)
	ey = clamp(0, d.h-1, ey)
	if err := d.setWindow(x, y, x, ey); err != nil {
		return err
	}
	return d.stream(c, ey-y+1)
}

// Line draws a line from (x0, y0) to (x1, y1), endpoints included.
// Horizontal and vertical lines are forwarded to HLine and VLine and drawn
// as a single color run; everything else walks the integer Bresenham
// algorithm one pixel at a time.
func (d *Dev) Line(x0, y0, x1, y1 int, c rgb565.Color) error {
	if d.halted {
		return errHalted
	}
	switch {
	case x0 == x1:
		y := y0
		if y1 < y0 {
			y = y1
		}
		return d.VLine(x0, y, abs(y1-y0)+1, c)
	case y0 == y1:
		x := x0
		if x1 < x0 {
			x = x1
		}
		return d.HLine(x, y0, abs(x1-x0)+1, c)
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x1 < x0 {
		sx = -1
	}
	sy := 1
	if y1 < y0 {
		sy = -1
	}

	// Step along the major axis; the loop ends when the major coordinate
	// reaches its end value, not after a fixed step count.
	if dx >= dy {
		e := 2*dy - dx
		for {
			if err := d.pixel(x0, y0, c); err != nil {
				return err
			}
			if x0 == x1 {
				return nil
			}
			if e >= 0 {
				y0 += sy
				e -= 2 * dx
			}
			e += 2 * dy
			x0 += sx
		}
	}
	e := 2*dx - dy
	for {
		if err := d.pixel(x0, y0, c); err != nil {
			return err
		}
		if y0 == y1 {
			return nil
		}
		if e >= 0 {
			x0 += sx
			e -= 2 * dy
		}
		e += 2 * dx
		y0 += sy
	}
}

// Rect draws the outline of a w x h rectangle with its top-left corner at
// (x, y). The interior is not filled.
func (d *Dev) Rect(x, y, w, h int, c rgb565.Color) error {
	if d.halted {
		return errHalted
	}
	if err := d.HLine(x, y+h-1, w, c); err != nil {
		return err
	}
	if err := d.HLine(x, y, w, c); err != nil {
		return err
	}
	if err := d.VLine(x, y, h, c); err != nil {
		return err
	}
	return d.VLine(x+w-1, y, h, c)
}

// FillRect fills a w x h rectangle with its top-left corner at (x, y). Both
// corners are clamped to the display independently, so the streamed pixel
// count always matches the visible (clipped) area.
func (d *Dev) FillRect(x, y, w, h int, c rgb565.Color) error {
	if d.halted {
		return errHalted
	}
	ex := clamp(0, d.w-1, x+w-1)
	ey := clamp(0, d.h-1, y+h-1)
	x = clamp(0, d.w-1, x)
	y = clamp(0, d.h-1, y)
	if ex < x {
		x, ex = ex, x
	}
	if ey < y {
		y, ey = ey, y
	}
	if err := d.setWindow(x, y, ex, ey); err != nil {
		return err
	}
	return d.stream(c, (ex-x+1)*(ey-y+1))
}

// Fill fills the whole display.
func (d *Dev) Fill(c rgb565.Color) error {
	if d.halted {
		return errHalted
	}
	if err := d.setWindow(0, 0, d.w-1, d.h-1); err != nil {
		return err
	}
	return d.stream(c, d.w*d.h)
}

// Circle draws the outline of a circle of radius r centered at (cx, cy).
// One octant is computed per column and mirrored eight ways; every point is
// plotted individually and clipped like Pixel.
func (d *Dev) Circle(cx, cy, r int, c rgb565.Color) error {
	if d.halted {
		return errHalted
	}
	// Walk x through the octant where the slope magnitude stays <= 1:
	// 0.7071 * 1024 = 724.
	xend := (r*724)>>10 + 1
	rsq := float64(r * r)
	for x := 0; x < xend; x++ {
		y := int(math.Sqrt(rsq - float64(x*x)))
		for _, p := range [8][2]int{
			{cx + x, cy + y},
			{cx + x, cy - y},
			{cx - x, cy + y},
			{cx - x, cy - y},
			{cx + y, cy + x},
			{cx + y, cy - x},
			{cx - y, cy + x},
			{cx - y, cy - x},
		} {
			if err := d.pixel(p[0], p[1], c); err != nil {
				return err
			}
		}
	}
	return nil
}

// FillCircle fills a circle of radius r centered at (cx, cy). The disc is
// built from one clipped vertical run per column on each side of the center,
// which reproduces the slightly asymmetric silhouette of the reference
// renderer at shallow angles.
func (d *Dev) FillCircle(cx, cy, r int, c rgb565.Color) error {
	if d.halted {
		return errHalted
	}
	rsq := float64(r * r)
	for x := 0; x < r; x++ {
		y := int(math.Sqrt(rsq - float64(x*x)))
		y0 := cy - y
		x0 := clamp(0, d.w-1, cx+x)
		x1 := clamp(0, d.w-1, cx-x)
		ey := clamp(0, d.h-1, y0+2*y)
		y0 = clamp(0, d.h-1, y0)
		n := abs(ey-y0) + 1

		if err := d.setWindow(x0, y0, x0, ey); err != nil {
			return err
		}
		if err := d.stream(c, n); err != nil {
			return err
		}
		if err := d.setWindow(x1, y0, x1, ey); err != nil {
			return err
		}
		if err := d.stream(c, n); err != nil {
			return err
		}
	}
	return nil
}
