package st7735

import (
	"testing"

	"periph.io/x/devices/v3/st7735/rgb565"
)

func TestPixel(t *testing.T) {
	d, c := newTestDev()

	if err := d.Pixel(5, 7, rgb565.White); err != nil {
		t.Fatal(err)
	}
	ws := decodeWindows(t, c.ops)
	if len(ws) != 1 {
		t.Fatalf("decoded %d windows, want 1", len(ws))
	}
	if want := (window{x0: 5, y0: 7, x1: 5, y1: 7, pixels: 1}); ws[0] != want {
		t.Errorf("window = %+v, want %+v", ws[0], want)
	}
}

func TestPixelOutOfBounds(t *testing.T) {
	d, c := newTestDev()

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {128, 0}, {0, 160}, {-5, -5}} {
		if err := d.Pixel(p[0], p[1], rgb565.White); err != nil {
			t.Fatal(err)
		}
	}
	if len(c.ops) != 0 {
		t.Errorf("out-of-bounds pixels wrote %d transactions, want 0", len(c.ops))
	}
}

func TestHLine(t *testing.T) {
	tests := []struct {
		name    string
		x, y, l int
		want    window
	}{
		{"simple", 10, 20, 5, window{10, 20, 14, 20, 5}},
		{"negative length draws leftward", 10, 20, -5, window{6, 20, 10, 20, 5}},
		{"clipped right", 125, 0, 10, window{125, 0, 127, 0, 3}},
		{"clipped left", -3, 0, 10, window{0, 0, 6, 0, 7}},
		{"single pixel", 0, 0, 1, window{0, 0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, c := newTestDev()
			if err := d.HLine(tt.x, tt.y, tt.l, rgb565.White); err != nil {
				t.Fatal(err)
			}
			ws := decodeWindows(t, c.ops)
			if len(ws) != 1 {
				t.Fatalf("decoded %d windows, want 1", len(ws))
			}
			if ws[0] != tt.want {
				t.Errorf("window = %+v, want %+v", ws[0], tt.want)
			}
		})
	}
}

func TestHLineZeroLength(t *testing.T) {
	d, c := newTestDev()
	if err := d.HLine(10, 10, 0, rgb565.White); err != nil {
		t.Fatal(err)
	}
	if len(c.ops) != 0 {
		t.Errorf("zero-length line wrote %d transactions, want 0", len(c.ops))
	}
}

func TestVLine(t *testing.T) {
	tests := []struct {
		name    string
		x, y, l int
		want    window
	}{
		{"simple", 10, 20, 5, window{10, 20, 10, 24, 5}},
		{"negative length draws upward", 10, 20, -5, window{10, 16, 10, 20, 5}},
		{"clipped bottom", 0, 157, 10, window{0, 157, 0, 159, 3}},
		{"clipped top", 0, -3, 10, window{0, 0, 0, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, c := newTestDev()
			if err := d.VLine(tt.x, tt.y, tt.l, rgb565.White); err != nil {
				t.Fatal(err)
			}
			ws := decodeWindows(t, c.ops)
			if len(ws) != 1 {
				t.Fatalf("decoded %d windows, want 1", len(ws))
			}
			if ws[0] != tt.want {
				t.Errorf("window = %+v, want %+v", ws[0], tt.want)
			}
		})
	}
}

func TestLineDegeneratesToRuns(t *testing.T) {
	d, c := newTestDev()

	// Horizontal, given right-to-left: one 6-pixel run.
	if err := d.Line(15, 8, 10, 8, rgb565.White); err != nil {
		t.Fatal(err)
	}
	ws := decodeWindows(t, c.ops)
	if len(ws) != 1 || ws[0] != (window{10, 8, 15, 8, 6}) {
		t.Errorf("horizontal line windows = %+v", ws)
	}

	c.reset()
	// Vertical, bottom-to-top: one 6-pixel run.
	if err := d.Line(8, 15, 8, 10, rgb565.White); err != nil {
		t.Fatal(err)
	}
	ws = decodeWindows(t, c.ops)
	if len(ws) != 1 || ws[0] != (window{8, 10, 8, 15, 6}) {
		t.Errorf("vertical line windows = %+v", ws)
	}
}

func TestLineZeroLength(t *testing.T) {
	d, c := newTestDev()

	// Coincident endpoints still plot the one pixel.
	if err := d.Line(7, 9, 7, 9, rgb565.White); err != nil {
		t.Fatal(err)
	}
	ws := decodeWindows(t, c.ops)
	if len(ws) != 1 || ws[0] != (window{7, 9, 7, 9, 1}) {
		t.Errorf("windows = %+v, want single pixel at (7,9)", ws)
	}
}

func TestLineDiagonal(t *testing.T) {
	d, c := newTestDev()

	// A 45 degree line visits both endpoints and every cell between.
	if err := d.Line(0, 0, 4, 4, rgb565.White); err != nil {
		t.Fatal(err)
	}
	ws := decodeWindows(t, c.ops)
	if len(ws) != 5 {
		t.Fatalf("plotted %d pixels, want 5", len(ws))
	}
	for i, w := range ws {
		if w != (window{i, i, i, i, 1}) {
			t.Errorf("pixel %d at (%d,%d), want (%d,%d)", i, w.x0, w.y0, i, i)
		}
	}
}

func TestLineSteep(t *testing.T) {
	d, c := newTestDev()

	// dy > dx: stepping follows the y axis, one pixel per row.
	if err := d.Line(3, 0, 5, 8, rgb565.White); err != nil {
		t.Fatal(err)
	}
	ws := decodeWindows(t, c.ops)
	if len(ws) != 9 {
		t.Fatalf("plotted %d pixels, want 9 (one per row)", len(ws))
	}
	if ws[0] != (window{3, 0, 3, 0, 1}) {
		t.Errorf("first pixel = %+v, want (3,0)", ws[0])
	}
	if last := ws[len(ws)-1]; last != (window{5, 8, 5, 8, 1}) {
		t.Errorf("last pixel = %+v, want (5,8)", last)
	}
	for i := 1; i < len(ws); i++ {
		if ws[i].y0 != ws[i-1].y0+1 {
			t.Errorf("pixel %d skipped a row: y=%d after y=%d", i, ws[i].y0, ws[i-1].y0)
		}
		if dx := ws[i].x0 - ws[i-1].x0; dx < 0 || dx > 1 {
			t.Errorf("pixel %d x jumped by %d", i, dx)
		}
	}
}

func TestLineCrossingEdge(t *testing.T) {
	d, c := newTestDev()

	// Endpoint off-screen: the visible prefix is plotted, the rest dropped.
	if err := d.Line(125, 0, 131, 6, rgb565.White); err != nil {
		t.Fatal(err)
	}
	ws := decodeWindows(t, c.ops)
	if len(ws) != 3 {
		t.Fatalf("plotted %d pixels, want 3 visible", len(ws))
	}
	for _, w := range ws {
		if w.x0 >= 128 {
			t.Errorf("pixel plotted off-screen at x=%d", w.x0)
		}
	}
}

func TestFillRect(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       window
	}{
		{"interior", 10, 20, 5, 4, window{10, 20, 14, 23, 20}},
		{"clipped corner", 120, 150, 20, 20, window{120, 150, 127, 159, 80}},
		{"straddles origin", -5, -5, 10, 10, window{0, 0, 4, 4, 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, c := newTestDev()
			if err := d.FillRect(tt.x, tt.y, tt.w, tt.h, rgb565.White); err != nil {
				t.Fatal(err)
			}
			ws := decodeWindows(t, c.ops)
			if len(ws) != 1 {
				t.Fatalf("decoded %d windows, want 1", len(ws))
			}
			if ws[0] != tt.want {
				t.Errorf("window = %+v, want %+v", ws[0], tt.want)
			}
		})
	}
}

func TestFill(t *testing.T) {
	d, c := newTestDev()

	if err := d.Fill(rgb565.Navy); err != nil {
		t.Fatal(err)
	}
	ws := decodeWindows(t, c.ops)
	if len(ws) != 1 {
		t.Fatalf("decoded %d windows, want 1", len(ws))
	}
	if want := (window{0, 0, 127, 159, 128 * 160}); ws[0] != want {
		t.Errorf("window = %+v, want %+v", ws[0], want)
	}
}

func TestRect(t *testing.T) {
	d, c := newTestDev()

	if err := d.Rect(10, 20, 6, 4, rgb565.White); err != nil {
		t.Fatal(err)
	}
	ws := decodeWindows(t, c.ops)
	if len(ws) != 4 {
		t.Fatalf("decoded %d windows, want 4 edges", len(ws))
	}
	want := []window{
		{10, 23, 15, 23, 6}, // bottom
		{10, 20, 15, 20, 6}, // top
		{10, 20, 10, 23, 4}, // left
		{15, 20, 15, 23, 4}, // right
	}
	for i, w := range want {
		if ws[i] != w {
			t.Errorf("edge %d = %+v, want %+v", i, ws[i], w)
		}
	}
}

func TestCircleSymmetry(t *testing.T) {
	d, c := newTestDev()

	cx, cy := 64, 80
	if err := d.Circle(cx, cy, 10, rgb565.White); err != nil {
		t.Fatal(err)
	}
	ws := decodeWindows(t, c.ops)
	if len(ws) == 0 {
		t.Fatal("no pixels plotted")
	}
	plotted := map[[2]int]bool{}
	for _, w := range ws {
		if w.pixels != 1 {
			t.Fatalf("outline streamed a %d-pixel run", w.pixels)
		}
		plotted[[2]int{w.x0, w.y0}] = true
	}
	// Every plotted point must have all 8 reflections plotted too.
	for p := range plotted {
		dx, dy := p[0]-cx, p[1]-cy
		for _, m := range [8][2]int{
			{dx, dy}, {dx, -dy}, {-dx, dy}, {-dx, -dy},
			{dy, dx}, {dy, -dx}, {-dy, dx}, {-dy, -dx},
		} {
			if !plotted[[2]int{cx + m[0], cy + m[1]}] {
				t.Errorf("missing mirror (%d,%d) of (%d,%d)", cx+m[0], cy+m[1], p[0], p[1])
			}
		}
	}
	// The four axis extremes are always on the outline.
	for _, p := range [4][2]int{{cx + 10, cy}, {cx - 10, cy}, {cx, cy + 10}, {cx, cy - 10}} {
		if !plotted[p] {
			t.Errorf("extreme point (%d,%d) not plotted", p[0], p[1])
		}
	}
}

func TestFillCircleRuns(t *testing.T) {
	d, c := newTestDev()

	cx, cy, r := 64, 80, 5
	if err := d.FillCircle(cx, cy, r, rgb565.White); err != nil {
		t.Fatal(err)
	}
	ws := decodeWindows(t, c.ops)
	if len(ws) != 2*r {
		t.Fatalf("decoded %d runs, want %d", len(ws), 2*r)
	}
	for _, w := range ws {
		if w.x0 != w.x1 {
			t.Errorf("run %+v is not a single column", w)
		}
		if w.x0 < cx-r || w.x0 > cx+r {
			t.Errorf("run column %d outside circle x range", w.x0)
		}
		if w.pixels != w.y1-w.y0+1 {
			t.Errorf("run %+v streamed %d pixels, want %d", w, w.pixels, w.y1-w.y0+1)
		}
	}
	// Columns at offset 0 carry the full diameter.
	if ws[0].pixels != 2*r+1 {
		t.Errorf("center column run = %d pixels, want %d", ws[0].pixels, 2*r+1)
	}
}

func TestFillCircleClipped(t *testing.T) {
	d, c := newTestDev()

	// Center near the corner: every run must stay inside the display.
	if err := d.FillCircle(2, 2, 5, rgb565.White); err != nil {
		t.Fatal(err)
	}
	for _, w := range decodeWindows(t, c.ops) {
		if w.x0 < 0 || w.x1 >= 128 || w.y0 < 0 || w.y1 >= 160 {
			t.Errorf("run %+v exceeds display bounds", w)
		}
	}
}
