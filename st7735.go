package st7735

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"periph.io/x/devices/v3/st7735/rgb565"
)

// ST7735 command set (datasheet section 10).
const (
	cmdNOP     = 0x00
	cmdSWRESET = 0x01 // Software reset
	cmdSLPIN   = 0x10
	cmdSLPOUT  = 0x11 // Sleep out
	cmdNORON   = 0x13 // Normal display mode on
	cmdINVOFF  = 0x20
	cmdINVON   = 0x21
	cmdDISPOFF = 0x28
	cmdDISPON  = 0x29
	cmdCASET   = 0x2A // Column address set
	cmdRASET   = 0x2B // Row address set
	cmdRAMWR   = 0x2C // Memory write
	cmdMADCTL  = 0x36 // Memory data access control
	cmdCOLMOD  = 0x3A // Interface pixel format
	cmdFRMCTR1 = 0xB1
	cmdFRMCTR2 = 0xB2
	cmdFRMCTR3 = 0xB3
	cmdINVCTR  = 0xB4
	cmdDISSET5 = 0xB6
	cmdPWCTR1  = 0xC0
	cmdPWCTR2  = 0xC1
	cmdPWCTR3  = 0xC2
	cmdPWCTR4  = 0xC3
	cmdPWCTR5  = 0xC4
	cmdVMCTR1  = 0xC5
	cmdPWCTR6  = 0xFC
	cmdGMCTRP1 = 0xE0 // Positive gamma correction
	cmdGMCTRN1 = 0xE1 // Negative gamma correction
)

// Rotation selects the display orientation in 90 degree steps.
type Rotation uint8

// Valid rotations. Rotation90 and Rotation270 swap the logical width and
// height.
const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// madctlRotation maps a Rotation to its MADCTL scan-direction bits.
var madctlRotation = [4]byte{0x00, 0x60, 0xC0, 0xA0}

// ColorOrder selects the panel color channel order written to MADCTL.
type ColorOrder uint8

// Channel orders. BGR is the hardware default.
const (
	BGR ColorOrder = iota
	RGB
)

const madctlBGR = 0x08

// Controller RAM limits; panels never exceed these.
const (
	maxW = 132
	maxH = 162
)

// Pixels streamed per SPI transaction when repeating a color. 2048 pixels
// is 4096 bytes, the default spidev transfer limit on Linux.
const streamChunk = 2048

// Opts is the configuration for the ST7735 display.
type Opts struct {
	// Display dimensions in pixels at Rotation0.
	W int // Width (default: 128, must be <=132)
	H int // Height (default: 160, must be <=162)

	// Initial orientation and color channel order.
	Rotation Rotation
	Order    ColorOrder

	// Optional hardware reset pin. When nil the hardware reset pulse is
	// skipped and the panel relies on power-on reset.
	RST gpio.PinIO
}

// Dev is the device handle for the ST7735 display.
//
// After NewSPI the panel is still in its reset state; exactly one of InitR,
// InitG or InitB must be called, matching the attached panel variant, before
// any drawing call.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	dc  gpio.PinOut // Data/Command pin
	rst gpio.PinIO  // Reset pin (optional)

	// Display state
	w, h     int // logical size, post-rotation
	rotation Rotation
	order    ColorOrder

	halted bool

	delay func(time.Duration)
}

// NewSPI creates a new ST7735 device connected via SPI.
//
// The SPI port is configured for 16MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided and configured
// as an output.
//
// opts can be nil to use defaults (128x160 panel, rotation 0, BGR order).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 128, H: 160}
	}

	if opts.W <= 0 || opts.W > maxW {
		return nil, errors.New("st7735: width must be between 1 and 132")
	}
	if opts.H <= 0 || opts.H > maxH {
		return nil, errors.New("st7735: height must be between 1 and 162")
	}
	if opts.Rotation > Rotation270 {
		return nil, errors.New("st7735: rotation must be between 0 and 3")
	}

	// The datasheet allows a 15ns serial clock cycle; 16MHz is the rate the
	// reference hardware runs at.
	c, err := p.Connect(16*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	if err := dc.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("st7735: failed to configure DC pin: %w", err)
	}

	d := &Dev{
		c:        c,
		dc:       dc,
		rst:      opts.RST,
		w:        opts.W,
		h:        opts.H,
		rotation: opts.Rotation,
		order:    opts.Order,
		delay:    time.Sleep,
	}
	if d.rotation&1 == 1 {
		d.w, d.h = d.h, d.w
	}
	return d, nil
}

// sendCommand frames a single command byte: DC low, one transaction.
func (d *Dev) sendCommand(cmd byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx([]byte{cmd}, nil)
}

// sendData frames a data payload: DC high, one transaction. The SPI layer
// asserts chip-select for the duration of the transaction.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// setWindow programs the drawing window and arms the controller for a color
// stream. Every drawing primitive re-sets the window immediately before
// streaming; the window is never assumed to survive across primitives.
func (d *Dev) setWindow(x0, y0, x1, y1 int) error {
	if err := d.sendCommand(cmdCASET); err != nil {
		return err
	}
	if err := d.sendData([]byte{0, byte(x0), 0, byte(x1)}); err != nil {
		return err
	}
	if err := d.sendCommand(cmdRASET); err != nil {
		return err
	}
	if err := d.sendData([]byte{0, byte(y0), 0, byte(y1)}); err != nil {
		return err
	}
	return d.sendCommand(cmdRAMWR)
}

// stream writes repeat copies of the 2-byte color value, high byte first,
// into the window armed by a preceding setWindow.
func (d *Dev) stream(c rgb565.Color, repeat int) error {
	if repeat <= 0 {
		return nil
	}
	n := repeat
	if n > streamChunk {
		n = streamChunk
	}
	buf := make([]byte, 2*n)
	for i := 0; i < n; i++ {
		buf[2*i] = byte(c >> 8)
		buf[2*i+1] = byte(c)
	}
	for repeat > 0 {
		n = repeat
		if n > streamChunk {
			n = streamChunk
		}
		if err := d.sendData(buf[:2*n]); err != nil {
			return err
		}
		repeat -= n
	}
	return nil
}

// writeMADCTL sends the current rotation and color order to the device.
func (d *Dev) writeMADCTL() error {
	m := madctlRotation[d.rotation&3]
	if d.order == BGR {
		m |= madctlBGR
	}
	if err := d.sendCommand(cmdMADCTL); err != nil {
		return err
	}
	return d.sendData([]byte{m})
}

// SetRotation changes the display orientation. Switching between portrait
// and landscape swaps the logical width and height. Only the MADCTL register
// is rewritten; the panel is not re-initialized.
func (d *Dev) SetRotation(r Rotation) error {
	if d.halted {
		return errHalted
	}
	r &= 3
	if (d.rotation^r)&1 == 1 {
		d.w, d.h = d.h, d.w
	}
	d.rotation = r
	return d.writeMADCTL()
}

// SetColorOrder changes the panel color channel order. The MADCTL register
// is only rewritten when the order actually changes.
func (d *Dev) SetColorOrder(o ColorOrder) error {
	if d.halted {
		return errHalted
	}
	if o == d.order {
		return nil
	}
	d.order = o
	return d.writeMADCTL()
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errHalted
	}
	if invert {
		return d.sendCommand(cmdINVON)
	}
	return d.sendCommand(cmdINVOFF)
}

// Display turns the panel output on or off. The controller keeps its RAM
// contents while off.
func (d *Dev) Display(on bool) error {
	if d.halted {
		return errHalted
	}
	if on {
		return d.sendCommand(cmdDISPON)
	}
	return d.sendCommand(cmdDISPOFF)
}

// Halt powers off the display. After calling Halt the device rejects drawing
// calls until one of the Init functions is run again.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(cmdDISPOFF)
}

var errHalted = errors.New("st7735: halted")

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the image bounds of the display in logical (post-rotation)
// coordinates.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.w, d.h)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7735.Dev{%dx%d}", d.w, d.h)
}

// Draw draws an image onto the display. The dst rectangle is clipped to the
// display bounds and the src pixels, positioned at sp, are converted through
// rgb565.Model and streamed row by row. There is no buffering; the panel is
// updated immediately.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}
	dst = dst.Intersect(d.Bounds())
	if dst.Empty() {
		return nil
	}
	if err := d.setWindow(dst.Min.X, dst.Min.Y, dst.Max.X-1, dst.Max.Y-1); err != nil {
		return err
	}
	row := make([]byte, 2*dst.Dx())
	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			c := rgb565.Model.Convert(src.At(sp.X+x-dst.Min.X, sp.Y+y-dst.Min.Y)).(rgb565.Color)
			i := 2 * (x - dst.Min.X)
			row[i] = byte(c >> 8)
			row[i+1] = byte(c)
		}
		if err := d.sendData(row); err != nil {
			return err
		}
	}
	return nil
}
