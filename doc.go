// Package st7735 controls a ST7735 TFT LCD display via SPI.
//
// The ST7735 is a single-chip color LCD controller driving 128×160-class
// panels with 16-bit RGB565 color. The controller has no host-addressable
// framebuffer; every drawing primitive programs a hardware drawing window
// and streams pixel data across the bus immediately.
//
// # Hardware Connection
//
// Connect the ST7735 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V (or 5V depending on display)
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RES         → Optional: GPIO for hardware reset
//
// # Panel Variants
//
// ST7735 panels ship in three manufacturing variants, conventionally named
// after the color of the protective tab on the shipped screen: red, green
// and blue. Each variant needs its own power-on register sequence and start
// offset, and the driver cannot detect which one is attached. Call exactly
// one of InitR, InitG or InitB, matching your hardware, after NewSPI and
// before any drawing call.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/st7735"
//		"periph.io/x/devices/v3/st7735/rgb565"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get Data/Command GPIO pin
//		dcPin := gpioreg.ByName("GPIO25")
//
//		// Create and initialize the device (red tab panel)
//		dev, _ := st7735.NewSPI(spiBus, dcPin, nil)
//		dev.InitR()
//		defer dev.Halt()
//
//		// Draw
//		dev.Fill(rgb565.Black)
//		dev.FillCircle(64, 80, 30, rgb565.Navy)
//		dev.Circle(64, 80, 30, rgb565.White)
//		dev.DrawText(4, 4, "Hello world!", rgb565.Yellow, nil)
//	}
//
// # Drawing Model
//
// All primitives are immediate-mode: each one clamps its coordinates to the
// display, programs the addressing window over the bus, and streams RGB565
// color words big-endian. Nothing is buffered and nothing is read back, so
// out-of-bounds requests are silently clipped rather than reported.
//
// Text rendering uses fixed-cell bitmap fonts from the bitfont subpackage,
// with optional per-glyph block scaling and automatic line wrapping.
//
// # Rotation and Color Order
//
// SetRotation and SetColorOrder rewrite the controller's MADCTL register at
// runtime without re-running initialization. Rotations of 90 and 270 degrees
// swap the logical width and height reported by Bounds.
//
// # Using Hardware Reset Pin (Optional)
//
// If the display's RES pin is wired to a GPIO, pass it in Opts:
//
//	rstPin := gpioreg.ByName("GPIO24")
//
//	dev, _ := st7735.NewSPI(spiBus, dcPin, &st7735.Opts{
//		W:   128,
//		H:   160,
//		RST: rstPin,
//	})
//
// The Init functions then pulse the reset line before the register sequence.
// If RST is nil the hardware reset is skipped and the driver relies on
// power-on reset.
//
// # Errors
//
// Geometric edge cases (out-of-bounds coordinates, unmapped runes, text
// overflowing the display) are clipped or skipped silently. Transport
// faults are returned to the caller; the driver never retries, because a
// half-sent frame cannot be recovered in-protocol. After a transport fault
// re-run the panel's Init function before trusting further drawing.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://www.displayfuture.com/Display/datasheet/controller/ST7735.pdf
package st7735
