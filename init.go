package st7735

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// initCmd is one step of a panel initialization table: a command, its
// payload, and the settle time the datasheet mandates after it.
type initCmd struct {
	cmd   byte
	data  []byte
	delay time.Duration
}

// Gamma correction curves from the per-variant power-on sequences. Red tab
// panels use their own pair; green and blue tabs share one.
var (
	gammaPosR = []byte{
		0x0F, 0x1A, 0x0F, 0x18, 0x2F, 0x28, 0x20, 0x22,
		0x1F, 0x1B, 0x23, 0x37, 0x00, 0x07, 0x02, 0x10,
	}
	gammaNegR = []byte{
		0x0F, 0x1B, 0x0F, 0x17, 0x33, 0x2C, 0x29, 0x2E,
		0x30, 0x30, 0x39, 0x3F, 0x00, 0x07, 0x03, 0x10,
	}
	gammaPosGB = []byte{
		0x02, 0x1C, 0x07, 0x12, 0x37, 0x32, 0x29, 0x2D,
		0x29, 0x25, 0x2B, 0x39, 0x00, 0x01, 0x03, 0x10,
	}
	gammaNegGB = []byte{
		0x03, 0x1D, 0x07, 0x06, 0x2E, 0x2C, 0x29, 0x2D,
		0x2E, 0x2E, 0x37, 0x3F, 0x00, 0x00, 0x02, 0x10,
	}
)

// runInit plays an initialization table over the bus.
func (d *Dev) runInit(seq []initCmd) error {
	for _, c := range seq {
		if err := d.sendCommand(c.cmd); err != nil {
			return err
		}
		if len(c.data) > 0 {
			if err := d.sendData(c.data); err != nil {
				return err
			}
		}
		if c.delay > 0 {
			d.delay(c.delay)
		}
	}
	return nil
}

// reset pulses the hardware reset line. Skipped when no reset pin was
// provided; the panel then relies on power-on reset.
func (d *Dev) reset() error {
	if d.rst == nil {
		return nil
	}
	if err := d.dc.Out(gpio.Low); err != nil {
		return fmt.Errorf("st7735: failed to pull DC low: %w", err)
	}
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("st7735: failed to pull RST high: %w", err)
	}
	d.delay(500 * time.Millisecond)
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("st7735: failed to pull RST low: %w", err)
	}
	d.delay(500 * time.Millisecond)
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("st7735: failed to pull RST high: %w", err)
	}
	return nil
}

// InitR initializes a red tab panel. It must complete before any drawing
// call. Re-running it is safe and re-incurs all delays.
func (d *Dev) InitR() error {
	if err := d.reset(); err != nil {
		return err
	}
	err := d.runInit([]initCmd{
		{cmdSWRESET, nil, 150 * time.Millisecond},
		{cmdSLPOUT, nil, 500 * time.Millisecond},
		{cmdFRMCTR1, []byte{0x01, 0x2C, 0x2D}, 0},
		{cmdFRMCTR2, []byte{0x01, 0x2C, 0x2D}, 0},
		{cmdFRMCTR3, []byte{0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D}, 10 * time.Millisecond},
		{cmdINVCTR, []byte{0x07}, 0},
		{cmdPWCTR1, []byte{0xA2, 0x02, 0x84}, 0},
		{cmdPWCTR2, []byte{0xC5}, 0},
		{cmdPWCTR3, []byte{0x0A, 0x00}, 0},
		{cmdPWCTR4, []byte{0x8A, 0x2A}, 0},
		{cmdPWCTR5, []byte{0x8A, 0xEE}, 0},
		{cmdVMCTR1, []byte{0x0E}, 0},
		{cmdINVOFF, nil, 0},
	})
	if err != nil {
		return err
	}
	if err := d.writeMADCTL(); err != nil {
		return err
	}
	err = d.runInit([]initCmd{
		{cmdCOLMOD, []byte{0x05}, 0},
		// Red tab panels address pixel (0,0) directly, no start offset.
		{cmdCASET, []byte{0x00, 0x00, 0x00, byte(d.w - 1)}, 0},
		{cmdRASET, []byte{0x00, 0x00, 0x00, byte(d.h - 1)}, 0},
		{cmdGMCTRP1, gammaPosR, 0},
		{cmdGMCTRN1, gammaNegR, 10 * time.Millisecond},
		{cmdNORON, nil, 10 * time.Millisecond},
		{cmdDISPON, nil, 100 * time.Millisecond},
	})
	if err != nil {
		return err
	}
	d.halted = false
	return nil
}

// InitG initializes a green tab panel. It must complete before any drawing
// call. Re-running it is safe and re-incurs all delays.
func (d *Dev) InitG() error {
	if err := d.reset(); err != nil {
		return err
	}
	err := d.runInit([]initCmd{
		{cmdSWRESET, nil, 150 * time.Millisecond},
		{cmdSLPOUT, nil, 255 * time.Millisecond},
		{cmdFRMCTR1, []byte{0x01, 0x2C, 0x2D}, 0},
		{cmdFRMCTR2, []byte{0x01, 0x2C, 0x2D}, 0},
		{cmdFRMCTR3, []byte{0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D}, 0},
		{cmdINVCTR, []byte{0x07}, 0},
		{cmdPWCTR1, []byte{0xA2, 0x02, 0x84}, 0},
		{cmdPWCTR2, []byte{0xC5}, 0},
		{cmdPWCTR3, []byte{0x0A, 0x00}, 0},
		{cmdPWCTR4, []byte{0x8A, 0x2A}, 0},
		{cmdPWCTR5, []byte{0x8A, 0xEE}, 0},
		{cmdVMCTR1, []byte{0x0E}, 0},
		{cmdINVOFF, nil, 0},
	})
	if err != nil {
		return err
	}
	if err := d.writeMADCTL(); err != nil {
		return err
	}
	err = d.runInit([]initCmd{
		{cmdCOLMOD, []byte{0x05}, 0},
		// Green tab panels are shifted by one pixel on both axes.
		{cmdCASET, []byte{0x00, 0x01, 0x00, byte(d.w - 1)}, 0},
		{cmdRASET, []byte{0x00, 0x01, 0x00, byte(d.h - 1)}, 0},
		{cmdGMCTRP1, gammaPosGB, 0},
		{cmdGMCTRN1, gammaNegGB, 0},
		{cmdNORON, nil, 10 * time.Millisecond},
		{cmdDISPON, nil, 100 * time.Millisecond},
	})
	if err != nil {
		return err
	}
	d.halted = false
	return nil
}

// InitB initializes a blue tab panel. It must complete before any drawing
// call. Re-running it is safe and re-incurs all delays.
func (d *Dev) InitB() error {
	if err := d.reset(); err != nil {
		return err
	}
	err := d.runInit([]initCmd{
		{cmdSWRESET, nil, 50 * time.Millisecond},
		{cmdSLPOUT, nil, 500 * time.Millisecond},
		{cmdCOLMOD, []byte{0x05}, 0},
		{cmdFRMCTR1, []byte{0x00, 0x06, 0x03}, 10 * time.Millisecond},
	})
	if err != nil {
		return err
	}
	if err := d.writeMADCTL(); err != nil {
		return err
	}
	err = d.runInit([]initCmd{
		{cmdDISSET5, []byte{0x15, 0x02}, 0},
		{cmdINVCTR, []byte{0x00}, 0},
		{cmdPWCTR1, []byte{0x02, 0x70}, 0},
		{cmdPWCTR2, []byte{0x05}, 0},
		{cmdPWCTR3, []byte{0x01, 0x02}, 0},
		{cmdVMCTR1, []byte{0x3C, 0x38}, 0},
		{cmdPWCTR6, []byte{0x11, 0x15}, 0},
		{cmdGMCTRP1, gammaPosGB, 0},
		{cmdGMCTRN1, gammaNegGB, 10 * time.Millisecond},
		// Blue tab panels are shifted by two columns and one row. The RASET
		// payload carries the row offset in its third byte, byte-for-byte as
		// shipped in the reference sequence.
		{cmdCASET, []byte{0x00, 0x02, 0x00, byte(d.w - 1)}, 0},
		{cmdRASET, []byte{0x00, 0x02, 0x01, byte(d.h - 1)}, 0},
		{cmdNORON, nil, 10 * time.Millisecond},
		{cmdRAMWR, nil, 500 * time.Millisecond},
		{cmdDISPON, nil, 100 * time.Millisecond},
	})
	if err != nil {
		return err
	}
	d.halted = false
	return nil
}
