package uc1608

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Bus is the hardware interface of the controller: byte writes on the
// parallel bus, the reset line and blocking delays.
//
// Implementations are not expected to be safe for concurrent use; Dev
// serializes every access.
type Bus interface {
	// Command writes an instruction byte (CD low).
	Command(c byte) error
	// Data writes a display RAM byte (CD high) at the latched column and page.
	Data(d byte) error
	// AssertReset drives the reset line active.
	AssertReset() error
	// ReleaseReset drives the reset line inactive.
	ReleaseReset() error
	// Delay blocks for at least d.
	Delay(d time.Duration)
}

// ParallelPins lists the GPIO lines wired to the controller's 8080-style bus.
type ParallelPins struct {
	D   [8]gpio.PinOut // Data lines, D[0] is the least significant bit
	CS  gpio.PinOut    // Chip select
	CD  gpio.PinOut    // Command (Low) or Data (High)
	WR  gpio.PinOut    // Write strobe, latched on the rising edge
	RD  gpio.PinOut    // Read strobe, held High since reads are unsupported
	RST gpio.PinOut    // Reset, active Low (optional, nil if not used)
}

// Parallel is a Bus bit-banged over periph.io GPIO pins.
type Parallel struct {
	pins ParallelPins
}

// NewParallel returns a Parallel bus over pins and drives the control lines to
// their idle levels.
func NewParallel(pins ParallelPins) (*Parallel, error) {
	for i, d := range pins.D {
		if d == nil {
			return nil, fmt.Errorf("uc1608: data pin D%d is required", i)
		}
	}
	if pins.CS == nil || pins.CD == nil || pins.WR == nil || pins.RD == nil {
		return nil, errors.New("uc1608: CS, CD, WR and RD pins are required")
	}

	p := &Parallel{pins: pins}
	if err := p.drive(pins.RD, gpio.High); err != nil {
		return nil, err
	}
	if err := p.drive(pins.WR, gpio.High); err != nil {
		return nil, err
	}
	if err := p.drive(pins.CS, gpio.Low); err != nil {
		return nil, err
	}
	return p, nil
}

// Command writes an instruction byte.
func (p *Parallel) Command(c byte) error {
	return p.write(gpio.Low, c)
}

// Data writes a display RAM byte.
func (p *Parallel) Data(d byte) error {
	return p.write(gpio.High, d)
}

// AssertReset pulls RST low. It does nothing when RST is not wired.
func (p *Parallel) AssertReset() error {
	if p.pins.RST == nil {
		return nil
	}
	return p.drive(p.pins.RST, gpio.Low)
}

// ReleaseReset pulls RST high. It does nothing when RST is not wired.
func (p *Parallel) ReleaseReset() error {
	if p.pins.RST == nil {
		return nil
	}
	return p.drive(p.pins.RST, gpio.High)
}

// Delay sleeps for d.
func (p *Parallel) Delay(d time.Duration) {
	time.Sleep(d)
}

func (p *Parallel) String() string {
	return fmt.Sprintf("uc1608.Parallel{CS:%s, CD:%s, WR:%s}", p.pins.CS, p.pins.CD, p.pins.WR)
}

// write runs one 8080 write cycle. The controller samples CD and D0-D7 on the
// rising edge of WR while CS is active.
func (p *Parallel) write(cd gpio.Level, b byte) error {
	if err := p.drive(p.pins.RD, gpio.High); err != nil {
		return err
	}
	if err := p.drive(p.pins.CS, gpio.High); err != nil {
		return err
	}
	if err := p.drive(p.pins.CD, cd); err != nil {
		return err
	}
	for i, pin := range p.pins.D {
		if err := p.drive(pin, b&(1<<uint(i)) != 0); err != nil {
			return err
		}
	}
	if err := p.drive(p.pins.WR, gpio.Low); err != nil {
		return err
	}
	if err := p.drive(p.pins.WR, gpio.High); err != nil {
		return err
	}
	return p.drive(p.pins.CS, gpio.Low)
}

func (p *Parallel) drive(pin gpio.PinOut, l gpio.Level) error {
	if err := pin.Out(l); err != nil {
		return fmt.Errorf("uc1608: failed to drive %s %s: %w", pin, l, err)
	}
	return nil
}
