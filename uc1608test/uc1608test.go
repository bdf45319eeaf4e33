// Package uc1608test implements a simulated UC1608 controller for tests and
// for running the driver without hardware.
//
// Bus records every transaction and emulates the part of the controller the
// driver relies on: the column and page address registers with
// auto-increment, the display RAM and a few status flags.
package uc1608test

import (
	"fmt"
	"image"
	"sync"
	"time"

	"periph.io/x/devices/v3/uc1608/image1bit"
)

// RAM geometry of the simulated controller.
const (
	Columns = 241 // Columns 0-240
	Pages   = 9   // Pages 0-8

	visibleWidth  = 240
	visibleHeight = 64
)

// Kind is the kind of a recorded transaction.
type Kind int

const (
	Command Kind = iota
	Data
	AssertReset
	ReleaseReset
	Delay
)

func (k Kind) String() string {
	switch k {
	case Command:
		return "Command"
	case Data:
		return "Data"
	case AssertReset:
		return "AssertReset"
	case ReleaseReset:
		return "ReleaseReset"
	case Delay:
		return "Delay"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Op is one recorded transaction.
type Op struct {
	Kind Kind
	B    byte          // Command or data byte
	D    time.Duration // Delay duration
}

func (o Op) String() string {
	switch o.Kind {
	case Command, Data:
		return fmt.Sprintf("%s(0x%02X)", o.Kind, o.B)
	case Delay:
		return fmt.Sprintf("Delay(%s)", o.D)
	default:
		return o.Kind.String()
	}
}

// Bus is a simulated controller. It implements uc1608.Bus.
//
// The zero value is not usable; call New.
type Bus struct {
	sync.Mutex

	// Ops is the transaction log.
	Ops []Op
	// Err, when set, is returned by Command and Data without any effect.
	Err error

	// Registers
	Gain, Contrast byte
	Enabled        bool
	Inverted       bool
	AllPixelsOn    bool
	InReset        bool

	ram     *image1bit.VerticalLSB
	column  int
	page    int
	wrap    bool
	pending byte // Two-byte command waiting for its parameter
}

// New returns a simulated controller with cleared RAM.
func New() *Bus {
	return &Bus{ram: image1bit.NewVerticalLSB(image.Rect(0, 0, Columns, Pages*8))}
}

// Command implements uc1608.Bus.
func (b *Bus) Command(c byte) error {
	b.Lock()
	defer b.Unlock()
	if b.Err != nil {
		return b.Err
	}
	b.Ops = append(b.Ops, Op{Kind: Command, B: c})

	if b.pending != 0 {
		// Only the gain/potentiometer command takes a parameter
		b.Gain, b.Contrast = c>>6, c&0x3F
		b.pending = 0
		return nil
	}

	switch {
	case c == 0x81:
		b.pending = c
	case c == 0xE2:
		b.systemReset()
	case c&0xF0 == 0x00:
		b.column = b.column&0xF0 | int(c&0x0F)
	case c&0xF0 == 0x10:
		b.column = int(c&0x0F)<<4 | b.column&0x0F
	case c&0xF0 == 0xB0:
		b.page = int(c & 0x0F)
	case c&0xF8 == 0x88:
		b.wrap = c&0x01 != 0
	case c&0xFE == 0xA4:
		b.AllPixelsOn = c&0x01 != 0
	case c&0xFE == 0xA6:
		b.Inverted = c&0x01 != 0
	case c&0xFE == 0xAE:
		b.Enabled = c&0x01 != 0
	}
	return nil
}

// Data implements uc1608.Bus. The byte is stored at the latched address and
// the column advances; past the last column it wraps to the next page when
// wrap-around is enabled. Writes outside the RAM are dropped.
func (b *Bus) Data(d byte) error {
	b.Lock()
	defer b.Unlock()
	if b.Err != nil {
		return b.Err
	}
	b.Ops = append(b.Ops, Op{Kind: Data, B: d})

	if b.column < Columns && b.page < Pages {
		b.ram.Pix[b.page*b.ram.Stride+b.column] = d
	}
	b.column++
	if b.column >= Columns && b.wrap {
		b.column = 0
		b.page++
	}
	return nil
}

// AssertReset implements uc1608.Bus.
func (b *Bus) AssertReset() error {
	b.Lock()
	defer b.Unlock()
	b.Ops = append(b.Ops, Op{Kind: AssertReset})
	b.InReset = true
	b.systemReset()
	return nil
}

// ReleaseReset implements uc1608.Bus.
func (b *Bus) ReleaseReset() error {
	b.Lock()
	defer b.Unlock()
	b.Ops = append(b.Ops, Op{Kind: ReleaseReset})
	b.InReset = false
	return nil
}

// Delay implements uc1608.Bus. It records d and returns immediately.
func (b *Bus) Delay(d time.Duration) {
	b.Lock()
	defer b.Unlock()
	b.Ops = append(b.Ops, Op{Kind: Delay, D: d})
}

// Address returns the latched column and page.
func (b *Bus) Address() (column, page int) {
	b.Lock()
	defer b.Unlock()
	return b.column, b.page
}

// Commands returns the command bytes of the log in order.
func (b *Bus) Commands() []byte {
	return b.bytes(Command)
}

// DataBytes returns the data bytes of the log in order.
func (b *Bus) DataBytes() []byte {
	return b.bytes(Data)
}

// ClearLog empties the transaction log. RAM and registers are kept.
func (b *Bus) ClearLog() {
	b.Lock()
	defer b.Unlock()
	b.Ops = nil
}

// PageRow returns a copy of the RAM bytes of page.
func (b *Bus) PageRow(page int) []byte {
	b.Lock()
	defer b.Unlock()
	return append([]byte(nil), b.ram.PageRow(page)...)
}

// Image returns a copy of the visible 240x64 part of the RAM.
func (b *Bus) Image() *image1bit.VerticalLSB {
	b.Lock()
	defer b.Unlock()
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, visibleWidth, visibleHeight))
	for p := 0; p < img.Pages(); p++ {
		copy(img.PageRow(p), b.ram.PageRow(p)[:visibleWidth])
	}
	return img
}

func (b *Bus) bytes(k Kind) []byte {
	b.Lock()
	defer b.Unlock()
	var out []byte
	for _, op := range b.Ops {
		if op.Kind == k {
			out = append(out, op.B)
		}
	}
	return out
}

// systemReset restores the power-on register values. RAM is kept.
func (b *Bus) systemReset() {
	b.column, b.page = 0, 0
	b.wrap = false
	b.pending = 0
	b.Enabled = false
	b.Inverted = false
	b.AllPixelsOn = false
}
