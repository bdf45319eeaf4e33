package uc1608

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"
	"time"

	"periph.io/x/devices/v3/uc1608/image1bit"
)

// Addressable range of the display RAM.
const (
	MaxColumn = 240 // Highest column accepted by SetColumn
	MaxPage   = 8   // Highest page accepted by SetPage

	// Visible panel size in pixels.
	Width  = 240
	Height = 64
)

// Command set. Values are the full byte with all parameter bits clear.
const (
	cmdColumnLow    = 0x00 // 0000cccc: column address bits 3-0
	cmdColumnHigh   = 0x10 // 0001cccc: column address bits 7-4
	cmdMuxTempComp  = 0x20 // 00100mtt: multiplex rate and temperature compensation
	cmdPowerControl = 0x28 // 00101ppp: internal pump and panel load
	cmdStartLine    = 0x40 // 01ssssss: scroll start line
	cmdGainPot      = 0x81 // followed by ggpppppp: gain and potentiometer (contrast)
	cmdRAMAddrCtrl  = 0x88 // 10001aaa: wrap-around and auto-increment
	cmdAllPixelsOn  = 0xA4 // 1010010x
	cmdInverse      = 0xA6 // 1010011x
	cmdEnable       = 0xAE // 1010111x
	cmdPage         = 0xB0 // 1011pppp: page address
	cmdMapping      = 0xC0 // 1100yx00: MY, MX mirroring
	cmdSystemReset  = 0xE2 // 11100010
	cmdBias         = 0xE8 // 111010bb: bias ratio
)

// Protocol delays.
const (
	resetPulseDelay  = 15 * time.Millisecond // each edge of the power-up reset pulse
	resetSettleDelay = 1 * time.Millisecond  // after the system reset command
	powerDownDelay   = 5 * time.Millisecond  // capacitor drain before power is cut
)

var (
	// ErrInvalidCoordinate is returned for a column or page outside the RAM.
	ErrInvalidCoordinate = errors.New("uc1608: invalid coordinate")
	// ErrInvalidBitmap is returned when a bitmap is shorter than its size.
	ErrInvalidBitmap = errors.New("uc1608: invalid bitmap size")
	// ErrHalted is returned by drawing operations after PowerDown.
	ErrHalted = errors.New("uc1608: halted")
)

// Opts is the configuration for the UC1608 display.
type Opts struct {
	Gain     byte // Gain (0-3, default: 1)
	Contrast byte // Potentiometer (0-63, default: 7)
	Rotated  bool // 180° rotation
}

// Dev is the device handle for the UC1608 display.
//
// Dev is safe for concurrent use: an address latch and the writes that depend
// on it are never interleaved with another caller's.
type Dev struct {
	mu sync.Mutex

	// Communication
	bus Bus

	// Configuration
	opts Opts
	rect image.Rectangle

	// State
	halted bool
}

// New creates a new UC1608 device on bus and initializes it.
//
// opts can be nil to use defaults (gain 1, contrast 7).
func New(b Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{Gain: 1, Contrast: 7}
	}
	if opts.Gain > 3 {
		return nil, errors.New("uc1608: gain must be between 0 and 3")
	}
	if opts.Contrast > 63 {
		return nil, errors.New("uc1608: contrast must be between 0 and 63")
	}

	d := &Dev{
		bus:  b,
		opts: *opts,
		rect: image.Rect(0, 0, Width, Height),
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Init pulses the reset line and sends the power-up configuration. The order
// and values of the commands are those required by the ERC24064-1 panel.
//
// Init brings a device back after PowerDown.
func (d *Dev) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Hardware reset pulse
	d.bus.Delay(resetPulseDelay)
	if err := d.bus.ReleaseReset(); err != nil {
		return fmt.Errorf("uc1608: failed to release reset: %w", err)
	}
	d.bus.Delay(resetPulseDelay)
	if err := d.bus.AssertReset(); err != nil {
		return fmt.Errorf("uc1608: failed to assert reset: %w", err)
	}
	d.bus.Delay(resetPulseDelay)
	if err := d.bus.ReleaseReset(); err != nil {
		return fmt.Errorf("uc1608: failed to release reset: %w", err)
	}
	d.bus.Delay(resetPulseDelay)

	if err := d.command(cmdSystemReset); err != nil {
		return err
	}
	d.bus.Delay(resetSettleDelay)

	mapping := byte(cmdMapping | 0x08) // MY=1, MX=0
	if d.opts.Rotated {
		mapping = cmdMapping | 0x04 // MY=0, MX=1
	}

	if err := d.commands(
		cmdMuxTempComp|0x03,            // Multiplex rate 96, temperature compensation -0.20%/C
		mapping,                        // LCD mapping
		cmdBias|0x00,                   // Bias ratio 10.7
		cmdGainPot,                     // Gain and contrast
		d.opts.Gain<<6|d.opts.Contrast,
		cmdPowerControl|0x07,           // Internal pump, 60nF < panel load < 90nF
		cmdStartLine|0x00,              // Start line 0 (no scrolling)
		cmdAllPixelsOn|0x00,            // All-pixels-on off
		cmdInverse|0x00,                // Inverse display off
		cmdRAMAddrCtrl|0x01,            // Column/page wrap-around, increment +1
		cmdPage|0x00,                   // Page 0
		cmdEnable|0x01,                 // Display enable
	); err != nil {
		return err
	}

	d.halted = false
	return nil
}

// SetColumn latches the column (0-240) the next data byte is written to.
func (d *Dev) SetColumn(column int) error {
	if err := checkColumn(column); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setColumn(column)
}

// SetPage latches the page (0-8) the next data byte is written to.
func (d *Dev) SetPage(page int) error {
	if err := checkPage(page); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setPage(page)
}

// DrawBitmap writes a bitmap of width columns by pages pages with its top-left
// corner at column, page. bitmap[p*width+c] is column c of page row p.
//
// Columns past the edge of the RAM are not clipped; the controller wraps them.
func (d *Dev) DrawBitmap(column, page int, bitmap []byte, width, pages int) error {
	if width < 0 || pages < 0 || len(bitmap) < width*pages {
		return fmt.Errorf("%w: %d bytes for %dx%d pages", ErrInvalidBitmap, len(bitmap), width, pages)
	}
	if err := checkColumn(column); err != nil {
		return err
	}
	if err := checkPage(page); err != nil {
		return err
	}
	if pages > 0 {
		if err := checkPage(page + pages - 1); err != nil {
			return err
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return ErrHalted
	}

	for p := 0; p < pages; p++ {
		if err := d.setPage(page + p); err != nil {
			return err
		}
		for c := 0; c < width; c++ {
			// The column only needs to be set for the first byte of each page
			if c == 0 {
				if err := d.setColumn(column); err != nil {
					return err
				}
			}
			if err := d.data(bitmap[p*width+c]); err != nil {
				return err
			}
		}
	}
	return nil
}

// ClearArea writes zeros to the rectangle from column1, page1 to column2,
// page2, both corners included.
func (d *Dev) ClearArea(column1, page1, column2, page2 int) error {
	for _, c := range []int{column1, column2} {
		if err := checkColumn(c); err != nil {
			return err
		}
	}
	for _, p := range []int{page1, page2} {
		if err := checkPage(p); err != nil {
			return err
		}
	}
	if column1 > column2 || page1 > page2 {
		return fmt.Errorf("%w: corners (%d, %d) and (%d, %d) are reversed",
			ErrInvalidCoordinate, column1, page1, column2, page2)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return ErrHalted
	}

	for page := page1; page <= page2; page++ {
		if err := d.setPage(page); err != nil {
			return err
		}
		if err := d.setColumn(column1); err != nil {
			return err
		}
		for column := column1; column <= column2; column++ {
			if err := d.data(0x00); err != nil {
				return err
			}
		}
	}
	return nil
}

// PowerDown resets the controller and waits for the panel to drain its
// capacitors. Power can be cut once it returns.
// After calling PowerDown, drawing fails with ErrHalted until Init is called.
func (d *Dev) PowerDown() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.halted = true
	if err := d.command(cmdSystemReset); err != nil {
		return err
	}
	d.bus.Delay(powerDownDelay)
	return nil
}

// Halt implements conn.Resource. It is the same as PowerDown.
func (d *Dev) Halt() error {
	return d.PowerDown()
}

// SetContrast sets the gain (0-3) and potentiometer (0-63).
func (d *Dev) SetContrast(gain, contrast byte) error {
	if gain > 3 || contrast > 63 {
		return errors.New("uc1608: gain or contrast out of range")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return ErrHalted
	}
	d.opts.Gain, d.opts.Contrast = gain, contrast
	return d.commands(cmdGainPot, gain<<6|contrast)
}

// Invert inverts the display (lit pixels become clear and vice versa).
func (d *Dev) Invert(invert bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return ErrHalted
	}
	mode := byte(cmdInverse) // Normal display
	if invert {
		mode |= 0x01
	}
	return d.command(mode)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the visible image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw draws src onto the display, clipped to dst. It implements
// display.Drawer.
//
// The display RAM cannot be read back, so dst is widened to whole pages and
// the pixels of those pages outside dst are cleared.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	// Clip to display bounds
	r := dst.Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(dst.Min))

	first, last := r.Min.Y/8, (r.Max.Y+7)/8
	img := image1bit.NewVerticalLSB(image.Rect(r.Min.X, first*8, r.Max.X, last*8))
	draw.Draw(img, r, src, sp, draw.Src)
	return d.DrawBitmap(r.Min.X, first, img.Pix, r.Dx(), last-first)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("uc1608.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// setColumn sends the column address as two commands: high nibble then low
// nibble.
func (d *Dev) setColumn(column int) error {
	return d.commands(
		cmdColumnHigh|byte(column>>4),
		cmdColumnLow|byte(column&0x0F),
	)
}

func (d *Dev) setPage(page int) error {
	return d.command(cmdPage | byte(page))
}

// command sends a single command byte.
func (d *Dev) command(c byte) error {
	if err := d.bus.Command(c); err != nil {
		return fmt.Errorf("uc1608: command 0x%02X: %w", c, err)
	}
	return nil
}

// commands sends command bytes in order.
func (d *Dev) commands(cmds ...byte) error {
	for _, c := range cmds {
		if err := d.command(c); err != nil {
			return err
		}
	}
	return nil
}

// data sends a single display RAM byte.
func (d *Dev) data(b byte) error {
	if err := d.bus.Data(b); err != nil {
		return fmt.Errorf("uc1608: data: %w", err)
	}
	return nil
}

func checkColumn(column int) error {
	if column < 0 || column > MaxColumn {
		return fmt.Errorf("%w: column %d not in 0-%d", ErrInvalidCoordinate, column, MaxColumn)
	}
	return nil
}

func checkPage(page int) error {
	if page < 0 || page > MaxPage {
		return fmt.Errorf("%w: page %d not in 0-%d", ErrInvalidCoordinate, page, MaxPage)
	}
	return nil
}
