// Package uc1608 controls a UC1608 monochrome LCD controller, as found on the
// ERC24064-1 240×64 panel, over its 8-bit 8080 parallel interface.
//
// The package also renders single-line text with the page-high bitmap fonts
// of package bitfont.
//
// # Display Characteristics
//
// - 1-bit monochrome, 240×64 visible pixels
// - Display RAM organised in pages: one byte covers 8 vertical pixels, LSB on top
// - Columns 0-240 and pages 0-8 are addressable; column 240 and page 8 are off panel
// - Adjustable gain (0-3) and contrast (0-63)
// - Display inversion
//
// # Hardware Connection
//
// The ERC24064-1 is wired in 8080 mode. Every line is a plain GPIO:
//
//	Display Pin → System Pin
//	GND         → GND
//	VDD         → 3.3V
//	D0-D7       → 8 GPIOs, D0 being the least significant bit
//	CS0         → GPIO (active low)
//	CD          → GPIO (low: command, high: data)
//	WR0         → GPIO (data latched on the rising edge)
//	RD1         → GPIO (held high, the driver never reads)
//	RST         → Optional: GPIO for hardware reset (active low)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/devices/v3/uc1608"
//		"periph.io/x/devices/v3/uc1608/bitfont"
//		"periph.io/x/devices/v3/uc1608/bitfont/fonts"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		pins := uc1608.ParallelPins{
//			CS:  gpioreg.ByName("GPIO8"),
//			CD:  gpioreg.ByName("GPIO7"),
//			WR:  gpioreg.ByName("GPIO11"),
//			RD:  gpioreg.ByName("GPIO9"),
//			RST: gpioreg.ByName("GPIO25"),
//		}
//		for i, n := range []string{"GPIO2", "GPIO3", "GPIO4", "GPIO17", "GPIO27", "GPIO22", "GPIO10", "GPIO5"} {
//			pins.D[i] = gpioreg.ByName(n)
//		}
//		bus, _ := uc1608.NewParallel(pins)
//
//		// New resets and configures the controller.
//		dev, _ := uc1608.New(bus, nil)
//		defer dev.PowerDown()
//
//		reg, _ := fonts.Registry()
//		m, _ := bitfont.NewManager(reg, nil)
//		text := uc1608.NewText(dev, m)
//		text.DrawString(5, 0, fonts.Fixed5x7ID, "hello universe")
//	}
//
// # Drawing
//
// DrawBitmap writes a page-packed bitmap at a column and page. ClearArea
// zeroes an inclusive range of columns and pages. Neither keeps a frame
// buffer: every call goes straight to the bus.
//
// Dev also implements display.Drawer. Draw converts the source image to
// 1-bit with image1bit.BitModel and writes every page the destination
// rectangle touches, so pixels of those pages outside the rectangle are
// cleared.
//
// # Power Down
//
// PowerDown issues a system reset and waits for the panel to discharge. Further
// drawing returns ErrHalted until Init is called again.
//
// # Testing Without Hardware
//
// Package uc1608test provides a Bus that records the protocol and emulates the
// display RAM:
//
//	bus := uc1608test.New()
//	dev, _ := uc1608.New(bus, nil)
//	// ...
//	img := bus.Image()
//
// # Datasheet
//
// https://www.buydisplay.com/download/ic/UC1608.pdf
//
// https://www.buydisplay.com/download/manual/ERC24064-1_Series_Datasheet.pdf
package uc1608
