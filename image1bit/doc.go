// Package image1bit provides a 1-bit monochrome image format for page-addressed
// LCD controllers such as the UC1608.
//
// The controller memory is organised in pages: horizontal strips 8 pixels tall.
// Each byte covers one column of one page, with the least significant bit at the
// top of the strip. Bytes of a page are stored left to right, and pages are
// stored top to bottom.
//
// Memory layout example for a 3-pixel wide, 8-pixel tall image:
//
//	Column:   0     1     2
//	Byte:     0x01  0x80  0xFF
//	          (0x01 = only the top pixel of column 0 is on)
//	          (0x80 = only the bottom pixel of column 1 is on)
//	          (0xFF = the whole of column 2 is on)
//
// This package provides:
//
// - Bit: A color type representing one monochrome pixel
// - BitModel: A color model for converting standard Go colors to Bit
// - VerticalLSB: An image.Image implementation matching the page layout
//
// Example usage:
//
//	// Create a 240x64 image (8 pages)
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 240, 64))
//
//	// Turn a pixel on
//	img.SetBit(10, 20, image1bit.On)
//
//	// Page row 2 as it would be sent to the controller
//	row := img.PageRow(2)
package image1bit
