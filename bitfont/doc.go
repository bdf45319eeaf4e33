// Package bitfont resolves characters of fixed-page raster fonts into bitmaps
// ready to be written to a page-addressed LCD.
//
// A Font is read-only data: a table of per-glyph widths and offsets into a
// shared pool of bitmap bytes. Each glyph bitmap is Width columns by
// PageHeight pages, stored page row by page row with one byte per column (see
// package image1bit for the bit layout).
//
// Fonts are registered under small integer identifiers in a Registry handed to
// NewManager. The Manager hands out freshly allocated Bitmaps; callers Release
// them once written to the display:
//
//	m, err := bitfont.NewManager(fonts.Registry(), nil)
//	...
//	bm, err := m.GlyphBitmap(fonts.Fixed5x7ID, 'A')
//	if err != nil {
//		return err
//	}
//	defer bm.Release()
//
// The space character is never looked up in the glyph table: it always yields
// an all-zero bitmap SpaceWidth columns wide.
package bitfont
