package bitfont

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRangeGlyph is returned for a character the font has no glyph
	// for.
	ErrOutOfRangeGlyph = errors.New("bitfont: character out of font range")
	// ErrAllocation is returned when a bitmap buffer cannot be obtained.
	ErrAllocation = errors.New("bitfont: bitmap allocation failed")
	// ErrUnknownFont is returned for an ID missing from the registry.
	ErrUnknownFont = errors.New("bitfont: unknown font")
	// ErrInvalidFont is returned by Validate for inconsistent font data.
	ErrInvalidFont = errors.New("bitfont: invalid font")
)

// ID identifies a font in a Registry.
type ID int

// Glyph stores the width and bitmap location of one character.
type Glyph struct {
	Width  uint8  // Width of the character in pixels
	Offset uint16 // Offset of the bitmap, in bytes, into Font.Bitmaps
}

// Font describes a fixed-page raster font.
type Font struct {
	Name       string
	PageHeight int     // Height of every glyph in pages (8 pixels)
	StartChar  rune    // Character of Glyphs[0]
	SpaceWidth int     // Width in pixels of the space character
	Spacing    int     // Blank columns drawn after each character
	Glyphs     []Glyph // One entry per character from StartChar on
	Bitmaps    []byte  // Pool holding every glyph bitmap
}

// EndChar returns the last character covered by the glyph table.
func (f *Font) EndChar() rune {
	return f.StartChar + rune(len(f.Glyphs)) - 1
}

// Has reports whether r can be rendered with f.
func (f *Font) Has(r rune) bool {
	if r == ' ' {
		return true
	}
	i := r - f.StartChar
	return i >= 0 && int(i) < len(f.Glyphs)
}

// glyph returns the table entry for r.
func (f *Font) glyph(r rune) (Glyph, error) {
	i := r - f.StartChar
	if i < 0 || int(i) >= len(f.Glyphs) {
		return Glyph{}, fmt.Errorf("%w: %q (0x%X) not in %q..%q of %s",
			ErrOutOfRangeGlyph, r, r, f.StartChar, f.EndChar(), f.Name)
	}
	return f.Glyphs[i], nil
}

// Validate checks that the font's metrics are usable and that every glyph
// bitmap lies inside the bitmap pool.
func (f *Font) Validate() error {
	if f.PageHeight <= 0 {
		return fmt.Errorf("%w: %s: page height must be positive", ErrInvalidFont, f.Name)
	}
	if f.SpaceWidth < 0 || f.Spacing < 0 {
		return fmt.Errorf("%w: %s: negative space width or spacing", ErrInvalidFont, f.Name)
	}
	for i, g := range f.Glyphs {
		end := int(g.Offset) + int(g.Width)*f.PageHeight
		if end > len(f.Bitmaps) {
			return fmt.Errorf("%w: %s: glyph %q ends at byte %d, pool has %d",
				ErrInvalidFont, f.Name, f.StartChar+rune(i), end, len(f.Bitmaps))
		}
	}
	return nil
}

// Registry maps font identifiers to fonts.
type Registry map[ID]*Font
