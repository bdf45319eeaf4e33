package bitfont

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"periph.io/x/devices/v3/uc1608/image1bit"
)

// FaceOpts controls how FromFace rasterizes a face.
type FaceOpts struct {
	Name       string
	Start, End rune // Inclusive character range (default: '!' to '~')
	SpaceWidth int  // Width of ' ' (default: the face's advance for ' ')
	Spacing    int  // Blank columns after each character (1 when opts is nil)
	Pages      int  // Glyph height in pages (default: fits ascent + descent)
}

// FromFace rasterizes the characters of face into a Font. Glyphs are top
// aligned: the baseline sits Ascent pixels below the top of the first page.
// Characters the face lacks get a zero-width glyph.
//
// opts can be nil to use defaults.
func FromFace(face font.Face, opts *FaceOpts) (*Font, error) {
	o := FaceOpts{Start: '!', End: '~', Spacing: 1, SpaceWidth: -1}
	if opts != nil {
		o = *opts
		if o.Start == 0 && o.End == 0 {
			o.Start, o.End = '!', '~'
		}
		if o.SpaceWidth == 0 {
			o.SpaceWidth = -1
		}
	}
	if o.End < o.Start {
		return nil, fmt.Errorf("%w: %s: empty range %q..%q", ErrInvalidFont, o.Name, o.Start, o.End)
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	if o.Pages == 0 {
		o.Pages = (ascent + m.Descent.Ceil() + 7) / 8
	}
	if o.Pages <= 0 {
		return nil, fmt.Errorf("%w: %s: face has no height", ErrInvalidFont, o.Name)
	}
	if o.SpaceWidth < 0 {
		adv, _ := face.GlyphAdvance(' ')
		o.SpaceWidth = adv.Ceil()
	}

	f := &Font{
		Name:       o.Name,
		PageHeight: o.Pages,
		StartChar:  o.Start,
		SpaceWidth: o.SpaceWidth,
		Spacing:    o.Spacing,
		Glyphs:     make([]Glyph, 0, o.End-o.Start+1),
	}
	src := image.NewUniform(image1bit.On)
	for r := o.Start; r <= o.End; r++ {
		width := 0
		if adv, ok := face.GlyphAdvance(r); ok {
			width = adv.Ceil()
		}
		if width > math.MaxUint8 {
			return nil, fmt.Errorf("%w: %s: glyph %q is %d pixels wide", ErrInvalidFont, o.Name, r, width)
		}
		offset := len(f.Bitmaps)
		if offset > math.MaxUint16 {
			return nil, fmt.Errorf("%w: %s: bitmap pool exceeds %d bytes", ErrInvalidFont, o.Name, math.MaxUint16)
		}
		if width > 0 {
			img := image1bit.NewVerticalLSB(image.Rect(0, 0, width, o.Pages*8))
			d := font.Drawer{Dst: img, Src: src, Face: face, Dot: fixed.P(0, ascent)}
			d.DrawString(string(r))
			f.Bitmaps = append(f.Bitmaps, img.Pix...)
		}
		f.Glyphs = append(f.Glyphs, Glyph{Width: uint8(width), Offset: uint16(offset)})
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}
