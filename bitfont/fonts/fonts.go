// Package fonts holds the fonts shipped with the uc1608 driver and the
// registry the demo uses.
//
// Fixed5x7 is constant data. The larger fonts are rasterized once from
// golang.org/x/image faces the first time they are requested.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"

	"periph.io/x/devices/v3/uc1608/bitfont"
)

// Identifiers of the fonts in Registry.
const (
	Fixed5x7ID   bitfont.ID = iota // 1 page, proportional
	Basic7x13ID                    // 2 pages, fixed width
	GoMonoBoldID                   // 4 pages, Go Mono Bold at 24px
)

var (
	basicOnce sync.Once
	basic     *bitfont.Font
	basicErr  error

	monoOnce sync.Once
	mono     *bitfont.Font
	monoErr  error
)

// Basic7x13 returns basicfont.Face7x13 rasterized into two pages.
func Basic7x13() (*bitfont.Font, error) {
	basicOnce.Do(func() {
		basic, basicErr = bitfont.FromFace(basicfont.Face7x13, &bitfont.FaceOpts{
			Name:       "Basic 7x13",
			Start:      '!',
			End:        '~',
			SpaceWidth: 4,
			Spacing:    1,
		})
	})
	return basic, basicErr
}

// GoMonoBold returns Go Mono Bold at 24 pixels rasterized into four pages.
func GoMonoBold() (*bitfont.Font, error) {
	monoOnce.Do(func() {
		var face font.Face
		face, monoErr = goMonoBoldFace(24)
		if monoErr != nil {
			return
		}
		defer face.Close()
		mono, monoErr = bitfont.FromFace(face, &bitfont.FaceOpts{
			Name:       "Go Mono Bold 24px",
			Start:      '!',
			End:        '~',
			SpaceWidth: 8,
			Spacing:    2,
			Pages:      4,
		})
	})
	return mono, monoErr
}

func goMonoBoldFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse Go Mono Bold: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fonts: Go Mono Bold face: %w", err)
	}
	return face, nil
}

// Registry returns a new registry holding every font of this package.
func Registry() (bitfont.Registry, error) {
	b, err := Basic7x13()
	if err != nil {
		return nil, err
	}
	m, err := GoMonoBold()
	if err != nil {
		return nil, err
	}
	return bitfont.Registry{
		Fixed5x7ID:   Fixed5x7,
		Basic7x13ID:  b,
		GoMonoBoldID: m,
	}, nil
}
