package uc1608

import (
	"fmt"

	"periph.io/x/devices/v3/uc1608/bitfont"
)

// Text draws single lines of text with the fonts of a bitfont.Manager.
type Text struct {
	dev   *Dev
	fonts *bitfont.Manager
}

// NewText returns a Text drawing on dev with the fonts of m.
func NewText(dev *Dev, m *bitfont.Manager) *Text {
	return &Text{dev: dev, fonts: m}
}

// DrawString draws s left to right with its top-left corner at column, page.
// Each character is followed by the font's blank spacing columns. It returns
// the column following the last spacing, where the next string would start.
//
// Text does not wrap. Characters starting past MaxColumn are skipped while the
// returned column keeps advancing; use bitfont.Manager.Measure to fit text
// beforehand. Nothing is drawn when s contains a character the font lacks.
func (t *Text) DrawString(column, page int, id bitfont.ID, s string) (int, error) {
	if err := checkColumn(column); err != nil {
		return column, err
	}
	f, err := t.fonts.Font(id)
	if err != nil {
		return column, err
	}
	if err := checkPage(page); err != nil {
		return column, err
	}
	if err := checkPage(page + f.PageHeight - 1); err != nil {
		return column, fmt.Errorf("uc1608: font %s is %d pages tall: %w", f.Name, f.PageHeight, err)
	}
	// Reject unknown characters before anything reaches the display.
	if _, err := t.fonts.Measure(id, s); err != nil {
		return column, err
	}

	for _, r := range s {
		bm, err := t.fonts.GlyphBitmap(id, r)
		if err != nil {
			return column, err
		}
		if column, err = t.blit(column, page, bm); err != nil {
			return column, err
		}

		// Trailing character spacing
		bm, err = t.fonts.SpacingBitmap(id)
		if err != nil {
			return column, err
		}
		if column, err = t.blit(column, page, bm); err != nil {
			return column, err
		}
	}
	return column, nil
}

// blit draws bm at column, page, releases it and returns the advanced column.
func (t *Text) blit(column, page int, bm *bitfont.Bitmap) (int, error) {
	defer bm.Release()
	if column <= MaxColumn {
		if err := t.dev.DrawBitmap(column, page, bm.Pix, bm.Width, bm.Pages); err != nil {
			return column, err
		}
	}
	return column + bm.Width, nil
}
