package bitfont

import (
	"fmt"
	"sort"
)

// Opts is the configuration for a Manager.
type Opts struct {
	// Arena bounding outstanding bitmaps (optional, nil for unbounded)
	Arena *Arena
}

// Manager resolves characters of registered fonts into bitmaps.
type Manager struct {
	fonts Registry
	arena *Arena
}

// NewManager creates a Manager serving the fonts of reg. Every font is
// validated up front so that lookups never read outside a bitmap pool.
//
// opts can be nil to use defaults.
func NewManager(reg Registry, opts *Opts) (*Manager, error) {
	if opts == nil {
		opts = &Opts{}
	}
	fonts := make(Registry, len(reg))
	for id, f := range reg {
		if f == nil {
			return nil, fmt.Errorf("%w: font %d is nil", ErrInvalidFont, id)
		}
		if err := f.Validate(); err != nil {
			return nil, err
		}
		fonts[id] = f
	}
	return &Manager{fonts: fonts, arena: opts.Arena}, nil
}

// Font returns the font registered under id.
func (m *Manager) Font(id ID) (*Font, error) {
	f, ok := m.fonts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFont, id)
	}
	return f, nil
}

// IDs returns the registered identifiers in ascending order.
func (m *Manager) IDs() []ID {
	ids := make([]ID, 0, len(m.fonts))
	for id := range m.fonts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// GlyphBitmap returns the bitmap of character r in font id. The bitmap is
// Width columns by the font's PageHeight pages.
func (m *Manager) GlyphBitmap(id ID, r rune) (*Bitmap, error) {
	f, err := m.Font(id)
	if err != nil {
		return nil, err
	}

	// Space is synthesized, never read from the pool
	if r == ' ' {
		return m.arena.alloc(f.SpaceWidth, f.PageHeight)
	}

	g, err := f.glyph(r)
	if err != nil {
		return nil, err
	}
	bm, err := m.arena.alloc(int(g.Width), f.PageHeight)
	if err != nil {
		return nil, err
	}
	copy(bm.Pix, f.Bitmaps[int(g.Offset):int(g.Offset)+len(bm.Pix)])
	return bm, nil
}

// SpacingBitmap returns the blank bitmap drawn after every character of font
// id.
func (m *Manager) SpacingBitmap(id ID) (*Bitmap, error) {
	f, err := m.Font(id)
	if err != nil {
		return nil, err
	}
	return m.arena.alloc(f.Spacing, f.PageHeight)
}

// Advance returns how far the cursor moves after drawing r in font id,
// including the trailing spacing.
func (m *Manager) Advance(id ID, r rune) (int, error) {
	f, err := m.Font(id)
	if err != nil {
		return 0, err
	}
	if r == ' ' {
		return f.SpaceWidth + f.Spacing, nil
	}
	g, err := f.glyph(r)
	if err != nil {
		return 0, err
	}
	return int(g.Width) + f.Spacing, nil
}

// Measure returns the width in pixels text occupies when drawn in font id.
func (m *Manager) Measure(id ID, text string) (int, error) {
	total := 0
	for _, r := range text {
		w, err := m.Advance(id, r)
		if err != nil {
			return 0, err
		}
		total += w
	}
	return total, nil
}
