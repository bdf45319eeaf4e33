package bitfont

import (
	"fmt"
	"sync"

	"periph.io/x/devices/v3/uc1608/image1bit"
)

// Bitmap is a freshly allocated glyph or spacing bitmap of Width columns by
// Pages pages. Pix[p*Width+c] is column c of page row p.
//
// A Bitmap is owned by the caller, who must call Release once the bytes have
// been written out. Pix must not be used after Release.
type Bitmap struct {
	Pix   []byte
	Width int
	Pages int

	arena    *Arena
	released bool
}

// Release returns the buffer to the arena it came from. Calling it more than
// once has no effect.
func (b *Bitmap) Release() {
	if b == nil || b.released {
		return
	}
	b.released = true
	b.arena.free(len(b.Pix))
	b.Pix = nil
}

// Image returns an image view of the bitmap sharing its bytes.
func (b *Bitmap) Image() *image1bit.VerticalLSB {
	return image1bit.FromPages(b.Pix, b.Width, b.Pages)
}

// Arena bounds the memory held by outstanding bitmaps, like the small heap of
// the microcontroller the fonts were designed for. The zero value and a nil
// *Arena never refuse an allocation.
type Arena struct {
	mu    sync.Mutex
	limit int // 0 means unbounded
	used  int
}

// NewArena returns an arena that refuses allocations once more than limit
// bytes are held by unreleased bitmaps.
func NewArena(limit int) *Arena {
	return &Arena{limit: limit}
}

// InUse returns the number of bytes held by unreleased bitmaps.
func (a *Arena) InUse() int {
	if a == nil {
		return 0
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.used
}

// alloc returns a zeroed Bitmap of width columns by pages pages.
func (a *Arena) alloc(width, pages int) (*Bitmap, error) {
	n := width * pages
	if width < 0 || pages < 0 {
		return nil, fmt.Errorf("%w: %dx%d pages", ErrAllocation, width, pages)
	}
	if a != nil {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.limit > 0 && a.used+n > a.limit {
			return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use",
				ErrAllocation, n, a.used, a.limit)
		}
		a.used += n
	}
	return &Bitmap{
		Pix:   make([]byte, n),
		Width: width,
		Pages: pages,
		arena: a,
	}, nil
}

func (a *Arena) free(n int) {
	if a == nil {
		return
	}
	a.mu.Lock()
	a.used -= n
	a.mu.Unlock()
}
