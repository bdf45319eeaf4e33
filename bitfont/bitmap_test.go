package bitfont

import (
	"errors"
	"testing"

	"periph.io/x/devices/v3/uc1608/image1bit"
)

func TestArenaLimit(t *testing.T) {
	a := NewArena(10)
	m := newTestManager(t, &Opts{Arena: a})

	// 'a' takes 4 bytes in the two-page font
	var held []*Bitmap
	for i := 0; i < 2; i++ {
		bm, err := m.GlyphBitmap(1, 'a')
		if err != nil {
			t.Fatalf("allocation %d: %v", i, err)
		}
		held = append(held, bm)
	}
	if got := a.InUse(); got != 8 {
		t.Errorf("InUse() = %d, want 8", got)
	}

	if _, err := m.GlyphBitmap(1, 'a'); !errors.Is(err, ErrAllocation) {
		t.Fatalf("GlyphBitmap() error = %v, want ErrAllocation", err)
	}
	// one byte of spacing in the single page font still fits
	sp, err := m.SpacingBitmap(0)
	if err != nil {
		t.Fatalf("SpacingBitmap() within budget error = %v", err)
	}
	defer sp.Release()

	held[0].Release()
	if got := a.InUse(); got != 5 {
		t.Errorf("InUse() after release = %d, want 5", got)
	}
	bm, err := m.GlyphBitmap(1, 'b')
	if err != nil {
		t.Fatalf("GlyphBitmap() after release error = %v", err)
	}
	bm.Release()
	held[1].Release()
}

func TestBitmapReleaseTwice(t *testing.T) {
	a := NewArena(0)
	m := newTestManager(t, &Opts{Arena: a})

	bm, err := m.GlyphBitmap(0, '"')
	if err != nil {
		t.Fatal(err)
	}
	if got := a.InUse(); got != 3 {
		t.Errorf("InUse() = %d, want 3", got)
	}
	bm.Release()
	bm.Release()
	if got := a.InUse(); got != 0 {
		t.Errorf("InUse() after double release = %d, want 0", got)
	}
	if bm.Pix != nil {
		t.Error("Pix should be dropped on release")
	}
}

func TestNilArena(t *testing.T) {
	var a *Arena
	if got := a.InUse(); got != 0 {
		t.Errorf("InUse() = %d, want 0", got)
	}
	bm, err := a.alloc(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(bm.Pix) != 8 {
		t.Errorf("len(Pix) = %d, want 8", len(bm.Pix))
	}
	bm.Release()
}

func TestArenaNegativeSize(t *testing.T) {
	if _, err := NewArena(0).alloc(-1, 1); !errors.Is(err, ErrAllocation) {
		t.Errorf("alloc(-1, 1) error = %v, want ErrAllocation", err)
	}
}

func TestBitmapImage(t *testing.T) {
	m := newTestManager(t, nil)
	bm, err := m.GlyphBitmap(1, 'a')
	if err != nil {
		t.Fatal(err)
	}
	defer bm.Release()

	img := bm.Image()
	if got := img.Bounds().Size(); got.X != 2 || got.Y != 16 {
		t.Errorf("Image() size = %v, want 2x16", got)
	}
	// 0x01 at column 0 of page 0, 0x04 at column 1 of page 1
	if img.BitAt(0, 0) != image1bit.On {
		t.Error("BitAt(0, 0) should be On")
	}
	if img.BitAt(1, 10) != image1bit.On {
		t.Error("BitAt(1, 10) should be On")
	}
	if img.BitAt(1, 0) != image1bit.Off {
		t.Error("BitAt(1, 0) should be Off")
	}
}
