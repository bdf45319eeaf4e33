package uc1608test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"periph.io/x/devices/v3/uc1608/image1bit"
)

func TestAddressDecoding(t *testing.T) {
	tests := []struct {
		name       string
		cmds       []byte
		wantColumn int
		wantPage   int
	}{
		{"origin", []byte{0x10, 0x00, 0xB0}, 0, 0},
		{"column 5", []byte{0x10, 0x05}, 5, 0},
		{"column 240", []byte{0x1F, 0x00}, 240, 0},
		{"low then high", []byte{0x03, 0x12}, 0x23, 0},
		{"page 8", []byte{0xB8}, 0, 8},
		{"reset clears", []byte{0x1A, 0x0A, 0xB3, 0xE2}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			for _, c := range tt.cmds {
				if err := b.Command(c); err != nil {
					t.Fatal(err)
				}
			}
			col, page := b.Address()
			if col != tt.wantColumn || page != tt.wantPage {
				t.Errorf("Address() = %d, %d, want %d, %d", col, page, tt.wantColumn, tt.wantPage)
			}
		})
	}
}

func TestRegisters(t *testing.T) {
	b := New()
	for _, c := range []byte{0x81, 0x47, 0xA7, 0xA5, 0xAF} {
		if err := b.Command(c); err != nil {
			t.Fatal(err)
		}
	}
	if b.Gain != 1 || b.Contrast != 7 {
		t.Errorf("gain, contrast = %d, %d, want 1, 7", b.Gain, b.Contrast)
	}
	if !b.Inverted || !b.AllPixelsOn || !b.Enabled {
		t.Errorf("flags = %v %v %v, want all set", b.Inverted, b.AllPixelsOn, b.Enabled)
	}

	// The parameter byte is not decoded as a command.
	if err := b.Command(0x81); err != nil {
		t.Fatal(err)
	}
	if err := b.Command(0xB5); err != nil {
		t.Fatal(err)
	}
	if _, page := b.Address(); page != 0 {
		t.Errorf("page = %d, parameter byte was decoded as a command", page)
	}
	if b.Gain != 2 || b.Contrast != 0x35 {
		t.Errorf("gain, contrast = %d, 0x%02X, want 2, 0x35", b.Gain, b.Contrast)
	}

	if err := b.Command(0xE2); err != nil {
		t.Fatal(err)
	}
	if b.Inverted || b.AllPixelsOn || b.Enabled {
		t.Error("system reset should clear the display flags")
	}
}

func TestDataAutoIncrement(t *testing.T) {
	b := New()
	for _, c := range []byte{0xB2, 0x10, 0x04} {
		b.Command(c)
	}
	for _, d := range []byte{0xAA, 0x55, 0xFF} {
		if err := b.Data(d); err != nil {
			t.Fatal(err)
		}
	}
	row := b.PageRow(2)
	if diff := cmp.Diff([]byte{0xAA, 0x55, 0xFF}, row[4:7]); diff != "" {
		t.Errorf("page 2 mismatch (-want +got):\n%s", diff)
	}
	if col, _ := b.Address(); col != 7 {
		t.Errorf("column = %d, want 7", col)
	}
}

func TestDataWrap(t *testing.T) {
	tests := []struct {
		name     string
		wrap     byte
		wantPage int
	}{
		{"wrap enabled", 0x89, 1},
		{"wrap disabled", 0x88, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			for _, c := range []byte{tt.wrap, 0xB0, 0x1F, 0x00} {
				b.Command(c)
			}
			b.Data(0x01) // column 240
			b.Data(0x02)
			col, page := b.Address()
			if page != tt.wantPage {
				t.Errorf("page = %d, want %d", page, tt.wantPage)
			}
			if tt.wantPage == 1 {
				if col != 1 {
					t.Errorf("column = %d, want 1", col)
				}
				if got := b.PageRow(1)[0]; got != 0x02 {
					t.Errorf("page 1 column 0 = 0x%02X, want 0x02", got)
				}
			} else if col != Columns+1 {
				t.Errorf("column = %d, want %d", col, Columns+1)
			}
		})
	}
}

func TestImage(t *testing.T) {
	b := New()
	// Column 240 and page 8 are outside the visible area.
	for _, c := range []byte{0xB0, 0x1E, 0x0F} {
		b.Command(c)
	}
	b.Data(0x80) // column 239, bit 7
	b.Data(0xFF) // column 240
	for _, c := range []byte{0xB8, 0x10, 0x00} {
		b.Command(c)
	}
	b.Data(0xFF)

	img := b.Image()
	if got := img.Bounds().Size(); got.X != 240 || got.Y != 64 {
		t.Fatalf("Image() size = %v, want 240x64", got)
	}
	if img.BitAt(239, 7) != image1bit.On {
		t.Error("pixel (239, 7) should be On")
	}
	lit := 0
	for _, p := range img.Pix {
		if p != 0 {
			lit++
		}
	}
	if lit != 1 {
		t.Errorf("lit bytes = %d, want 1", lit)
	}
}

func TestLog(t *testing.T) {
	b := New()
	b.AssertReset()
	if !b.InReset {
		t.Error("InReset should be set")
	}
	b.Delay(time.Millisecond)
	b.ReleaseReset()
	b.Command(0xAF)
	b.Data(0x12)

	want := []Op{
		{Kind: AssertReset},
		{Kind: Delay, D: time.Millisecond},
		{Kind: ReleaseReset},
		{Kind: Command, B: 0xAF},
		{Kind: Data, B: 0x12},
	}
	if diff := cmp.Diff(want, b.Ops); diff != "" {
		t.Errorf("Ops mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]byte{0xAF}, b.Commands()); diff != "" {
		t.Errorf("Commands() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]byte{0x12}, b.DataBytes()); diff != "" {
		t.Errorf("DataBytes() mismatch (-want +got):\n%s", diff)
	}

	b.ClearLog()
	if len(b.Ops) != 0 {
		t.Errorf("len(Ops) = %d after ClearLog", len(b.Ops))
	}
	if got := b.PageRow(0)[0]; got != 0x12 {
		t.Errorf("ClearLog should keep RAM, got 0x%02X", got)
	}
}

func TestErr(t *testing.T) {
	b := New()
	b.Err = errors.New("bus fault")
	if err := b.Command(0xAF); !errors.Is(err, b.Err) {
		t.Errorf("Command() error = %v", err)
	}
	if err := b.Data(0xFF); !errors.Is(err, b.Err) {
		t.Errorf("Data() error = %v", err)
	}
	if len(b.Ops) != 0 || b.Enabled || b.PageRow(0)[0] != 0 {
		t.Error("a failing bus should have no effect")
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{Op{Kind: Command, B: 0xE2}, "Command(0xE2)"},
		{Op{Kind: Data, B: 0x5F}, "Data(0x5F)"},
		{Op{Kind: Delay, D: 15 * time.Millisecond}, "Delay(15ms)"},
		{Op{Kind: AssertReset}, "AssertReset"},
		{Op{Kind: Kind(9)}, "Kind(9)"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
