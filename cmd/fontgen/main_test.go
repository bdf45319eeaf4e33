package main

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"

	"periph.io/x/devices/v3/uc1608/bitfont"
)

func TestGenerate(t *testing.T) {
	f, err := bitfont.FromFace(basicfont.Face7x13, &bitfont.FaceOpts{Name: "Basic 7x13", Start: 'A', End: 'C', Spacing: 1})
	if err != nil {
		t.Fatal(err)
	}
	src, err := generate(f, "fonts", "Tiny")
	if err != nil {
		t.Fatal(err)
	}

	file, err := parser.ParseFile(token.NewFileSet(), "tiny.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	if file.Name.Name != "fonts" {
		t.Errorf("package = %s, want fonts", file.Name.Name)
	}
	for _, want := range []string{
		"var Tiny = &bitfont.Font{",
		"PageHeight: 2,",
		"StartChar:  'A',",
		"var TinyGlyphs = []bitfont.Glyph{",
		"{Width: 7, Offset: 14}, // 'B'",
		"var TinyBitmaps = []byte{",
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated source lacks %q:\n%s", want, src)
		}
	}
}

func TestChar(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"!", '!', false},
		{"é", 'é', false},
		{"", 0, true},
		{"ab", 0, true},
	}
	for _, tt := range tests {
		got, err := char(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("char(%q) = %q, %v, want %q, error %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
