// fontgen rasterizes a TrueType font, or one of the faces bundled with
// golang.org/x/image, into a bitfont.Font and writes it as Go source.
//
// Usage:
//
//	fontgen -face gomono -size 16 -var Mono16 -o mono16.go
//	fontgen -ttf DejaVuSans.ttf -size 12 -pages 2 -var Sans12 -o sans12.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"periph.io/x/devices/v3/uc1608/bitfont"
)

var (
	faceName = flag.String("face", "gomono", "Bundled face: basic, gomono, gomonobold or goregular")
	ttfPath  = flag.String("ttf", "", "TrueType or OpenType file, overrides -face")
	size     = flag.Float64("size", 16, "Size in pixels")
	start    = flag.String("start", "!", "First character")
	end      = flag.String("end", "~", "Last character")
	space    = flag.Int("space", 0, "Width of the space character (0: the face's advance)")
	spacing  = flag.Int("spacing", 1, "Blank columns after each character")
	pages    = flag.Int("pages", 0, "Height in pages (0: fit the face)")
	pkg      = flag.String("pkg", "fonts", "Package of the generated file")
	varName  = flag.String("var", "", "Name of the generated variable (required)")
	out      = flag.String("o", "", "Output file (default: stdout)")
)

func main() {
	flag.Parse()
	if *varName == "" {
		log.Fatalf("-var is required")
	}
	first, err := char(*start)
	if err != nil {
		log.Fatalf("-start: %v", err)
	}
	last, err := char(*end)
	if err != nil {
		log.Fatalf("-end: %v", err)
	}

	face, name, err := loadFace()
	if err != nil {
		log.Fatalf("Failed to load face: %v", err)
	}
	defer face.Close()

	f, err := bitfont.FromFace(face, &bitfont.FaceOpts{
		Name:       name,
		Start:      first,
		End:        last,
		SpaceWidth: *space,
		Spacing:    *spacing,
		Pages:      *pages,
	})
	if err != nil {
		log.Fatalf("Failed to rasterize %s: %v", name, err)
	}

	src, err := generate(f, *pkg, *varName)
	if err != nil {
		log.Fatalf("Failed to generate source: %v", err)
	}
	if *out == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s: %d glyphs, %d pages, %d bytes\n", *out, len(f.Glyphs), f.PageHeight, len(f.Bitmaps))
}

func char(s string) (rune, error) {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || n != len(s) {
		return 0, fmt.Errorf("%q is not a single character", s)
	}
	return r, nil
}

// loadFace returns the selected face and a name for it.
func loadFace() (font.Face, string, error) {
	if *faceName == "basic" && *ttfPath == "" {
		return basicfont.Face7x13, "Basic 7x13", nil
	}

	var ttf []byte
	name := ""
	switch {
	case *ttfPath != "":
		b, err := os.ReadFile(*ttfPath)
		if err != nil {
			return nil, "", err
		}
		ttf, name = b, *ttfPath
	case *faceName == "gomono":
		ttf, name = gomono.TTF, "Go Mono"
	case *faceName == "gomonobold":
		ttf, name = gomonobold.TTF, "Go Mono Bold"
	case *faceName == "goregular":
		ttf, name = goregular.TTF, "Go Regular"
	default:
		return nil, "", fmt.Errorf("unknown face %q", *faceName)
	}

	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, "", err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    *size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, "", err
	}
	return face, fmt.Sprintf("%s %gpx", name, *size), nil
}

// generate writes f as a Go variable named v, with one line per glyph in both
// tables.
func generate(f *bitfont.Font, pkg, v string) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by fontgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import %q\n\n", "periph.io/x/devices/v3/uc1608/bitfont")

	fmt.Fprintf(&b, "// %s is %s, %d pages tall, covering %q to %q.\n", v, f.Name, f.PageHeight, f.StartChar, f.EndChar())
	fmt.Fprintf(&b, "var %s = &bitfont.Font{\n", v)
	fmt.Fprintf(&b, "Name: %q,\n", f.Name)
	fmt.Fprintf(&b, "PageHeight: %d,\n", f.PageHeight)
	fmt.Fprintf(&b, "StartChar: %q,\n", f.StartChar)
	fmt.Fprintf(&b, "SpaceWidth: %d,\n", f.SpaceWidth)
	fmt.Fprintf(&b, "Spacing: %d,\n", f.Spacing)
	fmt.Fprintf(&b, "Glyphs: %sGlyphs,\n", v)
	fmt.Fprintf(&b, "Bitmaps: %sBitmaps,\n", v)
	fmt.Fprintf(&b, "}\n\n")

	fmt.Fprintf(&b, "var %sGlyphs = []bitfont.Glyph{\n", v)
	for i, g := range f.Glyphs {
		fmt.Fprintf(&b, "{Width: %d, Offset: %d}, // %q\n", g.Width, g.Offset, f.StartChar+rune(i))
	}
	fmt.Fprintf(&b, "}\n\n")

	fmt.Fprintf(&b, "var %sBitmaps = []byte{\n", v)
	for i, g := range f.Glyphs {
		n := int(g.Width) * f.PageHeight
		if n == 0 {
			continue
		}
		for _, c := range f.Bitmaps[g.Offset : int(g.Offset)+n] {
			fmt.Fprintf(&b, "0x%02X, ", c)
		}
		fmt.Fprintf(&b, "// %q\n", f.StartChar+rune(i))
	}
	fmt.Fprintf(&b, "}\n")

	return format.Source(b.Bytes())
}
