package fonts

import "periph.io/x/devices/v3/uc1608/bitfont"

// Fixed5x7 is a proportional 5x7 pixel font, one page tall, covering '!' to '~'.
var Fixed5x7 = &bitfont.Font{
	Name:       "Fixed 5x7",
	PageHeight: 1,
	StartChar:  '!',
	SpaceWidth: 3,
	Spacing:    1,
	Glyphs:     fixed5x7Glyphs,
	Bitmaps:    fixed5x7Bitmaps,
}

var fixed5x7Glyphs = []bitfont.Glyph{
	{Width: 1, Offset: 0},   // '!'
	{Width: 3, Offset: 1},   // '"'
	{Width: 5, Offset: 4},   // '#'
	{Width: 5, Offset: 9},   // '$'
	{Width: 5, Offset: 14},  // '%'
	{Width: 5, Offset: 19},  // '&'
	{Width: 2, Offset: 24},  // '\''
	{Width: 3, Offset: 26},  // '('
	{Width: 3, Offset: 29},  // ')'
	{Width: 5, Offset: 32},  // '*'
	{Width: 5, Offset: 37},  // '+'
	{Width: 2, Offset: 42},  // ','
	{Width: 5, Offset: 44},  // '-'
	{Width: 2, Offset: 49},  // '.'
	{Width: 5, Offset: 51},  // '/'
	{Width: 5, Offset: 56},  // '0'
	{Width: 3, Offset: 61},  // '1'
	{Width: 5, Offset: 64},  // '2'
	{Width: 5, Offset: 69},  // '3'
	{Width: 5, Offset: 74},  // '4'
	{Width: 5, Offset: 79},  // '5'
	{Width: 5, Offset: 84},  // '6'
	{Width: 5, Offset: 89},  // '7'
	{Width: 5, Offset: 94},  // '8'
	{Width: 5, Offset: 99},  // '9'
	{Width: 2, Offset: 104}, // ':'
	{Width: 2, Offset: 106}, // ';'
	{Width: 4, Offset: 108}, // '<'
	{Width: 5, Offset: 112}, // '='
	{Width: 4, Offset: 117}, // '>'
	{Width: 5, Offset: 121}, // '?'
	{Width: 5, Offset: 126}, // '@'
	{Width: 5, Offset: 131}, // 'A'
	{Width: 5, Offset: 136}, // 'B'
	{Width: 5, Offset: 141}, // 'C'
	{Width: 5, Offset: 146}, // 'D'
	{Width: 5, Offset: 151}, // 'E'
	{Width: 5, Offset: 156}, // 'F'
	{Width: 5, Offset: 161}, // 'G'
	{Width: 5, Offset: 166}, // 'H'
	{Width: 3, Offset: 171}, // 'I'
	{Width: 5, Offset: 174}, // 'J'
	{Width: 5, Offset: 179}, // 'K'
	{Width: 5, Offset: 184}, // 'L'
	{Width: 5, Offset: 189}, // 'M'
	{Width: 5, Offset: 194}, // 'N'
	{Width: 5, Offset: 199}, // 'O'
	{Width: 5, Offset: 204}, // 'P'
	{Width: 5, Offset: 209}, // 'Q'
	{Width: 5, Offset: 214}, // 'R'
	{Width: 5, Offset: 219}, // 'S'
	{Width: 5, Offset: 224}, // 'T'
	{Width: 5, Offset: 229}, // 'U'
	{Width: 5, Offset: 234}, // 'V'
	{Width: 5, Offset: 239}, // 'W'
	{Width: 5, Offset: 244}, // 'X'
	{Width: 5, Offset: 249}, // 'Y'
	{Width: 5, Offset: 254}, // 'Z'
	{Width: 3, Offset: 259}, // '['
	{Width: 5, Offset: 262}, // '\'
	{Width: 3, Offset: 267}, // ']'
	{Width: 5, Offset: 270}, // '^'
	{Width: 5, Offset: 275}, // '_'
	{Width: 3, Offset: 280}, // '`'
	{Width: 5, Offset: 283}, // 'a'
	{Width: 5, Offset: 288}, // 'b'
	{Width: 5, Offset: 293}, // 'c'
	{Width: 5, Offset: 298}, // 'd'
	{Width: 5, Offset: 303}, // 'e'
	{Width: 5, Offset: 308}, // 'f'
	{Width: 5, Offset: 313}, // 'g'
	{Width: 5, Offset: 318}, // 'h'
	{Width: 3, Offset: 323}, // 'i'
	{Width: 4, Offset: 326}, // 'j'
	{Width: 4, Offset: 330}, // 'k'
	{Width: 3, Offset: 334}, // 'l'
	{Width: 5, Offset: 337}, // 'm'
	{Width: 5, Offset: 342}, // 'n'
	{Width: 5, Offset: 347}, // 'o'
	{Width: 5, Offset: 352}, // 'p'
	{Width: 5, Offset: 357}, // 'q'
	{Width: 5, Offset: 362}, // 'r'
	{Width: 5, Offset: 367}, // 's'
	{Width: 5, Offset: 372}, // 't'
	{Width: 5, Offset: 377}, // 'u'
	{Width: 5, Offset: 382}, // 'v'
	{Width: 5, Offset: 387}, // 'w'
	{Width: 5, Offset: 392}, // 'x'
	{Width: 5, Offset: 397}, // 'y'
	{Width: 5, Offset: 402}, // 'z'
	{Width: 3, Offset: 407}, // '{'
	{Width: 1, Offset: 410}, // '|'
	{Width: 3, Offset: 411}, // '}'
	{Width: 5, Offset: 414}, // '~'
}

var fixed5x7Bitmaps = []byte{
	0x5F,                         // !
	0x07, 0x00, 0x07,             // "
	0x14, 0x7F, 0x14, 0x7F, 0x14, // #
	0x24, 0x2A, 0x7F, 0x2A, 0x12, // $
	0x23, 0x13, 0x08, 0x64, 0x62, // %
	0x36, 0x49, 0x55, 0x22, 0x50, // &
	0x05, 0x03,                   // '
	0x1C, 0x22, 0x41,             // (
	0x41, 0x22, 0x1C,             // )
	0x08, 0x2A, 0x1C, 0x2A, 0x08, // *
	0x08, 0x08, 0x3E, 0x08, 0x08, // +
	0x50, 0x30,                   // ,
	0x08, 0x08, 0x08, 0x08, 0x08, // -
	0x60, 0x60,                   // .
	0x20, 0x10, 0x08, 0x04, 0x02, // /
	0x3E, 0x51, 0x49, 0x45, 0x3E, // 0
	0x42, 0x7F, 0x40,             // 1
	0x42, 0x61, 0x51, 0x49, 0x46, // 2
	0x21, 0x41, 0x45, 0x4B, 0x31, // 3
	0x18, 0x14, 0x12, 0x7F, 0x10, // 4
	0x27, 0x45, 0x45, 0x45, 0x39, // 5
	0x3C, 0x4A, 0x49, 0x49, 0x30, // 6
	0x01, 0x71, 0x09, 0x05, 0x03, // 7
	0x36, 0x49, 0x49, 0x49, 0x36, // 8
	0x06, 0x49, 0x49, 0x29, 0x1E, // 9
	0x36, 0x36,                   // :
	0x56, 0x36,                   // ;
	0x08, 0x14, 0x22, 0x41,       // <
	0x14, 0x14, 0x14, 0x14, 0x14, // =
	0x41, 0x22, 0x14, 0x08,       // >
	0x02, 0x01, 0x51, 0x09, 0x06, // ?
	0x32, 0x49, 0x79, 0x41, 0x3E, // @
	0x7E, 0x11, 0x11, 0x11, 0x7E, // A
	0x7F, 0x49, 0x49, 0x49, 0x36, // B
	0x3E, 0x41, 0x41, 0x41, 0x22, // C
	0x7F, 0x41, 0x41, 0x22, 0x1C, // D
	0x7F, 0x49, 0x49, 0x49, 0x41, // E
	0x7F, 0x09, 0x09, 0x01, 0x01, // F
	0x3E, 0x41, 0x41, 0x51, 0x32, // G
	0x7F, 0x08, 0x08, 0x08, 0x7F, // H
	0x41, 0x7F, 0x41,             // I
	0x20, 0x40, 0x41, 0x3F, 0x01, // J
	0x7F, 0x08, 0x14, 0x22, 0x41, // K
	0x7F, 0x40, 0x40, 0x40, 0x40, // L
	0x7F, 0x02, 0x04, 0x02, 0x7F, // M
	0x7F, 0x04, 0x08, 0x10, 0x7F, // N
	0x3E, 0x41, 0x41, 0x41, 0x3E, // O
	0x7F, 0x09, 0x09, 0x09, 0x06, // P
	0x3E, 0x41, 0x51, 0x21, 0x5E, // Q
	0x7F, 0x09, 0x19, 0x29, 0x46, // R
	0x46, 0x49, 0x49, 0x49, 0x31, // S
	0x01, 0x01, 0x7F, 0x01, 0x01, // T
	0x3F, 0x40, 0x40, 0x40, 0x3F, // U
	0x1F, 0x20, 0x40, 0x20, 0x1F, // V
	0x7F, 0x20, 0x18, 0x20, 0x7F, // W
	0x63, 0x14, 0x08, 0x14, 0x63, // X
	0x03, 0x04, 0x78, 0x04, 0x03, // Y
	0x61, 0x51, 0x49, 0x45, 0x43, // Z
	0x7F, 0x41, 0x41,             // [
	0x02, 0x04, 0x08, 0x10, 0x20, // \
	0x41, 0x41, 0x7F,             // ]
	0x04, 0x02, 0x01, 0x02, 0x04, // ^
	0x40, 0x40, 0x40, 0x40, 0x40, // _
	0x01, 0x02, 0x04,             // `
	0x20, 0x54, 0x54, 0x54, 0x78, // a
	0x7F, 0x48, 0x44, 0x44, 0x38, // b
	0x38, 0x44, 0x44, 0x44, 0x20, // c
	0x38, 0x44, 0x44, 0x48, 0x7F, // d
	0x38, 0x54, 0x54, 0x54, 0x18, // e
	0x08, 0x7E, 0x09, 0x01, 0x02, // f
	0x08, 0x14, 0x54, 0x54, 0x3C, // g
	0x7F, 0x08, 0x04, 0x04, 0x78, // h
	0x44, 0x7D, 0x40,             // i
	0x20, 0x40, 0x44, 0x3D,       // j
	0x7F, 0x10, 0x28, 0x44,       // k
	0x41, 0x7F, 0x40,             // l
	0x7C, 0x04, 0x18, 0x04, 0x78, // m
	0x7C, 0x08, 0x04, 0x04, 0x78, // n
	0x38, 0x44, 0x44, 0x44, 0x38, // o
	0x7C, 0x14, 0x14, 0x14, 0x08, // p
	0x08, 0x14, 0x14, 0x18, 0x7C, // q
	0x7C, 0x08, 0x04, 0x04, 0x08, // r
	0x48, 0x54, 0x54, 0x54, 0x20, // s
	0x04, 0x3F, 0x44, 0x40, 0x20, // t
	0x3C, 0x40, 0x40, 0x20, 0x7C, // u
	0x1C, 0x20, 0x40, 0x20, 0x1C, // v
	0x3C, 0x40, 0x30, 0x40, 0x3C, // w
	0x44, 0x28, 0x10, 0x28, 0x44, // x
	0x0C, 0x50, 0x50, 0x50, 0x3C, // y
	0x44, 0x64, 0x54, 0x4C, 0x44, // z
	0x08, 0x36, 0x41,             // {
	0x7F,                         // |
	0x41, 0x36, 0x08,             // }
	0x08, 0x04, 0x08, 0x10, 0x08, // ~
}
