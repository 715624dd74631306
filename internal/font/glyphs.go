package font

// glyphs holds one 7-row bitmap per character code. Row 0 is the top row;
// bit 7 is the left column and bit 2 the right one, bits 1-0 are unused.
var glyphs = [NumGlyphs][Rows]byte{
	{ // 0 blank
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 1 ^A
		0b00000000,
		0b00000000,
		0b01001000,
		0b00000000,
		0b10000100,
		0b01001000,
		0b00110000,
	},
	{ // 2 ^B tree
		0b00010000,
		0b00111000,
		0b00010000,
		0b01111100,
		0b00010000,
		0b01111110,
		0b00010000,
	},
	{ // 3 ^C
		0b00010000,
		0b01010100,
		0b00111000,
		0b01010100,
		0b10111010,
		0b01010100,
		0b00111000,
	},
	{ // 4 ^D
		0b00010000,
		0b00010000,
		0b00010000,
		0b00010000,
		0b00010000,
		0b00010000,
		0b00010000,
	},
	{ // 5 ^E
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 6 ^F
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 7 ^G
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 8 ^H
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 9 ^I
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 10 ^J
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 11 ^K
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 12 ^L
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 13 ^M
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 14 ^N
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 15 ^O
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 16 ^P
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 17 ^Q
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 18 ^R
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 19 ^S
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 20 ^T
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 21 ^U
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 22 ^V
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 23 ^W
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 24 ^X
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 25 ^Y
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 26 ^Z
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 27 ^[
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 28 ^\
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 29 ^]
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 30 ^^
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 31 ^_
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 32 space
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 33 !
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b00000000,
		0b00000000,
		0b01000000,
	},
	{ // 34 "
		0b01010000,
		0b01010000,
		0b01010000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 35 #
		0b00101000,
		0b00101000,
		0b01111100,
		0b00101000,
		0b01111100,
		0b00101000,
		0b00101000,
	},
	{ // 36 $
		0b00010000,
		0b00111100,
		0b01010000,
		0b00111000,
		0b00010100,
		0b01111000,
		0b00010000,
	},
	{ // 37 %
		0b01100000,
		0b01100100,
		0b00001000,
		0b00010000,
		0b00100000,
		0b01001100,
		0b00001100,
	},
	{ // 38 &
		0b00110000,
		0b01001000,
		0b01010000,
		0b00100000,
		0b01010100,
		0b01001000,
		0b00110100,
	},
	{ // 39 '
		0b00010000,
		0b00100000,
		0b01000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 40 (
		0b00010000,
		0b00100000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b00100000,
		0b00010000,
	},
	{ // 41 )
		0b01000000,
		0b00100000,
		0b00010000,
		0b00010000,
		0b00010000,
		0b00100000,
		0b01000000,
	},
	{ // 42 *
		0b00000000,
		0b00010000,
		0b01010100,
		0b00111000,
		0b01010100,
		0b00010000,
		0b00000000,
	},
	{ // 43 +
		0b00000000,
		0b00010000,
		0b00010000,
		0b01111100,
		0b00010000,
		0b00010000,
		0b00000000,
	},
	{ // 44 ,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b01100000,
		0b00100000,
		0b01000000,
	},
	{ // 45 -
		0b00000000,
		0b00000000,
		0b00000000,
		0b01111100,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 46 .
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b01100000,
		0b01100000,
	},
	{ // 47 /
		0b00000000,
		0b00000100,
		0b00001000,
		0b00010000,
		0b00100000,
		0b01000000,
		0b00000000,
	},
	{ // 48 0
		0b00111000,
		0b01000100,
		0b01001100,
		0b01010100,
		0b01100100,
		0b01000100,
		0b00111000,
	},
	{ // 49 1
		0b01100000,
		0b00100000,
		0b00100000,
		0b00100000,
		0b00100000,
		0b00100000,
		0b01110000,
	},
	{ // 50 2
		0b00111000,
		0b01000100,
		0b00000100,
		0b00011000,
		0b00100000,
		0b01000000,
		0b01111100,
	},
	{ // 51 3
		0b00111000,
		0b01000100,
		0b00000100,
		0b00011000,
		0b00000100,
		0b01000100,
		0b00111000,
	},
	{ // 52 4
		0b00011000,
		0b00101000,
		0b01001000,
		0b01001000,
		0b01111100,
		0b00001000,
		0b00001000,
	},
	{ // 53 5
		0b01111100,
		0b01000000,
		0b01000000,
		0b01111000,
		0b00000100,
		0b00000100,
		0b01111000,
	},
	{ // 54 6
		0b00111000,
		0b01000000,
		0b01000000,
		0b01111000,
		0b01000100,
		0b01000100,
		0b00111000,
	},
	{ // 55 7
		0b01111100,
		0b01000100,
		0b00001000,
		0b00010000,
		0b00010000,
		0b00010000,
		0b00010000,
	},
	{ // 56 8
		0b00111000,
		0b01000100,
		0b01000100,
		0b00111000,
		0b01000100,
		0b01000100,
		0b00111000,
	},
	{ // 57 9
		0b00111000,
		0b01000100,
		0b01000100,
		0b00111100,
		0b00000100,
		0b00000100,
		0b00111000,
	},
	{ // 58 :
		0b00000000,
		0b01100000,
		0b01100000,
		0b00000000,
		0b01100000,
		0b01100000,
		0b00000000,
	},
	{ // 59 ;
		0b00000000,
		0b01100000,
		0b01100000,
		0b00000000,
		0b01100000,
		0b00100000,
		0b01000000,
	},
	{ // 60 <
		0b00001000,
		0b00010000,
		0b00100000,
		0b01000000,
		0b00100000,
		0b00010000,
		0b00001000,
	},
	{ // 61 =
		0b00000000,
		0b00000000,
		0b01111100,
		0b00000000,
		0b01111100,
		0b00000000,
		0b00000000,
	},
	{ // 62 >
		0b01000000,
		0b00100000,
		0b00010000,
		0b00001000,
		0b00010000,
		0b00100000,
		0b01000000,
	},
	{ // 63 ?
		0b00111000,
		0b01000100,
		0b00000100,
		0b00001000,
		0b00010000,
		0b00000000,
		0b00010000,
	},
	{ // 64 @
		0b00111000,
		0b01000100,
		0b00000100,
		0b00110100,
		0b01010100,
		0b01010100,
		0b00111000,
	},
	{ // 65 A
		0b00111000,
		0b01000100,
		0b01000100,
		0b01000100,
		0b01111100,
		0b01000100,
		0b01000100,
	},
	{ // 66 B
		0b01111000,
		0b01000100,
		0b01000100,
		0b01111000,
		0b01000100,
		0b01000100,
		0b01111000,
	},
	{ // 67 C
		0b00111000,
		0b01000100,
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000100,
		0b00111000,
	},
	{ // 68 D
		0b01110000,
		0b01001000,
		0b01000100,
		0b01000100,
		0b01000100,
		0b01001000,
		0b01110000,
	},
	{ // 69 E
		0b01111100,
		0b01000000,
		0b01000000,
		0b01111000,
		0b01000000,
		0b01000000,
		0b01111100,
	},
	{ // 70 F
		0b01111100,
		0b01000000,
		0b01000000,
		0b01111000,
		0b01000000,
		0b01000000,
		0b01000000,
	},
	{ // 71 G
		0b00111000,
		0b01000100,
		0b01000000,
		0b01001100,
		0b01000100,
		0b01000100,
		0b00111100,
	},
	{ // 72 H
		0b01000100,
		0b01000100,
		0b01000100,
		0b01111100,
		0b01000100,
		0b01000100,
		0b01000100,
	},
	{ // 73 I
		0b00111000,
		0b00010000,
		0b00010000,
		0b00010000,
		0b00010000,
		0b00010000,
		0b00111000,
	},
	{ // 74 J
		0b00011100,
		0b00001000,
		0b00001000,
		0b00001000,
		0b01001000,
		0b01001000,
		0b00110000,
	},
	{ // 75 K
		0b01000100,
		0b01001000,
		0b01010000,
		0b01100000,
		0b01010000,
		0b01001000,
		0b01000100,
	},
	{ // 76 L
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b01111100,
	},
	{ // 77 M
		0b01000100,
		0b01101100,
		0b01010100,
		0b01010100,
		0b01000100,
		0b01000100,
		0b01000100,
	},
	{ // 78 N
		0b01000100,
		0b01000100,
		0b01100100,
		0b01010100,
		0b01001100,
		0b01000100,
		0b01000100,
	},
	{ // 79 O
		0b00111000,
		0b01000100,
		0b01000100,
		0b01000100,
		0b01000100,
		0b01000100,
		0b00111000,
	},
	{ // 80 P
		0b01111000,
		0b01000100,
		0b01000100,
		0b01111000,
		0b01000000,
		0b01000000,
		0b01000000,
	},
	{ // 81 Q
		0b00111000,
		0b01000100,
		0b01000100,
		0b01000100,
		0b01010100,
		0b01001000,
		0b00110100,
	},
	{ // 82 R
		0b01111000,
		0b01000100,
		0b01000100,
		0b01111000,
		0b01010000,
		0b01001000,
		0b01000100,
	},
	{ // 83 S
		0b00111100,
		0b01000100,
		0b01000000,
		0b00111000,
		0b00000100,
		0b01000100,
		0b01111000,
	},
	{ // 84 T
		0b01111100,
		0b00010000,
		0b00010000,
		0b00010000,
		0b00010000,
		0b00010000,
		0b00010000,
	},
	{ // 85 U
		0b01000100,
		0b01000100,
		0b01000100,
		0b01000100,
		0b01000100,
		0b01000100,
		0b00111000,
	},
	{ // 86 V
		0b01000100,
		0b01000100,
		0b01000100,
		0b01000100,
		0b01000100,
		0b00101000,
		0b00010000,
	},
	{ // 87 W
		0b01000100,
		0b01000100,
		0b01000100,
		0b01010100,
		0b01010100,
		0b01010100,
		0b00101000,
	},
	{ // 88 X
		0b01000100,
		0b01000100,
		0b00101000,
		0b00010000,
		0b00101000,
		0b01000100,
		0b01000100,
	},
	{ // 89 Y
		0b01000100,
		0b01000100,
		0b01000100,
		0b00101000,
		0b00010000,
		0b00010000,
		0b00010000,
	},
	{ // 90 Z
		0b01111100,
		0b00000100,
		0b00001000,
		0b00010000,
		0b00100000,
		0b01000000,
		0b01111100,
	},
	{ // 91 A umlaut, ASCII [
		0b00101000,
		0b00000000,
		0b00111000,
		0b01000100,
		0b01111100,
		0b01000100,
		0b01000100,
	},
	{ // 92 O umlaut, ASCII \
		0b00101000,
		0b00000000,
		0b00111000,
		0b01000100,
		0b01000100,
		0b01000100,
		0b00111000,
	},
	{ // 93 U umlaut, ASCII ]
		0b00101000,
		0b00000000,
		0b01000100,
		0b01000100,
		0b01000100,
		0b01000100,
		0b00111000,
	},
	{ // 94 ^
		0b00000000,
		0b00000000,
		0b00010000,
		0b00101000,
		0b01000100,
		0b01000100,
		0b00000000,
	},
	{ // 95 _
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b01111111,
	},
	{ // 96 degree sign, ASCII `
		0b00011000,
		0b00100100,
		0b00011000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	{ // 97 a
		0b00000000,
		0b00000000,
		0b00111000,
		0b01001000,
		0b01001000,
		0b01001000,
		0b00110100,
	},
	{ // 98 b
		0b01000000,
		0b01000000,
		0b01111000,
		0b01000100,
		0b01000100,
		0b01000100,
		0b00111000,
	},
	{ // 99 c
		0b00000000,
		0b00000000,
		0b00111100,
		0b01000000,
		0b01000000,
		0b01000000,
		0b00111100,
	},
	{ // 100 d
		0b00000100,
		0b00000100,
		0b00111100,
		0b01000100,
		0b01000100,
		0b01000100,
		0b00111100,
	},
	{ // 101 e
		0b00000000,
		0b00000000,
		0b00111000,
		0b01000100,
		0b01111100,
		0b01000000,
		0b00111100,
	},
	{ // 102 f
		0b00001100,
		0b00010000,
		0b00010000,
		0b01111100,
		0b00010000,
		0b00010000,
		0b00010000,
	},
	{ // 103 g
		0b00000000,
		0b00111100,
		0b01000100,
		0b01000100,
		0b00111100,
		0b00000100,
		0b00111000,
	},
	{ // 104 h
		0b01000000,
		0b01000000,
		0b01011000,
		0b01100100,
		0b01000100,
		0b01000100,
		0b01000100,
	},
	{ // 105 i
		0b00100000,
		0b00000000,
		0b01100000,
		0b00100000,
		0b00100000,
		0b00100000,
		0b01110000,
	},
	{ // 106 j
		0b00010000,
		0b00000000,
		0b00110000,
		0b00010000,
		0b00010000,
		0b00010000,
		0b01100000,
	},
	{ // 107 k
		0b01000000,
		0b01000000,
		0b01001000,
		0b01010000,
		0b01100000,
		0b01010000,
		0b01001000,
	},
	{ // 108 l
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000000,
	},
	{ // 109 m
		0b00000000,
		0b00000000,
		0b01101000,
		0b01010100,
		0b01010100,
		0b01010100,
		0b01010100,
	},
	{ // 110 n
		0b00000000,
		0b00000000,
		0b01011000,
		0b01100100,
		0b01000100,
		0b01000100,
		0b01000100,
	},
	{ // 111 o
		0b00000000,
		0b00000000,
		0b00111000,
		0b01000100,
		0b01000100,
		0b01000100,
		0b00111000,
	},
	{ // 112 p
		0b00000000,
		0b01111000,
		0b01000100,
		0b01000100,
		0b01111000,
		0b01000000,
		0b01000000,
	},
	{ // 113 q
		0b00000000,
		0b00111100,
		0b01000100,
		0b01000100,
		0b00111100,
		0b00000100,
		0b00000100,
	},
	{ // 114 r
		0b00000000,
		0b00000000,
		0b01011000,
		0b01100100,
		0b01000000,
		0b01000000,
		0b01000000,
	},
	{ // 115 s
		0b00000000,
		0b00000000,
		0b00111100,
		0b01000000,
		0b00111000,
		0b00000100,
		0b01111000,
	},
	{ // 116 t
		0b00010000,
		0b00010000,
		0b01111100,
		0b00010000,
		0b00010000,
		0b00010000,
		0b00001100,
	},
	{ // 117 u
		0b00000000,
		0b00000000,
		0b01000100,
		0b01000100,
		0b01000100,
		0b01001100,
		0b00110100,
	},
	{ // 118 v
		0b00000000,
		0b00000000,
		0b01000100,
		0b01000100,
		0b01000100,
		0b00101000,
		0b00010000,
	},
	{ // 119 w
		0b00000000,
		0b00000000,
		0b01000100,
		0b01000100,
		0b01010100,
		0b01010100,
		0b00101000,
	},
	{ // 120 x
		0b00000000,
		0b00000000,
		0b01000100,
		0b00101000,
		0b00010000,
		0b00101000,
		0b01000100,
	},
	{ // 121 y
		0b00000000,
		0b01000100,
		0b01000100,
		0b01000100,
		0b00111100,
		0b00000100,
		0b00111000,
	},
	{ // 122 z
		0b00000000,
		0b00000000,
		0b01111100,
		0b00001000,
		0b00010000,
		0b00100000,
		0b01111100,
	},
	{ // 123 a umlaut, ASCII {
		0b00101000,
		0b00000000,
		0b00111000,
		0b01001000,
		0b01001000,
		0b01001000,
		0b00110100,
	},
	{ // 124 o umlaut, ASCII |
		0b00101000,
		0b00000000,
		0b00111000,
		0b01000100,
		0b01000100,
		0b01000100,
		0b00111000,
	},
	{ // 125 u umlaut, ASCII }
		0b00101000,
		0b00000000,
		0b01000100,
		0b01000100,
		0b01000100,
		0b01001100,
		0b00110100,
	},
	{ // 126 beta, ASCII ~
		0b00000000,
		0b00110000,
		0b01001000,
		0b01011000,
		0b01000100,
		0b01011000,
		0b01000000,
	},
	{ // 127 upper block, ASCII DEL
		0b00000000,
		0b01111110,
		0b01111110,
		0b01111110,
		0b01111110,
		0b01111110,
		0b00000000,
	},
}
