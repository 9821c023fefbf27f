// Copyright (c) 2020, The Garble Authors.
// See LICENSE for licensing information.

package minides

// S1 and S2 map a 4-bit input to a 3-bit output. Bit 3 of the input selects
// the row and bits 2..0 select the column.
var (
	S1 = [2][8]uint8{
		{0b101, 0b010, 0b001, 0b110, 0b011, 0b100, 0b111, 0b000},
		{0b001, 0b100, 0b110, 0b010, 0b000, 0b111, 0b101, 0b011},
	}
	S2 = [2][8]uint8{
		{0b100, 0b000, 0b110, 0b101, 0b111, 0b001, 0b011, 0b010},
		{0b101, 0b011, 0b000, 0b111, 0b110, 0b010, 0b001, 0b100},
	}
)

// Substitute looks up the low nibble of n in box.
func Substitute(box *[2][8]uint8, n uint8) uint8 {
	n &= 0b1111
	return box[n>>3][n&0b111]
}

// Expand widens a 6-bit half block to 8 bits. Bits 3 and 2 of r are each
// used twice, and the first copy has them swapped:
//
//	out: 7    6    5    4    3    2    1    0
//	src: r5   r4   r2   r3   r2   r3   r1   r0
func Expand(r uint8) uint8 {
	bit := func(i uint) uint8 { return (r >> i) & 1 }
	return bit(5)<<7 | bit(4)<<6 | bit(2)<<5 | bit(3)<<4 |
		bit(2)<<3 | bit(3)<<2 | bit(1)<<1 | bit(0)
}

// Round is the f-function: expansion, subkey mixing, then S1 on the high
// nibble and S2 on the low nibble. The result is a 6-bit half block.
func Round(r, subkey uint8) uint8 {
	x := Expand(r&halfMask) ^ subkey
	return Substitute(&S1, x>>4)<<3 | Substitute(&S2, x&0b1111)
}
