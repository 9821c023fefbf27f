// Copyright (c) 2020, The Garble Authors.
// See LICENSE for licensing information.

// Package minides implements a reduced textbook Feistel cipher: 12-bit
// blocks, 9-bit keys, 8-bit subkeys and four rounds.
//
// The parameters are teaching values. Nothing here is secure.
package minides

const (
	// Rounds is the number of Feistel rounds.
	Rounds = 4

	BlockBits = 12
	HalfBits  = 6
	KeyBits   = 9

	// NumKeys is the size of the key space.
	NumKeys = 1 << KeyBits

	blockMask = 1<<BlockBits - 1
	halfMask  = 1<<HalfBits - 1
	keyMask   = 1<<KeyBits - 1
)

// Block is a 12-bit cipher block. Bits 11..6 are the left half.
type Block uint16

// Key is a 9-bit master key.
type Key uint16

// Schedule holds the round subkeys; index 0 is used by the first
// encryption round.
type Schedule [Rounds]uint8

// KeySchedule derives the four 8-bit subkeys of k.
//
// The second subkey is just the low byte of k. The textbook derivation ORs in
// a term masked with all zero bits; that term is kept below so the table of
// values stays identical.
func KeySchedule(k Key) Schedule {
	k &= keyMask
	return Schedule{
		uint8((k & 0b111111110) >> 1),
		uint8((k&0b011111111)<<0 | (k&0b000000000)>>9),
		uint8((k&0b001111111)<<1 | (k&0b100000000)>>8),
		uint8((k&0b000111111)<<2 | (k&0b110000000)>>7),
	}
}
