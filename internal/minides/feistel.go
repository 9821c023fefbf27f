// Copyright (c) 2020, The Garble Authors.
// See LICENSE for licensing information.

package minides

// Encrypt encrypts a block under k.
func Encrypt(plaintext Block, k Key) Block {
	return EncryptWith(plaintext, KeySchedule(k))
}

// Decrypt decrypts a block under k.
func Decrypt(ciphertext Block, k Key) Block {
	return DecryptWith(ciphertext, KeySchedule(k))
}

// EncryptWith runs the rounds forward with a precomputed schedule.
// The halves are not swapped after the last round.
func EncryptWith(plaintext Block, keys Schedule) Block {
	left, right := split(plaintext)
	for i := 0; i < Rounds; i++ {
		left, right = right, Round(right, keys[i])^left
	}
	return join(left, right)
}

// DecryptWith runs the same registers backwards, so each step mirrors the
// encryption step instead of swapping the halves up front.
func DecryptWith(ciphertext Block, keys Schedule) Block {
	left, right := split(ciphertext)
	for round := Rounds - 1; round >= 0; round-- {
		left, right = Round(left, keys[round])^right, left
	}
	return join(left, right)
}

func split(b Block) (left, right uint8) {
	b &= blockMask
	return uint8(b>>HalfBits) & halfMask, uint8(b) & halfMask
}

func join(left, right uint8) Block {
	return (Block(left&halfMask)<<HalfBits | Block(right&halfMask)) & blockMask
}
