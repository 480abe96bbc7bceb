// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chacha20ietf implements the IETF variant of the ChaCha20 encryption
// algorithm as specified in RFC 8439: a 32-byte key, a 12-byte nonce and a
// 32-bit block counter.
//
// The package exposes the raw keystream primitive (XORKeyStream) as well as
// one-shot cipher capabilities (ChaCha20Ietf, XChaCha20Ietf) that plug into
// the cryptoapi surfaces.
package chacha20ietf

import (
	"encoding/binary"
	"math/bits"
)

const (
	// KeySize is the ChaCha20 key size in bytes.
	KeySize = 32

	// NonceSize is the ChaCha20-IETF nonce size in bytes.
	NonceSize = 12

	// XNonceSize is the XChaCha20 nonce size in bytes.
	XNonceSize = 24

	// hNonceSize is the HChaCha20 nonce size in bytes.
	hNonceSize = 16

	blockSize = 64
)

// maxBytes is the maximum number of bytes that can be processed with one
// (key, nonce) combination: 2^32 blocks of 64 bytes. The RFC cap is applied
// uniformly regardless of the platform's address space.
const maxBytes uint64 = 1 << 38

// The constant first 4 words of the ChaCha20 state.
const (
	j0 uint32 = 0x61707865 // expa
	j1 uint32 = 0x3320646e // nd 3
	j2 uint32 = 0x79622d32 // 2-by
	j3 uint32 = 0x6b206574 // te k
)

// quarterRound is the core of ChaCha20. It shuffles the bits of 4 state words.
// It's executed 4 times for each of the 20 ChaCha20 rounds, operating on all 16
// words each round, in columnar or diagonal groups of 4 at a time.
func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)
	return a, b, c, d
}

// chachaBlock writes the 64-byte keystream block selected by counter into
// out. key must be 32 bytes and nonce 12 bytes; callers validate lengths
// before calling, the explicit slicing below keeps the accesses in bounds
// regardless.
//
// The initial cipher state is passed through 20 rounds of shuffling,
// alternately applying quarterRounds by columns (like 0, 4, 8, 12) or by
// diagonals (like 0, 5, 10, 15), then added back word by word:
//
//      0:cccccccc   1:cccccccc   2:cccccccc   3:cccccccc
//      4:kkkkkkkk   5:kkkkkkkk   6:kkkkkkkk   7:kkkkkkkk
//      8:kkkkkkkk   9:kkkkkkkk  10:kkkkkkkk  11:kkkkkkkk
//     12:bbbbbbbb  13:nnnnnnnn  14:nnnnnnnn  15:nnnnnnnn
//
//            c=constant k=key b=blockcount n=nonce
func chachaBlock(out *[blockSize]byte, key, nonce []byte, counter uint32) {
	var (
		c0, c1, c2, c3 = j0, j1, j2, j3

		c4 = binary.LittleEndian.Uint32(key[0:4])
		c5 = binary.LittleEndian.Uint32(key[4:8])
		c6 = binary.LittleEndian.Uint32(key[8:12])
		c7 = binary.LittleEndian.Uint32(key[12:16])

		c8  = binary.LittleEndian.Uint32(key[16:20])
		c9  = binary.LittleEndian.Uint32(key[20:24])
		c10 = binary.LittleEndian.Uint32(key[24:28])
		c11 = binary.LittleEndian.Uint32(key[28:32])

		c12 = counter
		c13 = binary.LittleEndian.Uint32(nonce[0:4])
		c14 = binary.LittleEndian.Uint32(nonce[4:8])
		c15 = binary.LittleEndian.Uint32(nonce[8:12])
	)

	x0, x1, x2, x3 := c0, c1, c2, c3
	x4, x5, x6, x7 := c4, c5, c6, c7
	x8, x9, x10, x11 := c8, c9, c10, c11
	x12, x13, x14, x15 := c12, c13, c14, c15

	for i := 0; i < 10; i++ {
		// Column round.
		x0, x4, x8, x12 = quarterRound(x0, x4, x8, x12)
		x1, x5, x9, x13 = quarterRound(x1, x5, x9, x13)
		x2, x6, x10, x14 = quarterRound(x2, x6, x10, x14)
		x3, x7, x11, x15 = quarterRound(x3, x7, x11, x15)

		// Diagonal round.
		x0, x5, x10, x15 = quarterRound(x0, x5, x10, x15)
		x1, x6, x11, x12 = quarterRound(x1, x6, x11, x12)
		x2, x7, x8, x13 = quarterRound(x2, x7, x8, x13)
		x3, x4, x9, x14 = quarterRound(x3, x4, x9, x14)
	}

	// Add back the initial state to generate the key stream block.
	binary.LittleEndian.PutUint32(out[0:4], x0+c0)
	binary.LittleEndian.PutUint32(out[4:8], x1+c1)
	binary.LittleEndian.PutUint32(out[8:12], x2+c2)
	binary.LittleEndian.PutUint32(out[12:16], x3+c3)
	binary.LittleEndian.PutUint32(out[16:20], x4+c4)
	binary.LittleEndian.PutUint32(out[20:24], x5+c5)
	binary.LittleEndian.PutUint32(out[24:28], x6+c6)
	binary.LittleEndian.PutUint32(out[28:32], x7+c7)
	binary.LittleEndian.PutUint32(out[32:36], x8+c8)
	binary.LittleEndian.PutUint32(out[36:40], x9+c9)
	binary.LittleEndian.PutUint32(out[40:44], x10+c10)
	binary.LittleEndian.PutUint32(out[44:48], x11+c11)
	binary.LittleEndian.PutUint32(out[48:52], x12+c12)
	binary.LittleEndian.PutUint32(out[52:56], x13+c13)
	binary.LittleEndian.PutUint32(out[56:60], x14+c14)
	binary.LittleEndian.PutUint32(out[60:64], x15+c15)
}

// XORKeyStream XORs buf in place with the ChaCha20 keystream for key and
// nonce, starting at the 64-byte block selected by counter. A short final
// block consumes only as much keystream as there are bytes left; the unused
// remainder of that block is discarded.
//
// XORKeyStream panics if the key is not 32 bytes, if the nonce is not 12
// bytes, or if processing buf would advance the block counter past 2^32-1.
// The overflow check happens before any byte is written.
func XORKeyStream(key, nonce []byte, counter uint32, buf []byte) {
	if len(key) != KeySize {
		panic("chacha20ietf: wrong key size")
	}
	if len(nonce) != NonceSize {
		panic("chacha20ietf: wrong nonce size")
	}
	blocks := (uint64(len(buf)) + blockSize - 1) / blockSize
	if uint64(counter)+blocks > 1<<32 {
		panic("chacha20ietf: counter overflow")
	}

	var block [blockSize]byte
	for len(buf) > 0 {
		chachaBlock(&block, key, nonce, counter)
		counter++

		n := len(buf)
		if n > blockSize {
			n = blockSize
		}
		for i, b := range block[:n] {
			buf[i] ^= b
		}
		buf = buf[n:]
	}
}

// hChaCha20 is the 20-round ChaCha20 core without the final state addition,
// keyed by key with a 16-byte input block. Lengths are the caller's problem.
func hChaCha20(key, nonce []byte) (out [KeySize]byte) {
	x0, x1, x2, x3 := j0, j1, j2, j3
	x4 := binary.LittleEndian.Uint32(key[0:4])
	x5 := binary.LittleEndian.Uint32(key[4:8])
	x6 := binary.LittleEndian.Uint32(key[8:12])
	x7 := binary.LittleEndian.Uint32(key[12:16])
	x8 := binary.LittleEndian.Uint32(key[16:20])
	x9 := binary.LittleEndian.Uint32(key[20:24])
	x10 := binary.LittleEndian.Uint32(key[24:28])
	x11 := binary.LittleEndian.Uint32(key[28:32])
	x12 := binary.LittleEndian.Uint32(nonce[0:4])
	x13 := binary.LittleEndian.Uint32(nonce[4:8])
	x14 := binary.LittleEndian.Uint32(nonce[8:12])
	x15 := binary.LittleEndian.Uint32(nonce[12:16])

	for i := 0; i < 10; i++ {
		// Column round.
		x0, x4, x8, x12 = quarterRound(x0, x4, x8, x12)
		x1, x5, x9, x13 = quarterRound(x1, x5, x9, x13)
		x2, x6, x10, x14 = quarterRound(x2, x6, x10, x14)
		x3, x7, x11, x15 = quarterRound(x3, x7, x11, x15)

		// Diagonal round.
		x0, x5, x10, x15 = quarterRound(x0, x5, x10, x15)
		x1, x6, x11, x12 = quarterRound(x1, x6, x11, x12)
		x2, x7, x8, x13 = quarterRound(x2, x7, x8, x13)
		x3, x4, x9, x14 = quarterRound(x3, x4, x9, x14)
	}

	binary.LittleEndian.PutUint32(out[0:4], x0)
	binary.LittleEndian.PutUint32(out[4:8], x1)
	binary.LittleEndian.PutUint32(out[8:12], x2)
	binary.LittleEndian.PutUint32(out[12:16], x3)
	binary.LittleEndian.PutUint32(out[16:20], x12)
	binary.LittleEndian.PutUint32(out[20:24], x13)
	binary.LittleEndian.PutUint32(out[24:28], x14)
	binary.LittleEndian.PutUint32(out[28:32], x15)
	return out
}

// HChaCha20 uses the ChaCha20 core to generate a derived key from a 32-byte
// key and a 16-byte nonce. It should only be used as part of the XChaCha20
// construction.
func HChaCha20(key, nonce []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, APIMisuseError("invalid key length")
	}
	if len(nonce) != hNonceSize {
		return nil, APIMisuseError("invalid nonce length")
	}
	out := hChaCha20(key, nonce)
	return out[:], nil
}
