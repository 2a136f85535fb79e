// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha256 implements the SHA256 hash algorithm as defined
// in FIPS 180-4.
//
// Sum256 hashes a fully buffered message. New returns a streaming
// Digest for input that arrives in pieces.
package sha256

import (
	"encoding/binary"
	"errors"
	"hash"
)

// The size of a SHA256 checksum in bytes.
const Size = 32

// The blocksize of SHA256 in bytes.
const BlockSize = 64

const (
	chunk = 64
	// bytes reserved at the end of the last block for the bit length
	lenSize = 8
	init0   = 0x6A09E667
	init1   = 0xBB67AE85
	init2   = 0x3C6EF372
	init3   = 0xA54FF53A
	init4   = 0x510E527F
	init5   = 0x9B05688C
	init6   = 0x1F83D9AB
	init7   = 0x5BE0CD19
)

// ErrWriteAfterSum is returned by Digest.Write once the digest has
// been finalized by Sum.
var ErrWriteAfterSum = errors.New("sha256: write after sum")

func initState() [8]uint32 {
	return [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
}

// paddedLen returns the smallest multiple of chunk that is >= n+9.
func paddedLen(n uint64) uint64 {
	return (n + 1 + lenSize + chunk - 1) / chunk * chunk
}

// padTail returns the bytes appended to an n-byte message: 0x80, zeros
// up to 56 mod 64, then 8*n as a big-endian uint64. The length field
// wraps modulo 2^64.
func padTail(n uint64) []byte {
	tail := make([]byte, paddedLen(n)-n)
	tail[0] = 0x80
	binary.BigEndian.PutUint64(tail[len(tail)-lenSize:], n<<3)
	return tail
}

// Pad returns a new slice holding msg followed by its SHA256 padding.
// The result length is always a multiple of BlockSize.
func Pad(msg []byte) []byte {
	tail := padTail(uint64(len(msg)))
	padded := make([]byte, 0, len(msg)+len(tail))
	padded = append(padded, msg...)
	return append(padded, tail...)
}

func serialize(state *[8]uint32) [Size]byte {
	var out [Size]byte
	for i, s := range state {
		binary.BigEndian.PutUint32(out[i*4:], s)
	}
	return out
}

// Sum256 returns the SHA256 checksum of the data.
func Sum256(data []byte) [Size]byte {
	state := initState()
	blockGeneric(&state, Pad(data))
	return serialize(&state)
}

// Digest is a streaming SHA256 computation. Blocks are compressed in
// Write order. The first call to Sum finalizes the digest; later
// writes fail with ErrWriteAfterSum until Reset is called.
//
// Digest has the method set of hash.Hash but departs from its contract
// once Sum has been called: Sum does not leave the state writable, and
// Write returns an error instead of the io.Writer guarantee of never
// failing for a hash.
//
// A Digest must not be used from multiple goroutines at once.
type Digest struct {
	h    [8]uint32
	x    [chunk]byte
	nx   int
	len  uint64
	done bool
	sum  [Size]byte
}

var _ hash.Hash = (*Digest)(nil)

// New returns a new Digest computing the SHA256 checksum.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset restores the initial state and clears finalization.
func (d *Digest) Reset() {
	d.h = initState()
	d.nx = 0
	d.len = 0
	d.done = false
	d.sum = [Size]byte{}
}

// Size returns the number of bytes Sum appends.
func (d *Digest) Size() int { return Size }

// BlockSize returns the hash's underlying block size.
func (d *Digest) BlockSize() int { return BlockSize }

// Write adds p to the running hash.
func (d *Digest) Write(p []byte) (nn int, err error) {
	if d.done {
		return 0, ErrWriteAfterSum
	}
	nn = len(p)
	d.len += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == chunk {
			blockGeneric(&d.h, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= chunk {
		n := len(p) &^ (chunk - 1)
		blockGeneric(&d.h, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

// Sum appends the checksum to in and returns the resulting slice.
func (d *Digest) Sum(in []byte) []byte {
	sum := d.Sum256()
	return append(in, sum[:]...)
}

// Sum256 finalizes the digest on first use and returns the checksum.
func (d *Digest) Sum256() [Size]byte {
	if d.done {
		return d.sum
	}
	tail := padTail(d.len)
	buf := make([]byte, 0, d.nx+len(tail))
	buf = append(buf, d.x[:d.nx]...)
	buf = append(buf, tail...)
	blockGeneric(&d.h, buf)
	d.nx = 0

	d.sum = serialize(&d.h)
	d.done = true
	return d.sum
}
