package sha256

import (
	"bytes"
	gosha256 "crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"massnet.org/mass-sha256/testutil"
)

var golden = []struct {
	out string
	in  string
}{
	{"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ""},
	{"09ca7e4eaa6e8ae9c7d261167129184883644d07dfba7cbfbc4c8a2e08360d5b", "hello, world"},
	{"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", "abc"},
	{"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"},
	{"d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592", "The quick brown fox jumps over the lazy dog"},
}

func TestGolden(t *testing.T) {
	for _, g := range golden {
		sum := Sum256([]byte(g.in))
		assert.Equal(t, g.out, hex.EncodeToString(sum[:]), "Sum256(%q)", g.in)

		d := New()
		for j := 0; j < 3; j++ {
			if j < 2 {
				_, err := d.Write([]byte(g.in))
				require.NoError(t, err)
			} else {
				half := len(g.in) / 2
				_, err := d.Write([]byte(g.in[:half]))
				require.NoError(t, err)
				_, err = d.Write([]byte(g.in[half:]))
				require.NoError(t, err)
			}
			assert.Equal(t, g.out, hex.EncodeToString(d.Sum(nil)), "Digest(%q) pass %d", g.in, j)
			d.Reset()
		}
	}
}

func TestMillionA(t *testing.T) {
	sum := Sum256(bytes.Repeat([]byte{'a'}, 1000000))
	assert.Equal(t, "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0", hex.EncodeToString(sum[:]))
}

func TestBlockBoundaries(t *testing.T) {
	for _, n := range []int{0, 1, 55, 56, 57, 63, 64, 65, 119, 120, 127, 128, 129, 1000, 1000000} {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i*7 + 3)
		}
		got := Sum256(msg)
		want := gosha256.Sum256(msg)
		assert.Equal(t, want, got, "length %d", n)
		assert.Len(t, got, Size)
	}
}

func TestDeterministic(t *testing.T) {
	msg := []byte(strings.Repeat("deterministic ", 50))
	first := Sum256(msg)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Sum256(msg))
	}
}

func TestSingleBitFlip(t *testing.T) {
	msg := []byte("a reasonably sized message spanning more than one block of input!!")
	base := Sum256(msg)
	seen := map[[Size]byte]int{base: -1}
	for i := 0; i < len(msg)*8; i++ {
		flipped := append([]byte(nil), msg...)
		flipped[i/8] ^= 1 << uint(i%8)
		sum := Sum256(flipped)
		prev, dup := seen[sum]
		require.False(t, dup, "bit %d collides with bit %d", i, prev)
		seen[sum] = i
	}
}

func TestPad(t *testing.T) {
	for _, n := range []int{0, 1, 55, 56, 63, 64, 65, 200} {
		msg := bytes.Repeat([]byte{0xaa}, n)
		padded := Pad(msg)

		want := (n + 9 + 63) / 64 * 64
		assert.Equal(t, want, len(padded), "padded length of %d", n)
		assert.Equal(t, msg, padded[:n])
		assert.Equal(t, byte(0x80), padded[n])
		for _, b := range padded[n+1 : len(padded)-8] {
			assert.Equal(t, byte(0), b)
		}
		assert.Equal(t, uint64(8*n), binary.BigEndian.Uint64(padded[len(padded)-8:]))
	}
}

func TestPadDoesNotAlias(t *testing.T) {
	msg := make([]byte, 3, 128)
	copy(msg, "abc")
	padded := Pad(msg)
	padded[0] = 'z'
	assert.Equal(t, "abc", string(msg))
	assert.Equal(t, byte(0), msg[:4][3])
}

func TestPadTailWraps(t *testing.T) {
	// 2^61 bytes is 2^64 bits, which wraps to zero.
	tail := padTail(1 << 61)
	assert.Equal(t, uint64(0), binary.BigEndian.Uint64(tail[len(tail)-8:]))

	tail = padTail(1<<61 + 1)
	assert.Equal(t, uint64(8), binary.BigEndian.Uint64(tail[len(tail)-8:]))
}

func TestSchedule(t *testing.T) {
	var w [64]uint32
	schedule(&w, Pad([]byte("abc")))
	assert.Equal(t, uint32(0x61626380), w[0])
	assert.Equal(t, uint32(0x18), w[15])
	assert.Equal(t, uint32(0x61626380), w[16])
	assert.Equal(t, uint32(0x000f0000), w[17])
	for i := 16; i < 64; i++ {
		assert.Equal(t, w[i-16]+sigma0(w[i-15])+w[i-7]+sigma1(w[i-2]), w[i])
	}
}

func TestRotr(t *testing.T) {
	assert.Equal(t, uint32(0x80000000), rotr(1, 1))
	assert.Equal(t, uint32(0x12345678), rotr(0x12345678, 0))
	assert.Equal(t, uint32(0x81234567), rotr(0x12345678, 4))
}

func TestCompressOrderMatters(t *testing.T) {
	b0 := bytes.Repeat([]byte{1}, chunk)
	b1 := bytes.Repeat([]byte{2}, chunk)

	s1 := initState()
	blockGeneric(&s1, append(append([]byte{}, b0...), b1...))
	s2 := initState()
	blockGeneric(&s2, append(append([]byte{}, b1...), b0...))
	assert.NotEqual(t, s1, s2)
}

func TestStreamingSplits(t *testing.T) {
	msg := make([]byte, 3*chunk+17)
	for i := range msg {
		msg[i] = byte(i)
	}
	want := Sum256(msg)
	for split := 0; split <= len(msg); split++ {
		d := New()
		_, err := d.Write(msg[:split])
		require.NoError(t, err)
		_, err = d.Write(msg[split:])
		require.NoError(t, err)
		assert.Equal(t, want, d.Sum256(), "split at %d", split)
	}
}

func TestWriteAfterSum(t *testing.T) {
	d := New()
	_, err := d.Write([]byte("hello, "))
	require.NoError(t, err)
	first := d.Sum(nil)

	n, err := d.Write([]byte("world"))
	assert.Equal(t, 0, n)
	assert.Equal(t, ErrWriteAfterSum, err)
	assert.Equal(t, first, d.Sum(nil), "state changed after rejected write")

	d.Reset()
	_, err = d.Write([]byte("hello, world"))
	require.NoError(t, err)
	assert.Equal(t, "09ca7e4eaa6e8ae9c7d261167129184883644d07dfba7cbfbc4c8a2e08360d5b", hex.EncodeToString(d.Sum(nil)))
}

func TestSumAppends(t *testing.T) {
	d := New()
	prefix := []byte("prefix")
	out := d.Sum(prefix)
	sum := Sum256(nil)
	assert.Equal(t, append([]byte("prefix"), sum[:]...), out)
	assert.Equal(t, Size, d.Size())
	assert.Equal(t, BlockSize, d.BlockSize())
}

func TestLargeStreaming(t *testing.T) {
	testutil.SkipCI(t)

	ref := gosha256.New()
	d := New()
	piece := make([]byte, 1<<20+13)
	for i := 0; i < 64; i++ {
		for j := range piece {
			piece[j] = byte(i ^ j)
		}
		ref.Write(piece)
		_, err := d.Write(piece)
		require.NoError(t, err)
	}
	assert.Equal(t, ref.Sum(nil), d.Sum(nil))
}

var bench = New()
var buf = make([]byte, 8192)

func benchmarkSize(b *testing.B, size int) {
	b.SetBytes(int64(size))
	for i := 0; i < b.N; i++ {
		bench.Reset()
		bench.Write(buf[:size])
		bench.Sum256()
	}
}

func BenchmarkHash8Bytes(b *testing.B) {
	benchmarkSize(b, 8)
}

func BenchmarkHash1K(b *testing.B) {
	benchmarkSize(b, 1024)
}

func BenchmarkHash8K(b *testing.B) {
	benchmarkSize(b, 8192)
}

func BenchmarkSum256(b *testing.B) {
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		Sum256(buf)
	}
}
