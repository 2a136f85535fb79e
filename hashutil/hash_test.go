package hashutil_test

import (
	"errors"
	"testing"

	"massnet.org/mass-sha256/hashutil"
	"massnet.org/mass-sha256/testutil"
)

func TestHash_String(t *testing.T) {
	var h = hashutil.Sum([]byte("TestHash_String"))
	var testRound = 10000

	for i := 0; i < testRound; i++ {
		h = hashutil.Sum(h[:])
		str := h.String()
		if h != mustDecodeStringToHash(str) {
			t.Error("Hash String decode error")
		}
	}
}

func TestHash_Bytes(t *testing.T) {
	h := hashutil.Sum([]byte("TestHash_Bytes"))
	b := h.Bytes()
	b[0] ^= 0xff
	if h[0] == b[0] {
		t.Error("Bytes returned an alias of the hash")
	}
}

func TestHash_IsEqual(t *testing.T) {
	a := hashutil.Sum([]byte("a"))
	a2 := hashutil.Sum([]byte("a"))
	b := hashutil.Sum([]byte("b"))
	var null *hashutil.Hash

	tests := []struct {
		h, target *hashutil.Hash
		want      bool
	}{
		{&a, &a2, true},
		{&a, &b, false},
		{&a, nil, false},
		{null, nil, true},
	}
	for i, test := range tests {
		if got := test.h.IsEqual(test.target); got != test.want {
			t.Errorf("%d, IsEqual got = %v, want = %v", i, got, test.want)
		}
	}
}

func TestDecodeStringToHash(t *testing.T) {
	tests := []*struct {
		str string
		err error
	}{
		{
			str: "0123456789",
			err: hashutil.ErrInvalidHashLength,
		},
		{
			str: "01234567890123456789012345678901234567890123456789012345678901234",
			err: hashutil.ErrInvalidHashLength,
		},
		{
			str: "0123456789012345678901234567890123456789012345678901234567890123",
			err: nil,
		},
		{
			str: "09CA7E4EAA6E8AE9C7D261167129184883644D07DFBA7CBFBC4C8A2E08360D5B",
			err: nil,
		},
		{
			str: "g123456789012345678901234567890123456789012345678901234567890123",
			err: errors.New("encoding/hex: invalid byte: U+0067 'g'"),
		},
	}

	for i, test := range tests {
		if _, err := hashutil.DecodeStringToHash(test.str); !testutil.SameErrorString(err, test.err) {
			t.Errorf("%d, DecodeStringToHash error not match, got = %v, want = %v", i, err, test.err)
		}
	}
}

func mustDecodeStringToHash(str string) hashutil.Hash {
	h, err := hashutil.DecodeStringToHash(str)
	if err != nil {
		panic(err)
	}
	return h
}
