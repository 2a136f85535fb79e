package hashutil

import (
	"encoding/hex"
	"errors"

	"massnet.org/mass-sha256/crypto/sha256"
)

// ErrInvalidHashLength indicates the length of hash is invalid.
var ErrInvalidHashLength = errors.New("invalid length for hash")

// HashSize is the byte length of a Hash.
const HashSize = sha256.Size

// Hash represents a 32-byte sha256 digest.
type Hash [HashSize]byte

// Bytes converts Hash to Byte Slice.
func (h Hash) Bytes() []byte {
	var bs Hash
	copy(bs[:], h[:])
	return bs[:]
}

// String converts Hash to lowercase hex.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsEqual reports whether h and target hold the same digest.
// A nil target never matches.
func (h *Hash) IsEqual(target *Hash) bool {
	if h == nil || target == nil {
		return h == target
	}
	return *h == *target
}

// DecodeStringToHash decodes a string value to Hash,
// the length of string value must be 64.
func DecodeStringToHash(str string) (Hash, error) {
	if len(str) != HashSize*2 {
		return Hash{}, ErrInvalidHashLength
	}
	hBytes, err := hex.DecodeString(str)
	if err != nil {
		return Hash{}, err
	}
	var h = Hash{}
	copy(h[:], hBytes)

	return h, nil
}
