package hashutil

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"massnet.org/mass-sha256/crypto/sha256"
)

// copyBufferSize is the read size used when streaming into a digest.
const copyBufferSize = 32 * 1024

// Sum returns sha256(data).
func Sum(data []byte) Hash {
	return sha256.Sum256(data)
}

// SumReader streams r into a digest and returns the checksum together
// with the number of bytes read.
func SumReader(r io.Reader) (Hash, int64, error) {
	d := sha256.New()
	n, err := io.CopyBuffer(d, r, make([]byte, copyBufferSize))
	if err != nil {
		return Hash{}, n, errors.Wrap(err, "fail on reading input")
	}
	return d.Sum256(), n, nil
}

// SumFile returns the checksum of the file at path.
func SumFile(path string) (Hash, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return Hash{}, 0, errors.Wrapf(err, "fail on opening %s", path)
	}
	defer f.Close()

	h, n, err := SumReader(f)
	if err != nil {
		return Hash{}, n, errors.Wrapf(err, "fail on hashing %s", path)
	}
	return h, n, nil
}
