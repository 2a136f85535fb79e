package hashutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"massnet.org/mass-sha256/testutil"
)

func ExampleSum() {
	fmt.Println(Sum([]byte("hello, world")))

	// Output:
	// 09ca7e4eaa6e8ae9c7d261167129184883644d07dfba7cbfbc4c8a2e08360d5b
}

func ExampleSumReader() {
	h, n, err := SumReader(strings.NewReader("abc"))
	if err != nil {
		panic(err)
	}
	fmt.Println(h, n)

	// Output:
	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad 3
}

var errBrokenPipe = errors.New("broken pipe")

type failingReader struct{ n int }

func (r *failingReader) Read(p []byte) (int, error) {
	if r.n == 0 {
		return 0, errBrokenPipe
	}
	r.n--
	p[0] = 'x'
	return 1, nil
}

func TestSumReaderError(t *testing.T) {
	_, n, err := SumReader(&failingReader{n: 5})
	require.Error(t, err)
	assert.Equal(t, int64(5), n)
	assert.Equal(t, errBrokenPipe, pkgerrors.Cause(err))
}

func TestSumReaderLarge(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 10000)
	h, n, err := SumReader(bytes.NewBuffer(data))
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, Sum(data), h)
}

func TestSumFile(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()
	path := testutil.WriteFile(t, dir, "greeting.txt", []byte("hello, world"))

	h, n, err := SumFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
	assert.Equal(t, "09ca7e4eaa6e8ae9c7d261167129184883644d07dfba7cbfbc4c8a2e08360d5b", h.String())

	_, _, err = SumFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(pkgerrors.Cause(err)))
}

func BenchmarkSum(b *testing.B) {
	data := []byte("bench sha256")

	for i := 0; i < b.N; i++ {
		Sum(data)
	}
}
