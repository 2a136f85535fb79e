package sha256_test

import (
	"fmt"
	"io"
	"log"
	"os"

	"massnet.org/mass-sha256/crypto/sha256"
)

func ExampleSum256() {
	sum := sha256.Sum256([]byte("hello, world"))
	fmt.Printf("%x", sum)
	// Output: 09ca7e4eaa6e8ae9c7d261167129184883644d07dfba7cbfbc4c8a2e08360d5b
}

func ExampleNew() {
	h := sha256.New()
	h.Write([]byte("hello, "))
	h.Write([]byte("world"))
	fmt.Printf("%x", h.Sum(nil))
	// Output: 09ca7e4eaa6e8ae9c7d261167129184883644d07dfba7cbfbc4c8a2e08360d5b
}

func ExampleNew_file() {
	f, err := os.Open("file.txt")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%x", h.Sum(nil))
}

func ExamplePad() {
	padded := sha256.Pad([]byte("abc"))
	fmt.Println(len(padded), padded[3] == 0x80, padded[63])
	// Output: 64 true 24
}
