package cmd

import (
	"bytes"
	"encoding/hex"

	"github.com/spf13/cobra"
	"massnet.org/mass-sha256/crypto/sha256"
	"massnet.org/mass-sha256/errors"
	"massnet.org/mass-sha256/logging"
)

type knownAnswer struct {
	name string
	in   []byte
	out  string
}

var knownAnswers = []knownAnswer{
	{"empty", nil, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{"hello, world", []byte("hello, world"), "09ca7e4eaa6e8ae9c7d261167129184883644d07dfba7cbfbc4c8a2e08360d5b"},
	{"abc", []byte("abc"), "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{"448 bits", []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"), "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	{"million a", bytes.Repeat([]byte{'a'}, 1000000), "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"},
}

// checkAnswer runs both the one-shot and the streaming path.
func checkAnswer(ka knownAnswer) (string, bool) {
	sum := sha256.Sum256(ka.in)
	got := hex.EncodeToString(sum[:])
	if got != ka.out {
		return got, false
	}

	d := sha256.New()
	for p := ka.in; len(p) > 0; {
		n := 1000
		if n > len(p) {
			n = len(p)
		}
		d.Write(p[:n])
		p = p[n:]
	}
	got = hex.EncodeToString(d.Sum(nil))
	return got, got == ka.out
}

func newSelfTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in known-answer tests",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, ka := range knownAnswers {
				got, ok := checkAnswer(ka)
				if !ok {
					failed++
					logging.CPrint(logging.ERROR, "known answer mismatch", logging.LogFormat{"vector": ka.name, "got": got, "want": ka.out})
					printLine(cmd, "FAIL %s", ka.name)
					continue
				}
				printLine(cmd, "ok   %s %s", ka.name, got)
			}
			if failed > 0 {
				return errors.Newf(errors.ErrCLISelfTest, "%d of %d vectors failed", failed, len(knownAnswers))
			}
			return nil
		},
	}
}
