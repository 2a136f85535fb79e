package cmd

import (
	"encoding/hex"

	"github.com/spf13/cobra"
	"massnet.org/mass-sha256/crypto/sha256"
	"massnet.org/mass-sha256/errors"
	"massnet.org/mass-sha256/logging"
)

// decodeArg returns the argument bytes, hex-decoding them when asHex.
func decodeArg(arg string, asHex bool) ([]byte, error) {
	if !asHex {
		return []byte(arg), nil
	}
	data, err := hex.DecodeString(arg)
	if err != nil {
		logging.CPrint(logging.ERROR, "invalid hex argument", logging.LogFormat{"arg": arg})
		return nil, errors.New(errors.ErrCLIDecodeHex, err)
	}
	return data, nil
}

func newTextCmd() *cobra.Command {
	var asHex bool
	textCmd := &cobra.Command{
		Use:   "text <string>",
		Short: "Print the SHA256 checksum of a literal argument",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := decodeArg(args[0], asHex)
			if err != nil {
				return err
			}
			sum := sha256.Sum256(data)
			printLine(cmd, "%x", sum)
			return nil
		},
	}
	textCmd.Flags().BoolVarP(&asHex, "hex", "x", false, "decode the argument as hexadecimal bytes first")
	return textCmd
}

func newPadCmd() *cobra.Command {
	var asHex bool
	padCmd := &cobra.Command{
		Use:   "pad <string>",
		Short: "Print the padded message blocks of a literal argument",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := decodeArg(args[0], asHex)
			if err != nil {
				return err
			}
			padded := sha256.Pad(data)
			for i := 0; i < len(padded); i += sha256.BlockSize {
				printLine(cmd, "%x", padded[i:i+sha256.BlockSize])
			}
			return nil
		},
	}
	padCmd.Flags().BoolVarP(&asHex, "hex", "x", false, "decode the argument as hexadecimal bytes first")
	return padCmd
}
