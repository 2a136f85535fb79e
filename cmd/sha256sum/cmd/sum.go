package cmd

import (
	"github.com/spf13/cobra"
	"massnet.org/mass-sha256/batch"
	"massnet.org/mass-sha256/checklist"
	"massnet.org/mass-sha256/errors"
	"massnet.org/mass-sha256/hashutil"
	"massnet.org/mass-sha256/logging"
)

func newSumCmd(a *app) *cobra.Command {
	var (
		workers int
		binary  bool
	)
	sumCmd := &cobra.Command{
		Use:   "sum [file...]",
		Short: "Print SHA256 checksums",
		Long: "Print SHA256 checksums of files, one '<digest>  <name>' line each.\n" +
			"\nArguments:\n" +
			"  [file...]   optional, standard input when omitted or '-'.\n",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{stdinName}
			}

			// stdin is read once, however many times '-' is given
			var (
				stdin *checklist.Entry
				files []string
			)
			for _, arg := range args {
				if arg != stdinName {
					files = append(files, arg)
					continue
				}
				if stdin != nil {
					continue
				}
				h, n, err := hashutil.SumReader(cmd.InOrStdin())
				if err != nil {
					return errors.New(errors.ErrCLIReadInput, err)
				}
				logging.VPrint(logging.INFO, "stdin hashed", logging.LogFormat{"size": n})
				stdin = &checklist.Entry{Hash: h, Name: stdinName, Binary: binary}
			}

			var results []*batch.Result
			if len(files) > 0 {
				hasher, err := a.newHasher(workers)
				if err != nil {
					return err
				}
				defer hasher.Close()

				ctx, cancel := interruptContext()
				defer cancel()
				if results, err = hasher.SumFiles(ctx, files); err != nil {
					return errors.New(errors.ErrCLIUnknownErr, err)
				}
			}

			var failed int
			for _, arg := range args {
				if arg == stdinName {
					printLine(cmd, "%s", stdin)
					continue
				}
				r := results[0]
				results = results[1:]
				if r.Err != nil {
					failed++
					logging.CPrint(logging.ERROR, "fail on hashing file", logging.LogFormat{"file": r.Path, "err": r.Err})
					continue
				}
				printLine(cmd, "%s", &checklist.Entry{Hash: r.Hash, Name: r.Path, Binary: binary})
			}
			if failed > 0 {
				return errors.Newf(errors.ErrCLIOpenFile, "%d of %d files could not be read", failed, len(files))
			}
			return nil
		},
	}
	sumCmd.Flags().IntVarP(&workers, "workers", "w", 0, "files hashed in parallel (default from config, number of CPUs)")
	sumCmd.Flags().BoolVarP(&binary, "binary", "b", false, "mark entries as binary with '*' before the name")
	return sumCmd
}
