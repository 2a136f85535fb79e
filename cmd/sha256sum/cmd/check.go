package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"massnet.org/mass-sha256/checklist"
	"massnet.org/mass-sha256/errors"
	"massnet.org/mass-sha256/logging"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		workers int
		quiet   bool
	)
	checkCmd := &cobra.Command{
		Use:   "check <list>",
		Short: "Verify files against a checksum list",
		Long: "Verify files against a checksum list produced by 'sum'.\n" +
			"\nArguments:\n" +
			"  <list>   checksum list file, '-' for standard input.\n",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != stdinName {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.New(errors.ErrCLIOpenFile, err)
				}
				defer f.Close()
				r = f
			}

			entries, err := checklist.Parse(r)
			if err != nil {
				return errors.New(errors.ErrCLIParseList, err)
			}
			if len(entries) == 0 {
				return errors.Newf(errors.ErrCLIParseList, "no checksum lines in %s", args[0])
			}

			hasher, err := a.newHasher(workers)
			if err != nil {
				return err
			}
			defer hasher.Close()

			ctx, cancel := interruptContext()
			defer cancel()
			outcomes, err := checklist.Verify(ctx, hasher, entries)
			if err != nil {
				return errors.New(errors.ErrCLIUnknownErr, err)
			}

			for _, o := range outcomes {
				if quiet && o.Status == checklist.StatusOK {
					continue
				}
				printLine(cmd, "%s: %s", o.Entry.Name, o.Status)
			}

			ok, failed, missing := checklist.Summarize(outcomes)
			logging.VPrint(logging.INFO, "check finished", logging.LogFormat{"ok": ok, "failed": failed, "missing": missing})
			switch {
			case failed > 0:
				return errors.Newf(errors.ErrCLIChecksumMismatch, "%d of %d computed checksums did NOT match", failed, len(outcomes))
			case missing > 0:
				return errors.Newf(errors.ErrCLIChecksumMissing, "%d of %d listed files could not be read", missing, len(outcomes))
			}
			return nil
		},
	}
	checkCmd.Flags().IntVarP(&workers, "workers", "w", 0, "files hashed in parallel (default from config, number of CPUs)")
	checkCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "don't print OK for each successfully verified file")
	return checkCmd
}
