package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"massnet.org/mass-sha256/batch"
	"massnet.org/mass-sha256/config"
	"massnet.org/mass-sha256/errors"
	"massnet.org/mass-sha256/logging"
)

// stdinName is the argument and display name for standard input.
const stdinName = "-"

// exactArgs wraps cobra.ExactArgs with logging and an error code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			logging.CPrint(logging.ERROR, "wrong argument count", logging.LogFormat{"count": len(args)})
			return errors.New(errors.ErrCLIInvalidArgs, err)
		}
		return nil
	}
}

// interruptContext is cancelled on SIGINT or SIGTERM.
func interruptContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case s := <-sig:
			logging.CPrint(logging.WARN, "interrupted, stopping", logging.LogFormat{"signal": s.String()})
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, func() {
		signal.Stop(sig)
		cancel()
	}
}

// newHasher builds a batch hasher, overriding the configured worker
// count when workers is positive.
func (a *app) newHasher(workers int) (*batch.Hasher, error) {
	if workers < 0 || workers > config.MaxWorkers {
		return nil, errors.Newf(errors.ErrCLIInvalidFlag, "workers must be in [0, %d], got %d", config.MaxWorkers, workers)
	}
	if workers == 0 {
		workers = a.cfg.Batch.Workers
	}
	h, err := batch.NewHasher(workers, a.cfg.Batch.CacheEntries)
	if err != nil {
		return nil, errors.New(errors.ErrCLIUnknownErr, err)
	}
	return h, nil
}

func printLine(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
