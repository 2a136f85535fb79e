package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"massnet.org/mass-sha256/config"
	"massnet.org/mass-sha256/errors"
	"massnet.org/mass-sha256/logging"
	"massnet.org/mass-sha256/version"
)

const (
	exitMismatch = 1
	exitFailure  = 2
)

// app carries state shared by the subcommands of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	rootCmd := &cobra.Command{
		Use:           filepath.Base(os.Args[0]),
		Short:         "Compute and check SHA256 message digests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./.sha256sum.json)")
	flags.String(config.KeyLogDir, config.DefaultLogDir, "directory for log files, empty disables file logging")
	flags.String(config.KeyLogLevel, config.DefaultLogLevel, "level of logs (trace, debug, info, warn, error, fatal, panic)")
	a.v.BindPFlag(config.KeyLogDir, flags.Lookup(config.KeyLogDir))
	a.v.BindPFlag(config.KeyLogLevel, flags.Lookup(config.KeyLogLevel))

	rootCmd.AddCommand(newSumCmd(a))
	rootCmd.AddCommand(newTextCmd())
	rootCmd.AddCommand(newPadCmd())
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newSelfTestCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the command line and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logging.CPrint(logging.ERROR, "command failed", logging.LogFormat{"code": errors.Code(err), "err": err})
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch errors.Code(err) {
	case errors.ErrCLIChecksumMismatch, errors.ErrCLIChecksumMissing:
		return exitMismatch
	default:
		return exitFailure
	}
}

// initConfig reads in config file and ENV variables, then initializes logging.
func (a *app) initConfig() error {
	cfg, err := config.LoadConfig(a.v, a.cfgFile)
	if err != nil {
		return errors.New(errors.ErrCLIConfig, err)
	}
	a.cfg = cfg
	logging.Init(cfg.LoggingOptions())
	logging.VPrint(logging.INFO, "config loaded", logging.LogFormat{
		"file":    cfg.File,
		"version": version.GetVersion(),
		"workers": cfg.Batch.Workers,
	})
	return nil
}
