package cmd

import (
	"github.com/spf13/cobra"
	"massnet.org/mass-sha256/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  exactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			printLine(cmd, "sha256sum %s", version.GetVersion())
		},
	}
}
