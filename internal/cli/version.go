package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/crosspath/internal/version"
)

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cc *cobra.Command, _ []string) {
			fmt.Fprintln(cc.OutOrStdout(), version.GetVersionString())
		},
	}
}
