package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/crosspath/pkg/pathsec"
)

const sanitizeExample = `  crosspath sanitize 'file<name>.txt'
  # file_name_.txt
`

// NewSanitizeCmd returns the sanitize command.
func NewSanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sanitize [segment]",
		Short:   "Rewrite a path segment into a safe form",
		Example: sanitizeExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			fmt.Fprintln(cc.OutOrStdout(), pathsec.Sanitize(args[0]))

			return nil
		},
	}
}
