package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/crosspath/pkg/pathsec"
)

const checkExample = `  crosspath check /home/john/file.txt
  # ok

  crosspath check '../../etc/passwd'
  # unsafe path: traversal-attempt: ".."
`

// NewCheckCmd returns the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check [path]",
		Short:   "Check a path for dangerous constructs",
		Example: checkExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			systemDirs, err := cc.Flags().GetStringArray("system-dir")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			checker := pathsec.NewChecker()
			if cc.Flags().Changed("system-dir") {
				checker = pathsec.NewCheckerWithDenylist(systemDirs)
			}

			if err := checker.Check(args[0]); err != nil {
				var v *pathsec.Violation
				if errors.As(err, &v) {
					return fmt.Errorf("%s: %w", args[0], v)
				}

				return err
			}

			fmt.Fprintln(cc.OutOrStdout(), "ok")

			return nil
		},
	}

	cmd.Flags().StringArray("system-dir", nil,
		"Override the system-directory denylist (repeatable)")

	return cmd
}
