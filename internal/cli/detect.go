package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MacroPower/crosspath/pkg/pathconv"
	"github.com/MacroPower/crosspath/pkg/pathenc"
)

const detectExample = `  crosspath detect 'C:\Users\John'
  # encoding: UTF-8
  # style: WINDOWS

  crosspath detect --file path-bytes.bin
`

// NewDetectCmd returns the detect command.
func NewDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "detect [path]",
		Short:   "Report the detected encoding and style of a path",
		Example: detectExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			file, err := cc.Flags().GetString("file")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			var input []byte
			switch {
			case file != "":
				input, err = os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
			case len(args) == 1:
				input = []byte(args[0])
			default:
				return fmt.Errorf("%w: a path argument or --file is required",
					ErrInvalidArgument)
			}

			encoding := pathenc.Detect(input)
			fmt.Fprintf(cc.OutOrStdout(), "encoding: %s\n", encoding.Name())

			text, replaced := pathenc.ToUTF8Lossy(input)
			if replaced {
				fmt.Fprintln(cc.OutOrStdout(), "style: undetermined (lossy decode)")

				return nil
			}

			fmt.Fprintf(cc.OutOrStdout(), "style: %s\n", pathconv.DetectStyle(text))

			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "Read raw path bytes from a file")

	return cmd
}
