package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/crosspath/pkg/configload"
	"github.com/MacroPower/crosspath/pkg/crosspath"
	"github.com/MacroPower/crosspath/pkg/pathconv"
)

const convertExample = `  crosspath convert 'C:\Users\John\file.txt'
  # /mnt/c/Users/John/file.txt

  crosspath convert --to windows /home/john/file.txt
  # C:\home\john\file.txt

  crosspath convert --mapping 'D:=/mnt/data' --to unix 'D:\Data\file.txt'
  # /mnt/data/Data/file.txt
`

var ErrInvalidArgument = errors.New("invalid argument")

// NewConvertCmd returns the convert command.
func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert [path]",
		Short:   "Convert a path between Windows and Unix styles",
		Example: convertExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			cfg, target, err := configFromFlags(cc)
			if err != nil {
				return err
			}

			cp, err := crosspath.NewWithConfig(args[0], cfg)
			if err != nil {
				return err
			}

			out, err := cp.ToStyle(target)
			if err != nil {
				return err
			}

			fmt.Fprintln(cc.OutOrStdout(), out)

			return nil
		},
	}

	addConfigFlags(cmd)

	return cmd
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("to", "t", "auto", "Target style (windows, unix, auto)")
	cmd.Flags().StringP("config", "c", "", "Path to a YAML configuration file")
	cmd.Flags().StringArrayP("mapping", "m", nil,
		"Additional drive mapping, e.g. 'D:=/mnt/data' (repeatable, first match wins)")
	cmd.Flags().Bool("no-security", false, "Skip security checks")
	cmd.Flags().Bool("no-normalize", false, "Skip lexical normalization")
}

// configFromFlags builds the pipeline configuration from the shared flag set,
// collecting every flag error before failing.
func configFromFlags(cc *cobra.Command) (crosspath.Config, pathconv.Style, error) {
	flags := cc.Flags()

	var merr error

	configPath, err := flags.GetString("config")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	to, err := flags.GetString("to")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	mappingArgs, err := flags.GetStringArray("mapping")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	noSecurity, err := flags.GetBool("no-security")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	noNormalize, err := flags.GetBool("no-normalize")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return crosspath.Config{}, pathconv.AutoStyle,
			fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}

	cfg := crosspath.DefaultConfig()
	if configPath != "" {
		cfg, err = configload.Load(configPath)
		if err != nil {
			return crosspath.Config{}, pathconv.AutoStyle, err
		}
	}

	mappings, err := parseMappings(mappingArgs)
	if err != nil {
		return crosspath.Config{}, pathconv.AutoStyle, err
	}
	// Flag mappings take precedence over the configured table.
	cfg.DriveMappings = append(mappings, cfg.DriveMappings...)

	if noSecurity {
		cfg.SecurityCheck = false
	}
	if noNormalize {
		cfg.Normalize = false
	}

	return cfg, pathconv.GetStyle(to), nil
}

func parseMappings(args []string) ([]pathconv.DriveMapping, error) {
	mappings := make([]pathconv.DriveMapping, 0, len(args))

	for _, arg := range args {
		drive, mount, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%w: mapping %q must have the form 'X:=/mount/point'",
				ErrInvalidArgument, arg)
		}

		mappings = append(mappings, pathconv.DriveMapping{Drive: drive, Mount: mount})
	}

	return mappings, nil
}
