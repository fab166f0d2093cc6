package cli

import (
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/localconfig/locator"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILENAME",
		Short: "Print the merged configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := opts.formatter(cmd)
			if err != nil {
				return err
			}

			cfg, err := opts.load(cmd, args[0])
			if err != nil {
				return err
			}

			return writeTo(cmd)(formatter.FormatConfig(cfg.All()))
		},
	}
}

func newPathsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "paths FILENAME",
		Short: "List the files that would be merged, lowest precedence first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := opts.formatter(cmd)
			if err != nil {
				return err
			}

			loc := locator.New(locator.WithLogger(opts.logger(cmd).Logger))
			paths, err := loc.Locate(args[0], opts.scan())
			if err != nil {
				return err
			}

			return writeTo(cmd)(formatter.FormatPaths(paths))
		},
	}
}
