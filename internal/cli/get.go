package cli

import (
	"github.com/spf13/cobra"
)

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get FILENAME KEY",
		Short: "Print the merged value of a top-level key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := opts.formatter(cmd)
			if err != nil {
				return err
			}

			cfg, err := opts.load(cmd, args[0])
			if err != nil {
				return err
			}

			value, err := cfg.Get(args[1])
			if err != nil {
				return err
			}

			return writeTo(cmd)(formatter.FormatValue(value))
		},
	}
}

func newHasCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "has FILENAME KEY",
		Short: "Report whether a top-level key is set; exits 1 when it is not",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := opts.formatter(cmd)
			if err != nil {
				return err
			}

			cfg, err := opts.load(cmd, args[0])
			if err != nil {
				return err
			}

			found := cfg.Has(args[1])
			if err := writeTo(cmd)(formatter.FormatValue(found)); err != nil {
				return err
			}
			if !found {
				return errSilent
			}
			return nil
		},
	}
}
