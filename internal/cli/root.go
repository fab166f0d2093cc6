package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/localconfig/config"
	"github.com/wesleyorama2/localconfig/internal/logger"
	"github.com/wesleyorama2/localconfig/internal/output"
	"github.com/wesleyorama2/localconfig/locator"
)

var version = "0.1.0"

// errSilent marks a failure whose result has already been printed, such as a
// negative answer from `has`
var errSilent = errors.New("silent failure")

// rootOptions holds the persistent flags shared by every subcommand
type rootOptions struct {
	tree    bool
	noHome  bool
	noColor bool
	verbose bool
	format  string
}

// NewRootCmd builds the lcfg command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "lcfg",
		Short:   "Inspect layered JSON configuration files",
		Version: version,
		Long: `lcfg resolves a configuration filename the way applications using the
localconfig library do: the file in your home directory first, then the file
in the current directory (or, with --tree, every file from the filesystem root
down to the current directory). Later files override earlier ones key by key.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			// If no subcommand is provided, print help
			_ = cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.tree, "tree", "t", false, "Merge every file from the filesystem root down to the current directory")
	flags.BoolVar(&opts.noHome, "no-home", false, "Skip the file in the home directory")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log discovery details to stderr")
	flags.StringVarP(&opts.format, "format", "f", string(output.FormatText), "Output format (text, json, yaml)")

	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newGetCmd(opts))
	cmd.AddCommand(newHasCmd(opts))
	cmd.AddCommand(newPathsCmd(opts))

	return cmd
}

// Execute runs the root command with os.Args and reports errors on stderr.
// This is called by main.main().
func Execute() error {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err != nil && !errors.Is(err, errSilent) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// logger returns the diagnostics logger for a command invocation
func (o *rootOptions) logger(cmd *cobra.Command) *logger.Logger {
	return logger.New(cmd.ErrOrStderr(), "lcfg", o.verbose)
}

// scan converts the flags into locator scan settings
func (o *rootOptions) scan() locator.Scan {
	return locator.Scan{Home: !o.noHome, Tree: o.tree}
}

// load builds the merged configuration for filename
func (o *rootOptions) load(cmd *cobra.Command, filename string) (*config.Config, error) {
	scan := o.scan()
	return config.New(filename,
		config.WithTreeScan(scan.Tree),
		config.WithHomeScan(scan.Home),
		config.WithLogger(o.logger(cmd).Logger),
	)
}

// formatter picks the output formatter, disabling colors when stdout is not
// a terminal
func (o *rootOptions) formatter(cmd *cobra.Command) (output.FormatProvider, error) {
	format, err := output.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}

	noColor := o.noColor || !isTerminal(cmd.OutOrStdout())
	return output.GetFormatter(format, noColor), nil
}

// writeTo returns a sink for a formatter result that writes it to the
// command's stdout
func writeTo(cmd *cobra.Command) func(string, error) error {
	return func(text string, err error) error {
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && output.IsTerminal(f)
}
