package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pretty/pkg/doc"
	perrors "github.com/matzehuels/pretty/pkg/errors"
	"github.com/matzehuels/pretty/pkg/jsondoc"
	"github.com/matzehuels/pretty/pkg/term"
)

// fmtOpts holds the command-line flags for the fmt command.
type fmtOpts struct {
	width   int    // target line width
	indent  int    // nesting step for broken objects and arrays
	color   string // auto, always, never
	measure string // display, bytes, ansi
}

// fmtCommand creates the fmt command, which pretty prints JSON input.
func (c *CLI) fmtCommand() *cobra.Command {
	var opts fmtOpts

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Pretty print JSON to a target width",
		Long: `Pretty print JSON read from a file, or from stdin when no file (or "-") is given.

Objects and arrays stay on one line when they fit within the width and are
broken one member per line otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg, opts)
			if err := cfg.Validate(); err != nil {
				return err
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runFmt(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), path, cfg)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", defaultWidth, "target line width")
	cmd.Flags().IntVarP(&opts.indent, "indent", "i", defaultIndent, "indentation step")
	cmd.Flags().StringVar(&opts.color, "color", colorAuto, "colorize output: auto, always, never")
	cmd.Flags().StringVar(&opts.measure, "measure", measureDisplay, "width unit: display, bytes, ansi")

	return cmd
}

// applyFlags overrides cfg with the flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *Config, opts fmtOpts) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("indent") {
		cfg.Indent = opts.indent
	}
	if flags.Changed("color") {
		cfg.Color = opts.color
	}
	if flags.Changed("measure") {
		cfg.Measure = opts.measure
	}
}

func runFmt(ctx context.Context, stdin io.Reader, stdout io.Writer, path string, cfg Config) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	in, name, closeIn, err := openInput(stdin, path)
	if err != nil {
		return err
	}
	defer closeIn()

	d, err := jsondoc.Build(in, cfg.Indent)
	if err != nil {
		return err
	}
	logger.Debug("parsed input", "source", name, "width", cfg.Width, "indent", cfg.Indent)

	w := bufio.NewWriter(stdout)
	sink := term.Map(term.NewSink(w, colorProfile(cfg.Color, stdout)), term.Palette(cfg.palette()))
	if err := doc.Render(d, cfg.Width, sink, doc.WithMeasure(cfg.measure())); err != nil {
		return perrors.Wrap(perrors.ErrCodeOutput, err, "write output")
	}
	if err := doc.WriteAll(w, "\n"); err != nil {
		return perrors.Wrap(perrors.ErrCodeOutput, err, "write output")
	}
	if err := w.Flush(); err != nil {
		return perrors.Wrap(perrors.ErrCodeOutput, err, "flush output")
	}

	prog.done("Formatted " + name)
	return nil
}

// openInput opens path, or returns stdin for "-".
func openInput(stdin io.Reader, path string) (io.Reader, string, func(), error) {
	if path == "-" {
		return stdin, "stdin", func() {}, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, path, nil, perrors.New(perrors.ErrCodeFileNotFound, "input file %s not found", path)
	}
	if err != nil {
		return nil, path, nil, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "open %s", path)
	}
	return f, path, func() { _ = f.Close() }, nil
}

// colorProfile picks the terminal profile for a color mode.
func colorProfile(mode string, out io.Writer) termenv.Profile {
	switch mode {
	case colorAlways:
		if p := term.DetectProfile(out); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI256
	case colorNever:
		return termenv.Ascii
	default:
		return term.DetectProfile(out)
	}
}
