package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/malimon"
)

// errFailed reports that at least one expression failed. The failures
// themselves have already been printed.
var errFailed = errors.New("some expressions failed")

type options struct {
	in         string
	verb       string
	output     string
	config     string
	lines      bool
	echo       bool
	spacesOnly bool
	noColor    bool
	verbose    bool
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			log.Print(err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "malimon [flags] [expr...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Malimon evaluates arithmetic expressions with + - * / : and parentheses.
Both / and : divide. Each argument is one expression. With no arguments, the
expression is read from standard input, or from the file named by --in.

Integer results print without a decimal point, and results of division or
decimal literals print with one, e.g. "2+3*4" is 14 and "10/2:5" is 1.0.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.config != "" {
				cfg, err := loadConfig(opts.config)
				if err != nil {
					return err
				}
				cfg.apply(cmd.Flags(), &opts)
			}
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.in, "in", "", `input file, or "-" for stdin (default stdin if no args given)`)
	f.StringVar(&opts.verb, "fmt", "%v", "result formatting string for text output")
	f.StringVarP(&opts.output, "output", "o", "text", "output format: text, json, or yaml")
	f.StringVar(&opts.config, "config", "", "YAML file with default option values")
	f.BoolVarP(&opts.lines, "lines", "n", false, "parse separate input lines as separate expressions")
	f.BoolVar(&opts.echo, "echo", false, "print postfix forms")
	f.BoolVar(&opts.spacesOnly, "spaces-only", false, "strip only spaces, not tabs or newlines")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored error output")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log each evaluation stage")
	return cmd
}

func run(stdin io.Reader, stdout, stderr io.Writer, args []string, opts options) error {
	w, err := newWriter(opts.output, stdout, stderr, opts.verb, opts.echo)
	if err != nil {
		return err
	}
	if opts.noColor {
		w.red.DisableColor()
	}

	exprs := append([]string(nil), args...)
	if opts.in != "" || len(args) == 0 {
		src, err := readInput(opts.in, stdin)
		if err != nil {
			return err
		}
		exprs = append(exprs, split(src, opts.lines)...)
	}

	lg := logrus.New()
	lg.SetOutput(stderr)
	if opts.verbose {
		lg.SetLevel(logrus.DebugLevel)
	} else {
		lg.SetLevel(logrus.WarnLevel)
	}
	copts := []malimon.Option{malimon.Logger(lg)}
	if opts.spacesOnly {
		copts = append(copts, malimon.SpacesOnly())
	}
	calc := malimon.New(copts...)

	failed := false
	for _, e := range exprs {
		rec := record{Expr: e}
		if opts.echo {
			if p, err := calc.Postfix(e); err == nil {
				rec.Postfix = p.String()
			}
		}
		r, err := calc.Eval(e)
		rec.set(r, err)
		if err != nil {
			failed = true
		}
		if err := w.write(rec, r, err); err != nil {
			return err
		}
	}
	if err := w.flush(); err != nil {
		return err
	}
	if failed {
		return errFailed
	}
	return nil
}

// readInput reads the whole input named by name, which may be empty or "-"
// for stdin.
func readInput(name string, stdin io.Reader) (string, error) {
	if name != "" && name != "-" {
		b, err := os.ReadFile(name)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(b), nil
}

// split divides input into expressions. Without lines, the whole input less
// its final line ending is one expression. With lines, each non-blank line
// is an expression.
func split(src string, lines bool) []string {
	if !lines {
		return []string{strings.TrimRight(src, "\r\n")}
	}
	var r []string
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		r = append(r, line)
	}
	return r
}

// newRed creates the color used for errors.
func newRed() *color.Color {
	return color.New(color.FgRed)
}
