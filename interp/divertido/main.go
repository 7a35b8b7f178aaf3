package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/npillmayer/divertido/config"
	"github.com/npillmayer/divertido/interp"
	"github.com/npillmayer/divertido/parser"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	tlevel  string
	scoping string
	showAST bool
)

// settings is the effective configuration, after flags have been merged.
var settings = config.Default()

var rootCmd = &cobra.Command{
	Use:   "divertido [FILE]",
	Short: "Divertido - a small scripting language",
	Long: `Divertido is a small scripting language with numbers, booleans, strings
and nil, variables, if/else, while and print.

Without arguments an interactive REPL is started. With a file argument the
file is executed.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runFile(args[0])
		}
		return startREPL()
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startREPL()
	},
}

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Execute a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./divertido.toml)")
	rootCmd.PersistentFlags().StringVar(&tlevel, "trace", "", "trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().StringVar(&scoping, "scoping", "", "scoping of variables [flat|block]")
	rootCmd.PersistentFlags().BoolVar(&showAST, "ast", false, "display the syntax tree before executing")
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(runCmd)
}

// exitError carries a process exit code. Its message has already been
// reported when it reaches main.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	if err := rootCmd.Execute(); err != nil {
		if e, ok := err.(exitError); ok {
			os.Exit(e.code)
		}
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
}

// setup loads the configuration and lets command line flags override it.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("trace") {
		c.Trace = tlevel
	}
	if flags.Changed("scoping") {
		c.Scoping = strings.ToLower(scoping)
	}
	if flags.Changed("ast") {
		c.ShowAST = showAST
	}
	if err := c.Validate(); err != nil {
		return err
	}
	settings = c
	level := tracing.TraceLevelFromString(settings.Trace)
	for _, key := range []string{"divertido.cli", "divertido.scanner", "divertido.parser",
		"divertido.runtime", "divertido.interp"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s, scoping is %s", settings.Trace, settings.Scoping)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func runFile(path string) error {
	source, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read source file: %w", err)
	}
	if code := execute(string(source), settings, os.Stdout, os.Stderr); code != 0 {
		return exitError{code: code}
	}
	return nil
}

// execute runs a complete program and returns the process exit code.
// A diagnostic is written to errOut for a failing program.
func execute(source string, c config.Config, out, errOut io.Writer) int {
	intp := interp.New(interp.WithOutput(out), interp.BlockScoping(c.BlockScoping()))
	statements, err := parser.Parse(source)
	if err == nil {
		if c.ShowAST {
			renderAST(statements)
		}
		err = intp.Execute(statements)
	}
	if err != nil {
		fmt.Fprintln(errOut, err.Error())
		return 1
	}
	return 0
}
