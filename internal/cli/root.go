// Package cli implements the zeno command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zeno-lang/zeno/alloc"
	"github.com/zeno-lang/zeno/internal/logging"
	"github.com/zeno-lang/zeno/internal/source"
	"github.com/zeno-lang/zeno/reader"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfg    Config
	log    *logging.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// compile flags
	print bool
	lines bool

	// check flags
	jobs int

	// newLineReader opens the REPL input; tests replace it.
	newLineReader func() (lineReader, error)
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	a := &app{
		cfg:    DefaultConfig(),
		log:    logging.NoopLogger(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	a.newLineReader = a.openReadline
	return a
}

// Execute runs the zeno command with the process arguments and returns the
// exit code.
func Execute() int {
	return run(context.Background(), newApp(os.Stdin, os.Stdout, os.Stderr), os.Args[1:])
}

func run(ctx context.Context, a *app, args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := alloc.AsFatal(r)
			if !ok {
				panic(r)
			}
			a.log.LogFatal(ctx, f)
			fmt.Fprintf(a.stderr, "zeno: fatal: %v\n", f)
			code = ExitFatal
		}
	}()

	if args == nil {
		args = []string{}
	}
	cmd := a.rootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if !errors.As(err, &ee) || !ee.reported {
		fmt.Fprintf(a.stderr, "zeno: %v\n", err)
	}
	var fatal *alloc.FatalError
	if errors.As(err, &fatal) {
		a.log.LogFatal(ctx, fatal)
	}
	return exitCode(err)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "zeno [file]",
		Short: "Read zeno source into syntax trees",
		Long: `zeno reads zeno source text form by form.

With a file argument it parses the file and reports the first syntax
error. Without arguments it starts an interactive reader.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			log, err := a.cfg.Logger(a.stderr)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.repl(cmd.Context())
			}
			return a.compile(cmd.Context(), args[0])
		},
	}
	a.cfg.bindFlags(root)
	a.bindCompileFlags(root)

	root.AddCommand(
		a.compileCommand(),
		a.replCommand(),
		a.checkCommand(),
		a.statsCommand(),
	)
	return root
}

func (a *app) bindCompileFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&a.print, "print", "p", false, "print each form in canonical text")
	cmd.Flags().BoolVarP(&a.lines, "lines", "l", false, "add line:col to syntax errors")
}

// load reads uri, logging the outcome.
func (a *app) load(ctx context.Context, uri string) (*source.Buffer, error) {
	buf, err := source.Load(ctx, uri, source.WithStdin(a.stdin))
	if err != nil {
		a.log.LogLoad(ctx, uri, 0, err)
		return nil, &exitError{code: ExitLoad, err: err}
	}
	a.log.LogLoad(ctx, uri, buf.Size(), nil)
	return buf, nil
}

// describe formats a syntax error for the terminal and logs it. Errors other
// than *reader.Error are returned as they are.
func (a *app) describe(ctx context.Context, log *logging.Logger, src []byte, err error) string {
	var perr *reader.Error
	if !errors.As(err, &perr) {
		return err.Error()
	}
	line, col := source.NewLines(src).Position(perr.Loc)
	log.LogParseError(ctx, err, line, col)
	if a.lines {
		return fmt.Sprintf("%s (line %d, col %d)", err, line, col)
	}
	return err.Error()
}
