package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/zeno-lang/zeno"
	"github.com/zeno-lang/zeno/reader"
	"github.com/zeno-lang/zeno/syntax"
)

const (
	replPrompt = "zeno> "
	replName   = "<repl>"
)

// lineReader is the part of *readline.Instance the REPL uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

func (a *app) replCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read forms interactively",
		Long: `Read forms line by line and print each one back in canonical text.

A line that ends inside a tuple or string continues on the next line.
Enter ,quit or ,exit to leave; Ctrl-C discards the pending input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.repl(cmd.Context())
		},
	}
}

func (a *app) openReadline() (lineReader, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		Stdout:          a.stdout,
		Stderr:          a.stderr,
		InterruptPrompt: "^C",
	})
}

func (a *app) repl(ctx context.Context) error {
	rl, err := a.newLineReader()
	if err != nil {
		return err
	}
	defer rl.Close()

	p := zeno.NewParser(a.cfg.Permanent(), a.cfg.ParserOptions(replName)...)
	defer p.Close()

	contPrompt := strings.Repeat(" ", len(replPrompt))
	var pending string
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			pending = ""
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		text := strings.TrimSpace(line)
		if pending == "" {
			if text == ",quit" || text == ",exit" {
				return nil
			}
			if text == "" {
				continue
			}
		} else {
			text = pending + "\n" + line
		}

		out, err := a.evalLine(ctx, p, text)
		if reader.Incomplete(err) {
			if pending == "" {
				rl.SetPrompt(contPrompt)
			}
			pending = text
			continue
		}
		if pending != "" {
			pending = ""
			rl.SetPrompt(replPrompt)
		}
		for _, s := range out {
			fmt.Fprintln(a.stdout, s)
		}
		if err != nil {
			fmt.Fprintln(a.stderr, a.describe(ctx, a.log, []byte(text), err))
		}
	}
}

// evalLine reads every form of text into a fresh tree and returns their
// canonical text. Forms before a syntax error are still returned.
func (a *app) evalLine(ctx context.Context, p *zeno.Parser, text string) ([]string, error) {
	tree := p.Tree()
	tree.Reset()
	var out []string
	err := p.Forms([]byte(text), func(ref syntax.Ref) error {
		a.log.LogForm(ctx, p.Count()-1, tree.Loc(ref), tree.Len())
		out = append(out, tree.Format(ref))
		return nil
	})
	return out, err
}
