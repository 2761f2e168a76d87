package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeno-lang/zeno"
	"github.com/zeno-lang/zeno/syntax"
)

func (a *app) compileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Parse a source file",
		Long: `Parse every top-level form of a source file.

The file may be a local path, - for standard input, or s3://bucket/key.
Names ending in .zst or .lz4 are decompressed first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compile(cmd.Context(), args[0])
		},
	}
	a.bindCompileFlags(cmd)
	return cmd
}

func (a *app) compile(ctx context.Context, uri string) error {
	buf, err := a.load(ctx, uri)
	if err != nil {
		return err
	}
	defer buf.Close()

	p := zeno.NewParser(a.cfg.Permanent(), a.cfg.ParserOptions(buf.Name())...)
	defer p.Close()

	log := a.log.WithFile(buf.Name())
	tree := p.Tree()
	err = p.Forms(buf.Bytes(), func(ref syntax.Ref) error {
		log.LogForm(ctx, p.Count()-1, tree.Loc(ref), tree.Len())
		if a.print {
			fmt.Fprintln(a.stdout, tree.Format(ref))
		}
		return nil
	})
	log.LogArena(ctx, p.Arena().Metrics())
	if err != nil {
		fmt.Fprintln(a.stderr, a.describe(ctx, log, buf.Bytes(), err))
		return &exitError{code: ExitParse, err: err, reported: true}
	}
	return nil
}
