package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/zeno-lang/zeno"
	"github.com/zeno-lang/zeno/internal/source"
	"github.com/zeno-lang/zeno/syntax"
)

func (a *app) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Parse a file and print tree and arena metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.stats(cmd.Context(), args[0])
		},
	}
}

func (a *app) stats(ctx context.Context, uri string) error {
	buf, err := a.load(ctx, uri)
	if err != nil {
		return err
	}
	defer buf.Close()

	p := zeno.NewParser(a.cfg.Permanent(), a.cfg.ParserOptions(buf.Name())...)
	defer p.Close()

	tree := p.Tree()
	depth := 0
	err = p.Forms(buf.Bytes(), func(ref syntax.Ref) error {
		depth = max(depth, tree.Depth(ref))
		return nil
	})
	if err != nil {
		fmt.Fprintln(a.stderr, a.describe(ctx, a.log.WithFile(buf.Name()), buf.Bytes(), err))
		return &exitError{code: ExitParse, err: err, reported: true}
	}

	m := p.Arena().Metrics()
	w := a.stdout
	fmt.Fprintf(w, "file:          %s\n", buf.Name())
	fmt.Fprintf(w, "source:        %s\n", humanize.IBytes(uint64(buf.Size())))
	fmt.Fprintf(w, "lines:         %s\n", humanize.Comma(int64(source.NewLines(buf.Bytes()).Count())))
	fmt.Fprintf(w, "forms:         %s\n", humanize.Comma(int64(p.Count())))
	fmt.Fprintf(w, "nodes:         %s\n", humanize.Comma(int64(tree.Len())))
	fmt.Fprintf(w, "max depth:     %d\n", depth)
	fmt.Fprintf(w, "tree:          %s\n", humanize.IBytes(uint64(tree.Size())))
	fmt.Fprintf(w, "arena peak:    %s\n", humanize.IBytes(uint64(m.Peak)))
	fmt.Fprintf(w, "arena cap:     %s\n", humanize.IBytes(uint64(m.Capacity)))
	fmt.Fprintf(w, "arena grows:   %d\n", m.Grows)
	return nil
}
