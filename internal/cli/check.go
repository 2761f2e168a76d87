package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zeno-lang/zeno"
	"github.com/zeno-lang/zeno/alloc"
	"github.com/zeno-lang/zeno/syntax"
)

type checkResult struct {
	name  string
	forms int
	code  int
	msg   string
}

func (a *app) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse many files concurrently and report every error",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(cmd.Context(), args)
		},
	}
	cmd.Flags().IntVarP(&a.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "files parsed at once")
	cmd.Flags().BoolVarP(&a.lines, "lines", "l", false, "add line:col to syntax errors")
	return cmd
}

func (a *app) check(ctx context.Context, uris []string) error {
	jobs := max(a.jobs, 1)
	permanent := a.cfg.Permanent()
	if jobs > 1 {
		permanent = alloc.NewLocked(permanent)
	}

	results := make([]checkResult, len(uris))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, uri := range uris {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					f, ok := alloc.AsFatal(r)
					if !ok {
						panic(r)
					}
					err = &exitError{code: ExitFatal, err: f}
				}
			}()
			results[i] = a.checkOne(ctx, permanent, i, uri)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed, code := 0, ExitOK
	for _, r := range results {
		if r.code == ExitOK {
			continue
		}
		failed++
		code = max(code, r.code)
		fmt.Fprintln(a.stderr, r.msg)
	}
	fmt.Fprintf(a.stdout, "checked %d files, %d failed\n", len(results), failed)
	if failed > 0 {
		return &exitError{
			code:     code,
			err:      fmt.Errorf("%d of %d files failed", failed, len(results)),
			reported: true,
		}
	}
	return nil
}

func (a *app) checkOne(ctx context.Context, permanent alloc.Allocator, worker int, uri string) checkResult {
	log := a.log.WithWorker(worker)
	buf, err := a.load(ctx, uri)
	if err != nil {
		return checkResult{name: uri, code: ExitLoad, msg: fmt.Sprintf("%s: %v", uri, err)}
	}
	defer buf.Close()

	p := zeno.NewParser(permanent, a.cfg.ParserOptions(buf.Name())...)
	defer p.Close()

	log = log.WithFile(buf.Name())
	err = p.Forms(buf.Bytes(), func(syntax.Ref) error {
		return ctx.Err()
	})
	log.LogArena(ctx, p.Arena().Metrics())
	r := checkResult{name: buf.Name(), forms: p.Count()}
	if err != nil {
		r.code = ExitParse
		r.msg = a.describe(ctx, log, buf.Bytes(), err)
	}
	return r
}
