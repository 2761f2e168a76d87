package zeno_test

import (
	"fmt"

	"github.com/zeno-lang/zeno"
	"github.com/zeno-lang/zeno/alloc"
	"github.com/zeno-lang/zeno/syntax"
)

func Example() {
	src := []byte(`
; a small program
(define (square x) (* x x))
(print "squared:" (square 12))
`)

	p := zeno.NewParser(alloc.NewSystem(), zeno.WithFile("square.zn"))
	defer p.Close()

	err := p.Forms(src, func(ref syntax.Ref) error {
		tree := p.Tree()
		fmt.Printf("%d: %s\n", tree.Loc(ref), tree.Format(ref))
		return nil
	})
	if err != nil {
		fmt.Println(err)
	}
	fmt.Println("forms:", p.Count())

	// Output:
	// 19: (define (square x) (* x x))
	// 47: (print "squared:" (square 12))
	// forms: 2
}

func ExampleReadAll() {
	_, _, err := zeno.ReadAll([]byte("(a (b"), zeno.WithFile("demo.zn"))
	fmt.Println(err)

	// Output:
	// demo.zn[3] parse error: missing closing parenthesis
}
