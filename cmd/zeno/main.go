// Command zeno reads zeno source files. See "zeno help" for usage.
package main

import (
	"os"

	"github.com/zeno-lang/zeno/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
