package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeno-lang/zeno"
	"github.com/zeno-lang/zeno/alloc"
	"github.com/zeno-lang/zeno/internal/logging"
)

// Config holds the global flags. Defaults come from ZENO_* environment
// variables when set.
type Config struct {
	LogLevel     string
	LogFormat    string
	Allocator    string
	ArenaSize    int
	QuoteSugar   bool
	IndentTuples bool
}

// DefaultConfig returns the configuration implied by the environment.
func DefaultConfig() Config {
	return Config{
		LogLevel:     envOr("ZENO_LOG_LEVEL", "error"),
		LogFormat:    envOr("ZENO_LOG_FORMAT", "text"),
		Allocator:    envOr("ZENO_ALLOCATOR", "system"),
		ArenaSize:    envInt("ZENO_ARENA_SIZE", alloc.DefaultArenaSize),
		QuoteSugar:   envBool("ZENO_QUOTE_SUGAR", false),
		IndentTuples: envBool("ZENO_INDENT_TUPLES", false),
	}
}

func (c *Config) bindFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
	fs.StringVar(&c.Allocator, "allocator", c.Allocator, "permanent allocator for syntax trees: system or pages")
	fs.IntVar(&c.ArenaSize, "arena-size", c.ArenaSize, "initial scratch arena capacity in bytes")
	fs.BoolVar(&c.QuoteSugar, "quote-sugar", c.QuoteSugar, "read 'x as ($code x) and ,x as ($insert \"%\" x)")
	fs.BoolVar(&c.IndentTuples, "indent-tuples", c.IndentTuples, "read each unparenthesized line as a tuple, nesting indented lines")
}

// Validate checks flag values before any command runs.
func (c *Config) Validate() error {
	switch c.Allocator {
	case "system", "pages":
	default:
		return fmt.Errorf("unknown allocator %q (want system or pages)", c.Allocator)
	}
	if c.ArenaSize <= 0 {
		return fmt.Errorf("arena size must be positive, got %d", c.ArenaSize)
	}
	return nil
}

// Permanent returns a fresh allocator for syntax trees.
func (c *Config) Permanent() alloc.Allocator {
	if c.Allocator == "pages" {
		return alloc.NewPages()
	}
	return alloc.NewSystem()
}

// Logger builds the logger selected by the log flags.
func (c *Config) Logger(w io.Writer) (*logging.Logger, error) {
	return logging.New(w, c.LogFormat, c.LogLevel)
}

// ParserOptions returns the options for parsing the source named file. The
// scratch arena grows from the heap; the allocator flag selects only where
// trees live.
func (c *Config) ParserOptions(file string) []zeno.Option {
	return []zeno.Option{
		zeno.WithFile(file),
		zeno.WithQuoteSugar(c.QuoteSugar),
		zeno.WithIndentTuples(c.IndentTuples),
		zeno.WithArenaSize(c.ArenaSize),
		zeno.WithScratchBacking(alloc.NewSystem()),
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return def
}

func envBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return def
}
