package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNotFound is returned when the named source does not exist.
var ErrNotFound = os.ErrNotExist

// Buffer is loaded source text. Bytes stays valid until Close.
type Buffer struct {
	name   string
	data   []byte
	closer func() error
}

// FromBytes wraps data already in memory.
func FromBytes(name string, data []byte) *Buffer {
	return &Buffer{name: name, data: data}
}

// Name returns the name the buffer was loaded under.
func (b *Buffer) Name() string {
	return b.name
}

// Bytes returns the source text. It returns nil after Close.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Size returns the length of the source text in bytes.
func (b *Buffer) Size() int {
	return len(b.data)
}

// Close releases the buffer. It is safe to call more than once.
func (b *Buffer) Close() error {
	if b == nil {
		return nil
	}
	var err error
	if b.closer != nil {
		err = b.closer()
		b.closer = nil
	}
	b.data = nil
	return err
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	s3    S3Config
	stdin io.Reader
}

// WithS3Config overrides the object store settings taken from the
// environment.
func WithS3Config(cfg S3Config) LoadOption {
	return func(o *loadOptions) {
		o.s3 = cfg
	}
}

// WithStdin sets the reader used for the "-" location.
func WithStdin(r io.Reader) LoadOption {
	return func(o *loadOptions) {
		o.stdin = r
	}
}

// Load reads the source at uri. See the package documentation for the
// accepted forms.
func Load(ctx context.Context, uri string, opts ...LoadOption) (*Buffer, error) {
	o := loadOptions{s3: S3ConfigFromEnv(), stdin: os.Stdin}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		buf *Buffer
		err error
	)
	switch {
	case uri == "-":
		buf, err = loadReader("<stdin>", o.stdin)
	case strings.HasPrefix(uri, "s3://"):
		buf, err = loadS3(ctx, uri, o.s3)
	default:
		buf, err = loadFile(uri)
	}
	if err != nil {
		return nil, err
	}
	return decompress(buf)
}

func loadReader(name string, r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", name, err)
	}
	return FromBytes(name, data), nil
}

func loadFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("source: %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("source: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("source: %w", err)
	}
	if fi.IsDir() {
		f.Close()
		return nil, fmt.Errorf("source: %s is a directory", path)
	}

	size := fi.Size()
	if size == 0 {
		f.Close()
		return FromBytes(path, nil), nil
	}
	if int64(int(size)) != size {
		f.Close()
		return nil, fmt.Errorf("source: %s: file too large (%d bytes)", path, size)
	}

	data, unmap, err := mapFile(f, int(size))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("source: map %s: %w", path, err)
	}
	return &Buffer{
		name: path,
		data: data,
		closer: func() error {
			err := unmap()
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
			return err
		},
	}, nil
}
