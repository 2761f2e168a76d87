package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec names a compression format recognised by file suffix.
type Codec string

const (
	CodecNone Codec = ""
	CodecZstd Codec = "zstd"
	CodecLZ4  Codec = "lz4"
)

// CodecFor returns the codec implied by name's suffix.
func CodecFor(name string) Codec {
	switch {
	case strings.HasSuffix(name, ".zst"):
		return CodecZstd
	case strings.HasSuffix(name, ".lz4"):
		return CodecLZ4
	default:
		return CodecNone
	}
}

// decompress replaces a compressed buffer with its plain contents. The
// compressed buffer is closed either way.
func decompress(buf *Buffer) (*Buffer, error) {
	codec := CodecFor(buf.Name())
	if codec == CodecNone {
		return buf, nil
	}
	defer buf.Close()

	var (
		data []byte
		err  error
	)
	switch codec {
	case CodecZstd:
		data, err = decodeZstd(buf.Bytes())
	case CodecLZ4:
		data, err = io.ReadAll(lz4.NewReader(bytes.NewReader(buf.Bytes())))
	}
	if err != nil {
		return nil, fmt.Errorf("source: %s: %s: %w", buf.Name(), codec, err)
	}
	return FromBytes(buf.Name(), data), nil
}

func decodeZstd(src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(src, nil)
}

// Compress encodes plain source with codec. It is the inverse of what Load
// does for the matching suffix.
func Compress(codec Codec, src []byte) ([]byte, error) {
	switch codec {
	case CodecNone:
		return src, nil
	case CodecZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(src, nil), nil
	case CodecLZ4:
		var out bytes.Buffer
		w := lz4.NewWriter(&out)
		if _, err := w.Write(src); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return out.Bytes(), nil
	default:
		return nil, fmt.Errorf("source: unknown codec %q", codec)
	}
}
