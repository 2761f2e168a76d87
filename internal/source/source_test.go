package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "main.zn", []byte("(a b)\n"))
	buf, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, buf.Name())
	assert.Equal(t, "(a b)\n", string(buf.Bytes()))
	assert.Equal(t, 6, buf.Size())

	require.NoError(t, buf.Close())
	assert.Nil(t, buf.Bytes())
	assert.NoError(t, buf.Close(), "second Close")
}

func TestLoadEmptyFile(t *testing.T) {
	buf, err := Load(context.Background(), writeFile(t, "empty.zn", nil))
	require.NoError(t, err)
	defer buf.Close()
	assert.Empty(t, buf.Bytes())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.zn"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(context.Background(), t.TempDir())
	assert.ErrorContains(t, err, "is a directory")
}

func TestLoadStdin(t *testing.T) {
	buf, err := Load(context.Background(), "-", WithStdin(strings.NewReader("42")))
	require.NoError(t, err)
	assert.Equal(t, "<stdin>", buf.Name())
	assert.Equal(t, "42", string(buf.Bytes()))
}

func TestLoadCompressed(t *testing.T) {
	plain := []byte(strings.Repeat("(define x \"compressed\")\n", 200))
	for _, tt := range []struct {
		name  string
		codec Codec
	}{
		{"main.zn.zst", CodecZstd},
		{"main.zn.lz4", CodecLZ4},
	} {
		t.Run(string(tt.codec), func(t *testing.T) {
			packed, err := Compress(tt.codec, plain)
			require.NoError(t, err)
			assert.Less(t, len(packed), len(plain))

			buf, err := Load(context.Background(), writeFile(t, tt.name, packed))
			require.NoError(t, err)
			defer buf.Close()
			assert.Equal(t, plain, buf.Bytes())
		})
	}
}

func TestLoadCorruptCompressed(t *testing.T) {
	_, err := Load(context.Background(), writeFile(t, "bad.zn.zst", []byte("not zstd at all")))
	assert.ErrorContains(t, err, "zstd")
}

func TestCodecFor(t *testing.T) {
	assert.Equal(t, CodecZstd, CodecFor("a.zn.zst"))
	assert.Equal(t, CodecLZ4, CodecFor("s3://b/a.lz4"))
	assert.Equal(t, CodecNone, CodecFor("a.zn"))
	_, err := Compress(Codec("gzip"), nil)
	assert.Error(t, err)
}

func TestParseS3URI(t *testing.T) {
	bucket, key, err := ParseS3URI("s3://code/lib/core.zn")
	require.NoError(t, err)
	assert.Equal(t, "code", bucket)
	assert.Equal(t, "lib/core.zn", key)

	for _, bad := range []string{"s3://", "s3://bucket", "s3:///key", "file.zn"} {
		_, _, err := ParseS3URI(bad)
		assert.Error(t, err, bad)
	}
}

func TestS3ConfigFromEnv(t *testing.T) {
	t.Setenv("ZENO_S3_ENDPOINT", "localhost:9000")
	t.Setenv("ZENO_S3_INSECURE", "true")
	t.Setenv("AWS_ACCESS_KEY_ID", "minioadmin")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_REGION", "")

	cfg := S3ConfigFromEnv()
	assert.Equal(t, S3Config{
		Endpoint:  "localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "secret",
		Insecure:  true,
	}, cfg)

	client, err := cfg.Client()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", client.EndpointURL().Host)
	assert.Equal(t, "http", client.EndpointURL().Scheme)

	t.Setenv("ZENO_S3_ENDPOINT", "")
	assert.Equal(t, DefaultS3Endpoint, S3ConfigFromEnv().Endpoint)
}
