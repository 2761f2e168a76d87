//go:build unix

package source

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFileSpansPages(t *testing.T) {
	want := bytes.Repeat([]byte("(x 1)\n"), 3000)
	f, err := os.Open(writeFile(t, "big.zn", want))
	require.NoError(t, err)
	defer f.Close()

	data, unmap, err := mapFile(f, len(want))
	require.NoError(t, err)
	assert.Equal(t, want, data)
	assert.NoError(t, unmap())
}
