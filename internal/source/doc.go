// Package source loads zeno source text into memory for the reader.
//
// # Locations
//
// Load accepts a local path, "-" for standard input, or an s3://bucket/key
// URI. Local files are memory-mapped read-only where the platform allows it,
// so parsing a large file does not copy it through the Go heap.
//
// # Compression
//
// Names ending in .zst or .lz4 are decompressed on load with zstd or the lz4
// frame format. The returned Buffer always holds plain source bytes.
//
// # Positions
//
// The reader reports byte offsets. Lines indexes the newlines of a buffer
// and turns an offset into a 1-based line and column for diagnostics.
package source
