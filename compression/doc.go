// Package compression shrinks idle chunks in memory.
//
// The codec has two layers. BytesCompression is a pluggable block compressor
// over raw bytes (LZ4, Zstd, Snappy). ChannelCompression feeds a channel's
// backing buffer to a BytesCompression without copying or serializing it,
// and ArrayCompression applies a channel codec to every channel of a chunk,
// carrying the chunk's extent uncompressed alongside.
//
// Because the channel codec reinterprets typed memory as raw bytes, the
// compressed form ignores endianness and padding. It decompresses correctly
// only on the platform that produced it; this is a deliberate trade-off for
// speed. Compressed buffers carry no version tag or checksum: decompressing
// bytes that were not produced by the same codec on the same platform yields
// undefined values (the byte compressor's own framing errors are reported,
// but a clean decompress of foreign bytes is garbage, not an error).
package compression
