package lzma2

import "errors"

var (
	// ErrUncompressedChunk is returned for control bytes 0x01/0x02. This
	// profile only supports compressed LZMA chunks.
	ErrUncompressedChunk = errors.New("lzma2: uncompressed chunks are not supported by this profile")

	// ErrInvalidControl is returned for a control byte that is neither
	// the end marker, an uncompressed-chunk marker nor a valid LZMA
	// chunk marker (0x80-0xff).
	ErrInvalidControl = errors.New("lzma2: invalid chunk control byte")

	// ErrMissingReset is returned when the first chunk of a stream does
	// not request a full reset (state, properties and dictionary).
	ErrMissingReset = errors.New("lzma2: first chunk must carry a full reset")

	// ErrPropertyByte is returned when a properties-reset chunk's
	// property byte does not match the fixed profile 0x5d (lc=3, lp=0,
	// pb=2).
	ErrPropertyByte = errors.New("lzma2: unsupported LZMA properties byte")

	// ErrChunkSize is returned when a chunk declares an uncompressed or
	// compressed size that falls outside this profile's limits.
	ErrChunkSize = errors.New("lzma2: chunk size out of range")

	// ErrChunkMismatch is returned when a completed chunk did not fill
	// exactly its declared uncompressed size. A chunk that does not
	// consume exactly its declared compressed size fails with
	// lzma.ErrRangeCoderNotFinished instead.
	ErrChunkMismatch = errors.New("lzma2: chunk did not match its declared sizes")
)
