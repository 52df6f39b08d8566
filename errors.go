package xz

import "errors"

// Structural errors: malformed or unsupported framing.
var (
	ErrHeaderMagic    = errors.New("xz: invalid stream header magic")
	ErrFooterMagic    = errors.New("xz: invalid stream footer magic")
	ErrInvalidFlags   = errors.New("xz: invalid or reserved stream flags")
	ErrFlagsMismatch  = errors.New("xz: footer flags do not match header flags")
	ErrPadding        = errors.New("xz: non-zero padding byte")
	ErrVarint         = errors.New("xz: malformed variable-length integer")
	ErrUnsupportedFilter = errors.New("xz: unsupported or unrecognized filter chain")
	ErrDictSize       = errors.New("xz: dictionary size code out of range")
	ErrDictTooLarge   = errors.New("xz: dictionary size exceeds configured maximum")
	ErrMultiBlock     = errors.New("xz: multiple blocks are not supported by this profile")
	ErrIndexIndicator = errors.New("xz: found index indicator where a block header was expected")
	ErrIndexMismatch  = errors.New("xz: index does not match the decoded block")
	ErrBackwardSize   = errors.New("xz: footer backward size does not match index size")
)

// Integrity errors: a CRC-32 did not match.
var (
	ErrHeaderChecksum = errors.New("xz: stream header checksum mismatch")
	ErrFooterChecksum = errors.New("xz: stream footer checksum mismatch")
	ErrBlockChecksum  = errors.New("xz: block header checksum mismatch")
	ErrIndexChecksum  = errors.New("xz: index checksum mismatch")
	ErrPayloadChecksum = errors.New("xz: decompressed block checksum mismatch")
)

// Buffer errors.
var (
	ErrBufferTooSmall = errors.New("xz: output buffer smaller than the uncompressed size")
	ErrTruncatedInput = errors.New("xz: input buffer truncated")
)
