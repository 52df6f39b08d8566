// Package cursor provides a bounded, allocation-free reader over an
// in-memory byte slice. It is shared by every framing layer (XZ container,
// LZMA2 chunks, the range coder) that needs to consume bytes from the same
// caller-owned input buffer without copying it.
package cursor

import "errors"

// ErrEndOfInput is returned once a read would go past the end of the
// backing slice. It is terminal: the cursor does not retry or buffer.
var ErrEndOfInput = errors.New("cursor: end of input")

// ErrPadding is returned by Align4 when a skipped alignment byte is
// non-zero.
var ErrPadding = errors.New("cursor: non-zero padding byte")

// Cursor is a read-only view over a byte slice with a monotonically
// increasing offset.
type Cursor struct {
	buf []byte
	off int
}

// New creates a Cursor over buf. The offset starts at zero.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Len returns the total size of the backing slice.
func (c *Cursor) Len() int { return len(c.buf) }

// Pos returns the current offset.
func (c *Cursor) Pos() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

// ReadByte reads a single byte and advances the offset by one. It
// implements io.ByteReader so a Cursor can be used directly as the byte
// source for the range decoder.
func (c *Cursor) ReadByte() (byte, error) {
	if c.off >= len(c.buf) {
		return 0, ErrEndOfInput
	}
	b := c.buf[c.off]
	c.off++
	return b, nil
}

// Reserve returns a view of the next n bytes and advances the offset past
// them. The returned slice aliases the cursor's backing array; callers must
// not retain it past the lifetime of the input buffer.
func (c *Cursor) Reserve(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, ErrEndOfInput
	}
	v := c.buf[c.off : c.off+n]
	c.off += n
	return v, nil
}

// SliceFrom returns the bytes of the backing slice between the absolute
// offsets [start, end), without touching the cursor's own offset. It is
// used to recompute a checksum over a region already consumed by Reserve
// or ReadByte. It reports false if the range is out of bounds.
func (c *Cursor) SliceFrom(start, end int) ([]byte, bool) {
	if start < 0 || end > len(c.buf) || start > end {
		return nil, false
	}
	return c.buf[start:end], true
}

// Align4 advances the offset to the next 4-byte boundary. Every byte
// skipped in the process must be exactly zero, or ErrPadding is returned.
func (c *Cursor) Align4() error {
	for c.off%4 != 0 {
		b, err := c.ReadByte()
		if err != nil {
			return err
		}
		if b != 0 {
			return ErrPadding
		}
	}
	return nil
}
