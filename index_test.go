package xz

import (
	"hash/crc32"
	"testing"

	"github.com/tinyxz/xz/cursor"
)

func buildIndex(unpaddedSize, uncompressedSize int64) []byte {
	var body []byte
	body = append(body, 0x00) // indicator
	body = appendVarint(body, 1)
	body = appendVarint(body, uint64(unpaddedSize))
	body = appendVarint(body, uint64(uncompressedSize))
	for len(body)%4 != 0 {
		body = append(body, 0)
	}
	crc := crc32.ChecksumIEEE(body)
	out := make([]byte, len(body)+4)
	copy(out, body)
	putUint32LE(out[len(body):], crc)
	return out
}

func appendVarint(p []byte, x uint64) []byte {
	for {
		b := byte(x & 0x7f)
		x >>= 7
		if x == 0 {
			return append(p, b)
		}
		p = append(p, b|0x80)
	}
}

func TestReadIndexValid(t *testing.T) {
	data := buildIndex(123, 456)
	n, err := readIndex(cursor.New(data), true, 123, 456)
	if err != nil {
		t.Fatalf("readIndex: %s", err)
	}
	if n != len(data) {
		t.Fatalf("indexLen = %d, want %d", n, len(data))
	}
}

func TestReadIndexMismatch(t *testing.T) {
	data := buildIndex(123, 456)
	if _, err := readIndex(cursor.New(data), true, 999, 456); err != ErrIndexMismatch {
		t.Fatalf("readIndex with wrong unpaddedSize: got %v want ErrIndexMismatch", err)
	}
}

func TestReadIndexBadIndicator(t *testing.T) {
	data := buildIndex(123, 456)
	data[0] = 0x01
	if _, err := readIndex(cursor.New(data), true, 123, 456); err != ErrIndexIndicator {
		t.Fatalf("readIndex with non-zero indicator: got %v want ErrIndexIndicator", err)
	}
}

func TestReadIndexBadChecksum(t *testing.T) {
	data := buildIndex(123, 456)
	data[len(data)-1] ^= 0xff
	if _, err := readIndex(cursor.New(data), true, 123, 456); err != ErrIndexChecksum {
		t.Fatalf("readIndex with corrupted crc: got %v want ErrIndexChecksum", err)
	}
}
