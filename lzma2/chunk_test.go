package lzma2

import (
	"bytes"
	"testing"

	"github.com/kr/pretty"
	"github.com/tinyxz/xz/lzma"
)

func TestReadChunkHeaderEOS(t *testing.T) {
	h, err := readChunkHeader(bytes.NewReader([]byte{0x00}))
	if err != nil {
		t.Fatalf("readChunkHeader: %s", err)
	}
	if h.ctrl != eosCtrl {
		t.Fatalf("ctrl = %#x, want eosCtrl", h.ctrl)
	}
}

func TestReadChunkHeaderUncompressedRejected(t *testing.T) {
	for _, b := range []byte{0x01, 0x02} {
		if _, err := readChunkHeader(bytes.NewReader([]byte{b})); err != ErrUncompressedChunk {
			t.Fatalf("ctrl %#x: got %v want ErrUncompressedChunk", b, err)
		}
	}
}

func TestReadChunkHeaderInvalidControl(t *testing.T) {
	for _, b := range []byte{0x03, 0x10, 0x7f} {
		if _, err := readChunkHeader(bytes.NewReader([]byte{b})); err != ErrInvalidControl {
			t.Fatalf("ctrl %#x: got %v want ErrInvalidControl", b, err)
		}
	}
}

func TestReadChunkHeaderFullReset(t *testing.T) {
	// uncompressedSize = 5 (encoded 4), compressedSize = 3 (encoded 2).
	data := []byte{
		byte(packedResetDictCtrl), 0x00, 0x04, 0x00, 0x02,
		lzma.FixedProperties.Byte(),
	}
	h, err := readChunkHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("readChunkHeader: %s", err)
	}
	want := chunkHeader{
		ctrl:             packedResetDictCtrl,
		uncompressedSize: 5,
		compressedSize:   3,
		props:            lzma.FixedProperties,
		hasProps:         true,
	}
	if h != want {
		t.Fatalf("readChunkHeader mismatch:\n%s", pretty.Sprint(pretty.Diff(want, h)))
	}
	if !h.ctrl.resetDict() || !h.ctrl.newProps() || !h.ctrl.resetState() {
		t.Fatal("full reset control byte should report resetDict, newProps and resetState")
	}
}

func TestReadChunkHeaderBadPropertyByte(t *testing.T) {
	data := []byte{byte(packedResetDictCtrl), 0x00, 0x00, 0x00, 0x00, 0xaa}
	if _, err := readChunkHeader(bytes.NewReader(data)); err != ErrPropertyByte {
		t.Fatalf("bad property byte: got %v want ErrPropertyByte", err)
	}
}

func TestReadChunkHeaderNoResetNoProps(t *testing.T) {
	// packedCtrl: no reset at all, so no trailing property byte is read.
	data := []byte{byte(packedCtrl), 0x00, 0x00, 0x00, 0x00}
	h, err := readChunkHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("readChunkHeader: %s", err)
	}
	if h.ctrl.resetDict() || h.ctrl.newProps() || h.ctrl.resetState() || h.hasProps {
		t.Fatal("packedCtrl should request no reset and carry no properties")
	}
	if h.uncompressedSize != 1 || h.compressedSize != 1 {
		t.Fatalf("sizes = (%d, %d), want (1, 1)", h.uncompressedSize, h.compressedSize)
	}
}

func TestReadChunkHeaderStateResetOnly(t *testing.T) {
	data := []byte{byte(packedResetStateCtrl), 0x00, 0x00, 0x00, 0x00}
	h, err := readChunkHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("readChunkHeader: %s", err)
	}
	if !h.ctrl.resetState() || h.ctrl.newProps() || h.ctrl.resetDict() {
		t.Fatal("packedResetStateCtrl should reset state only")
	}
}

func TestReadChunkHeaderMaxSizes(t *testing.T) {
	// High 5 bits all set, both size bytes all set: the maximum
	// representable uncompressedSize and compressedSize.
	data := []byte{
		byte(packedResetDictCtrl) | 0x1f, 0xff, 0xff, 0xff, 0xff,
		lzma.FixedProperties.Byte(),
	}
	h, err := readChunkHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("readChunkHeader: %s", err)
	}
	if h.uncompressedSize != maxUnpackedSize {
		t.Fatalf("uncompressedSize = %d, want %d", h.uncompressedSize, maxUnpackedSize)
	}
	if h.compressedSize != maxPackedSize {
		t.Fatalf("compressedSize = %d, want %d", h.compressedSize, maxPackedSize)
	}
}
