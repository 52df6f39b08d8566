package lzma2

import (
	"bytes"
	"testing"

	"github.com/tinyxz/xz/cursor"
	"github.com/tinyxz/xz/lzma"
)

func TestRunEOSOnly(t *testing.T) {
	r := NewReader()
	total, err := r.Run(cursor.New([]byte{0x00}), nil, false)
	if err != nil {
		t.Fatalf("Run: %s", err)
	}
	if total != 0 {
		t.Fatalf("total = %d, want 0", total)
	}
}

func TestRunFirstChunkMissingReset(t *testing.T) {
	// packedCtrl (no reset at all) as the very first chunk of a stream
	// must be rejected before any byte of it is otherwise interpreted.
	data := []byte{byte(packedCtrl), 0x00, 0x00, 0x00, 0x00}
	r := NewReader()
	if _, err := r.Run(cursor.New(data), nil, false); err != ErrMissingReset {
		t.Fatalf("Run: got %v want ErrMissingReset", err)
	}
}

// The following is a minimal, from-scratch reimplementation of the
// classic LZMA range encoder and literal-only state machine (matching
// lc=3, lp=0, pb=2), independent of the lzma package's unexported
// internals, used only to manufacture a real compressed chunk for this
// round-trip test.

type testProb uint16

const testProbInit testProb = 1 << 10

func (p *testProb) inc() { *p += ((1 << 11) - *p) >> 5 }
func (p *testProb) dec() { *p -= *p >> 5 }
func (p testProb) bound(r uint32) uint32 { return (r >> 11) * uint32(p) }

type testRangeEncoder struct {
	w         *bytes.Buffer
	range_    uint32
	low       uint64
	cacheSize int64
	cache     byte
}

func newTestRangeEncoder(w *bytes.Buffer) *testRangeEncoder {
	return &testRangeEncoder{w: w, range_: 0xffffffff, cacheSize: 1}
}

func (e *testRangeEncoder) shiftLow() {
	if uint32(e.low) < 0xff000000 || (e.low>>32) != 0 {
		tmp := e.cache
		for {
			e.w.WriteByte(tmp + byte(e.low>>32))
			tmp = 0xff
			e.cacheSize--
			if e.cacheSize <= 0 {
				break
			}
		}
		e.cache = byte(uint32(e.low) >> 24)
	}
	e.cacheSize++
	e.low = uint64(uint32(e.low) << 8)
}

func (e *testRangeEncoder) normalize() {
	if e.range_ < 1<<24 {
		e.range_ <<= 8
		e.shiftLow()
	}
}

func (e *testRangeEncoder) encodeBit(p *testProb, b uint32) {
	bound := p.bound(e.range_)
	if b == 0 {
		e.range_ = bound
		p.inc()
	} else {
		e.low += uint64(bound)
		e.range_ -= bound
		p.dec()
	}
	e.normalize()
}

func (e *testRangeEncoder) flush() {
	for i := 0; i < 5; i++ {
		e.shiftLow()
	}
}

// buildLiteralChunkCtrl encodes plain as a single LZMA2 chunk under ctrl,
// starting from fresh (0.5) probabilities: the correct encoding both for
// a full reset and for a state-only reset, since ResetState reinitializes
// every probability exactly as Reset does (see state.reset). history is
// what earlier chunks already wrote to the dictionary: the decoder takes
// the previous byte and the position from it, so the encoder does too. No
// end-of-stream byte is appended, so chunks can be concatenated.
func buildLiteralChunkCtrl(ctrl control, history, plain []byte) []byte {
	isMatch := make([]testProb, 12<<4)
	for i := range isMatch {
		isMatch[i] = testProbInit
	}
	// lc=3, lp=0: 8 literal-state slots of 0x300 entries, selected by the
	// previous byte's top 3 bits (prev>>5), matching state.litState.
	lit := make([]testProb, 0x300*8)
	for i := range lit {
		lit[i] = testProbInit
	}

	buf := new(bytes.Buffer)
	enc := newTestRangeEncoder(buf)
	var prev byte
	if len(history) > 0 {
		prev = history[len(history)-1]
	}
	for i, b := range plain {
		pos := len(history) + i
		posState := uint32(pos) & 3
		st2 := posState // state stays 0 throughout a literal-only run
		enc.encodeBit(&isMatch[st2], 0)

		litState := uint32(prev) >> 5
		probs := lit[litState*0x300 : litState*0x300+0x300]
		symbol := uint32(1)
		for i := 7; i >= 0; i-- {
			bit := uint32((b >> uint(i)) & 1)
			enc.encodeBit(&probs[symbol], bit)
			symbol = (symbol << 1) | bit
		}
		prev = b
	}
	enc.flush()
	payload := buf.Bytes()

	n := len(plain)
	chunk := make([]byte, 0, 6+len(payload))
	chunk = append(chunk, byte(ctrl)|byte((n-1)>>16))
	chunk = append(chunk, byte((n-1)>>8), byte(n-1))
	chunk = append(chunk, byte((len(payload)-1)>>8), byte(len(payload)-1))
	if ctrl.newProps() {
		chunk = append(chunk, lzma.FixedProperties.Byte())
	}
	chunk = append(chunk, payload...)
	return chunk
}

// buildLiteralChunk wraps plain as a single full-reset LZMA2 chunk
// followed by the end-of-stream control byte.
func buildLiteralChunk(t *testing.T, plain []byte) []byte {
	t.Helper()
	return append(buildLiteralChunkCtrl(packedResetDictCtrl, nil, plain), 0x00)
}

func TestRunLiteralRoundTrip(t *testing.T) {
	plain := []byte("the quick brown fox jumps over the lazy dog, twice over")
	data := buildLiteralChunk(t, plain)

	out := make([]byte, len(plain))
	dict := lzma.InitDict(out)
	r := NewReader()
	total, err := r.Run(cursor.New(data), dict, false)
	if err != nil {
		t.Fatalf("Run: %s", err)
	}
	if total != int64(len(plain)) {
		t.Fatalf("total = %d, want %d", total, len(plain))
	}
	if !bytes.Equal(out, plain) {
		t.Fatalf("round trip mismatch: got %q want %q", out, plain)
	}
}

func TestRunMultipleChunksStateOnlyReset(t *testing.T) {
	// A payload spanning two LZMA2 chunks, the second using a
	// state-only reset: its probabilities (and rep stack) start fresh
	// while the dictionary keeps growing from where the first chunk left
	// off, exactly the case spec §8 calls out.
	first := []byte("the first chunk carries a full reset")
	second := []byte("the second chunk only resets state, not the dictionary")

	var data []byte
	data = append(data, buildLiteralChunkCtrl(packedResetDictCtrl, nil, first)...)
	data = append(data, buildLiteralChunkCtrl(packedResetStateCtrl, first, second)...)
	data = append(data, byte(eosCtrl))

	plain := append(append([]byte{}, first...), second...)
	out := make([]byte, len(plain))
	dict := lzma.InitDict(out)
	r := NewReader()
	total, err := r.Run(cursor.New(data), dict, false)
	if err != nil {
		t.Fatalf("Run: %s", err)
	}
	if total != int64(len(plain)) {
		t.Fatalf("total = %d, want %d", total, len(plain))
	}
	if !bytes.Equal(out, plain) {
		t.Fatalf("round trip mismatch: got %q want %q", out, plain)
	}
}

func TestRunSizeQuery(t *testing.T) {
	plain := []byte("size query only, never touches the dictionary")
	data := buildLiteralChunk(t, plain)

	r := NewReader()
	total, err := r.Run(cursor.New(data), nil, true)
	if err != nil {
		t.Fatalf("Run in size-query mode: %s", err)
	}
	if total != int64(len(plain)) {
		t.Fatalf("total = %d, want %d", total, len(plain))
	}
}
