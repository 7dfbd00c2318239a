// Package byteorder converts buffers between the wire's big-endian word
// layout and the little-endian layout the hash primitive and nonce field
// expect.
package byteorder

import "fmt"

// WordSize is the fixed word width both transforms operate on.
const WordSize = 4

// ReverseWordBytes reinterprets buf as a sequence of 4-byte words and
// byte-swaps each word. The result is a fresh buffer; buf is not
// modified. Applying the transform twice yields the original buffer.
func ReverseWordBytes(buf []byte) ([]byte, error) {
	if len(buf)%WordSize != 0 {
		return nil, fmt.Errorf("buffer length %d is not a multiple of %d", len(buf), WordSize)
	}
	out := make([]byte, len(buf))
	for i := 0; i < len(buf); i += WordSize {
		out[i] = buf[i+3]
		out[i+1] = buf[i+2]
		out[i+2] = buf[i+1]
		out[i+3] = buf[i]
	}
	return out, nil
}

// ReverseWordOrder reverses the order of the 4-byte words in buf without
// touching the bytes inside each word. The result is a fresh buffer; buf
// is not modified. Applying the transform twice yields the original
// buffer.
func ReverseWordOrder(buf []byte) ([]byte, error) {
	if len(buf)%WordSize != 0 {
		return nil, fmt.Errorf("buffer length %d is not a multiple of %d", len(buf), WordSize)
	}
	out := make([]byte, len(buf))
	for i := 0; i < len(buf); i += WordSize {
		copy(out[len(buf)-i-WordSize:], buf[i:i+WordSize])
	}
	return out, nil
}
