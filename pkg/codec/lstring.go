package codec

import (
	"io"
	"math"
	"unicode/utf8"
)

// MaxStringLen is the largest string byte length representable by the
// two-byte LString length prefix.
const MaxStringLen = math.MaxUint16

// ReadString reads a two-byte length-prefixed UTF-8 string.
func ReadString(r io.Reader) (string, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", truncated(err)
	}
	length := int(uint16(lenBuf[0])<<8 | uint16(lenBuf[1]))

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", truncated(err)
	}
	if !utf8.Valid(buf) {
		return "", &FormatError{Message: "string is not valid UTF-8"}
	}
	return string(buf), nil
}

// WriteString writes a two-byte length-prefixed UTF-8 string. A string
// whose byte length exceeds MaxStringLen fails; it is never truncated.
func WriteString(w io.Writer, s string) error {
	if len(s) > MaxStringLen {
		return &FormatError{Message: "string exceeds 65535 bytes"}
	}
	lenBuf := [2]byte{byte(len(s) >> 8), byte(len(s))}
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}
