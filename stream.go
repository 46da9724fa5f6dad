package hrid

import (
	"encoding/binary"
	"fmt"
	"io"
)

// maxStreamLen caps the declared length Decode will allocate for. It guards
// the decoder against a hostile length prefix; it is not a grammar rule and
// EncodeTo imposes no such limit.
const maxStreamLen = 1 << 20

// EncodeTo writes the identifier to w using the same framing as HashInto:
// a uvarint byte-length prefix followed by the raw UTF-8 bytes. It returns
// the number of bytes written. Encoding the zero ID fails.
func (id ID) EncodeTo(w io.Writer) (int, error) {
	if id.IsZero() {
		return 0, &ValidationError{Rule: ErrEmpty}
	}
	var prefix [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(prefix[:], uint64(len(id.s)))
	written, err := w.Write(prefix[:n])
	if err != nil {
		return written, err
	}
	m, err := io.WriteString(w, id.s)
	return written + m, err
}

// Decode reads one length-prefixed identifier from r and validates it before
// returning. It blocks only when r blocks. A truncated stream surfaces as
// io.ErrUnexpectedEOF; invalid identifier text surfaces as a
// *ValidationError.
func Decode(r io.Reader) (ID, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReader{r: r}
	}
	n, err := binary.ReadUvarint(br)
	if err != nil {
		if err == io.EOF {
			return ID{}, err
		}
		return ID{}, fmt.Errorf("hrid: reading length prefix: %w", err)
	}
	if n > maxStreamLen {
		return ID{}, fmt.Errorf("hrid: declared length %d exceeds decode limit %d", n, maxStreamLen)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return ID{}, fmt.Errorf("hrid: reading identifier body: %w", err)
	}
	return Parse(string(buf))
}

// byteReader adapts a plain io.Reader for binary.ReadUvarint without
// buffering past the varint, so the remaining stream position stays exact.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
		return 0, err
	}
	return b.buf[0], nil
}
