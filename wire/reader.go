package wire

// Reader is a cursor over one immutable buffer.
//
// Slices returned by Read and Rest borrow from the buffer passed to NewReader
// and are only valid as long as that buffer is.
type Reader struct {
	buf []byte
	off int
}

func NewReader(buf []byte) *Reader {
	return &Reader{
		buf: buf,
		off: 0,
	}
}

func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Offset is the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Rest returns the unconsumed suffix without advancing.
func (r *Reader) Rest() []byte {
	return r.buf[r.off:]
}

func (r *Reader) ReadByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, ErrEOF
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

func (r *Reader) Read(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, ErrEOF
	}
	b := r.buf[r.off : r.off+n : r.off+n]
	r.off += n
	return b, nil
}

// readWith adapts a suffix-returning decoder to the cursor.
func readWith[T any](r *Reader, decode func([]byte) (T, []byte, error)) (v T, err error) {
	v, rest, err := decode(r.Rest())
	if err != nil {
		return
	}

	r.off = len(r.buf) - len(rest)
	return
}
