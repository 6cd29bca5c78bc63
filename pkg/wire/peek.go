package wire

import "io"

// PeekReader wraps a reader so that upcoming bytes can be inspected before
// deciding whether to consume them.
//
// Peeked bytes are kept in a replay buffer. Commit discards the bytes peeked
// since the last Commit or Rewind, making their consumption final. Rewind
// moves the peek cursor back to the start of the replay buffer so the same
// bytes are peeked again. An ordinary Read drains the replay buffer before
// touching the underlying reader, so bytes that were peeked but never
// committed are seen again as if the peek had not happened.
//
// A PeekReader is not safe for concurrent use.
type PeekReader struct {
	r      io.Reader
	replay []byte
	pos    int
}

// NewPeekReader returns a PeekReader reading from r. If r is already a
// PeekReader it is returned unchanged so that nested decoders share one
// replay buffer.
func NewPeekReader(r io.Reader) *PeekReader {
	if p, ok := r.(*PeekReader); ok {
		return p
	}
	return &PeekReader{r: r}
}

// Peek fills buf with the next len(buf) bytes after the peek cursor and
// advances the cursor. Bytes come from the replay buffer first and then from
// the underlying reader, which are appended to the replay buffer.
//
// If the stream is exhausted before any byte is available Peek returns
// io.EOF; if it ends part way it returns io.ErrUnexpectedEOF. Bytes read from
// the underlying reader before the failure remain in the replay buffer.
func (p *PeekReader) Peek(buf []byte) error {
	n := copy(buf, p.replay[p.pos:])
	if n == len(buf) {
		p.pos += n
		return nil
	}

	m, err := io.ReadFull(p.r, buf[n:])
	p.replay = append(p.replay, buf[n:n+m]...)
	if err != nil {
		if err == io.EOF && n > 0 {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	p.pos += len(buf)
	return nil
}

// Commit finalizes the consumption of every byte peeked since the last
// Commit or Rewind.
func (p *PeekReader) Commit() {
	p.replay = p.replay[p.pos:]
	p.pos = 0
	if len(p.replay) == 0 {
		p.replay = nil
	}
}

// Rewind moves the peek cursor back to the oldest uncommitted byte.
func (p *PeekReader) Rewind() {
	p.pos = 0
}

// Buffered returns the number of peeked bytes not yet committed or read.
func (p *PeekReader) Buffered() int {
	return len(p.replay)
}

// Read implements io.Reader. It drains the replay buffer, oldest bytes
// first, then reads the remainder from the underlying reader. Any peek in
// progress is abandoned.
func (p *PeekReader) Read(buf []byte) (int, error) {
	p.pos = 0
	if len(buf) == 0 {
		return 0, nil
	}

	n := copy(buf, p.replay)
	p.replay = p.replay[n:]
	if len(p.replay) == 0 {
		p.replay = nil
	}
	if n == len(buf) {
		return n, nil
	}

	m, err := p.r.Read(buf[n:])
	n += m
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}
