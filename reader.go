package chunkedbytes

import "io"

// Reader adapts a Decoder to io.Reader, so the decoded payload can be fed
// into byte-oriented consumers (json decoders, io.Copy, etc.) It reports the
// same errors as Decoder.Next; io.EOF may accompany a short final read
type Reader struct {
	decoder *Decoder
}

// NewReader returns new *Reader decoding the chunked body from source
func NewReader(source io.ByteReader, settings Settings) *Reader {
	return &Reader{
		decoder: NewDecoder(source, settings),
	}
}

func (r *Reader) Read(p []byte) (int, error) {
	var n int

	for n < len(p) {
		char, err := r.decoder.Next()
		if err != nil {
			return n, err
		}

		p[n] = char
		n++
	}

	return n, nil
}

// ReadByte yields a single payload byte, making *Reader an io.ByteReader itself
func (r *Reader) ReadByte() (byte, error) {
	return r.decoder.Next()
}
