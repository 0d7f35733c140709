package chunkedbytes

import (
	"fmt"
	"io"

	"github.com/indigo-web/utils/hex"
)

// maxSizeDigits bounds a chunk size line by the capacity of uint64: sixteen
// hex digits is exactly the maximal representable value, a seventeenth always
// overflows. Leading zeros count towards the limit
const maxSizeDigits = 64 / 4

// Decoder yields the payload bytes of a chunked-encoded body one at a time,
// pulling from the source exactly as many bytes as the framing requires. The
// source is borrowed, not owned: once Next reports io.EOF, it is positioned
// right past the terminal zero-length chunk's size line, so trailing headers
// (and the final CRLF) can still be read from it by the caller
type Decoder struct {
	source io.ByteReader
	state  decoderState

	settings  Settings
	remaining uint64
}

// NewDecoder returns new *Decoder reading from source
func NewDecoder(source io.ByteReader, settings Settings) *Decoder {
	return &Decoder{
		source:   source,
		state:    eChunkLength,
		settings: settings,
	}
}

// Next returns the next decoded payload byte. io.EOF signals that the body is
// complete, and keeps being returned on every further call without touching
// the source. Any other error leaves the decoder unusable, as chunked framing
// cannot be re-synchronized once lost
func (d *Decoder) Next() (byte, error) {
	for {
		switch d.state {
		case eChunkLength:
			size, err := d.readSize()
			if err != nil {
				if err == io.EOF {
					// the source ended cleanly at a chunk boundary
					d.state = eDone
				}

				return 0, err
			}

			if size == 0 {
				d.state = eDone

				return 0, io.EOF
			}

			d.remaining = size
			d.state = eChunkBody
		case eChunkBody:
			char, err := d.source.ReadByte()
			if err != nil {
				return 0, unexpectEOF(err)
			}

			if d.remaining--; d.remaining == 0 {
				d.state = eChunkBodyCRLF
			}

			return char, nil
		case eChunkBodyCRLF:
			if err := d.consumeCRLF(); err != nil {
				return 0, err
			}

			d.state = eChunkLength
		case eDone:
			return 0, io.EOF
		default:
			panic(fmt.Sprintf("BUG: unknown state: %v", d.state))
		}
	}
}

// readSize parses a whole chunk size line, including an optional extension
// and the terminating CRLF. io.EOF is returned only when the source ended
// before the first digit, in which case the body ends cleanly
func (d *Decoder) readSize() (uint64, error) {
	var (
		size   uint64
		digits int
	)

	for {
		char, err := d.source.ReadByte()
		if err != nil {
			if err == io.EOF && digits == 0 {
				return 0, io.EOF
			}

			return 0, unexpectEOF(err)
		}

		switch char {
		case '\r':
			if digits == 0 {
				return 0, ErrBadSizeDigit
			}

			return size, d.expectLF()
		case ';':
			if digits == 0 {
				return 0, ErrBadSizeDigit
			}

			return size, d.skipExtension()
		default:
			if !hex.Is(char) {
				return 0, ErrBadSizeDigit
			}

			if digits++; digits > maxSizeDigits {
				return 0, ErrSizeOverflow
			}

			size = (size << 4) | uint64(hex.Un(char))
			if size > d.settings.MaxChunkSize {
				return 0, ErrTooLarge
			}
		}
	}
}

// skipExtension discards everything up to the line terminator, without any
// syntax checks
func (d *Decoder) skipExtension() error {
	for {
		char, err := d.source.ReadByte()
		switch {
		case err != nil:
			return unexpectEOF(err)
		case char == '\r':
			return d.expectLF()
		}
	}
}

func (d *Decoder) consumeCRLF() error {
	char, err := d.source.ReadByte()
	switch {
	case err != nil:
		return unexpectEOF(err)
	case char != '\r':
		return ErrBadTerminator
	}

	return d.expectLF()
}

func (d *Decoder) expectLF() error {
	char, err := d.source.ReadByte()
	switch {
	case err != nil:
		return unexpectEOF(err)
	case char != '\n':
		return ErrBadTerminator
	}

	return nil
}

// unexpectEOF maps io.EOF to io.ErrUnexpectedEOF for positions where the body
// is not allowed to end. Source errors pass through untouched
func unexpectEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}

	return err
}
