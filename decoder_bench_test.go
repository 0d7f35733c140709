package chunkedbytes

import (
	"io"
	"strings"
	"testing"
)

func BenchmarkDecoder(b *testing.B) {
	chunkedEnd := "0\r\n\r\n"
	smallChunked := "d\r\nHello, world!\r\n1a\r\nBut what's wrong with you?\r\nf\r\nFinally am here\r\n" + chunkedEnd
	mediumChunked := strings.Repeat("1a\r\nBut what's wrong with you?\r\n", 15) + chunkedEnd
	bigChunked := strings.Repeat("1a\r\nBut what's wrong with you?\r\n", 100) + chunkedEnd

	bench := func(body string) func(b *testing.B) {
		return func(b *testing.B) {
			source := strings.NewReader(body)
			b.SetBytes(int64(len(body)))

			for i := 0; i < b.N; i++ {
				source.Reset(body)
				d := NewDecoder(source, DefaultSettings())

				for {
					if _, err := d.Next(); err != nil {
						if err != io.EOF {
							b.Fatal(err)
						}

						break
					}
				}
			}
		}
	}

	b.Run("small with 3 chunks", bench(smallChunked))
	b.Run("medium with 15 chunks", bench(mediumChunked))
	b.Run("big with 100 chunks", bench(bigChunked))
}
