package fuzztests

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"ember/internal/driver"
	"ember/internal/source"
)

// FuzzStreamMatchesFile checks that byte-at-a-time streaming yields the same
// values as decoding the whole buffer, whenever the buffer decodes cleanly.
func FuzzStreamMatchesFile(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.str", append([]byte(nil), input...)))
		res, err := driver.DecodeSource(context.Background(), file, driver.Options{})
		if err != nil {
			t.Fatalf("DecodeSource: %v", err)
		}
		prevEnd := uint32(0)
		for _, lit := range res.Literals {
			if lit.Span.Start < prevEnd || lit.Span.End > uint32(len(input)) || lit.Span.Start >= lit.Span.End {
				t.Fatalf("bad literal span %v in %d bytes", lit.Span, len(input))
			}
			prevEnd = lit.Span.End
		}
		if res.Bag.Len() > 0 {
			return
		}

		stream := driver.NewStream(iotest.OneByteReader(bytes.NewReader(input)), driver.StreamOptions{ChunkSize: 1})
		for i := 0; ; i++ {
			lit, err := stream.Next(context.Background())
			if errors.Is(err, io.EOF) {
				if i != len(res.Literals) {
					t.Fatalf("stream produced %d literals, file %d", i, len(res.Literals))
				}
				return
			}
			if err != nil {
				t.Fatalf("stream failed on clean input %q: %v", input, err)
			}
			if i >= len(res.Literals) {
				t.Fatalf("stream produced extra literal %q", lit.Value)
			}
			want := res.Literals[i]
			if lit.Value != want.Value || lit.Span.Start != want.Span.Start || lit.Span.End != want.Span.End {
				t.Fatalf("literal %d: stream %q %v, file %q %v", i, lit.Value, lit.Span, want.Value, want.Span)
			}
		}
	})
}
