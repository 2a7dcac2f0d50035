package api

import (
	"errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// chunkReader delivers its chunks one Read at a time, the way a network
// stream hands out arbitrarily sized pieces.
type chunkReader struct {
	chunks [][]byte
	i      int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if r.i >= len(r.chunks) {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[r.i])
	r.i++
	return n, nil
}

func TestDecodingReader_Passthrough(t *testing.T) {
	src := strings.NewReader(`{"bitcoin":{"usd":50000}}`)
	d := NewDecodingReader(src, nil, ErrorPolicyStrict)

	got, err := d.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if got != `{"bitcoin":{"usd":50000}}` {
		t.Errorf("ReadAll() = %q", got)
	}
}

func TestDecodingReader_SplitMultiByteSequence(t *testing.T) {
	// U+20AC (€) is E2 82 AC in UTF-8; split it across two chunks.
	src := &chunkReader{chunks: [][]byte{
		[]byte("price: \xe2"),
		[]byte("\x82\xac"),
	}}
	d := NewDecodingReader(src, nil, ErrorPolicyStrict)

	got, err := d.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if got != "price: €" {
		t.Errorf("ReadAll() = %q, want %q", got, "price: €")
	}
}

func TestDecodingReader_StrictRejectsMalformedInput(t *testing.T) {
	src := strings.NewReader("ok\xff\xfe")
	d := NewDecodingReader(src, nil, ErrorPolicyStrict)

	_, err := d.ReadAll()
	if err == nil {
		t.Fatal("expected error for malformed UTF-8")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error = %T, want *DecodeError", err)
	}
	if decodeErr.Encoding != "UTF-8" {
		t.Errorf("Encoding = %q, want UTF-8", decodeErr.Encoding)
	}
	if !errors.Is(err, encoding.ErrInvalidUTF8) {
		t.Error("expected error to wrap encoding.ErrInvalidUTF8")
	}
}

func TestDecodingReader_StrictRejectsTruncatedSequence(t *testing.T) {
	// A multi-byte sequence cut off at end of stream is malformed.
	src := strings.NewReader("ok\xe2")
	d := NewDecodingReader(src, nil, ErrorPolicyStrict)

	_, err := d.ReadAll()
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error = %v, want *DecodeError", err)
	}
}

func TestDecodingReader_ReplacePolicy(t *testing.T) {
	src := strings.NewReader("ok\xff")
	d := NewDecodingReader(src, nil, ErrorPolicyReplace)

	got, err := d.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if got != "ok�" {
		t.Errorf("ReadAll() = %q, want %q", got, "ok�")
	}
}

func TestDecodingReader_NonUTF8Encoding(t *testing.T) {
	// "café" in ISO 8859-1: é is a single 0xE9 byte.
	src := &chunkReader{chunks: [][]byte{
		[]byte("caf"),
		{0xe9},
	}}
	d := NewDecodingReader(src, charmap.ISO8859_1, ErrorPolicyStrict)

	got, err := d.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if got != "café" {
		t.Errorf("ReadAll() = %q, want café", got)
	}
}

func TestDecodingReader_AtEOF(t *testing.T) {
	d := NewDecodingReader(strings.NewReader("abc"), nil, ErrorPolicyStrict)

	if d.AtEOF() {
		t.Error("AtEOF() = true before reading")
	}
	if _, err := d.ReadAll(); err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !d.AtEOF() {
		t.Error("AtEOF() = false after draining the stream")
	}
}
