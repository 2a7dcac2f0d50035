package api

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrorPolicy controls how malformed byte sequences are handled while
// decoding a response body.
type ErrorPolicy int

const (
	// ErrorPolicyStrict fails decoding on the first malformed byte sequence.
	ErrorPolicyStrict ErrorPolicy = iota
	// ErrorPolicyReplace substitutes U+FFFD for malformed byte sequences.
	ErrorPolicyReplace
)

// DecodingReader incrementally decodes a byte stream into text using a
// configured character encoding. Multi-byte sequences split across read
// chunks are carried over between reads, so chunk boundaries chosen by the
// network layer never produce mojibake. Input that is already valid text in
// the target encoding passes through unchanged.
type DecodingReader struct {
	r       *transform.Reader
	encName string
	eof     bool
}

// NewDecodingReader wraps src with an incremental decoder for enc.
// A nil enc selects UTF-8.
func NewDecodingReader(src io.Reader, enc encoding.Encoding, policy ErrorPolicy) *DecodingReader {
	return &DecodingReader{
		r:       transform.NewReader(src, newTransformer(enc, policy)),
		encName: encodingName(enc),
	}
}

// newTransformer selects the transform chain for the encoding and policy.
// Decoders for non-UTF-8 encodings emit UTF-8; the validator after them only
// rejects input the decoder could not map.
func newTransformer(enc encoding.Encoding, policy ErrorPolicy) transform.Transformer {
	if enc == nil || enc == unicode.UTF8 {
		if policy == ErrorPolicyStrict {
			return encoding.UTF8Validator
		}
		return unicode.UTF8.NewDecoder()
	}
	if policy == ErrorPolicyStrict {
		return transform.Chain(enc.NewDecoder(), encoding.UTF8Validator)
	}
	return enc.NewDecoder()
}

func encodingName(enc encoding.Encoding) string {
	if enc == nil || enc == unicode.UTF8 {
		return "UTF-8"
	}
	if s, ok := enc.(fmt.Stringer); ok {
		return s.String()
	}
	return "custom"
}

// Read pulls up to len(p) bytes of decoded text from the underlying stream.
// Malformed input under the strict policy fails with a *DecodeError.
func (d *DecodingReader) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		d.eof = true
	case errors.Is(err, encoding.ErrInvalidUTF8):
		err = &DecodeError{Encoding: d.encName, Err: err}
	}
	return n, err
}

// ReadAll drains the underlying stream and returns the decoded text.
func (d *DecodingReader) ReadAll() (string, error) {
	data, err := io.ReadAll(d)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// AtEOF reports whether the underlying stream has been fully consumed.
func (d *DecodingReader) AtEOF() bool {
	return d.eof
}
