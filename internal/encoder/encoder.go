package encoder

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/mcncl/hellojson/internal/errors"
	"github.com/mcncl/hellojson/internal/models"
)

// Options controls how values are serialized
type Options struct {
	// EscapeHTML escapes <, > and & inside strings as \u003c-style sequences
	EscapeHTML bool
}

// Encoder writes single JSON values, one per line
type Encoder struct {
	opts Options
}

// NewEncoder creates a new Encoder instance
func NewEncoder(opts Options) *Encoder {
	return &Encoder{opts: opts}
}

// Marshal returns the JSON form of v followed by a newline.
// Strings keep their surrounding quotes.
func (e *Encoder) Marshal(v models.JSONValue) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(e.opts.EscapeHTML)
	if err := enc.Encode(v); err != nil {
		return nil, errors.NewEncodeError(fmt.Sprintf("failed to encode value of type %T", v), err)
	}
	return buf.Bytes(), nil
}

// Encode marshals v and writes it to w in a single call
func (e *Encoder) Encode(w io.Writer, v models.JSONValue) error {
	data, err := e.Marshal(v)
	if err != nil {
		return err
	}

	n, err := w.Write(data)
	if err != nil {
		return errors.NewOutputError("failed to write encoded value", err)
	}
	if n != len(data) {
		return errors.NewOutputError(fmt.Sprintf("wrote %d of %d bytes", n, len(data)), errors.ErrShortWrite)
	}
	return nil
}
