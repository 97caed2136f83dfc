package pairs

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of a delimited pair record:
//
//	message Pair {
//	  string text_a = 1;
//	  string text_b = 2;
//	  double label  = 3;
//	}
const (
	fieldTextA protowire.Number = 1
	fieldTextB protowire.Number = 2
	fieldLabel protowire.Number = 3
)

// Format names a pair file encoding.
type Format string

const (
	FormatJSONL     Format = "jsonl"
	FormatDelimited Format = "protodelim"
)

// FileName returns the conventional pair file name for f.
func (f Format) FileName() string {
	if f == FormatDelimited {
		return "pairs.pb"
	}
	return "pairs.jsonl"
}

// Write encodes examples to w in format f.
func Write(w io.Writer, f Format, examples []Example) error {
	switch f {
	case FormatJSONL:
		return WriteJSONL(w, examples)
	case FormatDelimited:
		return WriteDelimited(w, examples)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

type jsonExample struct {
	Texts [2]string `json:"texts"`
	Label float64   `json:"label"`
}

// WriteJSONL writes one {"texts": [a, b], "label": x} object per line.
func WriteJSONL(w io.Writer, examples []Example) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for _, e := range examples {
		if err := enc.Encode(jsonExample{Texts: [2]string{e.TextA, e.TextB}, Label: e.Label}); err != nil {
			return fmt.Errorf("encoding example: %w", err)
		}
	}
	return bw.Flush()
}

// WriteDelimited writes examples as varint length-prefixed protobuf records.
func WriteDelimited(w io.Writer, examples []Example) error {
	bw := bufio.NewWriter(w)
	var msg, prefix []byte
	for _, e := range examples {
		msg = appendExample(msg[:0], e)
		prefix = protowire.AppendVarint(prefix[:0], uint64(len(msg)))
		if _, err := bw.Write(prefix); err != nil {
			return err
		}
		if _, err := bw.Write(msg); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func appendExample(b []byte, e Example) []byte {
	b = protowire.AppendTag(b, fieldTextA, protowire.BytesType)
	b = protowire.AppendString(b, e.TextA)
	b = protowire.AppendTag(b, fieldTextB, protowire.BytesType)
	b = protowire.AppendString(b, e.TextB)
	b = protowire.AppendTag(b, fieldLabel, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, math.Float64bits(e.Label))
	return b
}

// ReadDelimited decodes records written by WriteDelimited. Index fields of
// the returned examples are not stored and stay zero.
func ReadDelimited(r io.Reader) ([]Example, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}

	var examples []Example
	for len(data) > 0 {
		size, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, protowire.ParseError(n))
		}
		data = data[n:]
		if uint64(len(data)) < size {
			return nil, fmt.Errorf("%w: truncated record", ErrMalformedRecord)
		}

		e, err := consumeExample(data[:size])
		if err != nil {
			return nil, err
		}
		examples = append(examples, e)
		data = data[size:]
	}
	return examples, nil
}

func consumeExample(msg []byte) (Example, error) {
	var e Example
	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return Example{}, fmt.Errorf("%w: %w", ErrMalformedRecord, protowire.ParseError(n))
		}
		msg = msg[n:]

		switch {
		case num == fieldTextA && typ == protowire.BytesType:
			e.TextA, n = protowire.ConsumeString(msg)
		case num == fieldTextB && typ == protowire.BytesType:
			e.TextB, n = protowire.ConsumeString(msg)
		case num == fieldLabel && typ == protowire.Fixed64Type:
			var bits uint64
			bits, n = protowire.ConsumeFixed64(msg)
			e.Label = math.Float64frombits(bits)
		default:
			n = protowire.ConsumeFieldValue(num, typ, msg)
		}
		if n < 0 {
			return Example{}, fmt.Errorf("%w: %w", ErrMalformedRecord, protowire.ParseError(n))
		}
		msg = msg[n:]
	}
	return e, nil
}
