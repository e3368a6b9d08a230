package values

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DecodeJSON reads a single JSON document from dec into a Value, preserving
// record field order. The decoder must have UseNumber enabled by the caller
// or numbers degrade to float64; FromJSON handles this.
func DecodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Nothing(), err
	}
	return decodeToken(dec, tok)
}

// FromJSON parses one JSON document from data.
func FromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	v, err := DecodeJSON(dec)
	if err != nil {
		return Nothing(), err
	}
	// Trailing garbage after the document is a parse error, not extra input.
	if _, err := dec.Token(); err != io.EOF {
		return Nothing(), fmt.Errorf("unexpected content after JSON document")
	}
	return v, nil
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Nothing(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return numberValue(t), nil
	case float64:
		return floatOrInt(t), nil
	case json.Delim:
		switch t {
		case '{':
			rec := NewRecord()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Nothing(), err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Nothing(), fmt.Errorf("object key is not a string: %v", keyTok)
				}
				valTok, err := dec.Token()
				if err != nil {
					return Nothing(), err
				}
				val, err := decodeToken(dec, valTok)
				if err != nil {
					return Nothing(), err
				}
				rec.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Nothing(), err
			}
			return RecordValue(rec), nil
		case '[':
			var items []Value
			for dec.More() {
				tok, err := dec.Token()
				if err != nil {
					return Nothing(), err
				}
				item, err := decodeToken(dec, tok)
				if err != nil {
					return Nothing(), err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Nothing(), err
			}
			return List(items), nil
		}
	}
	return Nothing(), fmt.Errorf("unexpected JSON token %v", tok)
}

func numberValue(n json.Number) Value {
	if i, err := n.Int64(); err == nil {
		return Int(i)
	}
	f, err := n.Float64()
	if err != nil {
		return String(n.String())
	}
	return Float(f)
}

func floatOrInt(f float64) Value {
	if f == math.Trunc(f) && math.Abs(f) < float64(math.MaxInt64) {
		return Int(int64(f))
	}
	return Float(f)
}

// ToJSON renders a value as compact JSON, preserving record field order.
func ToJSON(v Value) string {
	var b strings.Builder
	writeJSON(&b, v)
	return b.String()
}

func writeJSON(b *strings.Builder, v Value) {
	switch v.Kind {
	case KindNothing:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case KindInt:
		b.WriteString(strconv.FormatInt(v.Int, 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(v.Float, 'g', -1, 64))
	case KindString:
		data, _ := json.Marshal(v.Str)
		b.Write(data)
	case KindBinary:
		// Binary has no JSON form; emit as an array of byte values.
		b.WriteByte('[')
		for i, by := range v.Bytes {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(by)))
		}
		b.WriteByte(']')
	case KindList:
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSON(b, item)
		}
		b.WriteByte(']')
	case KindRecord:
		b.WriteByte('{')
		for i, key := range v.Record.Keys {
			if i > 0 {
				b.WriteByte(',')
			}
			data, _ := json.Marshal(key)
			b.Write(data)
			b.WriteByte(':')
			writeJSON(b, v.Record.Fields[key])
		}
		b.WriteByte('}')
	}
}
