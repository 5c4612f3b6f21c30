package keylist

import (
	"bytes"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Object is the JSON-facing list: string keys, arbitrary values. A JSON
// object round-tripped through Object keeps its member order and any
// duplicate member names, matching the in-memory contract of List.
type Object = List[string, any]

// MarshalObject encodes o as a JSON object, writing members in list order and
// permitting duplicate names. Values of type Object and []any are encoded
// recursively; everything else is handed to the json package.
func MarshalObject(o Object) ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf, jsontext.AllowDuplicateNames(true))
	if err := encodeObject(enc, o); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalObject decodes a JSON object into an Object, preserving member
// order and duplicate names. Nested objects decode as Object, arrays as
// []any.
func UnmarshalObject(data []byte) (Object, error) {
	var o Object
	err := json.Unmarshal(data, &o,
		json.WithUnmarshalers(Unmarshalers()),
		jsontext.AllowDuplicateNames(true))
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Unmarshalers returns the set of keylist unmarshalers allowing decoding
// into:
//   - any/interface{} -> objects as Object, arrays as []any
//   - *Object         -> direct ordered object decoding
//
// Pass the result to json.WithUnmarshalers; combine with
// jsontext.AllowDuplicateNames(true) when inputs may repeat member names.
func Unmarshalers() *json.Unmarshalers {
	return json.JoinUnmarshalers(
		unmarshalValue(),
		unmarshalObject(),
	)
}

// unmarshalValue hooks interface{} targets so that objects surface as Object
// rather than map[string]any (which would lose order and collapse
// duplicates). Primitive values are left to the json package by returning
// json.SkipFunc.
func unmarshalValue() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *any) error {
		switch dec.PeekKind() {
		case '{':
			obj, err := decodeObject(dec)
			if err != nil {
				return err
			}
			*v = obj
			return nil
		case '[':
			arr, err := decodeArray(dec)
			if err != nil {
				return err
			}
			*v = arr
			return nil
		default:
			return json.SkipFunc
		}
	})
}

func unmarshalObject() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *Object) error {
		if dec.PeekKind() != '{' {
			return json.SkipFunc
		}
		obj, err := decodeObject(dec)
		if err != nil {
			return err
		}
		*v = obj
		return nil
	})
}

// decodeObject decodes a JSON object member by member into an Object.
func decodeObject(dec *jsontext.Decoder) (Object, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("read object open: %w", err)
	}
	obj := Object{}
	for dec.PeekKind() != '}' {
		var k string
		if err := json.UnmarshalDecode(dec, &k); err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("read object value for key %q: %w", k, err)
		}
		obj = append(obj, Pair[string, any]{Key: k, Value: v})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("read object close: %w", err)
	}
	return obj, nil
}

// decodeArray decodes a JSON array into []any.
func decodeArray(dec *jsontext.Decoder) ([]any, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("read array open: %w", err)
	}
	arr := make([]any, 0)
	for dec.PeekKind() != ']' {
		elem, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("read array element: %w", err)
		}
		arr = append(arr, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("read array close: %w", err)
	}
	return arr, nil
}

func decodeValue(dec *jsontext.Decoder) (any, error) {
	switch dec.PeekKind() {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	default:
		var v any
		if err := json.UnmarshalDecode(dec, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func encodeObject(enc *jsontext.Encoder, o Object) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return fmt.Errorf("write object open: %w", err)
	}
	for _, p := range o {
		if err := enc.WriteToken(jsontext.String(p.Key)); err != nil {
			return fmt.Errorf("write object key %q: %w", p.Key, err)
		}
		if err := encodeValue(enc, p.Value); err != nil {
			return fmt.Errorf("write object value for key %q: %w", p.Key, err)
		}
	}
	if err := enc.WriteToken(jsontext.EndObject); err != nil {
		return fmt.Errorf("write object close: %w", err)
	}
	return nil
}

func encodeArray(enc *jsontext.Encoder, arr []any) error {
	if err := enc.WriteToken(jsontext.BeginArray); err != nil {
		return fmt.Errorf("write array open: %w", err)
	}
	for i, elem := range arr {
		if err := encodeValue(enc, elem); err != nil {
			return fmt.Errorf("write array element %d: %w", i, err)
		}
	}
	if err := enc.WriteToken(jsontext.EndArray); err != nil {
		return fmt.Errorf("write array close: %w", err)
	}
	return nil
}

func encodeValue(enc *jsontext.Encoder, v any) error {
	switch val := v.(type) {
	case Object:
		return encodeObject(enc, val)
	case []any:
		return encodeArray(enc, val)
	default:
		return json.MarshalEncode(enc, v)
	}
}
