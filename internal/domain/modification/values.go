package modification

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strconv"

	"benefit-desk/internal/pkg/errs"
)

// ErrSerialization reports an old/new value map or document payload that
// could not be encoded or decoded. The original system swallowed these and
// treated the map as empty; surfacing them is a deliberate behavior change
// so malformed proposals fail loudly instead of silently losing data.
var ErrSerialization = errs.New("value serialization failed")

type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindBool
	KindNull
	KindBytes
)

// bytesKey wraps byte blobs inside the JSON wire form so they round-trip
// with their kind intact.
const bytesKey = "$bytes"

// Value is one entry of a proposal value map: a closed union over string,
// number, bool, null and byte-blob. The zero Value is null.
type Value struct {
	kind  ValueKind
	str   string
	num   float64
	b     bool
	bytes []byte
}

func String(s string) Value   { return Value{kind: KindString, str: s} }
func Number(f float64) Value  { return Value{kind: KindNumber, num: f} }
func Bool(b bool) Value       { return Value{kind: KindBool, b: b} }
func Null() Value             { return Value{kind: KindNull} }
func Bytes(data []byte) Value { return Value{kind: KindBytes, bytes: data} }

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsNull() bool    { return v.kind == KindNull }

func (v Value) AsString() string  { return v.str }
func (v Value) AsNumber() float64 { return v.num }
func (v Value) AsBool() bool      { return v.b }
func (v Value) AsBytes() []byte   { return v.bytes }

// Text renders the value for human display.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindBytes:
		return "(" + strconv.Itoa(len(v.bytes)) + " bytes)"
	default:
		return ""
	}
}

func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindBytes:
		return bytes.Equal(v.bytes, other.bytes)
	default:
		return true
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindBytes:
		return json.Marshal(map[string]string{
			bytesKey: base64.StdEncoding.EncodeToString(v.bytes),
		})
	default:
		return []byte("null"), nil
	}
}

// Values is an ordered string-keyed map of Value. Insertion order is
// preserved through JSON round trips; an absent key is distinct from a key
// holding null.
type Values struct {
	keys  []string
	items map[string]Value
}

func NewValues() Values {
	return Values{items: make(map[string]Value)}
}

func (vs *Values) Set(key string, v Value) {
	if vs.items == nil {
		vs.items = make(map[string]Value)
	}
	if _, ok := vs.items[key]; !ok {
		vs.keys = append(vs.keys, key)
	}
	vs.items[key] = v
}

func (vs Values) Get(key string) (Value, bool) {
	v, ok := vs.items[key]
	return v, ok
}

func (vs Values) Has(key string) bool {
	_, ok := vs.items[key]
	return ok
}

func (vs Values) Keys() []string {
	return vs.keys
}

func (vs Values) Len() int {
	return len(vs.keys)
}

func (vs Values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range vs.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := vs.items[key].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (vs *Values) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeValues(data)
	if err != nil {
		return err
	}
	*vs = decoded
	return nil
}

// EncodeValues serializes a value map for storage.
func EncodeValues(vs Values) ([]byte, error) {
	data, err := vs.MarshalJSON()
	if err != nil {
		return nil, errs.Mark(err, ErrSerialization)
	}
	return data, nil
}

// DecodeValues parses a stored value map. nil or empty input is an absent
// map and decodes to empty Values; anything unparsable is ErrSerialization.
func DecodeValues(data []byte) (Values, error) {
	vs := NewValues()
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return vs, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return Values{}, errs.Mark(err, ErrSerialization)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Values{}, errs.Mark(errs.New("value map is not a JSON object"), ErrSerialization)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Values{}, errs.Mark(err, ErrSerialization)
		}
		key, ok := keyTok.(string)
		if !ok {
			return Values{}, errs.Mark(errs.New("unexpected token in value map"), ErrSerialization)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return Values{}, errs.Mark(err, ErrSerialization)
		}
		value, err := decodeValue(raw)
		if err != nil {
			return Values{}, err
		}
		vs.Set(key, value)
	}
	return vs, nil
}

func decodeValue(raw json.RawMessage) (Value, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Value{}, errs.Mark(errs.New("empty value"), ErrSerialization)
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Value{}, errs.Mark(err, ErrSerialization)
		}
		return String(s), nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return Value{}, errs.Mark(err, ErrSerialization)
		}
		return Bool(b), nil
	case 'n':
		if !bytes.Equal(trimmed, []byte("null")) {
			return Value{}, errs.Mark(errs.New("unexpected literal"), ErrSerialization)
		}
		return Null(), nil
	case '{':
		var wrapper map[string]string
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return Value{}, errs.Mark(err, ErrSerialization)
		}
		encoded, ok := wrapper[bytesKey]
		if !ok || len(wrapper) != 1 {
			return Value{}, errs.Mark(errs.New("nested objects are not supported in value maps"), ErrSerialization)
		}
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return Value{}, errs.Mark(err, ErrSerialization)
		}
		return Bytes(data), nil
	case '[':
		return Value{}, errs.Mark(errs.New("arrays are not supported in value maps"), ErrSerialization)
	default:
		var f float64
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return Value{}, errs.Mark(err, ErrSerialization)
		}
		return Number(f), nil
	}
}
