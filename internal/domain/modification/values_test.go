//go:build unit

package modification_test

import (
	"encoding/json"
	"testing"

	"benefit-desk/internal/domain/modification"
	"benefit-desk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValues(t *testing.T) {
	t.Run("preserves key order", func(t *testing.T) {
		raw := []byte(`{"zeta":"z","alpha":"a","mid":42}`)

		vs, err := modification.DecodeValues(raw)

		require.NoError(t, err)
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, vs.Keys())
	})

	t.Run("decodes every value kind", func(t *testing.T) {
		raw := []byte(`{"s":"text","n":3.5,"b":true,"nothing":null}`)

		vs, err := modification.DecodeValues(raw)

		require.NoError(t, err)

		s, ok := vs.Get("s")
		require.True(t, ok)
		assert.Equal(t, modification.KindString, s.Kind())
		assert.Equal(t, "text", s.AsString())

		n, ok := vs.Get("n")
		require.True(t, ok)
		assert.Equal(t, modification.KindNumber, n.Kind())
		assert.Equal(t, 3.5, n.AsNumber())

		b, ok := vs.Get("b")
		require.True(t, ok)
		assert.Equal(t, modification.KindBool, b.Kind())
		assert.True(t, b.AsBool())

		null, ok := vs.Get("nothing")
		require.True(t, ok)
		assert.True(t, null.IsNull())
	})

	t.Run("nil and empty input decode to empty map", func(t *testing.T) {
		for _, raw := range [][]byte{nil, {}, []byte("null"), []byte("  ")} {
			vs, err := modification.DecodeValues(raw)

			require.NoError(t, err)
			assert.Zero(t, vs.Len())
		}
	})

	t.Run("rejects non-object input", func(t *testing.T) {
		_, err := modification.DecodeValues([]byte(`["not","a","map"]`))

		assert.True(t, errs.Is(err, modification.ErrSerialization))
	})

	t.Run("rejects broken JSON", func(t *testing.T) {
		_, err := modification.DecodeValues([]byte(`{"phone": "06`))

		assert.True(t, errs.Is(err, modification.ErrSerialization))
	})
}

func TestValuesRoundTrip(t *testing.T) {
	vs := modification.NewValues()
	vs.Set("phone", modification.String("0611111111"))
	vs.Set("children", modification.Number(2))
	vs.Set("emancipated", modification.Bool(false))
	vs.Set("middle_name", modification.Null())
	vs.Set("portrait_photo", modification.Bytes([]byte{0x89, 0x50, 0x4e, 0x47}))

	encoded, err := modification.EncodeValues(vs)
	require.NoError(t, err)

	decoded, err := modification.DecodeValues(encoded)
	require.NoError(t, err)

	assert.Equal(t, vs.Keys(), decoded.Keys())
	for _, key := range vs.Keys() {
		want, _ := vs.Get(key)
		got, ok := decoded.Get(key)
		require.True(t, ok, key)
		assert.True(t, want.Equal(got), key)
	}

	photo, _ := decoded.Get("portrait_photo")
	assert.Equal(t, modification.KindBytes, photo.Kind())
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, photo.AsBytes())
}

func TestValuesJSONInterop(t *testing.T) {
	// Values implements json.Marshaler/Unmarshaler so it can sit inside
	// larger payloads.
	type envelope struct {
		Fields modification.Values `json:"fields"`
	}

	raw := []byte(`{"fields":{"city":"Lyon","postal_code":"69001"}}`)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, []string{"city", "postal_code"}, env.Fields.Keys())

	out, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out))
}

func TestValueText(t *testing.T) {
	tests := []struct {
		name  string
		value modification.Value
		want  string
	}{
		{"string", modification.String("Lyon"), "Lyon"},
		{"whole number", modification.Number(42), "42"},
		{"fraction", modification.Number(3.5), "3.5"},
		{"bool", modification.Bool(true), "true"},
		{"null", modification.Null(), ""},
		{"bytes", modification.Bytes(make([]byte, 8)), "(8 bytes)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Text())
		})
	}
}
