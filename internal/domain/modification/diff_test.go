//go:build unit

package modification_test

import (
	"testing"

	"benefit-desk/internal/domain/modification"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b modification.Value) bool { return a.Equal(b) }),
}

func valuePtr(v modification.Value) *modification.Value {
	return &v
}

func valuesOf(pairs ...any) modification.Values {
	vs := modification.NewValues()
	for i := 0; i < len(pairs); i += 2 {
		vs.Set(pairs[i].(string), pairs[i+1].(modification.Value))
	}
	return vs
}

func TestCompare(t *testing.T) {
	t.Run("reports changed, added and removed keys", func(t *testing.T) {
		oldValues := valuesOf(
			"phone", modification.String("0600000000"),
			"city", modification.String("Lyon"),
			"email", modification.String("old@example.com"),
		)
		newValues := valuesOf(
			"phone", modification.String("0611111111"),
			"city", modification.String("Lyon"),
			"address", modification.String("12 rue des Lilas"),
		)

		changes := modification.Compare(oldValues, newValues)

		expected := []modification.FieldChange{
			{Key: "phone", Label: "Phone", Old: valuePtr(modification.String("0600000000")), New: valuePtr(modification.String("0611111111"))},
			{Key: "email", Label: "Email", Old: valuePtr(modification.String("old@example.com"))},
			{Key: "address", Label: "Address", New: valuePtr(modification.String("12 rue des Lilas"))},
		}
		if diff := cmp.Diff(expected, changes, cmpOpts...); diff != "" {
			t.Errorf("changes mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("identical maps yield no changes", func(t *testing.T) {
		vs := valuesOf("phone", modification.String("0600000000"))

		assert.Empty(t, modification.Compare(vs, vs))
	})

	t.Run("null value differs from absent key", func(t *testing.T) {
		oldValues := valuesOf("middle_name", modification.Null())
		newValues := modification.NewValues()

		changes := modification.Compare(oldValues, newValues)

		require.Len(t, changes, 1)
		require.NotNil(t, changes[0].Old)
		assert.True(t, changes[0].Old.IsNull())
		assert.Nil(t, changes[0].New)
	})

	t.Run("keeps old map order then appends new-only keys", func(t *testing.T) {
		oldValues := valuesOf(
			"b", modification.String("1"),
			"a", modification.String("1"),
		)
		newValues := valuesOf(
			"a", modification.String("2"),
			"b", modification.String("2"),
			"c", modification.String("2"),
		)

		changes := modification.Compare(oldValues, newValues)

		keys := make([]string, len(changes))
		for i, ch := range changes {
			keys[i] = ch.Key
		}
		assert.Equal(t, []string{"b", "a", "c"}, keys)
	})

	t.Run("attaches labels and document flags", func(t *testing.T) {
		oldValues := valuesOf("portrait_photo", modification.Bytes([]byte{1}))
		newValues := valuesOf(
			"portrait_photo", modification.Bytes([]byte{2}),
			"favorite_color", modification.String("blue"),
		)

		changes := modification.Compare(oldValues, newValues)

		require.Len(t, changes, 2)
		assert.Equal(t, "Portrait photo", changes[0].Label)
		assert.True(t, changes[0].IsDocument)
		// Unmapped keys fall back to the raw key.
		assert.Equal(t, "favorite_color", changes[1].Label)
		assert.False(t, changes[1].IsDocument)
	})
}

func TestIsDocumentField(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"portrait_photo", true},
		{"identity_image", true},
		{"marriage_certificate", true},
		{"school_certificate", true},
		{"bank_reference", true},
		{"phone", false},
		{"birth_date", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, modification.IsDocumentField(tt.key))
		})
	}
}
