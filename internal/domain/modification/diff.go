package modification

import "strings"

// FieldChange is one entry of a proposal diff. Old or New is nil when the
// key is absent on that side; a present null value is a non-nil null Value.
type FieldChange struct {
	Key        string
	Label      string
	Old        *Value
	New        *Value
	IsDocument bool
}

// fieldLabels maps field keys to review-screen labels; unmapped keys fall
// back to the raw key.
var fieldLabels = map[string]string{
	// Primary member fields
	"phone":          "Phone",
	"email":          "Email",
	"address":        "Address",
	"city":           "City",
	"postal_code":    "Postal code",
	"marital_status": "Marital status",
	"portrait_photo": "Portrait photo",
	"identity_image": "Identity document",
	"bank_reference": "Bank reference",

	// Spouse fields
	"last_name":            "Last name",
	"first_name":           "First name",
	"identity_number":      "Identity number",
	"birth_date":           "Birth date",
	"gender":               "Gender",
	"marriage_certificate": "Marriage certificate",

	// Dependent fields
	"education_level":    "Education level",
	"school_certificate": "School enrollment certificate",
}

func FieldLabel(key string) string {
	if label, ok := fieldLabels[key]; ok {
		return label
	}
	return key
}

// IsDocumentField reports whether a field key carries a document rather
// than a displayable value.
func IsDocumentField(key string) bool {
	return strings.Contains(key, "photo") ||
		strings.Contains(key, "image") ||
		strings.Contains(key, "certificate") ||
		key == "bank_reference"
}

// Compare diffs two value maps and returns one FieldChange per key present
// in either map whose values differ. Keys follow the old map's order, then
// new-only keys in their own order. Pure; symmetric in key coverage.
func Compare(oldValues, newValues Values) []FieldChange {
	var changes []FieldChange

	emit := func(key string) {
		oldV, oldOK := oldValues.Get(key)
		newV, newOK := newValues.Get(key)

		changed := oldOK != newOK || (oldOK && newOK && !oldV.Equal(newV))
		if !changed {
			return
		}

		change := FieldChange{
			Key:        key,
			Label:      FieldLabel(key),
			IsDocument: IsDocumentField(key),
		}
		if oldOK {
			v := oldV
			change.Old = &v
		}
		if newOK {
			v := newV
			change.New = &v
		}
		changes = append(changes, change)
	}

	for _, key := range oldValues.Keys() {
		emit(key)
	}
	for _, key := range newValues.Keys() {
		if !oldValues.Has(key) {
			emit(key)
		}
	}
	return changes
}
