package household

import (
	"time"

	"benefit-desk/internal/domain/modification"
)

// Birth dates travel through value maps as dd/MM/yyyy strings.
const birthDateLayout = "02/01/2006"

// parseBirthDate returns nil for empty, null or unparsable input; a bad
// date in a proposal leaves the stored date untouched rather than failing
// the whole approval.
func parseBirthDate(v modification.Value) *time.Time {
	if v.Kind() != modification.KindString {
		return nil
	}
	t, err := time.Parse(birthDateLayout, v.AsString())
	if err != nil {
		return nil
	}
	return &t
}

func birthDateValue(t *time.Time) modification.Value {
	if t == nil {
		return modification.Null()
	}
	return modification.String(t.Format(birthDateLayout))
}

// stringValue encodes a field for a value map; empty fields surface as
// null so diffs read "null to value" instead of "empty string to value".
func stringValue(s string) modification.Value {
	if s == "" {
		return modification.Null()
	}
	return modification.String(s)
}

// valueText flattens a map entry back to a field. Null clears the field.
func valueText(v modification.Value) string {
	if v.IsNull() {
		return ""
	}
	return v.Text()
}

// DocumentSlot holds one stored document attachment.
type DocumentSlot struct {
	Filename    string
	ContentType string
	Data        []byte
}

func slotFromDocument(doc modification.Document) *DocumentSlot {
	return &DocumentSlot{
		Filename:    doc.Filename,
		ContentType: doc.ContentType,
		Data:        doc.Data,
	}
}
