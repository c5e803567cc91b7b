package modification

import (
	"bytes"
	"encoding/json"

	"benefit-desk/internal/pkg/errs"
)

// Document is an uploaded file attached to a proposal, addressed to a
// target-kind document slot by its field key. Content is passed through
// opaquely; size and type policy belong to the upload layer.
type Document struct {
	FieldKey    string `json:"field_key"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// EncodeDocuments serializes the document list for storage. An empty list
// encodes to nil, matching the absent-documents case.
func EncodeDocuments(docs []Document) ([]byte, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(docs)
	if err != nil {
		return nil, errs.Mark(err, ErrSerialization)
	}
	return data, nil
}

func DecodeDocuments(data []byte) ([]Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var docs []Document
	if err := json.Unmarshal(trimmed, &docs); err != nil {
		return nil, errs.Mark(err, ErrSerialization)
	}
	return docs, nil
}
