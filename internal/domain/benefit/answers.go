package benefit

import (
	"bytes"
	"encoding/json"

	"benefit-desk/internal/pkg/errs"
)

var ErrMalformedAnswers = errs.New("malformed answers payload")

// UploadedFile is one file pulled out of a submitted answers form.
type UploadedFile struct {
	Field       string `json:"field"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// fileMeta replaces the raw file content inside the stored answers.
type fileMeta struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

type rawUpload struct {
	Filename      string `json:"filename"`
	ContentType   string `json:"content_type"`
	Base64Content []byte `json:"base64_content"`
}

// SplitAnswers separates file uploads from a submitted answers form. Form
// fields whose value is a list of objects carrying filename and
// base64_content are moved into the returned documents payload; the stored
// answers keep only their metadata. Field order of the incoming form is
// preserved.
func SplitAnswers(raw []byte) (answers []byte, documents []byte, err error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return raw, nil, nil
	}

	keys, fields, err := decodeOrderedObject(raw)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrMalformedAnswers)
	}

	var files []UploadedFile
	cleaned := make(map[string]json.RawMessage, len(fields))

	for _, key := range keys {
		value := fields[key]
		uploads, ok := decodeUploadList(value)
		if !ok {
			cleaned[key] = value
			continue
		}

		metas := make([]fileMeta, 0, len(uploads))
		for _, up := range uploads {
			files = append(files, UploadedFile{
				Field:       key,
				Filename:    up.Filename,
				ContentType: up.ContentType,
				Data:        up.Base64Content,
			})
			metas = append(metas, fileMeta{
				Filename:    up.Filename,
				ContentType: up.ContentType,
				Size:        len(up.Base64Content),
			})
		}
		encoded, encErr := json.Marshal(metas)
		if encErr != nil {
			return nil, nil, errs.Mark(encErr, ErrMalformedAnswers)
		}
		cleaned[key] = encoded
	}

	answers, err = encodeOrderedObject(keys, cleaned)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrMalformedAnswers)
	}

	if len(files) > 0 {
		documents, err = json.Marshal(files)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrMalformedAnswers)
		}
	}
	return answers, documents, nil
}

// DecodeDocuments restores the file payload stored alongside a request.
func DecodeDocuments(documents []byte) ([]UploadedFile, error) {
	if len(documents) == 0 {
		return nil, nil
	}
	var files []UploadedFile
	if err := json.Unmarshal(documents, &files); err != nil {
		return nil, errs.Mark(err, ErrMalformedAnswers)
	}
	return files, nil
}

func decodeUploadList(value json.RawMessage) ([]rawUpload, bool) {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}

	var uploads []rawUpload
	if err := json.Unmarshal(trimmed, &uploads); err != nil {
		return nil, false
	}
	if len(uploads) == 0 {
		return nil, false
	}
	for _, up := range uploads {
		if up.Filename == "" || len(up.Base64Content) == 0 {
			return nil, false
		}
	}
	return uploads, true
}

func decodeOrderedObject(raw []byte) ([]string, map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, errs.New("answers payload is not a JSON object")
	}

	var keys []string
	fields := make(map[string]json.RawMessage)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, errs.New("unexpected token in answers payload")
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, nil, err
		}
		if _, seen := fields[key]; !seen {
			keys = append(keys, key)
		}
		fields[key] = value
	}
	return keys, fields, nil
}

func encodeOrderedObject(keys []string, fields map[string]json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(fields[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
