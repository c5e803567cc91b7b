//go:build unit

package benefit_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"testing"

	"benefit-desk/internal/domain/benefit"
	"benefit-desk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAnswers(t *testing.T) {
	fileContent := []byte("fake-pdf-bytes")
	encoded := base64.StdEncoding.EncodeToString(fileContent)

	t.Run("plain form passes through", func(t *testing.T) {
		raw := []byte(`{"children":2,"school":"Lakeside Primary"}`)
		answers, documents, err := benefit.SplitAnswers(raw)
		require.NoError(t, err)
		assert.JSONEq(t, string(raw), string(answers))
		assert.Nil(t, documents)
	})

	t.Run("empty payload passes through", func(t *testing.T) {
		answers, documents, err := benefit.SplitAnswers(nil)
		require.NoError(t, err)
		assert.Nil(t, answers)
		assert.Nil(t, documents)
	})

	t.Run("uploads are moved into the documents payload", func(t *testing.T) {
		raw := []byte(`{
			"school": "Lakeside Primary",
			"certificate": [{"filename":"cert.pdf","content_type":"application/pdf","base64_content":"` + encoded + `"}]
		}`)

		answers, documents, err := benefit.SplitAnswers(raw)
		require.NoError(t, err)

		var cleaned map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(answers, &cleaned))
		assert.Contains(t, string(cleaned["certificate"]), `"filename":"cert.pdf"`)
		assert.NotContains(t, string(answers), encoded, "file content must not stay in answers")

		files, err := benefit.DecodeDocuments(documents)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "certificate", files[0].Field)
		assert.Equal(t, "cert.pdf", files[0].Filename)
		assert.Equal(t, "application/pdf", files[0].ContentType)
		assert.Equal(t, fileContent, files[0].Data)
	})

	t.Run("field order is preserved", func(t *testing.T) {
		raw := []byte(`{"z_last":"1","a_first":"2","m_mid":"3"}`)
		answers, _, err := benefit.SplitAnswers(raw)
		require.NoError(t, err)

		dec := json.NewDecoder(bytes.NewReader(answers))
		_, err = dec.Token()
		require.NoError(t, err)
		var keys []string
		for dec.More() {
			tok, err := dec.Token()
			require.NoError(t, err)
			keys = append(keys, tok.(string))
			var skip json.RawMessage
			require.NoError(t, dec.Decode(&skip))
		}
		assert.Equal(t, []string{"z_last", "a_first", "m_mid"}, keys)
	})

	t.Run("list without upload shape stays inline", func(t *testing.T) {
		raw := []byte(`{"siblings":["ana","tom"]}`)
		answers, documents, err := benefit.SplitAnswers(raw)
		require.NoError(t, err)
		assert.JSONEq(t, string(raw), string(answers))
		assert.Nil(t, documents)
	})

	t.Run("non object payload fails", func(t *testing.T) {
		_, _, err := benefit.SplitAnswers([]byte(`["not","an","object"]`))
		assert.True(t, errs.Is(err, benefit.ErrMalformedAnswers))
	})

	t.Run("broken JSON fails", func(t *testing.T) {
		_, _, err := benefit.SplitAnswers([]byte(`{"a":`))
		assert.True(t, errs.Is(err, benefit.ErrMalformedAnswers))
	})
}
