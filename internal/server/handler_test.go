// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/lexiscan/internal/pipeline"
	"github.com/pdiddy/lexiscan/internal/store"
	"github.com/pdiddy/lexiscan/pkg/types"
)

const sampleText = "This Agreement is effective as of January 15, 2024 between " +
	"Chase Bank USA Inc. and Acme Corp. The total contract value is USD 50,000."

type fakeExtractor struct {
	text string
}

func (f fakeExtractor) Text(string) (string, error) { return f.text, nil }

type fakeRecognizer struct{}

func (fakeRecognizer) Recognize(context.Context, string) ([]types.EntitySpan, error) {
	return nil, nil
}

func testRouter(t *testing.T, extracted string) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.NewStore(types.StoreConfig{
		Path: filepath.Join(t.TempDir(), "lexiscan.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	pipe := &pipeline.Pipeline{
		Extractor:  fakeExtractor{text: extracted},
		Recognizer: fakeRecognizer{},
	}

	r := gin.New()
	registerRoutes(r, NewHandler(pipe, st))
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := testRouter(t, sampleText)

	w := doJSON(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestExtractText(t *testing.T) {
	r, _ := testRouter(t, sampleText)

	w := doJSON(t, r, http.MethodPost, "/extract/text", map[string]any{
		"full_text": sampleText,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Document-ID"))

	var resp types.ExtractionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Dates, 1)
	assert.Equal(t, "2024-01-15", resp.Dates[0].Date)
	require.NotNil(t, resp.ContractValue)
	assert.Equal(t, float64(50000), resp.ContractValue.Amount)
	assert.NotEmpty(t, resp.Parties)
}

func TestExtractTextArchivesResult(t *testing.T) {
	r, st := testRouter(t, sampleText)

	w := doJSON(t, r, http.MethodPost, "/extract/text", map[string]any{
		"full_text": sampleText,
	})
	require.Equal(t, http.StatusOK, w.Code)

	id := w.Header().Get("X-Document-ID")
	rec, err := st.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, len(sampleText), rec.TextLength)
}

func TestExtractTextProvidedSpans(t *testing.T) {
	r, _ := testRouter(t, sampleText)

	w := doJSON(t, r, http.MethodPost, "/extract/text", map[string]any{
		"full_text": "Payment of $1,000 is due. Signed by Globex Partners.",
		"entity_spans": []map[string]string{
			{"text": "Globex Partners", "label": "ORG"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.ExtractionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Parties, 1)
	assert.Equal(t, "Globex Partners", resp.Parties[0].Name)
}

func TestExtractTextNoContent(t *testing.T) {
	r, _ := testRouter(t, sampleText)

	w := doJSON(t, r, http.MethodPost, "/extract/text", map[string]any{
		"full_text": "   \n ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no extractable text")
}

func TestExtractTextBadJSON(t *testing.T) {
	r, _ := testRouter(t, sampleText)

	req := httptest.NewRequest(http.MethodPost, "/extract/text", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractMultipart(t *testing.T) {
	r, _ := testRouter(t, sampleText)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "msa.pdf")
	require.NoError(t, err)
	part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/extract", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.ExtractionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Dates, 1)
}

func TestExtractMissingFile(t *testing.T) {
	r, _ := testRouter(t, sampleText)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "msa.pdf"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/extract", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "file")
}

func TestListExtractions(t *testing.T) {
	r, _ := testRouter(t, sampleText)

	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/extract/text", map[string]any{
			"full_text": sampleText,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/extractions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var records []types.DocumentRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 2)

	w = doJSON(t, r, http.MethodGet, "/extractions?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 1)
}

func TestListExtractionsEmpty(t *testing.T) {
	r, _ := testRouter(t, sampleText)

	w := doJSON(t, r, http.MethodGet, "/extractions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestListExtractionsByParty(t *testing.T) {
	r, _ := testRouter(t, sampleText)

	w := doJSON(t, r, http.MethodPost, "/extract/text", map[string]any{
		"full_text": sampleText,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/extractions?party=Chase+Bank", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var records []types.DocumentRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 1)

	w = doJSON(t, r, http.MethodGet, "/extractions?party=Globex", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Empty(t, records)
}

func TestGetExtractionNotFound(t *testing.T) {
	r, _ := testRouter(t, sampleText)

	w := doJSON(t, r, http.MethodGet, "/extractions/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
