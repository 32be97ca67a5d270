package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/readkit/internal/api"
	"github.com/dmitrymomot/readkit/pkg/readability"
)

type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *api.ErrorDetail `json:"error"`
}

func do(t *testing.T, h http.Handler, method, path string, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestSyllables(t *testing.T) {
	t.Parallel()
	h := api.New().Handler()

	rec, env := do(t, h, http.MethodPost, "/v1/syllables", `{"words":["Apple","Tart","Pontificate",""]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	got := decodeData[struct {
		Counts []int `json:"counts"`
		Total  int   `json:"total"`
	}](t, env)
	assert.Equal(t, []int{2, 1, 4, 0}, got.Counts)
	assert.Equal(t, 7, got.Total)
}

func TestWords(t *testing.T) {
	t.Parallel()
	h := api.New().Handler()

	rec, env := do(t, h, http.MethodPost, "/v1/words", `{"text":"Hello, world! This is a test."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[struct {
		Count int      `json:"count"`
		Words []string `json:"words"`
	}](t, env)
	assert.Equal(t, 6, got.Count)
	assert.Equal(t, []string{"Hello,", "world!", "This", "is", "a", "test."}, got.Words)
}

func TestTokens(t *testing.T) {
	t.Parallel()
	h := api.New().Handler()

	rec, env := do(t, h, http.MethodPost, "/v1/tokens", `{"text":"Hello, world! Bye."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[struct {
		Count  int      `json:"count"`
		Tokens []string `json:"tokens"`
		Spans  []struct {
			I             int    `json:"i"`
			Idx           int    `json:"idx"`
			Text          string `json:"text"`
			SentenceStart bool   `json:"sentence_start"`
		} `json:"spans"`
	}](t, env)

	assert.Equal(t, 6, got.Count)
	assert.Equal(t, []string{"Hello", ",", "world", "!", "Bye", "."}, got.Tokens)
	require.NotEmpty(t, got.Spans)
	assert.Equal(t, 1, got.Spans[0].I)
	assert.Equal(t, 0, got.Spans[0].Idx)
	assert.True(t, got.Spans[0].SentenceStart)

	var bye bool
	for _, s := range got.Spans {
		if s.Text == "Bye" {
			bye = true
			assert.True(t, s.SentenceStart)
			assert.Equal(t, strings.Index("Hello, world! Bye.", "Bye"), s.Idx)
		}
	}
	assert.True(t, bye)
}

func TestSentences(t *testing.T) {
	t.Parallel()
	h := api.New().Handler()

	rec, env := do(t, h, http.MethodPost, "/v1/sentences", `{"text":"Hello, world!\nThis can't be a test.  \n"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[struct {
		Count     int      `json:"count"`
		Sentences []string `json:"sentences"`
	}](t, env)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, []string{"Hello, world!", "This can't be a test."}, got.Sentences)
}

func TestReadability(t *testing.T) {
	t.Parallel()
	h := api.New().Handler()

	type scores struct {
		Words       float64 `json:"words"`
		Sentences   float64 `json:"sentences"`
		Syllables   float64 `json:"syllables"`
		GradeLevel  float64 `json:"grade_level"`
		ReadingEase float64 `json:"reading_ease"`
	}

	t.Run("from text", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodPost, "/v1/readability", `{"text":"Hello, world! This is a test."}`)
		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[scores](t, env)
		assert.Equal(t, 6.0, got.Words)
		assert.Equal(t, 2.0, got.Sentences)
		assert.Equal(t, 7.0, got.Syllables)
		assert.InDelta(t, readability.GradeLevel(6, 2, 7), got.GradeLevel, 1e-9)
		assert.InDelta(t, readability.ReadingEase(6, 2, 7), got.ReadingEase, 1e-9)
	})

	t.Run("from counts", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodPost, "/v1/readability", `{"words":100,"sentences":5,"syllables":150}`)
		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[scores](t, env)
		assert.InDelta(t, 0.39*20+11.8*1.5-15.59, got.GradeLevel, 1e-9)
		assert.InDelta(t, 206.835-1.015*20-84.6*1.5, got.ReadingEase, 1e-9)
	})

	t.Run("zero denominators", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodPost, "/v1/readability", `{"words":0,"sentences":1,"syllables":0}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "not_scorable", env.Error.Code)
	})

	t.Run("overflowing counts", func(t *testing.T) {
		t.Parallel()
		for _, body := range []string{
			`{"words":1e308,"sentences":1e-308,"syllables":0}`,
			`{"words":1,"sentences":1,"syllables":1e308}`,
		} {
			rec, env := do(t, h, http.MethodPost, "/v1/readability", body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, body)
			require.NotNil(t, env.Error, body)
			assert.Equal(t, "not_scorable", env.Error.Code)
		}
	})

	t.Run("text without words", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodPost, "/v1/readability", `{"text":"   "}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "not_scorable", env.Error.Code)
	})

	t.Run("partial counts", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodPost, "/v1/readability", `{"words":10}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "empty_input", env.Error.Code)
		assert.Contains(t, env.Error.Message, "sentences")
		assert.Contains(t, env.Error.Message, "syllables")
	})

	t.Run("nothing", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodPost, "/v1/readability", `{}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "empty_input", env.Error.Code)
	})
}

func TestAnalyze(t *testing.T) {
	t.Parallel()
	h := api.New().Handler()

	rec, env := do(t, h, http.MethodPost, "/v1/analyze", `{"texts":["Hello, world! This is a test.",""]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[struct {
		Reports []readability.Report `json:"reports"`
	}](t, env)
	require.Len(t, got.Reports, 2)
	assert.Equal(t, 6, got.Reports[0].Words)
	assert.Equal(t, 7, got.Reports[0].Syllables)
	assert.True(t, got.Reports[0].Scored)
	assert.Equal(t, readability.Report{}, got.Reports[1])
}

func TestBatchLimits(t *testing.T) {
	t.Parallel()
	h := api.New(api.WithMaxBatch(2)).Handler()

	rec, env := do(t, h, http.MethodPost, "/v1/syllables", `{"words":["a","b","c"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "too_many_items", env.Error.Code)

	rec, env = do(t, h, http.MethodPost, "/v1/analyze", `{"texts":["a","b","c"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "too_many_items", env.Error.Code)
}

func TestAnalyzerLimitMapsToTooManyItems(t *testing.T) {
	t.Parallel()
	an := readability.New(readability.WithMaxDocuments(1))
	h := api.New(api.WithAnalyzer(an)).Handler()

	rec, env := do(t, h, http.MethodPost, "/v1/analyze", `{"texts":["a","b"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "too_many_items", env.Error.Code)
}

func TestInputErrors(t *testing.T) {
	t.Parallel()
	h := api.New(api.WithMaxBodyBytes(64)).Handler()

	tests := []struct {
		name        string
		path        string
		contentType string
		body        string
		status      int
		code        string
	}{
		{"malformed json", "/v1/words", "application/json", `{"text":`, http.StatusBadRequest, "bad_request"},
		{"unknown field", "/v1/words", "application/json", `{"txt":"a"}`, http.StatusBadRequest, "bad_request"},
		{"trailing data", "/v1/words", "application/json", `{"text":"a"} {}`, http.StatusBadRequest, "bad_request"},
		{"empty body", "/v1/words", "application/json", ``, http.StatusBadRequest, "bad_request"},
		{"wrong type", "/v1/syllables", "application/json", `{"words":"a"}`, http.StatusBadRequest, "bad_request"},
		{"text/plain", "/v1/words", "text/plain", `{"text":"a"}`, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"no content type", "/v1/words", "", `{"text":"a"}`, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"charset param", "/v1/words", "application/json; charset=utf-8", `{"text":""}`, http.StatusUnprocessableEntity, "empty_input"},
		{"empty text", "/v1/sentences", "application/json", `{"text":""}`, http.StatusUnprocessableEntity, "empty_input"},
		{"empty words", "/v1/syllables", "application/json", `{"words":[]}`, http.StatusUnprocessableEntity, "empty_input"},
		{"empty texts", "/v1/analyze", "application/json", `{"texts":[]}`, http.StatusUnprocessableEntity, "empty_input"},
		{"too large", "/v1/words", "application/json", `{"text":"` + strings.Repeat("a", 100) + `"}`, http.StatusRequestEntityTooLarge, "request_entity_too_large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			var env envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.Nil(t, env.Data)
		})
	}
}

func TestRouting(t *testing.T) {
	t.Parallel()
	h := api.New().Handler()

	rec, env := do(t, h, http.MethodGet, "/v1/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "not_found", env.Error.Code)

	rec, env = do(t, h, http.MethodGet, "/v1/words", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "method_not_allowed", env.Error.Code)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	t.Run("live", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, api.New().Handler(), http.MethodGet, "/health/live", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"alive"}`, string(env.Data))
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		h := api.New(api.WithReadinessCheck(func(context.Context) error { return nil })).Handler()
		rec, env := do(t, h, http.MethodGet, "/health/ready", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ready"}`, string(env.Data))
	})

	t.Run("not ready", func(t *testing.T) {
		t.Parallel()
		h := api.New(
			api.WithReadinessCheck(func(context.Context) error { return nil }),
			api.WithReadinessCheck(func(context.Context) error { return errors.New("table not loaded") }),
		).Handler()
		rec, env := do(t, h, http.MethodGet, "/health/ready", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "not_ready", env.Error.Code)
		assert.Contains(t, env.Error.Message, "table not loaded")
	})
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { api.WithEstimator(nil) })
	assert.Panics(t, func() { api.WithSentencizer(nil) })
	assert.Panics(t, func() { api.WithAnalyzer(nil) })
	assert.Panics(t, func() { api.WithMaxBodyBytes(0) })
	assert.Panics(t, func() { api.WithMaxBatch(0) })
	assert.Panics(t, func() { api.WithReadinessCheck(nil) })
}
