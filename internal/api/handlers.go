package api

import (
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/dmitrymomot/readkit/pkg/logger"
	"github.com/dmitrymomot/readkit/pkg/readability"
	"github.com/dmitrymomot/readkit/pkg/sentencizer"
	"github.com/dmitrymomot/readkit/pkg/tokenizer"
)

type syllablesRequest struct {
	Words []string `json:"words"`
}

type syllablesResponse struct {
	Counts []int `json:"counts"`
	Total  int   `json:"total"`
}

type textRequest struct {
	Text string `json:"text"`
}

type wordsResponse struct {
	Count int      `json:"count"`
	Words []string `json:"words"`
}

type span struct {
	tokenizer.Token
	SentenceStart bool `json:"sentence_start"`
}

type tokensResponse struct {
	Count  int      `json:"count"`
	Tokens []string `json:"tokens"`
	Spans  []span   `json:"spans"`
}

type sentencesResponse struct {
	Count     int      `json:"count"`
	Sentences []string `json:"sentences"`
}

type readabilityRequest struct {
	Text      string   `json:"text"`
	Words     *float64 `json:"words"`
	Sentences *float64 `json:"sentences"`
	Syllables *float64 `json:"syllables"`
}

type readabilityResponse struct {
	Words       float64 `json:"words"`
	Sentences   float64 `json:"sentences"`
	Syllables   float64 `json:"syllables"`
	GradeLevel  float64 `json:"grade_level"`
	ReadingEase float64 `json:"reading_ease"`
}

type analyzeRequest struct {
	Texts []string `json:"texts"`
}

type analyzeResponse struct {
	Reports []readability.Report `json:"reports"`
}

func (a *API) syllables(w http.ResponseWriter, r *http.Request) {
	var req syllablesRequest
	if err := bindJSON(w, r, &req, a.maxBody); err != nil {
		respondError(w, r, a.logger, err)
		return
	}
	if len(req.Words) == 0 {
		respondError(w, r, a.logger, ErrEmptyInput.WithMessage("words is empty"))
		return
	}
	if len(req.Words) > a.maxBatch {
		respondError(w, r, a.logger, ErrTooManyItems.WithMessage(fmt.Sprintf("%d words exceed the limit of %d", len(req.Words), a.maxBatch)))
		return
	}

	counts, err := a.estimator.EstimateAll(r.Context(), req.Words)
	if err != nil {
		respondError(w, r, a.logger, err)
		return
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	respondData(w, syllablesResponse{Counts: counts, Total: total})
}

// bindText decodes a textRequest and rejects an empty text.
func (a *API) bindText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req textRequest
	if err := bindJSON(w, r, &req, a.maxBody); err != nil {
		respondError(w, r, a.logger, err)
		return "", false
	}
	if req.Text == "" {
		respondError(w, r, a.logger, ErrEmptyInput.WithMessage("text is empty"))
		return "", false
	}
	return req.Text, true
}

func (a *API) words(w http.ResponseWriter, r *http.Request) {
	text, ok := a.bindText(w, r)
	if !ok {
		return
	}
	words := tokenizer.Words(text)
	respondData(w, wordsResponse{Count: len(words), Words: nonNil(words)})
}

func (a *API) tokens(w http.ResponseWriter, r *http.Request) {
	text, ok := a.bindText(w, r)
	if !ok {
		return
	}
	list := tokenizer.Split(text)

	toks := tokenizer.Tokenize(text, a.tokenize...)
	starts := a.sentencizer.Sentencize(toks)
	spans := make([]span, len(toks))
	for i, t := range toks {
		spans[i] = span{Token: t, SentenceStart: starts[i]}
	}

	respondData(w, tokensResponse{Count: len(list), Tokens: nonNil(list), Spans: spans})
}

func (a *API) sentences(w http.ResponseWriter, r *http.Request) {
	text, ok := a.bindText(w, r)
	if !ok {
		return
	}
	list := sentencizer.Split(text)
	respondData(w, sentencesResponse{Count: len(list), Sentences: nonNil(list)})
}

func (a *API) readability(w http.ResponseWriter, r *http.Request) {
	var req readabilityRequest
	if err := bindJSON(w, r, &req, a.maxBody); err != nil {
		respondError(w, r, a.logger, err)
		return
	}

	var resp readabilityResponse
	switch {
	case req.Text != "":
		rep := a.analyzer.Analyze(req.Text)
		a.logger.DebugContext(r.Context(), "text scored",
			logger.TextBytes(len(req.Text)),
			logger.Counts(rep.Words, rep.Sentences, rep.Syllables),
		)
		if !rep.Scored {
			respondError(w, r, a.logger, ErrNotScorable.WithMessage("text has no words or no sentences"))
			return
		}
		resp = readabilityResponse{
			Words:       float64(rep.Words),
			Sentences:   float64(rep.Sentences),
			Syllables:   float64(rep.Syllables),
			GradeLevel:  rep.GradeLevel,
			ReadingEase: rep.ReadingEase,
		}
	case req.Words == nil && req.Sentences == nil && req.Syllables == nil:
		respondError(w, r, a.logger, ErrEmptyInput.WithMessage("either text or words, sentences and syllables is required"))
		return
	case req.Words == nil || req.Sentences == nil || req.Syllables == nil:
		respondError(w, r, a.logger, ErrEmptyInput.WithMessage(missingCounts(req)))
		return
	case *req.Words <= 0 || *req.Sentences <= 0 || *req.Syllables < 0:
		respondError(w, r, a.logger, ErrNotScorable.WithMessage("words and sentences must be > 0, syllables >= 0"))
		return
	default:
		wc, sc, yc := *req.Words, *req.Sentences, *req.Syllables
		resp = readabilityResponse{
			Words:       wc,
			Sentences:   sc,
			Syllables:   yc,
			GradeLevel:  readability.GradeLevel(wc, sc, yc),
			ReadingEase: readability.ReadingEase(wc, sc, yc),
		}
	}
	if !finite(resp.GradeLevel) || !finite(resp.ReadingEase) {
		respondError(w, r, a.logger, ErrNotScorable.WithMessage("counts overflow the score range"))
		return
	}
	respondData(w, resp)
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (a *API) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := bindJSON(w, r, &req, a.maxBody); err != nil {
		respondError(w, r, a.logger, err)
		return
	}
	if len(req.Texts) == 0 {
		respondError(w, r, a.logger, ErrEmptyInput.WithMessage("texts is empty"))
		return
	}
	if len(req.Texts) > a.maxBatch {
		respondError(w, r, a.logger, ErrTooManyItems.WithMessage(fmt.Sprintf("%d texts exceed the limit of %d", len(req.Texts), a.maxBatch)))
		return
	}

	reports, err := a.analyzer.AnalyzeAll(r.Context(), req.Texts)
	if err != nil {
		respondError(w, r, a.logger, err)
		return
	}
	respondData(w, analyzeResponse{Reports: reports})
}

func missingCounts(req readabilityRequest) string {
	var missing []string
	if req.Words == nil {
		missing = append(missing, "words")
	}
	if req.Sentences == nil {
		missing = append(missing, "sentences")
	}
	if req.Syllables == nil {
		missing = append(missing, "syllables")
	}
	return "missing " + strings.Join(missing, ", ")
}

// nonNil keeps empty lists as [] rather than null in responses.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
