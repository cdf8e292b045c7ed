package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/tomsquest/wordref/internal/models"
)

// RetrievalError is any failure to obtain a translation result from the
// upstream dictionary source: network errors, bad status codes, undecodable
// payloads, or an open circuit breaker.
type RetrievalError struct {
	Op  string
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// WordReferenceAPI talks to a JSON front of WordReference.
type WordReferenceAPI struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewWordReferenceAPI(baseURL string, timeout time.Duration) *WordReferenceAPI {
	return &WordReferenceAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "wordreference",
		}),
	}
}

// AvailableDicts fetches the full set of language pairs the source supports,
// in the source's own order. Pairs missing human-readable names get them
// derived from the ISO 639-1 halves of the code.
func (w *WordReferenceAPI) AvailableDicts(ctx context.Context) ([]models.LanguagePair, error) {
	var pairs []models.LanguagePair
	if err := w.getJSON(ctx, w.baseURL+"/api/v1/dicts", &pairs); err != nil {
		return nil, err
	}

	for i := range pairs {
		pairs[i].Code = strings.ToLower(pairs[i].Code)
		if pairs[i].From == "" || pairs[i].To == "" {
			from, to := pairNames(pairs[i].Code)
			if pairs[i].From == "" {
				pairs[i].From = from
			}
			if pairs[i].To == "" {
				pairs[i].To = to
			}
		}
	}

	return pairs, nil
}

// NewSession returns a translation handle bound to one language-pair code.
// Sessions are stateless; constructing two for the same code is harmless.
func (w *WordReferenceAPI) NewSession(code string) *Session {
	return &Session{api: w, code: code}
}

func (w *WordReferenceAPI) getJSON(ctx context.Context, rawURL string, out any) error {
	_, err := w.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}

		resp, err := w.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		return &RetrievalError{Op: "wordreference", Err: err}
	}
	return nil
}

// pairNames derives display names from a 4-letter pair code, e.g. "enfr"
// becomes ("English", "French"). Unknown halves fall back to the raw code.
func pairNames(code string) (string, string) {
	if len(code) != 4 {
		return code, code
	}
	return languageName(code[:2]), languageName(code[2:])
}

func languageName(iso string) string {
	tag, err := language.Parse(iso)
	if err != nil {
		return iso
	}
	return display.English.Languages().Name(tag)
}

// Session is a retrieval handle bound to one language pair.
type Session struct {
	api  *WordReferenceAPI
	code string
}

func (s *Session) Code() string {
	return s.code
}

// Translate looks text up against the session's language pair. A missing or
// empty translations list is a legitimate no-match, not an error.
func (s *Session) Translate(ctx context.Context, text string) (models.TranslationResult, error) {
	rawURL := fmt.Sprintf("%s/api/v1/translate/%s?q=%s",
		s.api.baseURL, url.PathEscape(s.code), url.QueryEscape(text))

	var result models.TranslationResult
	if err := s.api.getJSON(ctx, rawURL, &result); err != nil {
		return models.TranslationResult{}, err
	}

	return result, nil
}
