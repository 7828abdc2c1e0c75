package dictapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"dictbot/internal/domain"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public Free Dictionary API endpoint for English
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// Client fetches word entries from the Free Dictionary API.
// Implements repository.DictionaryRepository.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the public API
func NewClient(logger *zap.Logger) *Client {
	return NewClientWithURL(DefaultBaseURL, logger)
}

// NewClientWithURL creates a client with a custom base URL
func NewClientWithURL(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger.With(zap.String("component", "dictapi")),
	}
}

// Lookup issues a single request for word. Every failure (transport error,
// non-200 status, malformed body) is collapsed to (nil, false).
func (c *Client) Lookup(ctx context.Context, word string) ([]domain.WordEntry, bool) {
	entries, err := c.FetchEntries(ctx, word)
	if err != nil {
		if errors.Is(err, domain.ErrWordNotFound) {
			c.logger.Debug("Word not found", zap.String("word", word), zap.Error(err))
		} else {
			c.logger.Warn("Dictionary lookup failed", zap.String("word", word), zap.Error(err))
		}
		return nil, false
	}
	return entries, true
}

// FetchEntries fetches the entries for word.
// Any non-200 status wraps domain.ErrWordNotFound.
func (c *Client) FetchEntries(ctx context.Context, word string) ([]domain.WordEntry, error) {
	reqURL := c.baseURL + "/" + url.PathEscape(word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dictapi: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dictapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dictapi: status %d: %w", resp.StatusCode, domain.ErrWordNotFound)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dictapi: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("dictapi: decode json: %w", err)
	}

	c.logger.Debug("Dictionary response",
		zap.String("word", word),
		zap.Int("entries", len(entries)),
	)

	return mapEntries(entries), nil
}

func mapEntries(entries []apiEntry) []domain.WordEntry {
	out := make([]domain.WordEntry, 0, len(entries))
	for _, e := range entries {
		entry := domain.WordEntry{
			Word:      e.Word,
			Phonetic:  e.Phonetic,
			Origin:    e.Origin,
			Phonetics: make([]domain.Phonetic, 0, len(e.Phonetics)),
			Meanings:  make([]domain.Meaning, 0, len(e.Meanings)),
		}
		for _, ph := range e.Phonetics {
			entry.Phonetics = append(entry.Phonetics, domain.Phonetic{Text: ph.Text, Audio: ph.Audio})
		}
		for _, m := range e.Meanings {
			meaning := domain.Meaning{
				PartOfSpeech: m.PartOfSpeech,
				Synonyms:     m.Synonyms,
				Antonyms:     m.Antonyms,
				Definitions:  make([]domain.Definition, 0, len(m.Definitions)),
			}
			for _, d := range m.Definitions {
				meaning.Definitions = append(meaning.Definitions, domain.Definition{
					Definition: d.Definition,
					Example:    d.Example,
					Synonyms:   d.Synonyms,
				})
			}
			entry.Meanings = append(entry.Meanings, meaning)
		}
		out = append(out, entry)
	}
	return out
}
