// Package deckapi is the HTTP adapter for the external deck service: it
// reads the document state and submits the one apply-mutations call per
// run.
package deckapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/slidecraft/deck-overlay-pipeline/internal/deck"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// Client talks to the deck service HTTP API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new deck API client
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// GetDocument fetches the current document state for a deck
func (c *Client) GetDocument(ctx context.Context, deckID string) (deck.Document, error) {
	url := fmt.Sprintf("%s/v1/decks/%s/document", c.baseURL, deckID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deck: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("deck not found: %s", deckID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("deck fetch failed with status %d", resp.StatusCode)
	}

	var file deck.DeckFile
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode deck: %w", err)
	}
	if file.DeckID == "" {
		file.DeckID = deckID
	}

	return deck.NewMemoryDocument(&file), nil
}

// SubmitBatch submits one ordered mutation batch. The server applies the
// batch as a single ordered unit; a non-2xx response is terminal.
func (c *Client) SubmitBatch(ctx context.Context, deckID string, ops []overlay.Op) error {
	batch := overlay.MutationBatch{DeckID: deckID, Ops: ops}
	body, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal batch: %w", err)
	}

	url := fmt.Sprintf("%s/v1/decks/%s/batchUpdate", c.baseURL, deckID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("batch submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("batch rejected with status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
