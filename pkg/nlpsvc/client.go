package nlpsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the HTTP wrapper for the tokenizer/NER sidecar REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new NLP sidecar client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Analyze runs the full pipeline on one text via POST /analyze.
func (c *Client) Analyze(ctx context.Context, text string) (*Annotation, error) {
	url := fmt.Sprintf("%s/analyze", c.baseURL)

	body, err := json.Marshal(analyzeRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analyze request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build analyze request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call NLP analyze API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("NLP API analyze error %d: %s", resp.StatusCode, string(raw))
	}

	var annotation Annotation
	if err := json.NewDecoder(resp.Body).Decode(&annotation); err != nil {
		return nil, fmt.Errorf("failed to decode NLP analyze response: %w", err)
	}
	return &annotation, nil
}

// NounTokens returns the tokens tagged NOUN, in text order.
func (c *Client) NounTokens(ctx context.Context, text string) ([]Token, error) {
	annotation, err := c.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	var nouns []Token
	for _, tok := range annotation.Tokens {
		if tok.POS == POSNoun {
			nouns = append(nouns, tok)
		}
	}
	return nouns, nil
}

// DateEntities returns the entities labeled DATE, in text order.
func (c *Client) DateEntities(ctx context.Context, text string) ([]Entity, error) {
	annotation, err := c.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	var dates []Entity
	for _, ent := range annotation.Entities {
		if ent.Label == LabelDate {
			dates = append(dates, ent)
		}
	}
	return dates, nil
}
