// Package remote talks to a designqa HTTP service.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/designqa/designqa/internal/domain"
)

// ErrRejected is returned when the service answers with success=false.
var ErrRejected = errors.New("remote analysis rejected")

const maxResponseBytes = 4 << 20

type analyzeRequest struct {
	Elements        []domain.DesignElement  `json:"elements"`
	AnalysisOptions *domain.AnalysisOptions `json:"analysisOptions,omitempty"`
}

type analyzeResponse struct {
	Success bool           `json:"success"`
	Report  *domain.Report `json:"report"`
	Error   string         `json:"error"`
}

// Client POSTs element batches to <base>/api/analyze.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client. A nil httpClient gets a 10 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: httpClient}
}

// BaseURL returns the service root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Analyze sends elements for scoring and returns the service's report.
func (c *Client) Analyze(ctx context.Context, elements []domain.DesignElement, checks domain.CheckConfiguration) (*domain.Report, error) {
	if elements == nil {
		elements = []domain.DesignElement{}
	}
	body, err := json.Marshal(analyzeRequest{Elements: elements, AnalysisOptions: domain.OptionsFor(checks)})
	if err != nil {
		return nil, fmt.Errorf("encode analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analyze request: %w", err)
	}
	defer resp.Body.Close()

	var out analyzeResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode analyze response (%s): %w", resp.Status, err)
	}
	if resp.StatusCode != http.StatusOK || !out.Success {
		msg := out.Error
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("%w: %s", ErrRejected, msg)
	}
	if out.Report == nil {
		return nil, fmt.Errorf("%w: response has no report", ErrRejected)
	}
	return out.Report, nil
}
