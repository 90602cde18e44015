package judge0

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gitlab.com/codeplatform.net/internal/adapter/metrics"
	"gitlab.com/codeplatform.net/internal/config"
	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/ports/secondary"
	"gitlab.com/codeplatform.net/internal/domain"
	"gitlab.com/codeplatform.net/internal/static/errs"
)

var _ secondary.JudgeClient = (*Client)(nil)

const (
	opSubmit = "submit"
	opFetch  = "fetch"

	maxResponseBytes = 16 << 20
)

// Client is a transport-only adapter for the Judge0 batch API.
type Client struct {
	baseURL    string
	apiKey     string
	host       string
	httpClient *http.Client
	logger     primary.Logger
	metrics    *metrics.Recorder
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the default http client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithMetrics records every round trip
func WithMetrics(recorder *metrics.Recorder) ClientOption {
	return func(c *Client) {
		c.metrics = recorder
	}
}

// NewClient creates a judge client. No request timeout is set here; callers
// bound calls through the context.
func NewClient(cfg *config.JudgeConfig, logger primary.Logger, options ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		host:       cfg.Host,
		httpClient: &http.Client{},
		logger:     logger,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// SubmitBatch posts all entries in a single request. Token i carries the
// ordinal of entries[i].
func (c *Client) SubmitBatch(ctx context.Context, entries []domain.BatchJudgeRequest) ([]domain.JudgeToken, error) {
	body := batchSubmissionRequest{Submissions: make([]submission, len(entries))}
	for i, e := range entries {
		body.Submissions[i] = submission{
			LanguageID:     e.LanguageID,
			SourceCode:     e.SourceCode,
			Stdin:          e.Stdin,
			ExpectedOutput: e.ExpectedOutput,
		}
	}

	var resp []submissionToken
	endpoint := c.baseURL + "/submissions/batch?base64_encoded=false"
	if err := c.do(ctx, opSubmit, http.MethodPost, endpoint, body, &resp); err != nil {
		return nil, err
	}

	if len(resp) != len(entries) {
		return nil, fmt.Errorf("%w: submitted %d entries, got %d tokens", errs.MalformedJudgeResponse, len(entries), len(resp))
	}
	tokens := make([]domain.JudgeToken, len(resp))
	for i, r := range resp {
		if r.Token == "" {
			return nil, fmt.Errorf("%w: entry %d was rejected", errs.MalformedJudgeResponse, entries[i].Ordinal)
		}
		tokens[i] = domain.JudgeToken{Ordinal: entries[i].Ordinal, Token: r.Token}
	}

	c.logger.Debug("Judge batch submitted", "count", len(tokens))
	return tokens, nil
}

// FetchResults retrieves the results for tokens in one request. Result i
// carries the ordinal of tokens[i].
func (c *Client) FetchResults(ctx context.Context, tokens []domain.JudgeToken) ([]domain.JudgeResult, error) {
	joined := make([]string, len(tokens))
	for i, t := range tokens {
		joined[i] = url.QueryEscape(t.Token)
	}

	var resp batchResultResponse
	endpoint := fmt.Sprintf("%s/submissions/batch?tokens=%s&base64_encoded=false", c.baseURL, strings.Join(joined, ","))
	if err := c.do(ctx, opFetch, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	if len(resp.Submissions) != len(tokens) {
		return nil, fmt.Errorf("%w: requested %d results, got %d", errs.MalformedJudgeResponse, len(tokens), len(resp.Submissions))
	}
	results := make([]domain.JudgeResult, len(tokens))
	for i, s := range resp.Submissions {
		if s == nil || s.Status == nil {
			return nil, fmt.Errorf("%w: missing result for token %s", errs.MalformedJudgeResponse, tokens[i].Token)
		}
		if s.Token != "" && s.Token != tokens[i].Token {
			return nil, fmt.Errorf("%w: result %d belongs to token %s, want %s", errs.MalformedJudgeResponse, i, s.Token, tokens[i].Token)
		}
		var elapsed *string
		if s.Time != nil {
			v := string(*s.Time)
			elapsed = &v
		}
		results[i] = domain.JudgeResult{
			Ordinal:           tokens[i].Ordinal,
			Token:             tokens[i].Token,
			StatusID:          domain.JudgeStatusID(s.Status.ID),
			StatusDescription: s.Status.Description,
			Stdout:            derefString(s.Stdout),
			Stderr:            derefString(s.Stderr),
			Time:              elapsed,
		}
	}
	return results, nil
}

func (c *Client) do(ctx context.Context, op, method, endpoint string, in, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveJudgeCall(op, err, time.Since(start))
	}()

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode judge request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.JudgeTransport, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Judge request failed", "op", op, "error", err)
		return fmt.Errorf("%w: %v", errs.JudgeTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.logger.Error("Failed to read judge response", "op", op, "error", err)
		return fmt.Errorf("%w: %v", errs.JudgeTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("Judge returned an error status", "op", op, "status", resp.StatusCode, "body", string(raw))
		return fmt.Errorf("%w: status %d", errs.MalformedJudgeResponse, resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Error("Failed to decode judge response", "op", op, "error", err)
		return fmt.Errorf("%w: %v", errs.MalformedJudgeResponse, err)
	}
	return nil
}
