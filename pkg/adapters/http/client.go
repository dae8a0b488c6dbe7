package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/aretw0/guesser/api"
	"github.com/aretw0/guesser/pkg/domain"
)

// DefaultTimeout bounds every round-trip of the default HTTP client.
const DefaultTimeout = 10 * time.Second

// Client talks to the game server. It implements ports.GameAPI and ports.Navigator.
// All calls share one cookie jar, since the server tracks the round in its session.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	logger   *slog.Logger
	contract *api.Contract
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A client without a cookie jar
// gets one.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.http.Timeout = d
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cl *Client) {
		if logger != nil {
			cl.logger = logger
		}
	}
}

// WithContract enables strict mode: answer payloads are validated against the
// contract before decoding, and violations are reported as decode failures.
func WithContract(contract *api.Contract) Option {
	return func(cl *Client) {
		cl.contract = contract
	}
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		c.http.Jar = jar
	}

	return c, nil
}

type answerRequest struct {
	Guess string `json:"guess"`
}

type nextResponse struct {
	Redirect string `json:"redirect"`
}

// CheckAnswer handles the POST /api/answer round-trip.
func (c *Client) CheckAnswer(ctx context.Context, guess string) (domain.Outcome, error) {
	var raw any
	if err := c.post(ctx, api.PathAnswer, answerRequest{Guess: guess}, &raw); err != nil {
		return domain.Outcome{}, err
	}

	if c.contract != nil {
		if err := c.contract.ValidateResponse(api.PathAnswer, http.StatusOK, raw); err != nil {
			return domain.Outcome{}, fmt.Errorf("%w: %w: %v", domain.ErrNetwork, domain.ErrProtocol, err)
		}
	}

	outcome, err := DecodeOutcome(raw)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	return outcome, nil
}

// ReportScore handles the POST /api/end call. The response body is ignored.
func (c *Client) ReportScore(ctx context.Context, summary domain.RoundSummary) error {
	return c.post(ctx, api.PathEnd, summary, nil)
}

// NextRound handles the POST /api/next call.
func (c *Client) NextRound(ctx context.Context) (string, error) {
	var resp nextResponse
	if err := c.post(ctx, api.PathNext, nil, &resp); err != nil {
		return "", err
	}
	return resp.Redirect, nil
}

// Redirect loads target (relative to the base URL), which opens the round the
// server associates with it.
func (c *Client) Redirect(ctx context.Context, target string) error {
	ref, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("invalid redirect target %q: %w", target, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.ResolveReference(ref).String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// post sends body as JSON (nil sends no body) and decodes the response into out
// (nil discards it). Every failure wraps domain.ErrNetwork.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request: %v", domain.ErrNetwork, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), reader)
	if err != nil {
		return fmt.Errorf("%w: failed to build request: %v", domain.ErrNetwork, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %v", domain.ErrNetwork, path, err)
	}
	return nil
}

// do performs the request and rejects non-2xx statuses. The caller closes the body.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", req.Method, "url", req.URL.String(), "error", err)
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrNetwork, req.Method, req.URL.Path, err)
	}

	c.logger.Debug("request done",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s %s: status %d", domain.ErrNetwork, req.Method, req.URL.Path, resp.StatusCode)
	}
	return resp, nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.String() + path
}
