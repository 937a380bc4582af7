// Package client talks to the challenge server: it fetches problems (order
// lists keyed by a seed) and submits completed action logs for scoring. It
// can also synthesize problems locally for offline runs (generate.go).
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kitchen-sim/kitchen-sim/kitchen"
)

const httpTimeout = 5 * time.Second

// testIDHeader carries the problem identity between fetch and submit.
const testIDHeader = "x-test-id"

// Client is a thin JSON client for the challenge endpoints.
type Client struct {
	httpc    *http.Client
	endpoint string
	auth     string
}

// New builds a client for the given endpoint and auth token.
func New(endpoint, auth string) *Client {
	return &Client{
		httpc:    &http.Client{Timeout: httpTimeout},
		endpoint: endpoint,
		auth:     auth,
	}
}

// NewProblem fetches a fresh problem. name is optional; seed selects the
// deterministic problem instance. It returns the server-assigned test ID and
// the ordered list of orders.
func (c *Client) NewProblem(name string, seed int64) (string, []kitchen.Order, error) {
	q := url.Values{}
	q.Set("auth", c.auth)
	q.Set("seed", strconv.FormatInt(seed, 10))
	if name != "" {
		q.Set("name", name)
	}

	resp, err := c.httpc.Get(fmt.Sprintf("%s/interview/challenge/new?%s", c.endpoint, q.Encode()))
	if err != nil {
		return "", nil, fmt.Errorf("fetch problem: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", nil, fmt.Errorf("fetch problem: server returned %s: %s", resp.Status, body)
	}

	testID := resp.Header.Get(testIDHeader)
	var orders []kitchen.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return "", nil, fmt.Errorf("fetch problem: decode orders: %w", err)
	}
	return testID, orders, nil
}

// SolveOptions echoes the run parameters back to the scorer.
type SolveOptions struct {
	Rate time.Duration
	Min  time.Duration
	Max  time.Duration
}

// solveRequest is the submit body; durations travel as microseconds.
type solveRequest struct {
	Options struct {
		Rate int64 `json:"rate"`
		Min  int64 `json:"min"`
		Max  int64 `json:"max"`
	} `json:"options"`
	Actions []kitchen.Action `json:"actions"`
}

// Solve submits the full time-ordered action log for scoring and returns the
// server's verdict text.
func (c *Client) Solve(testID string, opts SolveOptions, actions []kitchen.Action) (string, error) {
	var body solveRequest
	body.Options.Rate = opts.Rate.Microseconds()
	body.Options.Min = opts.Min.Microseconds()
	body.Options.Max = opts.Max.Microseconds()
	body.Actions = actions

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("submit solution: encode: %w", err)
	}

	q := url.Values{}
	q.Set("auth", c.auth)
	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("%s/interview/challenge/solve?%s", c.endpoint, q.Encode()),
		bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("submit solution: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(testIDHeader, testID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit solution: %w", err)
	}
	defer resp.Body.Close()

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("submit solution: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("submit solution: server returned %s: %s", resp.Status, result)
	}
	return string(result), nil
}
