package experiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tacogips/crogen/internal/debug"
	"github.com/tacogips/crogen/internal/template/model"
)

const (
	opFetch  = "fetch"
	opCreate = "create"

	// DefaultTimeout bounds every API request.
	DefaultTimeout = 30 * time.Second

	maxErrorBody = 512
)

// Variation is one arm of an experiment as returned by the API.
type Variation struct {
	Name        string `json:"name"`
	VariationID int64  `json:"variation_id"`
}

// Data is the subset of an experiment the generator uses.
type Data struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Variations []Variation `json:"variations"`
}

// VariationCount is the number of non-control arms.
func (d *Data) VariationCount() int {
	if len(d.Variations) == 0 {
		return 0
	}
	return len(d.Variations) - 1
}

// VariationData converts the arms for template variables.
func (d *Data) VariationData() []model.VariationData {
	out := make([]model.VariationData, len(d.Variations))
	for i, v := range d.Variations {
		out[i] = model.VariationData{Name: v.Name, ID: strconv.FormatInt(v.VariationID, 10)}
	}
	return out
}

// Placeholder describes the experiment payload would create, without an ID.
func Placeholder(payload *Payload) *Data {
	data := &Data{Name: payload.Name, Variations: make([]Variation, len(payload.Variations))}
	for i, v := range payload.Variations {
		data.Variations[i] = Variation{Name: v.Name}
	}
	return data
}

// Client talks to the experiment REST API.
type Client interface {
	Fetch(ctx context.Context, id, token string) (*Data, error)
	Create(ctx context.Context, token string, payload *Payload) (*Data, error)
}

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	// BaseURL is the API root, e.g. https://api.optimizely.com/v2.
	BaseURL    string
	HTTPClient *http.Client
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) {
		h.HTTPClient = c
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) {
		h.HTTPClient.Timeout = d
	}
}

// NewClient creates an API client for baseURL.
func NewClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves an existing experiment.
func (c *HTTPClient) Fetch(ctx context.Context, id, token string) (*Data, error) {
	url := fmt.Sprintf("%s/experiments/%s", c.BaseURL, id)
	debug.Debug("[experiment] GET %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewNetworkError(opFetch, err)
	}
	return c.do(req, opFetch, token)
}

// Create creates a new experiment from payload.
func (c *HTTPClient) Create(ctx context.Context, token string, payload *Payload) (*Data, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &APIError{Kind: InvalidPayload, Operation: opCreate, Cause: err}
	}
	url := c.BaseURL + "/experiments"
	debug.Debug("[experiment] POST %s", url)
	debug.DebugJSON("[experiment] payload", payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, NewNetworkError(opCreate, err)
	}
	req.Header.Set("Content-Type", "application/json")

	data, err := c.do(req, opCreate, token)
	if err != nil {
		return nil, err
	}
	if data.ID == 0 {
		return nil, NewCreateFailedError(0, "response did not contain an experiment id")
	}
	return data, nil
}

func (c *HTTPClient) do(req *http.Request, op, token string) (*Data, error) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, NewNetworkError(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError(op, err)
	}
	debug.Debug("[experiment] %s returned HTTP %d", op, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(op, resp.StatusCode, errorMessage(body))
	}

	var data Data
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, NewNetworkError(op, fmt.Errorf("failed to decode response: %w", err))
	}
	return &data, nil
}

// errorMessage extracts a message from an API error body.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		return payload.Message
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody] + "..."
	}
	return msg
}
