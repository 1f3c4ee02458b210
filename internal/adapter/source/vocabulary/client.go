package vocabulary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/mmcdole/vocab/internal/domain"
)

// Endpoint names, used as keys for per-endpoint base URL overrides
const (
	EndpointList   = "list"
	EndpointGroups = "groups"
	EndpointRandom = "random"
	EndpointTones  = "tones"
	EndpointDelete = "delete"
	EndpointBulk   = "bulk"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxFailures = 5
	defaultOpenTimeout = 30 * time.Second

	apiPrefix = "/api/vocabulary"
)

// Options configures a Client
type Options struct {
	// Endpoints maps an endpoint name to a base URL that replaces the default one
	Endpoints map[string]string

	Timeout   time.Duration
	UserAgent string

	// MaxFailures consecutive 5xx or transport failures open the breaker
	MaxFailures uint32
	OpenTimeout time.Duration
}

// Client implements domain.VocabularyClient over the vocabulary REST API.
// Requests are never retried; the breaker only fails fast while the server is down.
type Client struct {
	baseURL    string
	endpoints  map[string]string
	userAgent  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewClient creates a vocabulary API client
func NewClient(baseURL string, opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxFailures == 0 {
		opts.MaxFailures = defaultMaxFailures
	}
	if opts.OpenTimeout <= 0 {
		opts.OpenTimeout = defaultOpenTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "vocab"
	}

	endpoints := make(map[string]string, len(opts.Endpoints))
	for name, u := range opts.Endpoints {
		if u = strings.TrimSpace(u); u != "" {
			endpoints[name] = strings.TrimRight(u, "/")
		}
	}

	maxFailures := opts.MaxFailures
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "vocabulary",
		Timeout: opts.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return !isServerFailure(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints,
		userAgent: opts.UserAgent,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		breaker: breaker,
		logger:  logger,
	}
}

// isServerFailure reports whether err means the backend itself is unhealthy.
// Client errors (4xx) and cancellations do not count against the breaker.
func isServerFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, domain.ErrServerOffline) {
		return true
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 500
	}
	return false
}

// endpointURL resolves the base URL for an endpoint
func (c *Client) endpointURL(endpoint string) string {
	if u, ok := c.endpoints[endpoint]; ok {
		return u
	}
	return c.baseURL
}

// GroupsURL is the resolved URL group fetches are sent to. It identifies
// the data a cached groups object came from.
func (c *Client) GroupsURL() string {
	return c.endpointURL(EndpointGroups) + apiPrefix + "/groups"
}

// doRequest performs a request against the given endpoint's host and
// returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, endpoint, method, path string, query url.Values, payload any) ([]byte, error) {
	reqURL := c.endpointURL(endpoint) + path
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.send(ctx, method, reqURL, payload)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.Warn("vocabulary request short-circuited", "url", reqURL, "state", c.breaker.State().String())
			return nil, fmt.Errorf("%w: %v", domain.ErrServerOffline, err)
		}
		return nil, err
	}
	return result.([]byte), nil
}

func (c *Client) send(ctx context.Context, method, reqURL string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("vocabulary request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Error("vocabulary request failed", "url", reqURL, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrServerOffline, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &domain.APIError{Status: resp.StatusCode, Message: errorMessage(respBody)}
		if resp.StatusCode == http.StatusNotFound {
			c.logger.Debug("vocabulary resource not found", "url", reqURL)
			return nil, apiErr
		}
		c.logger.Error("vocabulary request error", "status", resp.StatusCode, "url", reqURL, "body", string(respBody))
		return nil, apiErr
	}

	return respBody, nil
}

// errorMessage extracts the server's error text from a failed response body
func errorMessage(body []byte) string {
	var e ErrorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Error
}

// ListWords returns one page of the word list
func (c *Client) ListWords(ctx context.Context, page, limit int) (domain.Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	body, err := c.doRequest(ctx, EndpointList, http.MethodGet, apiPrefix, query, nil)
	if err != nil {
		return domain.Page{}, err
	}

	var resp ListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Page{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return MapPage(resp), nil
}

// GetGroups returns the group mapping in server order
func (c *Client) GetGroups(ctx context.Context) (domain.Groups, error) {
	body, err := c.doRequest(ctx, EndpointGroups, http.MethodGet, apiPrefix+"/groups", nil, nil)
	if err != nil {
		return nil, err
	}

	var resp GroupsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return MapGroups(resp), nil
}

// GetRandom returns a random sample sized by the server
func (c *Client) GetRandom(ctx context.Context) ([]domain.Entry, error) {
	return c.getEntries(ctx, EndpointRandom, apiPrefix+"/random")
}

// GetTones returns entries tagged as tones
func (c *Client) GetTones(ctx context.Context) ([]domain.Entry, error) {
	return c.getEntries(ctx, EndpointTones, apiPrefix+"/tones")
}

func (c *Client) getEntries(ctx context.Context, endpoint, path string) ([]domain.Entry, error) {
	body, err := c.doRequest(ctx, endpoint, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var resp []EntryDTO
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return MapEntries(resp), nil
}

// DeleteWord deletes an entry by word
func (c *Client) DeleteWord(ctx context.Context, word string) error {
	path := apiPrefix + "/" + url.PathEscape(word)
	_, err := c.doRequest(ctx, EndpointDelete, http.MethodDelete, path, nil, nil)
	return err
}

// BulkAdd posts the whole word array starting at offset
func (c *Client) BulkAdd(ctx context.Context, words []json.RawMessage, offset int) (domain.BulkResult, error) {
	if words == nil {
		words = []json.RawMessage{}
	}
	req := BulkRequest{Words: words, Offset: offset}

	body, err := c.doRequest(ctx, EndpointBulk, http.MethodPost, apiPrefix+"/bulk", nil, req)
	if err != nil {
		return domain.BulkResult{}, err
	}

	var resp BulkResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.BulkResult{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return MapBulkResult(resp), nil
}
