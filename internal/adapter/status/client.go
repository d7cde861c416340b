package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bluedot/paylink/internal/domain/model"
)

// ErrUnknownDocument indicates the backend does not know the document id.
// The watcher treats this as "not yet decided" so a store reset does not
// abort tracking.
var ErrUnknownDocument = errors.New("document unknown to backend")

// Client exposes read access to document state.
type Client interface {
	Fetch(ctx context.Context, id string) (*model.Document, error)
}

// HTTPClient implements Client against the document read endpoint.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates an HTTP status client with a default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("base url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Fetch queries the backend for the current document record. The id is
// percent-encoded because it may contain a reserved "/".
func (c *HTTPClient) Fetch(ctx context.Context, id string) (*model.Document, error) {
	endpoint := strings.TrimRight(c.baseURL.String(), "/") + "/api/invoices/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var doc model.Document
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, err
		}
		return &doc, nil
	case http.StatusNotFound:
		return nil, ErrUnknownDocument
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("status request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("status error: %s", resp.Status)
	}
}
