package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"placerec/internal/place"

	"go.uber.org/zap"
)

// StatusError reports a non-2xx response from the remote service,
// as opposed to a transport-level failure.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote service returned status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the places service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// FetchAll returns every place known to the remote service, most recent first.
func (c *Client) FetchAll(ctx context.Context) ([]place.Place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/places", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("fetch places failed", zap.Error(err))
		return nil, fmt.Errorf("fetch places: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		c.log.Error("fetch places rejected", zap.Int("status", resp.StatusCode))
		return nil, err
	}

	var places []place.Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("decode places: %w", err)
	}
	return places, nil
}

type createPayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Photo       *string `json:"photo"`
}

// Create submits a complete draft and returns the record the service stored.
// The draft is validated first; an incomplete draft never reaches the wire.
func (c *Client) Create(ctx context.Context, draft place.Draft) (place.Place, error) {
	if err := draft.Validate(); err != nil {
		return place.Place{}, err
	}

	payload := createPayload{
		Title:       draft.Title,
		Description: draft.Description,
		Latitude:    *draft.Latitude,
		Longitude:   *draft.Longitude,
	}
	if draft.HasPhoto() {
		photo := draft.Photo
		payload.Photo = &photo
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return place.Place{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/places", bytes.NewReader(body))
	if err != nil {
		return place.Place{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("create place failed", zap.Error(err))
		return place.Place{}, fmt.Errorf("create place: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		c.log.Error("create place rejected", zap.Int("status", resp.StatusCode))
		return place.Place{}, err
	}

	var created place.Place
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return place.Place{}, fmt.Errorf("decode created place: %w", err)
	}
	return created, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
	return &StatusError{StatusCode: resp.StatusCode, Body: string(snippet)}
}
