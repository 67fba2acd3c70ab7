// Package service implements the client for the remote text-processing
// endpoint. One POST per user action; the response shape depends on the
// requested action and is interpreted by FormatResult.
package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/pavannsshetty7022/abbrevify/internal/log"
)

// DefaultEndpoint is the local development address of the processing service.
const DefaultEndpoint = "http://127.0.0.1:5000/process_text"

var (
	// ErrServer covers transport failures and non-2xx statuses. The caller
	// treats every flavor the same way, so there is one sentinel.
	ErrServer = errors.New("text processing service unavailable")

	// ErrMalformedResponse is returned when a 2xx response body cannot be
	// interpreted for the requested action.
	ErrMalformedResponse = errors.New("malformed response from text processing service")
)

// Client posts processing requests to a fixed endpoint.
type Client struct {
	http     *resty.Client
	endpoint string
}

// NewClient creates a client for the given endpoint URL.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	// Requests run until the service answers; the per-control busy state
	// keeps duplicate submissions out in the meantime.
	return &Client{
		http:     resty.New(),
		endpoint: endpoint,
	}
}

// Process sends one request and decodes the success body. Non-2xx statuses
// are reported as ErrServer regardless of body content.
func (c *Client) Process(ctx context.Context, req Request) (*Response, error) {
	requestID := uuid.NewString()
	log.Debug(log.CatNet, "processing request",
		"request_id", requestID, "action", req.Action, "mode", req.Mode, "chars", len(req.Text))

	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", requestID).
		SetBody(req).
		Post(c.endpoint)
	if err != nil {
		log.Error(log.CatNet, "processing request failed", "request_id", requestID, "error", err)
		return nil, ErrServer
	}
	if !res.IsSuccess() {
		log.Error(log.CatNet, "processing service returned error",
			"request_id", requestID, "status_code", res.StatusCode())
		return nil, ErrServer
	}

	var resp Response
	if err := json.Unmarshal(res.Body(), &resp); err != nil {
		log.Error(log.CatNet, "error parsing processing response", "request_id", requestID, "error", err)
		return nil, ErrMalformedResponse
	}

	log.Debug(log.CatNet, "processing request completed", "request_id", requestID)
	return &resp, nil
}
