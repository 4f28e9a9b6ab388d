package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// HTTPGatewayConfig holds connection settings for a JSON-over-HTTP SMS gateway.
type HTTPGatewayConfig struct {
	BaseURL  string
	APIKey   string
	SenderID string
	Timeout  time.Duration
}

// HTTPGateway sends messages through a JSON-over-HTTP SMS provider.
type HTTPGateway struct {
	cfg    HTTPGatewayConfig
	client *http.Client
}

// NewHTTPGateway validates cfg and returns a ready gateway.
func NewHTTPGateway(cfg HTTPGatewayConfig) (*HTTPGateway, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("pkgsms: base url is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("pkgsms: api key is required")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &HTTPGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type sendRequest struct {
	To   string `json:"to"`
	From string `json:"from,omitempty"`
	Body string `json:"body"`
}

type sendResponse struct {
	MessageID string `json:"message_id"`
	Error     string `json:"error,omitempty"`
}

// Send posts the message to the provider and returns its message id.
func (g *HTTPGateway) Send(ctx context.Context, to, body string) (*SendResult, error) {
	payload, err := json.Marshal(sendRequest{To: to, From: g.cfg.SenderID, Body: body})
	if err != nil {
		return nil, fmt.Errorf("pkgsms: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("pkgsms: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pkgsms: send: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	var result sendResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&result); err != nil {
		return nil, fmt.Errorf("pkgsms: decode response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if result.Error != "" {
			return nil, fmt.Errorf("pkgsms: provider rejected message: %s", result.Error)
		}
		return nil, fmt.Errorf("pkgsms: provider returned status %d", resp.StatusCode)
	}

	return &SendResult{MessageID: result.MessageID}, nil
}

// Close implements Provider; the underlying http.Client needs no teardown.
func (g *HTTPGateway) Close() error {
	g.client.CloseIdleConnections()
	return nil
}
