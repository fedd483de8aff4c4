// Package client provides a reusable library interface for submitting
// signed payloads to a verisig server.
package client

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/liamren/verisig/pkg/config"
	"github.com/liamren/verisig/pkg/verifier"
)

// DefaultTimeout bounds a single verification round trip.
const DefaultTimeout = 10 * time.Second

// ClientConfig holds the configuration for the verification client
type ClientConfig struct {
	// BaseURL of the verisig server, e.g. "http://127.0.0.1:3000".
	BaseURL string

	// SignatureHeader carrying the signature. Defaults to X-Signature.
	SignatureHeader string

	// Timeout for a single request. Defaults to DefaultTimeout.
	Timeout time.Duration

	Logger *zap.Logger
}

// Client submits payloads and signatures to a verisig server
type Client struct {
	baseURL    string
	header     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new verification client instance
func NewClient(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}

	header := cfg.SignatureHeader
	if header == "" {
		header = config.DefaultSignatureHeader
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		header:     header,
		httpClient: &http.Client{Timeout: timeout},
		logger:     cfg.Logger,
	}, nil
}

// Verify submits payload with the given hex signature and returns the
// server's response text.
func (c *Client) Verify(ctx context.Context, payload []byte, signature string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "failed to build verification request")
	}
	req.Header.Set(c.header, signature)

	c.logger.Sugar().Debugw("Submitting verification request",
		"url", c.baseURL,
		"payload_bytes", len(payload))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "verification request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read response body")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}

	return string(body), nil
}

// SignAndVerify signs payload with key under encoding and submits it in one
// call. The server must hash with the same payload encoding for the recovered
// address to match the key.
func (c *Client) SignAndVerify(ctx context.Context, key *ecdsa.PrivateKey, payload []byte, encoding verifier.PayloadEncoding) (string, error) {
	signature, err := verifier.SignPayload(key, payload, encoding)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign payload")
	}
	return c.Verify(ctx, payload, signature)
}
