package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/liamren/verisig/pkg/config"
	"github.com/liamren/verisig/pkg/server"
	"github.com/liamren/verisig/pkg/verifier"
)

func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()

	srv := server.NewServer(config.NewServerConfig(), verifier.NewDefault(), zap.NewNop())
	backend := httptest.NewServer(srv.GetHandler())
	t.Cleanup(backend.Close)
	return backend
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(nil)
	require.Error(t, err)

	_, err = NewClient(&ClientConfig{Logger: zap.NewNop()})
	require.Error(t, err)

	_, err = NewClient(&ClientConfig{BaseURL: "http://127.0.0.1:3000"})
	require.Error(t, err)

	c, err := NewClient(&ClientConfig{BaseURL: "http://127.0.0.1:3000/", Logger: zap.NewNop()})
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	backend := newTestBackend(t)

	c, err := NewClient(&ClientConfig{BaseURL: backend.URL, Logger: zap.NewNop()})
	require.NoError(t, err)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	response, err := c.SignAndVerify(context.Background(), key, []byte("hello"), verifier.EncodingByteArray)
	require.NoError(t, err)
	assert.Contains(t, response, "Signed by address:")
	assert.Contains(t, response, verifier.SignerAddress(key).Hex())
}

func TestVerifyMalformedSignature(t *testing.T) {
	backend := newTestBackend(t)

	c, err := NewClient(&ClientConfig{BaseURL: backend.URL, Logger: zap.NewNop()})
	require.NoError(t, err)

	response, err := c.Verify(context.Background(), []byte("hello"), "junk")
	require.NoError(t, err)
	assert.Contains(t, response, "Failed to recover address from signature")
}

func TestVerifyServerUnreachable(t *testing.T) {
	c, err := NewClient(&ClientConfig{BaseURL: "http://127.0.0.1:1", Logger: zap.NewNop()})
	require.NoError(t, err)

	_, err = c.Verify(context.Background(), []byte("hello"), "0x00")
	require.Error(t, err)
}
