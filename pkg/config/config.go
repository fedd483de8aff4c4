package config

import (
	"fmt"
	"net"

	"github.com/liamren/verisig/pkg/verifier"
)

// Environment variable names for verisig server configuration
const (
	EnvVerisigHost            = "VERISIG_HOST"
	EnvVerisigPort            = "VERISIG_PORT"
	EnvVerisigPayloadEncoding = "VERISIG_PAYLOAD_ENCODING"
	EnvVerisigSignatureHeader = "VERISIG_SIGNATURE_HEADER"
	EnvVerisigVerbose         = "VERISIG_VERBOSE"

	// Short names accepted for drop-in compatibility with earlier deployments.
	EnvLegacyIP   = "IP"
	EnvLegacyPort = "PORT"
)

// Defaults for the listen address and the signature header.
const (
	DefaultHost            = "127.0.0.1"
	DefaultPort            = 3000
	DefaultSignatureHeader = "X-Signature"
)

// ServerConfig represents the complete configuration for a verisig server.
type ServerConfig struct {
	// Listen address
	Host string `json:"host"`
	Port int    `json:"port"`

	// SignatureHeader is the request header carrying the hex signature.
	SignatureHeader string `json:"signature_header"`

	// PayloadEncoding selects how payload bytes enter the signing preimage.
	PayloadEncoding verifier.PayloadEncoding `json:"payload_encoding"`

	// Operational settings
	Verbose bool `json:"verbose"`
}

// NewServerConfig returns a config populated with defaults.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:            DefaultHost,
		Port:            DefaultPort,
		SignatureHeader: DefaultSignatureHeader,
		PayloadEncoding: verifier.EncodingByteArray,
	}
}

// Validate validates the server configuration.
func (c *ServerConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if ip := net.ParseIP(c.Host); ip == nil {
		return fmt.Errorf("invalid listen IP address: %s", c.Host)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1-65535, got %d", c.Port)
	}

	if c.SignatureHeader == "" {
		return fmt.Errorf("signature header cannot be empty")
	}

	if !c.PayloadEncoding.Valid() {
		return fmt.Errorf("unsupported payload encoding %q, supported: %s, %s",
			c.PayloadEncoding, verifier.EncodingRaw, verifier.EncodingByteArray)
	}

	return nil
}

// ListenAddr returns the host:port pair the server binds to.
func (c *ServerConfig) ListenAddr() string {
	return net.JoinHostPort(c.Host, fmt.Sprintf("%d", c.Port))
}
