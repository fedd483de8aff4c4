package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/liamren/verisig/pkg/config"
	"github.com/liamren/verisig/pkg/logger"
	"github.com/liamren/verisig/pkg/server"
	"github.com/liamren/verisig/pkg/verifier"
)

func main() {
	app := &cli.App{
		Name:  "verisig-server",
		Usage: "HTTP signature verification server",
		Description: `Verifies that a request body was signed by the holder of an Ethereum key.

The signature travels in the X-Signature header as a hex-encoded 65-byte
r||s||v value. The server reconstructs the personal-message signing hash,
recovers the signer's address and reports it in the response body.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "host",
				Usage:   "IP address to listen on",
				Value:   config.DefaultHost,
				EnvVars: []string{config.EnvVerisigHost, config.EnvLegacyIP},
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "HTTP server port",
				Value:   config.DefaultPort,
				EnvVars: []string{config.EnvVerisigPort, config.EnvLegacyPort},
			},
			&cli.StringFlag{
				Name:    "signature-header",
				Usage:   "Request header carrying the hex signature",
				Value:   config.DefaultSignatureHeader,
				EnvVars: []string{config.EnvVerisigSignatureHeader},
			},
			&cli.StringFlag{
				Name: "payload-encoding",
				Usage: fmt.Sprintf("How payload bytes enter the signing preimage: %q or %q",
					verifier.EncodingRaw, verifier.EncodingByteArray),
				Value:   verifier.EncodingByteArray.String(),
				EnvVars: []string{config.EnvVerisigPayloadEncoding},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{config.EnvVerisigVerbose},
			},
		},
		Action: runServer,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func runServer(c *cli.Context) error {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("verbose")})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	cfg := parseServerConfig(c)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	v, err := verifier.New(cfg.PayloadEncoding)
	if err != nil {
		return fmt.Errorf("failed to create verifier: %w", err)
	}

	srv := server.NewServer(cfg, v, l)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	l.Sugar().Infow("verisig server running",
		"addr", cfg.ListenAddr(),
		"signature_header", cfg.SignatureHeader,
		"payload_encoding", cfg.PayloadEncoding.String())
	l.Sugar().Infow("Available endpoints",
		"verify", "POST /",
		"health", "GET /healthz",
		"metrics", "GET /metrics")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	l.Sugar().Infow("Shutting down", "signal", sig.String())
	return srv.Stop()
}

func parseServerConfig(c *cli.Context) *config.ServerConfig {
	return &config.ServerConfig{
		Host:            c.String("host"),
		Port:            c.Int("port"),
		SignatureHeader: c.String("signature-header"),
		PayloadEncoding: verifier.PayloadEncoding(c.String("payload-encoding")),
		Verbose:         c.Bool("verbose"),
	}
}
