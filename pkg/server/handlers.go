package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// handleVerify recovers the signer address for the request body and reports
// it as plain text. All outcomes are HTTP 200 with a descriptive body; the
// caller distinguishes them by the message text.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	s.logger.Sugar().Debugw("Handling verification request",
		"request_id", requestID,
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr)

	w.Header().Set("Content-Type", "text/plain")

	signature := r.Header.Get(s.cfg.SignatureHeader)
	if signature == "" {
		s.metrics.RequestsTotal.WithLabelValues(ResultMissingHeader).Inc()
		fmt.Fprintf(w, "Missing %s header", s.cfg.SignatureHeader)
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		s.metrics.RequestsTotal.WithLabelValues(ResultReadError).Inc()
		s.logger.Sugar().Warnw("Failed to read request body", "request_id", requestID, "error", err)
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	addr, err := s.verifier.Verify(payload, signature)
	if err != nil {
		s.metrics.RequestsTotal.WithLabelValues(resultForError(err)).Inc()
		s.logger.Sugar().Debugw("Verification failed",
			"request_id", requestID,
			"payload_bytes", len(payload),
			"error", err)
		fmt.Fprintf(w, "Failed to recover address from signature: %v", err)
		return
	}

	s.metrics.RequestsTotal.WithLabelValues(ResultOK).Inc()
	s.metrics.PayloadBytes.Observe(float64(len(payload)))
	s.logger.Sugar().Debugw("Recovered signer address",
		"request_id", requestID,
		"address", addr.Hex(),
		"payload_bytes", len(payload))

	fmt.Fprintf(w, "Signed by address: %s", addr.Hex())
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, "ok")
}
