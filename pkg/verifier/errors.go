package verifier

import (
	"errors"
	"fmt"
)

// Stage identifies the verification step that produced a failure.
type Stage string

const (
	// StageParse covers signature decoding: hex validity, length, recovery id.
	StageParse Stage = "parse"
	// StageRecover covers elliptic-curve public key recovery.
	StageRecover Stage = "recover"
)

// Sentinel errors for the two failure classes. Test with errors.Is.
var (
	ErrMalformedSignature = errors.New("malformed signature")
	ErrRecoveryFailure    = errors.New("signature recovery failed")
)

// VerificationError tags a verification failure with the stage that produced
// it. It wraps one of the sentinel errors above, so callers can branch on
// either the stage or the error class.
type VerificationError struct {
	Stage Stage
	Err   error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

func newParseError(cause error) *VerificationError {
	return &VerificationError{
		Stage: StageParse,
		Err:   fmt.Errorf("%w: %v", ErrMalformedSignature, cause),
	}
}

func newRecoverError(cause error) *VerificationError {
	return &VerificationError{
		Stage: StageRecover,
		Err:   fmt.Errorf("%w: %v", ErrRecoveryFailure, cause),
	}
}
