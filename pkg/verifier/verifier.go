// Package verifier recovers Ethereum addresses from payloads signed with the
// personal-message scheme. Verification is a pure computation: hash the
// payload with the EIP-191 prefix, parse the hex signature into r||s||v and
// recover the signer's public key from the curve. No state, no I/O, safe for
// concurrent use.
package verifier

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Verifier recovers signer addresses using a fixed payload encoding.
type Verifier struct {
	encoding PayloadEncoding
}

// New creates a Verifier for the given payload encoding.
func New(encoding PayloadEncoding) (*Verifier, error) {
	if !encoding.Valid() {
		return nil, fmt.Errorf("unknown payload encoding: %q", encoding)
	}
	return &Verifier{encoding: encoding}, nil
}

// NewDefault creates a Verifier with the byte-array payload encoding.
func NewDefault() *Verifier {
	return &Verifier{encoding: EncodingByteArray}
}

// Encoding returns the payload encoding this Verifier hashes with.
func (v *Verifier) Encoding() PayloadEncoding {
	return v.encoding
}

// Verify reconstructs the signing hash for payload, parses signature and
// recovers the signer's address. Failures come back as *VerificationError
// tagged with the stage that produced them; the payload and signature are
// never retried or mutated.
func (v *Verifier) Verify(payload []byte, signature string) (common.Address, error) {
	sig, err := ParseSignature(signature)
	if err != nil {
		return common.Address{}, err
	}
	return RecoverAddress(SigningHash(payload, v.encoding), sig)
}
