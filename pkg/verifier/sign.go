package verifier

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// SignPayload signs the personal-message hash of payload with key and returns
// the hex-encoded 65-byte signature with V adjusted to 27/28.
// This is primarily for testing and client implementation reference.
func SignPayload(key *ecdsa.PrivateKey, payload []byte, encoding PayloadEncoding) (string, error) {
	if key == nil {
		return "", fmt.Errorf("private key is nil")
	}
	if !encoding.Valid() {
		return "", fmt.Errorf("unknown payload encoding: %q", encoding)
	}

	sig, err := crypto.Sign(SigningHash(payload, encoding), key)
	if err != nil {
		return "", fmt.Errorf("failed to sign payload: %w", err)
	}
	// Adjust V from 0/1 to 27/28 for Ethereum compatibility.
	if sig[64] < 27 {
		sig[64] += 27
	}
	return hexutil.Encode(sig), nil
}

// SignerAddress derives the address for key's public key. Useful when
// asserting that a recovered address matches the signing key.
func SignerAddress(key *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(key.PublicKey)
}
