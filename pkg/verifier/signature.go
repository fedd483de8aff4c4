package verifier

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// SignatureLength is the byte length of an r||s||v signature.
const SignatureLength = 65

// ParseSignature decodes a hex-encoded 65-byte r||s||v signature. The 0x
// prefix is optional. The recovery byte is normalized from 27/28 to 0/1;
// any other value is rejected.
func ParseSignature(signature string) ([]byte, error) {
	if signature == "" {
		return nil, newParseError(fmt.Errorf("signature is empty"))
	}

	trimmed := strings.TrimPrefix(strings.TrimPrefix(signature, "0x"), "0X")
	sig, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, newParseError(fmt.Errorf("invalid hex encoding: %v", err))
	}
	if len(sig) != SignatureLength {
		return nil, newParseError(fmt.Errorf("expected %d bytes, got %d", SignatureLength, len(sig)))
	}

	switch sig[64] {
	case 0, 1:
		// Already in recovery id form.
	case 27, 28:
		sig[64] -= 27
	default:
		return nil, newParseError(fmt.Errorf("invalid recovery id: %d", sig[64]))
	}

	return sig, nil
}

// RecoverAddress performs public key recovery for a parsed signature over
// hash and derives the signer's address from the recovered public key.
// sig must be 65 bytes with the recovery id in {0, 1}, as returned by
// ParseSignature.
func RecoverAddress(hash []byte, sig []byte) (common.Address, error) {
	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return common.Address{}, newRecoverError(err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
