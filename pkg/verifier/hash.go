package verifier

import (
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// personalMessagePrefix is the 25-byte EIP-191 personal message prefix.
const personalMessagePrefix = "\x19Ethereum Signed Message:\n"

// PayloadEncoding selects how the payload bytes are appended to the
// personal-message preimage before hashing.
type PayloadEncoding string

const (
	// EncodingRaw appends the payload bytes unchanged. This is the standard
	// personal_sign preimage and verifies signatures produced by wallets.
	EncodingRaw PayloadEncoding = "raw"

	// EncodingByteArray appends a bracketed decimal rendering of the payload
	// instead of the bytes themselves: []byte("hello") becomes
	// "[104, 101, 108, 108, 111]". Some clients format the payload this way
	// before signing; wallet signatures over the raw bytes will NOT verify
	// under this encoding. The decimal length after the prefix is still the
	// raw payload length, not the length of the rendering.
	EncodingByteArray PayloadEncoding = "byte-array"
)

func (e PayloadEncoding) String() string {
	return string(e)
}

// Valid reports whether e is a known payload encoding.
func (e PayloadEncoding) Valid() bool {
	return e == EncodingRaw || e == EncodingByteArray
}

// SigningHash computes the 32-byte digest the signature is expected to cover:
// keccak256(prefix || decimal payload length || encoded payload). Total over
// all payloads, including empty ones.
func SigningHash(payload []byte, encoding PayloadEncoding) []byte {
	preimage := make([]byte, 0, len(personalMessagePrefix)+20+len(payload))
	preimage = append(preimage, personalMessagePrefix...)
	preimage = strconv.AppendInt(preimage, int64(len(payload)), 10)
	if encoding == EncodingByteArray {
		preimage = append(preimage, renderByteArray(payload)...)
	} else {
		preimage = append(preimage, payload...)
	}
	return crypto.Keccak256(preimage)
}

// renderByteArray renders payload as a bracketed decimal byte list with
// comma-space separators. An empty payload renders as "[]".
func renderByteArray(payload []byte) string {
	var sb strings.Builder
	sb.Grow(len(payload)*5 + 2)
	sb.WriteByte('[')
	for i, b := range payload {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(b)))
	}
	sb.WriteByte(']')
	return sb.String()
}
