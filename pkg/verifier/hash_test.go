package verifier

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigningHashRawMatchesPersonalSign(t *testing.T) {
	// The raw encoding must agree with go-ethereum's personal_sign hash.
	payloads := [][]byte{
		nil,
		{},
		[]byte("hello"),
		[]byte("a much longer payload with spaces and punctuation!"),
		{0x00, 0xff, 0x19, 0x0a},
	}

	for _, p := range payloads {
		assert.Equal(t, accounts.TextHash(p), SigningHash(p, EncodingRaw))
	}
}

func TestSigningHashByteArrayPreimage(t *testing.T) {
	// "hello" is 5 bytes; the rendering replaces the raw bytes while the
	// decimal length stays the raw payload length.
	expected := crypto.Keccak256([]byte("\x19Ethereum Signed Message:\n5[104, 101, 108, 108, 111]"))
	assert.Equal(t, expected, SigningHash([]byte("hello"), EncodingByteArray))

	expectedEmpty := crypto.Keccak256([]byte("\x19Ethereum Signed Message:\n0[]"))
	assert.Equal(t, expectedEmpty, SigningHash(nil, EncodingByteArray))
}

func TestSigningHashEncodingsDiffer(t *testing.T) {
	payload := []byte("hello")
	assert.NotEqual(t, SigningHash(payload, EncodingRaw), SigningHash(payload, EncodingByteArray))
}

func TestSigningHashTotality(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{"nil payload", nil},
		{"empty payload", []byte{}},
		{"single byte", []byte{0x7f}},
		{"large payload", bytes.Repeat([]byte{0xab}, 1<<20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, enc := range []PayloadEncoding{EncodingRaw, EncodingByteArray} {
				hash := SigningHash(tt.payload, enc)
				require.Len(t, hash, 32)
				// Deterministic across calls.
				require.Equal(t, hash, SigningHash(tt.payload, enc))
			}
		})
	}
}

func TestRenderByteArray(t *testing.T) {
	tests := []struct {
		name     string
		payload  []byte
		expected string
	}{
		{"empty", nil, "[]"},
		{"single", []byte{0}, "[0]"},
		{"hello", []byte("hello"), "[104, 101, 108, 108, 111]"},
		{"high bytes", []byte{0xff, 0x00, 0x80}, "[255, 0, 128]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderByteArray(tt.payload))
		})
	}
}

func TestPayloadEncodingValid(t *testing.T) {
	assert.True(t, EncodingRaw.Valid())
	assert.True(t, EncodingByteArray.Valid())
	assert.False(t, PayloadEncoding("").Valid())
	assert.False(t, PayloadEncoding("base64").Valid())
}

func FuzzSigningHash(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("hello"))
	f.Add([]byte{0x19, 0x45, 0x00})

	f.Fuzz(func(t *testing.T, payload []byte) {
		for _, enc := range []PayloadEncoding{EncodingRaw, EncodingByteArray} {
			hash := SigningHash(payload, enc)
			if len(hash) != 32 {
				t.Fatalf("expected 32-byte digest, got %d", len(hash))
			}
			if !bytes.Equal(hash, SigningHash(payload, enc)) {
				t.Fatal("digest not deterministic")
			}
		}
	})
}
