package identity

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	// PublicKeyHRP is the human readable prefix of bech32 encoded public keys
	PublicKeyHRP = "npub"
	// KeyLength is the raw public key size in bytes
	KeyLength = 32
	// HexLength is the length of a hex encoded public key
	HexLength = KeyLength * 2
)

// ErrUnrecognized is returned when an identity is neither hex nor bech32
var ErrUnrecognized = errors.New("unrecognized identity encoding")

// Normalize returns the canonical lowercase hex public key for s.
// The second result is false when s is in neither accepted encoding.
func Normalize(s string) (string, bool) {
	key, err := Parse(s)
	if err != nil {
		return "", false
	}
	return key, true
}

// Parse decodes a hex or bech32 public key into canonical lowercase hex
func Parse(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrUnrecognized
	}

	if len(s) == HexLength {
		if _, err := hex.DecodeString(s); err == nil {
			return strings.ToLower(s), nil
		}
	}

	return parseBech32(s)
}

func parseBech32(s string) (string, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnrecognized, err)
	}
	if hrp != PublicKeyHRP {
		return "", fmt.Errorf("%w: unexpected prefix %q", ErrUnrecognized, hrp)
	}

	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnrecognized, err)
	}
	if len(raw) != KeyLength {
		return "", fmt.Errorf("%w: key is %d bytes", ErrUnrecognized, len(raw))
	}

	return hex.EncodeToString(raw), nil
}

// Encode renders a hex public key in its bech32 form
func Encode(hexKey string) (string, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil || len(raw) != KeyLength {
		return "", ErrUnrecognized
	}

	data, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(PublicKeyHRP, data)
}

// Equal reports whether a and b are encodings of the same public key.
// Unrecognized values are never equal to anything.
func Equal(a, b string) bool {
	ka, ok := Normalize(a)
	if !ok {
		return false
	}
	kb, ok := Normalize(b)
	if !ok {
		return false
	}
	return ka == kb
}
