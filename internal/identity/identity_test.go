package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testHex  = "3bf0c63fcb93463407af97a5e5ee64fa883d107ef9e558472c4eb9aaaefa459d"
	otherHex = "82341f882b6eabcd2ba7f1ef90aad961cf074af15b9ef44a09f9d2a8fbfbe6a2"
)

func TestEncode_RoundTrip(t *testing.T) {
	npub, err := Encode(testHex)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(npub, PublicKeyHRP+"1"))

	key, err := Parse(npub)
	require.NoError(t, err)
	assert.Equal(t, testHex, key)
}

func TestNormalize(t *testing.T) {
	npub, err := Encode(testHex)
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "lowercase hex", input: testHex, expected: testHex, ok: true},
		{name: "uppercase hex", input: strings.ToUpper(testHex), expected: testHex, ok: true},
		{name: "padded hex", input: "  " + testHex + "\n", expected: testHex, ok: true},
		{name: "bech32", input: npub, expected: testHex, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "short hex", input: testHex[:63], ok: false},
		{name: "non hex of hex length", input: strings.Repeat("z", HexLength), ok: false},
		{name: "plain name", input: "ownerX", ok: false},
		{name: "bad checksum", input: npub[:len(npub)-1] + flip(npub[len(npub)-1]), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := Normalize(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestEncode_Invalid(t *testing.T) {
	_, err := Encode("abcd")
	assert.ErrorIs(t, err, ErrUnrecognized)

	_, err = Encode(strings.Repeat("g", HexLength))
	assert.ErrorIs(t, err, ErrUnrecognized)
}

func TestParse_WrongPrefix(t *testing.T) {
	npub, err := Encode(testHex)
	require.NoError(t, err)

	nsec := "nsec" + npub[len(PublicKeyHRP):]
	_, err = Parse(nsec)
	assert.ErrorIs(t, err, ErrUnrecognized)
}

func TestEqual(t *testing.T) {
	npub, err := Encode(testHex)
	require.NoError(t, err)

	assert.True(t, Equal(testHex, npub))
	assert.True(t, Equal(npub, strings.ToUpper(testHex)))
	assert.False(t, Equal(testHex, otherHex))
	assert.False(t, Equal("ownerX", "ownerX"))
	assert.False(t, Equal(testHex, ""))
}

func flip(c byte) string {
	if c == 'q' {
		return "p"
	}
	return "q"
}
