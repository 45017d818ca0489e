/*
Package apostilletest provides helpers for testing code built on top of the
apostille packages.
*/
package apostilletest

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/iov-one/apostille/crypto"
)

// GeneratorKey is a well known private key used as the generator of
// reference derivations.
const GeneratorKey = "aaaaaaaaaaeeeeeeeeeebbbbbbbbbb5555555555dddddddddd1111111111aaee"

// RandomPrivateKey returns a hex encoded private key generated on the fly.
func RandomPrivateKey(t testing.TB) string {
	t.Helper()
	raw := make([]byte, crypto.PrivateKeySize)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random private key: %s", err)
	}
	return strings.ToUpper(hex.EncodeToString(raw))
}

// NewKey returns a key pair with a random private key.
func NewKey(t testing.TB, network crypto.NetworkType) *crypto.KeyPair {
	t.Helper()
	return KeyPair(t, RandomPrivateKey(t), network)
}

// KeyPair returns the key pair of the given private key.
func KeyPair(t testing.TB, privateKeyHex string, network crypto.NetworkType) *crypto.KeyPair {
	t.Helper()
	kp, err := crypto.NewKeyPair(privateKeyHex, network)
	if err != nil {
		t.Fatalf("cannot create key pair: %s", err)
	}
	return kp
}

// Owners returns n public accounts with random keys.
func Owners(t testing.TB, network crypto.NetworkType, n int) []crypto.PublicAccount {
	t.Helper()
	owners := make([]crypto.PublicAccount, n)
	for i := range owners {
		owners[i] = NewKey(t, network).PublicAccount()
	}
	return owners
}

// ParseAddress returns the binary representation of an address, failing the
// test if it is not valid.
func ParseAddress(t testing.TB, encoded string) crypto.Address {
	t.Helper()
	a, err := crypto.ParseAddress(encoded)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encoded, err)
	}
	return a
}

// DecodeHex returns the decoded representation of a hex string.
func DecodeHex(t testing.TB, encoded string) []byte {
	t.Helper()
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		t.Fatalf("cannot decode hex string: %s", err)
	}
	return raw
}
