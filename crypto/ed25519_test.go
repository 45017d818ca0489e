package crypto

import (
	"bytes"
	stded25519 "crypto/ed25519"
	"crypto/sha512"
	"testing"

	"github.com/iov-one/apostille/apostilletest/assert"
	"github.com/iov-one/apostille/errors"
)

// With SHA-512 the generic implementation must be the standard Ed25519.
func TestExpandedKeyMatchesStandardEd25519(t *testing.T) {
	seeds := [][]byte{
		make([]byte, 32),
		bytes.Repeat([]byte{31}, 32),
		[]byte("0123456789abcdef0123456789abcdef"),
	}
	messages := [][]byte{nil, []byte("foobar"), bytes.Repeat([]byte("x"), 1000)}

	for _, seed := range seeds {
		std := stded25519.NewKeyFromSeed(seed)
		key, err := expand(sha512.New, seed)
		assert.Nil(t, err)
		assert.Equal(t, []byte(std.Public().(stded25519.PublicKey)), key.public)

		for _, msg := range messages {
			sig, err := key.sign(sha512.New, msg)
			assert.Nil(t, err)
			assert.Equal(t, stded25519.Sign(std, msg), sig)
			if !verify(sha512.New, key.public, msg, sig) {
				t.Fatal("cannot verify a standard signature")
			}
		}
	}
}

func TestExpandInvalidSeed(t *testing.T) {
	_, err := expand(sha512.New, []byte{1, 2, 3})
	assert.IsErr(t, errors.ErrSigning, err)
}

func TestVerifyRejects(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 32)
	key, err := expand(sha512.New, seed)
	assert.Nil(t, err)
	msg := []byte("dingbooms")
	sig, err := key.sign(sha512.New, msg)
	assert.Nil(t, err)

	tampered := append([]byte{}, sig...)
	tampered[10] ^= 0x01

	cases := map[string]struct {
		pub []byte
		msg []byte
		sig []byte
	}{
		"wrong message":      {pub: key.public, msg: []byte("foobar"), sig: sig},
		"tampered signature": {pub: key.public, msg: msg, sig: tampered},
		"short signature":    {pub: key.public, msg: msg, sig: sig[:63]},
		"nil signature":      {pub: key.public, msg: msg, sig: nil},
		"short public key":   {pub: key.public[:31], msg: msg, sig: sig},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if verify(sha512.New, tc.pub, tc.msg, tc.sig) {
				t.Fatal("invalid signature verified")
			}
		})
	}
}
