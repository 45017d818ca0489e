package crypto

import (
	"bytes"
	"hash"

	"filippo.io/edwards25519"
	"github.com/iov-one/apostille/errors"
)

const (
	// PrivateKeySize is the size, in bytes, of a private key (Ed25519 seed).
	PrivateKeySize = 32
	// PublicKeySize is the size, in bytes, of a public key.
	PublicKeySize = 32
	// SignatureSize is the size, in bytes, of a signature.
	SignatureSize = 64
)

// expandedKey is an Ed25519 secret expanded with the configured hash
// function. The algorithm is the one of RFC 8032 with SHA-512 replaced by the
// given hash, which must produce 64 bytes.
type expandedKey struct {
	scalar *edwards25519.Scalar
	prefix []byte
	public []byte
}

func expand(newHash func() hash.Hash, seed []byte) (*expandedKey, error) {
	if len(seed) != PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrSigning, "invalid private key length %d", len(seed))
	}
	h := newHash()
	h.Write(seed)
	digest := h.Sum(nil)
	if len(digest) != 64 {
		return nil, errors.Wrapf(errors.ErrHuman, "hash must produce 64 bytes, got %d", len(digest))
	}

	s, err := edwards25519.NewScalar().SetBytesWithClamping(digest[:32])
	if err != nil {
		return nil, errors.Wrap(errors.ErrSigning, err.Error())
	}
	public := new(edwards25519.Point).ScalarBaseMult(s).Bytes()
	return &expandedKey{
		scalar: s,
		prefix: digest[32:],
		public: public,
	}, nil
}

func (k *expandedKey) sign(newHash func() hash.Hash, message []byte) ([]byte, error) {
	mh := newHash()
	mh.Write(k.prefix)
	mh.Write(message)
	r, err := edwards25519.NewScalar().SetUniformBytes(mh.Sum(nil))
	if err != nil {
		return nil, errors.Wrap(errors.ErrSigning, err.Error())
	}
	encodedR := new(edwards25519.Point).ScalarBaseMult(r).Bytes()

	kh := newHash()
	kh.Write(encodedR)
	kh.Write(k.public)
	kh.Write(message)
	challenge, err := edwards25519.NewScalar().SetUniformBytes(kh.Sum(nil))
	if err != nil {
		return nil, errors.Wrap(errors.ErrSigning, err.Error())
	}

	s := edwards25519.NewScalar().MultiplyAdd(challenge, k.scalar, r)

	signature := make([]byte, 0, SignatureSize)
	signature = append(signature, encodedR...)
	signature = append(signature, s.Bytes()...)
	return signature, nil
}

// verify reports whether signature is a valid signature of message by
// publicKey, using Ed25519 instantiated with the given hash.
func verify(newHash func() hash.Hash, publicKey, message, signature []byte) bool {
	if len(publicKey) != PublicKeySize || len(signature) != SignatureSize {
		return false
	}
	A, err := new(edwards25519.Point).SetBytes(publicKey)
	if err != nil {
		return false
	}

	kh := newHash()
	kh.Write(signature[:32])
	kh.Write(publicKey)
	kh.Write(message)
	challenge, err := edwards25519.NewScalar().SetUniformBytes(kh.Sum(nil))
	if err != nil {
		return false
	}

	S, err := edwards25519.NewScalar().SetCanonicalBytes(signature[32:])
	if err != nil {
		return false
	}

	// [S]B = R + [k]A  <=>  [k](-A) + [S]B = R
	minusA := new(edwards25519.Point).Negate(A)
	R := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(challenge, minusA, S)
	return bytes.Equal(signature[:32], R.Bytes())
}
