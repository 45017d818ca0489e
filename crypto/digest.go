package crypto

import (
	"encoding/hex"

	"github.com/iov-one/apostille/errors"
)

// DigestMessage returns the bytes that are signed when a hex encoded digest
// is signed on the given network.
//
// Legacy wallets decode the hex string and sign the raw digest, while native
// accounts sign the UTF-8 bytes of the hex string itself.
func DigestMessage(network NetworkType, digestHex string) ([]byte, error) {
	if StrategyFor(network) == Native {
		return []byte(digestHex), nil
	}
	raw, err := hex.DecodeString(digestHex)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "malformed digest: %s", err)
	}
	return raw, nil
}

// SignDigest signs a hex encoded digest with the signer, encoding the digest
// the way the signer network expects it.
func SignDigest(s Signer, digestHex string) ([]byte, error) {
	msg, err := DigestMessage(s.NetworkType(), digestHex)
	if err != nil {
		return nil, err
	}
	sig, err := s.Sign(msg)
	if err != nil {
		return nil, errors.Wrap(err, "sign digest")
	}
	return sig, nil
}

// VerifyDigest reports whether signature is a valid signature of the hex
// encoded digest by the public key on the given network.
func VerifyDigest(network NetworkType, publicKey []byte, digestHex string, signature []byte) bool {
	msg, err := DigestMessage(network, digestHex)
	if err != nil {
		return false
	}
	return Verify(network, publicKey, msg, signature)
}
