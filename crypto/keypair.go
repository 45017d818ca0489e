package crypto

import (
	"encoding/hex"
	"strings"

	"github.com/iov-one/apostille/errors"
)

// Signer is the functionality we use from an account that holds a private
// key.
type Signer interface {
	PrivateKey() string
	PublicKey() string
	Address() Address
	NetworkType() NetworkType
	Sign(message []byte) ([]byte, error)
}

var _ Signer = (*KeyPair)(nil)

// KeyPair is an account with its private key, bound to a network. The
// signing strategy is fixed by the network when the key pair is created.
type KeyPair struct {
	privateKey []byte
	network    NetworkType
	strategy   Strategy
	expanded   *expandedKey
	address    Address
}

// NewKeyPair creates a key pair from a hex encoded private key. Malformed key
// material is reported as a signing failure.
//
// On legacy networks a 66 characters long key with a leading "00" is
// accepted as well, as produced by older wallets.
func NewKeyPair(privateKeyHex string, network NetworkType) (*KeyPair, error) {
	if err := network.Validate(); err != nil {
		return nil, err
	}
	strategy := StrategyFor(network)

	raw := strings.TrimSpace(privateKeyHex)
	if strategy == Legacy && len(raw) == 2*PrivateKeySize+2 && strings.HasPrefix(raw, "00") {
		raw = raw[2:]
	}
	privateKey, err := hex.DecodeString(raw)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrSigning, "malformed private key: %s", err)
	}
	if len(privateKey) != PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrSigning, "invalid private key length %d", len(privateKey))
	}

	expanded, err := expand(strategy.signatureHash(), strategy.seed(privateKey))
	if err != nil {
		return nil, err
	}
	address, err := NewAddress(expanded.public, network)
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		privateKey: privateKey,
		network:    network,
		strategy:   strategy,
		expanded:   expanded,
		address:    address,
	}, nil
}

// PrivateKey returns the upper case hex encoded private key.
func (k *KeyPair) PrivateKey() string {
	return encodeHex(k.privateKey)
}

// PublicKey returns the upper case hex encoded public key.
func (k *KeyPair) PublicKey() string {
	return encodeHex(k.expanded.public)
}

// PublicKeyBytes returns a copy of the raw public key.
func (k *KeyPair) PublicKeyBytes() []byte {
	b := make([]byte, PublicKeySize)
	copy(b, k.expanded.public)
	return b
}

// Address returns the address of this account.
func (k *KeyPair) Address() Address {
	return k.address
}

// NetworkType returns the network this key pair is bound to.
func (k *KeyPair) NetworkType() NetworkType {
	return k.network
}

// Strategy returns the signing strategy of this key pair.
func (k *KeyPair) Strategy() Strategy {
	return k.strategy
}

// Sign returns a 64 bytes signature of message.
func (k *KeyPair) Sign(message []byte) ([]byte, error) {
	return k.expanded.sign(k.strategy.signatureHash(), message)
}

// Verify reports whether signature is a valid signature of message by this
// key pair.
func (k *KeyPair) Verify(message, signature []byte) bool {
	return verify(k.strategy.signatureHash(), k.expanded.public, message, signature)
}

// PublicAccount returns the public part of this account.
func (k *KeyPair) PublicAccount() PublicAccount {
	return PublicAccount{
		PublicKey: k.PublicKey(),
		Address:   k.address,
	}
}

// DeriveAccount computes the public key and the address that belong to the
// given private key on a network.
func DeriveAccount(privateKeyHex string, network NetworkType) (PublicAccount, error) {
	kp, err := NewKeyPair(privateKeyHex, network)
	if err != nil {
		return PublicAccount{}, err
	}
	return kp.PublicAccount(), nil
}

// Verify reports whether signature is a valid signature of message by the
// given public key, using the strategy of the network.
func Verify(network NetworkType, publicKey, message, signature []byte) bool {
	return verify(StrategyFor(network).signatureHash(), publicKey, message, signature)
}

func encodeHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
