package crypto

import (
	"encoding/hex"

	"github.com/iov-one/apostille/errors"
)

// PublicAccount is the public part of an account: what the others need to
// know to send it a transaction or make it a cosignatory.
type PublicAccount struct {
	PublicKey string  `json:"publicKey"`
	Address   Address `json:"address"`
}

// NewPublicAccount returns the public account of the given hex encoded public
// key on a network.
func NewPublicAccount(publicKeyHex string, network NetworkType) (PublicAccount, error) {
	raw, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return PublicAccount{}, errors.Wrapf(errors.ErrInvalidInput, "malformed public key: %s", err)
	}
	address, err := NewAddress(raw, network)
	if err != nil {
		return PublicAccount{}, err
	}
	return PublicAccount{
		PublicKey: encodeHex(raw),
		Address:   address,
	}, nil
}

// PublicKeyBytes returns the decoded public key.
func (p PublicAccount) PublicKeyBytes() ([]byte, error) {
	raw, err := hex.DecodeString(p.PublicKey)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "malformed public key: %s", err)
	}
	if len(raw) != PublicKeySize {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "invalid public key length %d", len(raw))
	}
	return raw, nil
}

// Validate returns an error if the public key is malformed or does not match
// the address.
func (p PublicAccount) Validate() error {
	raw, err := p.PublicKeyBytes()
	if err != nil {
		return errors.Field("PublicKey", err, "")
	}
	want, err := NewAddress(raw, p.Address.NetworkType())
	if err != nil {
		return errors.Field("Address", err, "")
	}
	if want != p.Address {
		return errors.Field("Address", errors.ErrInvalidInput, "address does not belong to the public key")
	}
	return nil
}
