package crypto

import (
	"bytes"
	"encoding/base32"
	"strings"

	"github.com/iov-one/apostille/errors"
	"golang.org/x/crypto/ripemd160"
)

const (
	// AddressSize is the size, in bytes, of a decoded address: network
	// byte, 20 bytes of public key hash and 4 bytes of checksum.
	AddressSize = 25
	// addressChecksumSize is the number of trailing checksum bytes.
	addressChecksumSize = 4
)

// Address is a decoded NEM address.
type Address [AddressSize]byte

// NewAddress derives the address of the given public key on a network. The
// hash functions are chosen by the network signing strategy.
func NewAddress(publicKey []byte, network NetworkType) (Address, error) {
	var a Address
	if len(publicKey) != PublicKeySize {
		return a, errors.Wrapf(errors.ErrInvalidInput, "invalid public key length %d", len(publicKey))
	}
	if err := network.Validate(); err != nil {
		return a, err
	}
	strategy := StrategyFor(network)

	h := strategy.addressHash()()
	h.Write(publicKey)
	r := ripemd160.New()
	r.Write(h.Sum(nil))

	a[0] = byte(network)
	copy(a[1:21], r.Sum(nil))
	copy(a[21:], addressChecksum(strategy, a[:21]))
	return a, nil
}

func addressChecksum(strategy Strategy, versionedHash []byte) []byte {
	h := strategy.addressHash()()
	h.Write(versionedHash)
	return h.Sum(nil)[:addressChecksumSize]
}

// ParseAddress decodes the base32 representation of an address. Dashes used
// by the pretty format are ignored. The checksum is validated.
func ParseAddress(raw string) (Address, error) {
	var a Address
	s := strings.ToUpper(strings.Replace(strings.TrimSpace(raw), "-", "", -1))
	b, err := base32.StdEncoding.DecodeString(s)
	if err != nil {
		return a, errors.Wrapf(errors.ErrInvalidInput, "cannot decode address %q: %s", raw, err)
	}
	if len(b) != AddressSize {
		return a, errors.Wrapf(errors.ErrInvalidInput, "invalid address length %d", len(b))
	}
	copy(a[:], b)
	if err := a.Validate(); err != nil {
		return a, errors.Wrapf(err, "address %q", raw)
	}
	return a, nil
}

// MustParseAddress is like ParseAddress but panics on error. Use it only
// for declaring constants.
func MustParseAddress(raw string) Address {
	a, err := ParseAddress(raw)
	if err != nil {
		panic(err)
	}
	return a
}

// Validate returns an error if the network is unknown or the checksum does
// not match.
func (a Address) Validate() error {
	network := a.NetworkType()
	if err := network.Validate(); err != nil {
		return err
	}
	want := addressChecksum(StrategyFor(network), a[:21])
	if !bytes.Equal(want, a[21:]) {
		return errors.Wrap(errors.ErrInvalidInput, "address checksum mismatch")
	}
	return nil
}

// NetworkType returns the network this address belongs to.
func (a Address) NetworkType() NetworkType {
	return NetworkType(a[0])
}

// String returns the 40 characters long base32 representation.
func (a Address) String() string {
	return base32.StdEncoding.EncodeToString(a[:])
}

// IsZero returns true if this address was never set.
func (a Address) IsZero() bool {
	return a == Address{}
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(raw []byte) error {
	parsed, err := ParseAddress(string(raw))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
