/*
Package hash implements the closed set of digest algorithms an apostille
checksum can be computed with.

The KECCAK256 and KECCAK512 algorithms are the original Keccak submissions,
referred to as "SHA3-256" and "SHA3-512" by the NEM tooling. They differ from
the NIST standardized SHA-3 functions by the padding byte and must not be
swapped for them, or produced checksums will not be recognized.
*/
package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	stdhash "hash"
	"strings"

	"github.com/iov-one/apostille/errors"
	"golang.org/x/crypto/sha3"
)

// Algorithm identifies one of the supported digest functions.
type Algorithm byte

const (
	MD5 Algorithm = iota + 1
	SHA1
	SHA256
	KECCAK256
	KECCAK512
)

// Algorithms lists all supported algorithms in declaration order.
var Algorithms = []Algorithm{MD5, SHA1, SHA256, KECCAK256, KECCAK512}

// Validate returns an error if this is not one of the declared algorithms.
func (a Algorithm) Validate() error {
	switch a {
	case MD5, SHA1, SHA256, KECCAK256, KECCAK512:
		return nil
	default:
		return errors.Wrapf(errors.ErrInvalidInput, "unknown hash algorithm %d", byte(a))
	}
}

// String returns the name used by the NEM tooling for this algorithm.
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "MD5"
	case SHA1:
		return "SHA1"
	case SHA256:
		return "SHA256"
	case KECCAK256:
		return "SHA3-256"
	case KECCAK512:
		return "SHA3-512"
	default:
		return "UNKNOWN"
	}
}

// Size returns the length of the hex encoded digest.
func (a Algorithm) Size() int {
	switch a {
	case MD5:
		return md5.Size * 2
	case SHA1:
		return sha1.Size * 2
	case SHA256, KECCAK256:
		return 64
	case KECCAK512:
		return 128
	default:
		return 0
	}
}

// Tag returns the hash type identifier that is written into a checksum.
func (a Algorithm) Tag() byte {
	switch a {
	case MD5:
		return 0x01
	case SHA1:
		return 0x02
	case SHA256:
		return 0x03
	case KECCAK256:
		return 0x08
	case KECCAK512:
		return 0x09
	default:
		return 0
	}
}

// FromTag returns the algorithm that the given checksum hash type identifier
// is declared for. The signed flag must be cleared by the caller.
func FromTag(tag byte) (Algorithm, error) {
	for _, a := range Algorithms {
		if a.Tag() == tag {
			return a, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrInvalidInput, "unknown hash type tag %#x", tag)
}

// ParseAlgorithm returns the algorithm for the given name. Both the NEM
// naming (SHA3-256) and the explicit naming (KECCAK256) are accepted, case
// insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "MD5":
		return MD5, nil
	case "SHA1", "SHA-1":
		return SHA1, nil
	case "SHA256", "SHA-256":
		return SHA256, nil
	case "SHA3-256", "KECCAK256", "KECCAK-256":
		return KECCAK256, nil
	case "SHA3-512", "KECCAK512", "KECCAK-512":
		return KECCAK512, nil
	default:
		return 0, errors.Wrapf(errors.ErrInvalidInput, "unknown hash algorithm %q", name)
	}
}

// New returns a fresh hash.Hash state for this algorithm.
func (a Algorithm) New() (stdhash.Hash, error) {
	switch a {
	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case KECCAK256:
		return sha3.NewLegacyKeccak256(), nil
	case KECCAK512:
		return sha3.NewLegacyKeccak512(), nil
	default:
		return nil, a.Validate()
	}
}

// Digest returns the lower case hex encoded digest of data.
func (a Algorithm) Digest(data []byte) (string, error) {
	h, err := a.New()
	if err != nil {
		return "", err
	}
	// Write on a hash.Hash never returns an error.
	_, _ = h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Sum returns the raw digest of data.
func (a Algorithm) Sum(data []byte) ([]byte, error) {
	h, err := a.New()
	if err != nil {
		return nil, err
	}
	_, _ = h.Write(data)
	return h.Sum(nil), nil
}

// MarshalText implements encoding.TextMarshaler so that algorithms are
// written by name in configuration files.
func (a Algorithm) MarshalText() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(raw []byte) error {
	alg, err := ParseAlgorithm(string(raw))
	if err != nil {
		return err
	}
	*a = alg
	return nil
}

// SHA256Hex returns the lower case hex encoded SHA256 digest of data. This is
// the fixed algorithm used to hash an apostille seed.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
