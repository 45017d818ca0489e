/*
Package checksum implements the apostille checksum encoding shared by the
public and the private apostille.

A checksum is written as

	<version><magic><hash type><digest>

where version is a single byte (0xFE), magic is the ASCII "NTY" and hash type
is the algorithm tag, with the high bit set when the digest was signed. All
bytes are hex encoded, so the header is 10 characters long and on its own
serves as the abbreviated checksum of the content.
*/
package checksum

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/iov-one/apostille/crypto"
	"github.com/iov-one/apostille/errors"
	"github.com/iov-one/apostille/hash"
)

const (
	// Version is the checksum format version.
	Version byte = 0xFE

	// SignedFlag is set on the hash type when the digest is a signature of
	// the content hash rather than the hash itself.
	SignedFlag byte = 0x80

	// ShortLength is the length of the abbreviated checksum.
	ShortLength = 10

	// magic is the hex encoded "NTY" marker.
	magic = "4e5459"

	signedDigestLength = 2 * crypto.SignatureSize
)

// Checksum is the decoded form of an apostille checksum.
type Checksum struct {
	Version  byte
	HashType byte
	Digest   string
}

// New computes the unsigned checksum of content.
func New(alg hash.Algorithm, content []byte) (Checksum, error) {
	digest, err := alg.Digest(content)
	if err != nil {
		return Checksum{}, err
	}
	return Checksum{
		Version:  Version,
		HashType: alg.Tag(),
		Digest:   digest,
	}, nil
}

// NewSigned computes the checksum of content whose digest is the signature
// of the content hash by the signer.
func NewSigned(alg hash.Algorithm, content []byte, signer crypto.Signer) (Checksum, error) {
	digest, err := alg.Digest(content)
	if err != nil {
		return Checksum{}, err
	}
	sig, err := crypto.SignDigest(signer, digest)
	if err != nil {
		return Checksum{}, err
	}
	return Checksum{
		Version:  Version,
		HashType: alg.Tag() | SignedFlag,
		Digest:   hex.EncodeToString(sig),
	}, nil
}

// Signed returns true if the digest is a signature.
func (c Checksum) Signed() bool {
	return c.HashType&SignedFlag != 0
}

// Algorithm returns the hash algorithm the content was hashed with.
func (c Checksum) Algorithm() (hash.Algorithm, error) {
	return hash.FromTag(c.HashType &^ SignedFlag)
}

// Validate returns an error if this checksum cannot be encoded into a
// well formed checksum string.
func (c Checksum) Validate() error {
	if c.Version != Version {
		return errors.Field("Version", errors.ErrInvalidInput, "unsupported version %#x", c.Version)
	}
	alg, err := c.Algorithm()
	if err != nil {
		return errors.Field("HashType", err, "")
	}
	want := alg.Size()
	if c.Signed() {
		want = signedDigestLength
	}
	if len(c.Digest) != want {
		return errors.Field("Digest", errors.ErrInvalidInput, "want %d hex characters for %s, got %d", want, alg, len(c.Digest))
	}
	if _, err := hex.DecodeString(c.Digest); err != nil {
		return errors.Field("Digest", errors.ErrInvalidInput, "not hex encoded")
	}
	return nil
}

// String returns the full checksum string.
func (c Checksum) String() string {
	return Encode(c.Version, c.HashType, c.Digest)
}

// Short returns the abbreviated checksum, which is the header of the full
// checksum string.
func (c Checksum) Short() string {
	return c.String()[:ShortLength]
}

// Encode returns the checksum string of the given parts. It does not
// validate the input, use Checksum.Validate for that.
func Encode(version, hashType byte, digest string) string {
	return fmt.Sprintf("%02x%s%02x%s", version, magic, hashType, digest)
}

// Decode parses a checksum string. It is the exact inverse of Encode for
// every well formed checksum.
func Decode(s string) (Checksum, error) {
	if len(s) < ShortLength {
		return Checksum{}, errors.Wrapf(errors.ErrInvalidInput, "checksum too short: %d characters", len(s))
	}
	header, err := hex.DecodeString(s[:ShortLength])
	if err != nil {
		return Checksum{}, errors.Wrap(errors.ErrInvalidInput, "checksum header is not hex encoded")
	}
	if !strings.EqualFold(s[2:8], magic) {
		return Checksum{}, errors.Wrapf(errors.ErrInvalidInput, "invalid checksum marker %q", s[2:8])
	}
	c := Checksum{
		Version:  header[0],
		HashType: header[4],
		Digest:   s[ShortLength:],
	}
	if err := c.Validate(); err != nil {
		return Checksum{}, err
	}
	return c, nil
}

// Verify reports whether this checksum was computed for content. Signed
// checksums are verified against the public key of the signer on the given
// network.
func (c Checksum) Verify(content []byte, network crypto.NetworkType, publicKey []byte) bool {
	alg, err := c.Algorithm()
	if err != nil {
		return false
	}
	digest, err := alg.Digest(content)
	if err != nil {
		return false
	}
	if !c.Signed() {
		return strings.EqualFold(digest, c.Digest)
	}
	sig, err := hex.DecodeString(c.Digest)
	if err != nil {
		return false
	}
	return crypto.VerifyDigest(network, publicKey, digest, sig)
}
