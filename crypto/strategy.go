package crypto

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Strategy is the signing scheme generation used by a network. The ledger
// cryptography changed between protocol generations and both must be
// supported side by side.
type Strategy byte

const (
	// Legacy is the first generation scheme: Ed25519 over Keccak-512, with
	// the private key bytes stored in reversed order. Addresses are hashed
	// with Keccak-256.
	Legacy Strategy = iota + 1
	// Native is the scheme of the current generation: Ed25519 over NIST
	// SHA3-512 with the private key used as is. Addresses are hashed with
	// SHA3-256.
	Native
)

// StrategyFor returns the signing strategy used on the given network. The
// choice is made by the network type alone.
func StrategyFor(n NetworkType) Strategy {
	switch n {
	case MainNet, TestNet:
		return Legacy
	default:
		return Native
	}
}

func (s Strategy) String() string {
	switch s {
	case Legacy:
		return "legacy"
	case Native:
		return "native"
	default:
		return "unknown"
	}
}

// signatureHash returns the 512 bit hash function Ed25519 is instantiated
// with.
func (s Strategy) signatureHash() func() hash.Hash {
	if s == Legacy {
		return sha3.NewLegacyKeccak512
	}
	return sha3.New512
}

// addressHash returns the 256 bit hash function used to derive an address
// from a public key.
func (s Strategy) addressHash() func() hash.Hash {
	if s == Legacy {
		return sha3.NewLegacyKeccak256
	}
	return sha3.New256
}

// seed returns the Ed25519 seed for the given private key bytes.
func (s Strategy) seed(privateKey []byte) []byte {
	seed := make([]byte, len(privateKey))
	copy(seed, privateKey)
	if s == Legacy {
		for i, j := 0, len(seed)-1; i < j; i, j = i+1, j-1 {
			seed[i], seed[j] = seed[j], seed[i]
		}
	}
	return seed
}

// NewHash256 returns the 256 bit hash function of this strategy. It is the
// function used for addresses and transaction hashes.
func (s Strategy) NewHash256() hash.Hash {
	return s.addressHash()()
}
