/*
Package tx implements the transactions an apostille needs to hand over to a
ledger client: the multisig modification converting an apostille account into
a multisig account and the transfer carrying a public apostille checksum.

Transactions are serialized into the fixed binary layout of the ledger

	size u32 | signature [64] | signer [32] | version u16 | type u16
	| fee u64 | deadline u64 | body

All integers are little endian. The version is the network type in the high
byte and the transaction version in the low byte.
*/
package tx

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/iov-one/apostille/crypto"
	"github.com/iov-one/apostille/errors"
)

// Type identifies the kind of a transaction.
type Type uint16

const (
	TypeTransfer              Type = 0x4154
	TypeModifyMultisigAccount Type = 0x4155
)

func (t Type) String() string {
	switch t {
	case TypeTransfer:
		return "transfer"
	case TypeModifyMultisigAccount:
		return "modify_multisig_account"
	default:
		return fmt.Sprintf("Type(%#x)", uint16(t))
	}
}

const (
	sizeOffset      = 0
	signatureOffset = 4
	signerOffset    = signatureOffset + crypto.SignatureSize
	versionOffset   = signerOffset + crypto.PublicKeySize
	// headerSize is the size of the common part of every transaction.
	headerSize = versionOffset + 2 + 2 + 8 + 8
)

// Transaction is implemented by every transaction that can be signed.
type Transaction interface {
	// Type returns the transaction type identifier.
	Type() Type
	// Version returns the version of the transaction type layout.
	Version() uint8
	// Header returns the fields common to all transactions.
	Header() Header
	// Validate returns an error if the transaction cannot be serialized.
	Validate() error
	// marshalBody writes the transaction specific part.
	marshalBody(buf *bytes.Buffer) error
}

// Header contains the fields common to all transactions.
type Header struct {
	Network  crypto.NetworkType
	Deadline Deadline
	Fee      uint64
}

// Validate returns an error if the header is not complete.
func (h Header) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Network", h.Network.Validate())
	if h.Deadline.IsZero() {
		errs = errors.AppendField(errs, "Deadline", errors.ErrEmpty)
	}
	return errs
}

// Marshal returns the unsigned binary representation of the transaction. The
// signature and signer fields are zeroed.
func Marshal(t Transaction) ([]byte, error) {
	return marshal(t, make([]byte, crypto.PublicKeySize))
}

func marshal(t Transaction, signer []byte) ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s transaction", t.Type())
	}
	h := t.Header()

	var buf bytes.Buffer
	// Size is set once the whole transaction is written.
	buf.Write(make([]byte, 4))
	buf.Write(make([]byte, crypto.SignatureSize))
	buf.Write(signer)
	binary.Write(&buf, binary.LittleEndian, uint16(h.Network)<<8|uint16(t.Version()))
	binary.Write(&buf, binary.LittleEndian, uint16(t.Type()))
	binary.Write(&buf, binary.LittleEndian, h.Fee)
	binary.Write(&buf, binary.LittleEndian, h.Deadline.Timestamp())
	if err := t.marshalBody(&buf); err != nil {
		return nil, errors.Wrapf(err, "marshal %s body", t.Type())
	}

	raw := buf.Bytes()
	binary.LittleEndian.PutUint32(raw[sizeOffset:], uint32(len(raw)))
	return raw, nil
}

// SignedTransaction is a serialized and signed transaction, ready to be
// announced to the network by a ledger client.
type SignedTransaction struct {
	// Payload is the upper case hex encoded binary transaction.
	Payload string `json:"payload"`
	// Hash is the upper case hex encoded transaction hash.
	Hash string `json:"hash"`
	// Signer is the public key of the signing account.
	Signer      string             `json:"signer"`
	Type        Type               `json:"type"`
	NetworkType crypto.NetworkType `json:"networkType"`
}

// Sign serializes the transaction and signs it with the given account. The
// signature covers everything following the signer field.
//
// Signing is deterministic; any failure is returned as is and must not be
// retried.
func Sign(t Transaction, s crypto.Signer) (*SignedTransaction, error) {
	if s.NetworkType() != t.Header().Network {
		return nil, errors.Wrapf(errors.ErrInvalidInput,
			"signer network %s does not match transaction network %s", s.NetworkType(), t.Header().Network)
	}
	signer, err := decodeHex(s.PublicKey())
	if err != nil {
		return nil, errors.Wrap(errors.ErrSigning, "malformed signer public key")
	}
	raw, err := marshal(t, signer)
	if err != nil {
		return nil, err
	}

	signature, err := s.Sign(raw[versionOffset:])
	if err != nil {
		return nil, errors.Wrapf(err, "sign %s", t.Type())
	}
	if len(signature) != crypto.SignatureSize {
		return nil, errors.Wrapf(errors.ErrSigning, "invalid signature length %d", len(signature))
	}
	copy(raw[signatureOffset:], signature)

	return &SignedTransaction{
		Payload:     encodeHex(raw),
		Hash:        encodeHex(transactionHash(crypto.StrategyFor(s.NetworkType()), raw)),
		Signer:      s.PublicKey(),
		Type:        t.Type(),
		NetworkType: s.NetworkType(),
	}, nil
}

// transactionHash is the hash of the R part of the signature, the signer and
// the signed data.
func transactionHash(strategy crypto.Strategy, raw []byte) []byte {
	h := strategy.NewHash256()
	h.Write(raw[signatureOffset : signatureOffset+32])
	h.Write(raw[signerOffset:])
	return h.Sum(nil)
}

// VerifySignature reports whether the serialized transaction carries a valid
// signature of its signer.
func VerifySignature(payload []byte) bool {
	if len(payload) < headerSize || int(binary.LittleEndian.Uint32(payload)) != len(payload) {
		return false
	}
	network := crypto.NetworkType(payload[versionOffset+1])
	return crypto.Verify(network,
		payload[signerOffset:versionOffset],
		payload[versionOffset:],
		payload[signatureOffset:signerOffset])
}
