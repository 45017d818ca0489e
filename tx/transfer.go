package tx

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/iov-one/apostille/crypto"
	"github.com/iov-one/apostille/errors"
)

const transferVersion = 3

// plainMessage is the message type of an unencrypted message.
const plainMessage = 0x00

// Transfer sends a plain message to the recipient. No mosaics are
// transferred.
type Transfer struct {
	Meta      Header
	Recipient crypto.Address
	Message   []byte
}

var _ Transaction = (*Transfer)(nil)

func (*Transfer) Type() Type { return TypeTransfer }

func (*Transfer) Version() uint8 { return transferVersion }

func (t *Transfer) Header() Header { return t.Meta }

func (t *Transfer) Validate() error {
	errs := t.Meta.Validate()
	if err := t.Recipient.Validate(); err != nil {
		errs = errors.AppendField(errs, "Recipient", err)
	} else if t.Recipient.NetworkType() != t.Meta.Network {
		errs = errors.AppendField(errs, "Recipient",
			errors.Wrapf(errors.ErrInvalidInput, "recipient of network %s", t.Recipient.NetworkType()))
	}
	// The message size includes the message type byte.
	if len(t.Message)+1 > math.MaxUint16 {
		errs = errors.AppendField(errs, "Message",
			errors.Wrapf(errors.ErrInvalidInput, "message too long: %d bytes", len(t.Message)))
	}
	return errs
}

func (t *Transfer) marshalBody(buf *bytes.Buffer) error {
	buf.Write(t.Recipient[:])
	binary.Write(buf, binary.LittleEndian, uint16(len(t.Message)+1))
	buf.WriteByte(0) // mosaics count
	buf.WriteByte(plainMessage)
	buf.Write(t.Message)
	return nil
}
