package tx

import (
	"bytes"
	"fmt"
	"math"

	"github.com/iov-one/apostille/crypto"
	"github.com/iov-one/apostille/errors"
)

const modifyMultisigVersion = 3

// ModificationType tells whether a cosignatory joins or leaves the
// multisig account.
type ModificationType uint8

const (
	Add    ModificationType = 0
	Remove ModificationType = 1
)

func (m ModificationType) String() string {
	switch m {
	case Add:
		return "add"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("ModificationType(%d)", uint8(m))
	}
}

// CosignatoryModification changes the membership of a single cosignatory.
type CosignatoryModification struct {
	Type        ModificationType     `json:"type"`
	Cosignatory crypto.PublicAccount `json:"cosignatory"`
}

// ModifyMultisigAccount converts the signing account into a multisig account
// or changes the cosignatories of an existing one.
type ModifyMultisigAccount struct {
	Meta Header
	// MinApprovalDelta is the change of the number of signatures required
	// to approve a transaction.
	MinApprovalDelta int8
	// MinRemovalDelta is the change of the number of signatures required
	// to remove a cosignatory.
	MinRemovalDelta int8
	// Modifications are serialized in the given order.
	Modifications []CosignatoryModification
}

var _ Transaction = (*ModifyMultisigAccount)(nil)

func (*ModifyMultisigAccount) Type() Type { return TypeModifyMultisigAccount }

func (*ModifyMultisigAccount) Version() uint8 { return modifyMultisigVersion }

func (m *ModifyMultisigAccount) Header() Header { return m.Meta }

func (m *ModifyMultisigAccount) Validate() error {
	errs := m.Meta.Validate()
	if len(m.Modifications) > math.MaxUint8 {
		errs = errors.AppendField(errs, "Modifications",
			errors.Wrapf(errors.ErrInvalidInput, "too many modifications: %d", len(m.Modifications)))
	}
	for i, mod := range m.Modifications {
		if mod.Type != Add && mod.Type != Remove {
			errs = errors.AppendField(errs, fmt.Sprintf("Modifications.%d.Type", i), errors.ErrInvalidType)
		}
		if _, err := mod.Cosignatory.PublicKeyBytes(); err != nil {
			errs = errors.AppendField(errs, fmt.Sprintf("Modifications.%d.Cosignatory", i), err)
		}
	}
	return errs
}

func (m *ModifyMultisigAccount) marshalBody(buf *bytes.Buffer) error {
	buf.WriteByte(byte(m.MinRemovalDelta))
	buf.WriteByte(byte(m.MinApprovalDelta))
	buf.WriteByte(byte(len(m.Modifications)))
	for _, mod := range m.Modifications {
		key, err := mod.Cosignatory.PublicKeyBytes()
		if err != nil {
			return err
		}
		buf.WriteByte(byte(mod.Type))
		buf.Write(key)
	}
	return nil
}
