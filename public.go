package apostille

import (
	"time"

	"github.com/lightningnetwork/lnd/clock"

	"github.com/iov-one/apostille/checksum"
	"github.com/iov-one/apostille/crypto"
	"github.com/iov-one/apostille/errors"
	"github.com/iov-one/apostille/hash"
	"github.com/iov-one/apostille/tx"
)

// PublicApostille notarizes a file by sending its checksum to the sink
// address of a network.
type PublicApostille struct {
	Filename string
	Sink     crypto.Address

	checksum *checksum.Checksum
}

// NewPublicApostille returns a public apostille of the file. The sink
// address decides the network the apostille is published on.
func NewPublicApostille(filename string, sink crypto.Address) (*PublicApostille, error) {
	var errs error
	if filename == "" {
		errs = errors.AppendField(errs, "Filename", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Sink", sink.Validate())
	if errs != nil {
		return nil, errs
	}
	return &PublicApostille{Filename: filename, Sink: sink}, nil
}

// Update computes the checksum of the file content.
func (p *PublicApostille) Update(content []byte, alg hash.Algorithm) error {
	c, err := checksum.New(alg, content)
	if err != nil {
		return err
	}
	p.checksum = &c
	return nil
}

// UpdateSigned computes the checksum of the file content signed by the
// owner of the file.
func (p *PublicApostille) UpdateSigned(content []byte, alg hash.Algorithm, owner crypto.Signer) error {
	if owner.NetworkType() != p.Sink.NetworkType() {
		return errors.Wrapf(errors.ErrInvalidInput,
			"owner network %s does not match sink network %s", owner.NetworkType(), p.Sink.NetworkType())
	}
	c, err := checksum.NewSigned(alg, content, owner)
	if err != nil {
		return err
	}
	p.checksum = &c
	return nil
}

// Checksum returns the checksum computed by the last update. ErrInvalidState
// is returned if the apostille was never updated.
func (p *PublicApostille) Checksum() (checksum.Checksum, error) {
	if p.checksum == nil {
		return checksum.Checksum{}, errors.Wrap(errors.ErrInvalidState, "apostille not updated")
	}
	return *p.checksum, nil
}

// Transaction returns the transfer sending the full checksum to the sink.
func (p *PublicApostille) Transaction(c clock.Clock, window time.Duration) (*tx.Transfer, error) {
	sum, err := p.Checksum()
	if err != nil {
		return nil, err
	}
	return &tx.Transfer{
		Meta: tx.Header{
			Network:  p.Sink.NetworkType(),
			Deadline: tx.NewDeadline(c, window),
		},
		Recipient: p.Sink,
		Message:   []byte(sum.String()),
	}, nil
}
