package apostille

import (
	"encoding/hex"
	"math"
	"time"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/apostille/crypto"
	"github.com/iov-one/apostille/errors"
	"github.com/iov-one/apostille/hash"
	"github.com/iov-one/apostille/tx"
)

// Apostille is a private apostille: an account derived from a seed and a
// generator account. It is immutable.
type Apostille struct {
	hdAccount *crypto.KeyPair

	logger log.Logger
	clock  clock.Clock
	window time.Duration
	fee    uint64
}

// Option configures how an apostille builds its transactions.
type Option func(*Apostille)

// WithLogger sets the logger used to trace derivation. By default nothing is
// logged, and a nil logger keeps it that way.
func WithLogger(l log.Logger) Option {
	return func(a *Apostille) {
		if l == nil {
			a.logger = log.NewNopLogger()
			return
		}
		a.logger = l.With("module", "apostille")
	}
}

// WithClock sets the clock used to compute transaction deadlines.
func WithClock(c clock.Clock) Option {
	return func(a *Apostille) {
		a.clock = c
	}
}

// WithDeadline sets how long a transaction built by the apostille is valid.
func WithDeadline(window time.Duration) Option {
	return func(a *Apostille) {
		a.window = window
	}
}

// WithFee sets the fee of the transactions built by the apostille.
func WithFee(fee uint64) Option {
	return func(a *Apostille) {
		a.fee = fee
	}
}

// Init derives the apostille account of the seed. The SHA256 digest of the
// seed is signed by the generator and the signature is normalized into the
// private key of the derived account, which belongs to the network of the
// generator.
//
// An empty seed is valid. Signing failures of the generator are returned
// wrapped but otherwise unchanged.
func Init(seed []byte, generator crypto.Signer, opts ...Option) (*Apostille, error) {
	a := &Apostille{
		logger: log.NewNopLogger(),
		clock:  clock.NewDefaultClock(),
		window: tx.DefaultDeadline,
	}
	for _, opt := range opts {
		opt(a)
	}

	network := generator.NetworkType()
	if err := network.Validate(); err != nil {
		return nil, errors.Wrap(err, "generator network")
	}

	hashSeed := hash.SHA256Hex(seed)
	signature, err := crypto.SignDigest(generator, hashSeed)
	if err != nil {
		return nil, errors.Wrap(err, "sign seed")
	}
	privateKey := NormalizePrivateKey(hex.EncodeToString(signature))

	hdAccount, err := crypto.NewKeyPair(privateKey, network)
	if err != nil {
		return nil, errors.Wrap(err, "derive account")
	}
	a.hdAccount = hdAccount

	a.logger.Debug("apostille derived",
		"network", network,
		"strategy", crypto.StrategyFor(network),
		"address", hdAccount.Address())
	return a, nil
}

// HDAccount returns the derived account, including its private key.
func (a *Apostille) HDAccount() *crypto.KeyPair {
	return a.hdAccount
}

// DerivedAccount returns the derived key material.
func (a *Apostille) DerivedAccount() DerivedAccount {
	return DerivedAccount{
		PrivateKey:  a.hdAccount.PrivateKey(),
		PublicKey:   a.hdAccount.PublicKey(),
		Address:     a.hdAccount.Address(),
		NetworkType: a.hdAccount.NetworkType(),
	}
}

// PublicAccount returns the public part of the derived account.
func (a *Apostille) PublicAccount() crypto.PublicAccount {
	return a.hdAccount.PublicAccount()
}

// DerivedAccount is the key material of a private apostille.
type DerivedAccount struct {
	PrivateKey  string             `json:"privateKey"`
	PublicKey   string             `json:"publicKey"`
	Address     crypto.Address     `json:"address"`
	NetworkType crypto.NetworkType `json:"networkType"`
}

// Associate hands the apostille account over to the owners by converting it
// into a multisig account. The owners are added in the given order.
//
// Quorum is the number of owners required to approve a transaction and
// minRemoval the number of owners required to remove one of them. Both must
// be within [0, len(owners)], otherwise ErrInvalidInput is returned and
// nothing is built.
func (a *Apostille) Associate(owners []crypto.PublicAccount, quorum, minRemoval int) (*tx.SignedTransaction, error) {
	var errs error
	errs = errors.AppendField(errs, "Quorum", validateThreshold(quorum, len(owners)))
	errs = errors.AppendField(errs, "MinRemoval", validateThreshold(minRemoval, len(owners)))
	if errs != nil {
		return nil, errs
	}

	modifications := make([]tx.CosignatoryModification, len(owners))
	for i, owner := range owners {
		modifications[i] = tx.CosignatoryModification{
			Type:        tx.Add,
			Cosignatory: owner,
		}
	}
	m := &tx.ModifyMultisigAccount{
		Meta:             a.header(),
		MinApprovalDelta: int8(quorum),
		MinRemovalDelta:  int8(minRemoval),
		Modifications:    modifications,
	}
	signed, err := tx.Sign(m, a.hdAccount)
	if err != nil {
		return nil, errors.Wrap(err, "sign multisig modification")
	}
	a.logger.Debug("apostille associated",
		"address", a.hdAccount.Address(),
		"owners", len(owners),
		"hash", signed.Hash)
	return signed, nil
}

func validateThreshold(value, owners int) error {
	if value < 0 || value > owners {
		return errors.Wrapf(errors.ErrInvalidInput, "%d not in [0, %d]", value, owners)
	}
	if value > math.MaxInt8 {
		return errors.Wrapf(errors.ErrInvalidInput, "%d exceeds %d", value, math.MaxInt8)
	}
	return nil
}

// Update returns a transfer carrying the message to the apostille account.
// It records a new state of the notarized content and must be signed by
// the account updating the apostille.
func (a *Apostille) Update(message []byte) *tx.Transfer {
	return &tx.Transfer{
		Meta:      a.header(),
		Recipient: a.hdAccount.Address(),
		Message:   message,
	}
}

func (a *Apostille) header() tx.Header {
	return tx.Header{
		Network:  a.hdAccount.NetworkType(),
		Deadline: tx.NewDeadline(a.clock, a.window),
		Fee:      a.fee,
	}
}
