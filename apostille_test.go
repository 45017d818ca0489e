package apostille

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/apostille/apostilletest"
	"github.com/iov-one/apostille/apostilletest/assert"
	"github.com/iov-one/apostille/crypto"
	"github.com/iov-one/apostille/errors"
	"github.com/iov-one/apostille/tx"
)

func TestInitReferenceAccount(t *testing.T) {
	generator := apostilletest.KeyPair(t, apostilletest.GeneratorKey, crypto.MijinTest)

	a, err := Init([]byte("KV_,x797taRe}Y<+"), generator)
	require.NoError(t, err)

	acc := a.DerivedAccount()
	require.Equal(t, "B9EF817A39DAEB43179EE9129E5D592410B8A47FA4870A4EC16024575E51A608", acc.PrivateKey)
	require.Equal(t, "9C0C770BD1E1506FD207A8D783E0E4AC00D98B6D790401573519D82133474B90", acc.PublicKey)
	require.Equal(t, "SDTE6ZXQAQ46FDJ5P7MSU43EBNT4SR7C7EKUHHL5", acc.Address.String())
	require.Equal(t, crypto.MijinTest, acc.NetworkType)
}

func TestInitIsDeterministic(t *testing.T) {
	networks := []crypto.NetworkType{crypto.MainNet, crypto.TestNet, crypto.Mijin, crypto.MijinTest}
	seeds := []string{"", "a", "KV_,x797taRe}Y<+", "new random seed"}

	for _, network := range networks {
		generator := apostilletest.KeyPair(t, apostilletest.GeneratorKey, network)
		for _, seed := range seeds {
			t.Run(fmt.Sprintf("%s %q", network, seed), func(t *testing.T) {
				first, err := Init([]byte(seed), generator)
				require.NoError(t, err)
				second, err := Init([]byte(seed), generator)
				require.NoError(t, err)
				require.Equal(t, first.DerivedAccount(), second.DerivedAccount())
				require.Equal(t, network, first.DerivedAccount().Address.NetworkType())
				require.Len(t, first.DerivedAccount().PrivateKey, 64)
			})
		}
	}
}

func TestInitIsSensitiveToSeed(t *testing.T) {
	generator := apostilletest.KeyPair(t, apostilletest.GeneratorKey, crypto.MijinTest)
	seen := make(map[string]string)
	for i := 0; i < 50; i++ {
		seed := fmt.Sprintf("seed-%d", i)
		a, err := Init([]byte(seed), generator)
		require.NoError(t, err)
		key := a.DerivedAccount().PrivateKey
		if other, ok := seen[key]; ok {
			t.Fatalf("seeds %q and %q derive the same account", seed, other)
		}
		seen[key] = seed
	}
}

func TestInitStrategiesDiffer(t *testing.T) {
	// Mijin and MainNet accounts of the same generator key are signed with
	// different schemes.
	seed := []byte("content")
	native, err := Init(seed, apostilletest.KeyPair(t, apostilletest.GeneratorKey, crypto.Mijin))
	require.NoError(t, err)
	legacy, err := Init(seed, apostilletest.KeyPair(t, apostilletest.GeneratorKey, crypto.MainNet))
	require.NoError(t, err)
	require.NotEqual(t, native.DerivedAccount().PrivateKey, legacy.DerivedAccount().PrivateKey)
}

func TestInitSignedMessage(t *testing.T) {
	seed := []byte("KV_,x797taRe}Y<+")
	sum := sha256.Sum256(seed)
	digestHex := hex.EncodeToString(sum[:])

	cases := map[string]struct {
		network crypto.NetworkType
		// message is what the generator must sign for the network.
		message []byte
		// other is the encoding of the digest the network must not use.
		other []byte
	}{
		"mainnet signs raw digest bytes": {
			network: crypto.MainNet,
			message: sum[:],
			other:   []byte(digestHex),
		},
		"testnet signs raw digest bytes": {
			network: crypto.TestNet,
			message: sum[:],
			other:   []byte(digestHex),
		},
		"mijin signs the hex string": {
			network: crypto.Mijin,
			message: []byte(digestHex),
			other:   sum[:],
		},
		"mijin test signs the hex string": {
			network: crypto.MijinTest,
			message: []byte(digestHex),
			other:   sum[:],
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			generator := apostilletest.KeyPair(t, apostilletest.GeneratorKey, tc.network)

			sig, err := generator.Sign(tc.message)
			require.NoError(t, err)
			want := NormalizePrivateKey(hex.EncodeToString(sig))

			otherSig, err := generator.Sign(tc.other)
			require.NoError(t, err)
			notWant := NormalizePrivateKey(hex.EncodeToString(otherSig))

			a, err := Init(seed, generator)
			require.NoError(t, err)
			got := a.DerivedAccount().PrivateKey
			require.Equal(t, want, got)
			require.NotEqual(t, notWant, got)

			derived := apostilletest.KeyPair(t, want, tc.network)
			require.Equal(t, derived.PublicKey(), a.DerivedAccount().PublicKey)
			require.Equal(t, derived.Address(), a.DerivedAccount().Address)
		})
	}
}

func TestInitWithLogger(t *testing.T) {
	generator := apostilletest.KeyPair(t, apostilletest.GeneratorKey, crypto.MijinTest)

	// A nil logger is the same as no logger.
	quiet, err := Init([]byte("seed"), generator, WithLogger(nil))
	require.NoError(t, err)

	var buf bytes.Buffer
	loud, err := Init([]byte("seed"), generator, WithLogger(log.NewTMLogger(log.NewSyncWriter(&buf))))
	require.NoError(t, err)
	require.Equal(t, quiet.DerivedAccount(), loud.DerivedAccount())
	require.Contains(t, buf.String(), "apostille derived")
	require.Contains(t, buf.String(), "module=apostille")
	require.Contains(t, buf.String(), loud.DerivedAccount().Address.String())
}

type failingSigner struct {
	*crypto.KeyPair
}

func (failingSigner) Sign([]byte) ([]byte, error) {
	return nil, errors.Wrap(errors.ErrSigning, "hardware wallet disconnected")
}

func TestInitSigningFailure(t *testing.T) {
	generator := failingSigner{apostilletest.KeyPair(t, apostilletest.GeneratorKey, crypto.MijinTest)}
	_, err := Init([]byte("seed"), generator)
	if !errors.ErrSigning.Is(err) {
		t.Fatalf("want signing error, got %+v", err)
	}
}

func TestAssociate(t *testing.T) {
	generator := apostilletest.KeyPair(t, apostilletest.GeneratorKey, crypto.MijinTest)
	a, err := Init([]byte("KV_,x797taRe}Y<+"), generator, WithClock(apostilletest.NewClock()))
	require.NoError(t, err)

	owners := apostilletest.Owners(t, crypto.MijinTest, 3)
	signed, err := a.Associate(owners, 2, 1)
	require.NoError(t, err)

	require.Equal(t, tx.TypeModifyMultisigAccount, signed.Type)
	require.Equal(t, a.DerivedAccount().PublicKey, signed.Signer)

	payload := apostilletest.DecodeHex(t, signed.Payload)
	require.True(t, tx.VerifySignature(payload), "signature must be valid")

	// Fixed size header is followed by the multisig modification body.
	body := payload[120:]
	require.Equal(t, byte(1), body[0], "min removal")
	require.Equal(t, byte(2), body[1], "min approval")
	require.Equal(t, byte(3), body[2], "modifications count")
	for i, owner := range owners {
		entry := body[3+i*33 : 3+(i+1)*33]
		require.Equal(t, byte(tx.Add), entry[0])
		require.Equal(t, apostilletest.DecodeHex(t, owner.PublicKey), entry[1:], "owner %d", i)
	}

	deadline := binary.LittleEndian.Uint64(payload[112:])
	want := tx.DeadlineAt(apostilletest.Now.Add(tx.DefaultDeadline)).Timestamp()
	require.Equal(t, want, deadline)
}

func TestAssociateThresholds(t *testing.T) {
	generator := apostilletest.KeyPair(t, apostilletest.GeneratorKey, crypto.MijinTest)
	a, err := Init([]byte("seed"), generator)
	assert.Nil(t, err)
	owners := apostilletest.Owners(t, crypto.MijinTest, 2)

	cases := map[string]struct {
		owners     []crypto.PublicAccount
		quorum     int
		minRemoval int
		wantErr    *errors.Error
		wantField  string
	}{
		"quorum exceeds owners": {
			owners:    owners,
			quorum:    3,
			wantErr:   errors.ErrInvalidInput,
			wantField: "Quorum",
		},
		"negative quorum": {
			owners:    owners,
			quorum:    -1,
			wantErr:   errors.ErrInvalidInput,
			wantField: "Quorum",
		},
		"min removal exceeds owners": {
			owners:     owners,
			quorum:     1,
			minRemoval: 3,
			wantErr:    errors.ErrInvalidInput,
			wantField:  "MinRemoval",
		},
		"no owners and no thresholds": {
			owners:  nil,
			wantErr: nil,
		},
		"thresholds equal to the owners count": {
			owners:     owners,
			quorum:     2,
			minRemoval: 2,
			wantErr:    nil,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			signed, err := a.Associate(tc.owners, tc.quorum, tc.minRemoval)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				if signed != nil {
					t.Fatal("signed transaction returned together with an error")
				}
				assert.FieldError(t, err, tc.wantField, tc.wantErr)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	generator := apostilletest.KeyPair(t, apostilletest.GeneratorKey, crypto.MijinTest)
	a, err := Init([]byte("new random seed"), generator,
		WithClock(apostilletest.NewClock()),
		WithDeadline(time.Hour),
		WithFee(5))
	require.NoError(t, err)

	transfer := a.Update([]byte("raw"))
	require.Equal(t, a.PublicAccount().Address, transfer.Recipient)
	require.Equal(t, uint64(5), transfer.Meta.Fee)
	require.True(t, transfer.Meta.Deadline.Time().Equal(apostilletest.Now.Add(time.Hour)))

	// The update is signed by the creator, not by the apostille account.
	signed, err := tx.Sign(transfer, generator)
	require.NoError(t, err)
	require.Equal(t, generator.PublicKey(), signed.Signer)
}
