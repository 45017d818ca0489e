package crypto

import (
	"fmt"
	"strings"

	"github.com/iov-one/apostille/errors"
)

// NetworkType is the identifier of a NEM network. It is the first byte of
// every address and the high byte of every transaction version.
type NetworkType byte

const (
	MainNet   NetworkType = 0x68
	TestNet   NetworkType = 0x98
	Mijin     NetworkType = 0x60
	MijinTest NetworkType = 0x90
)

// Validate returns an error if this is not a known network.
func (n NetworkType) Validate() error {
	switch n {
	case MainNet, TestNet, Mijin, MijinTest:
		return nil
	default:
		return errors.Wrapf(errors.ErrInvalidInput, "unknown network type %#x", byte(n))
	}
}

func (n NetworkType) String() string {
	switch n {
	case MainNet:
		return "MAIN_NET"
	case TestNet:
		return "TEST_NET"
	case Mijin:
		return "MIJIN"
	case MijinTest:
		return "MIJIN_TEST"
	default:
		return fmt.Sprintf("NetworkType(%#x)", byte(n))
	}
}

// ParseNetworkType returns the network for the given name. Names are
// case insensitive and the underscore is optional.
func ParseNetworkType(name string) (NetworkType, error) {
	normalized := strings.Replace(strings.ToUpper(strings.TrimSpace(name)), "-", "_", -1)
	switch normalized {
	case "MAIN_NET", "MAINNET":
		return MainNet, nil
	case "TEST_NET", "TESTNET":
		return TestNet, nil
	case "MIJIN":
		return Mijin, nil
	case "MIJIN_TEST", "MIJINTEST":
		return MijinTest, nil
	default:
		return 0, errors.Wrapf(errors.ErrInvalidInput, "unknown network %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (n NetworkType) MarshalText() ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NetworkType) UnmarshalText(raw []byte) error {
	nt, err := ParseNetworkType(string(raw))
	if err != nil {
		return err
	}
	*n = nt
	return nil
}
