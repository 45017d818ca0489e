package apostille

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iov-one/apostille/crypto"
	"github.com/iov-one/apostille/errors"
	"github.com/iov-one/apostille/hash"
	"github.com/iov-one/apostille/tx"
)

// Sink addresses of the public networks. Private networks have no well
// known sink and must be configured.
var defaultSinks = map[crypto.NetworkType]crypto.Address{
	crypto.MainNet: crypto.MustParseAddress("NCZSJHLTIMESERVBVKOW6US64YDZG2PFGQCSV23J"),
	crypto.TestNet: crypto.MustParseAddress("TC7MCY5AGJQXZQ4BN3BOPNXUVIGDJCOHBPGUM2GE"),
}

// Config holds the settings used when building apostille transactions.
type Config struct {
	// Network is the default network.
	Network crypto.NetworkType `json:"network" yaml:"network"`
	// Hash is the default algorithm of public apostille checksums.
	Hash hash.Algorithm `json:"hash" yaml:"hash"`
	// Deadline is how long a built transaction is valid.
	Deadline Duration `json:"deadline" yaml:"deadline"`
	// Sinks maps a network name to the sink address of public apostilles.
	// Entries override the defaults of public networks.
	Sinks map[string]crypto.Address `json:"sinks,omitempty" yaml:"sinks,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Network:  crypto.TestNet,
		Hash:     hash.SHA256,
		Deadline: Duration(tx.DefaultDeadline),
	}
}

// Validate returns an error if any of the settings is not usable.
func (c Config) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Network", c.Network.Validate())
	errs = errors.AppendField(errs, "Hash", c.Hash.Validate())
	if c.Deadline <= 0 {
		errs = errors.AppendField(errs, "Deadline",
			errors.Wrapf(errors.ErrInvalidInput, "must be positive, got %s", c.Deadline))
	}
	for name, sink := range c.Sinks {
		network, err := crypto.ParseNetworkType(name)
		if err != nil {
			errs = errors.AppendField(errs, "Sinks."+name, err)
			continue
		}
		if sink.NetworkType() != network {
			errs = errors.AppendField(errs, "Sinks."+name,
				errors.Wrapf(errors.ErrInvalidInput, "address of network %s", sink.NetworkType()))
		}
	}
	return errs
}

// SinkFor returns the sink address of public apostilles on the network.
// ErrNotFound is returned if the network has no known sink.
func (c Config) SinkFor(network crypto.NetworkType) (crypto.Address, error) {
	if err := network.Validate(); err != nil {
		return crypto.Address{}, err
	}
	for name, sink := range c.Sinks {
		if n, err := crypto.ParseNetworkType(name); err == nil && n == network {
			return sink, nil
		}
	}
	sink, ok := defaultSinks[network]
	if !ok {
		return crypto.Address{}, errors.Wrapf(errors.ErrNotFound, "no sink for %s", network)
	}
	return sink, nil
}

// Options returns the apostille options described by the configuration.
func (c Config) Options() []Option {
	return []Option{WithDeadline(time.Duration(c.Deadline))}
}

// LoadConfig reads the configuration file. The format is chosen by the file
// extension: .yaml and .yml files are YAML, anything else is JSON. Settings
// missing from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()

	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return conf, errors.Wrap(err, "loading config file")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &conf)
	default:
		err = json.Unmarshal(raw, &conf)
	}
	if err != nil {
		return conf, errors.Wrapf(errors.ErrInvalidInput, "unmarshaling config file: %s", err)
	}
	if err := conf.Validate(); err != nil {
		return conf, errors.Wrapf(err, "config %q", path)
	}
	return conf, nil
}

// Duration is a time.Duration written in its human readable form, for
// example "2h" or "90m".
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(raw []byte) error {
	v, err := time.ParseDuration(string(raw))
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "duration %q", raw)
	}
	*d = Duration(v)
	return nil
}
