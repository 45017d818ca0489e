package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/iov-one/apostille"
	"github.com/iov-one/apostille/crypto"
	"github.com/iov-one/apostille/hash"
)

// loadConfig returns the configuration stored in the file or the default
// configuration if no path is given.
func loadConfig(path string) (apostille.Config, error) {
	if path == "" {
		return apostille.DefaultConfig(), nil
	}
	conf, err := apostille.LoadConfig(path)
	if err != nil {
		return conf, fmt.Errorf("cannot load configuration: %s", err)
	}
	logger.Debug("configuration loaded", "path", path)
	return conf, nil
}

// networkOr returns the network if set or the fallback.
func networkOr(n, fallback crypto.NetworkType) crypto.NetworkType {
	if n == 0 {
		return fallback
	}
	return n
}

// hashOr returns the algorithm if set or the fallback.
func hashOr(a, fallback hash.Algorithm) hash.Algorithm {
	if a == 0 {
		return fallback
	}
	return a
}

// readContent returns the content of the file or, if the path is empty or
// "-", everything that can be read from the input.
func readContent(input io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		raw, err := ioutil.ReadAll(input)
		if err != nil {
			return nil, fmt.Errorf("cannot read input: %s", err)
		}
		return raw, nil
	}
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %s", err)
	}
	return raw, nil
}

// keyPair returns the account of the private key. The key is required.
func keyPair(privateKeyHex string, network crypto.NetworkType) (*crypto.KeyPair, error) {
	if privateKeyHex == "" {
		return nil, fmt.Errorf("private key is required, use -key flag or APOSTILLE_PRIVATE_KEY environment variable")
	}
	kp, err := crypto.NewKeyPair(privateKeyHex, network)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %s", err)
	}
	return kp, nil
}

// writeJSON writes an indented JSON representation of the value.
func writeJSON(output io.Writer, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot serialize: %s", err)
	}
	_, err = output.Write(append(raw, '\n'))
	return err
}

func privateKeyFlagDefault() string {
	return env("PRIVATE_KEY", "")
}

func configFlagDefault() string {
	return env("CONFIG", "")
}

func cmdVersion(input io.Reader, output io.Writer, args []string) error {
	fmt.Fprintln(output, apostille.Version())
	return nil
}
