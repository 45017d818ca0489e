package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/iov-one/apostille/checksum"
)

func cmdHash(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Compute the hex encoded digest of the content read from the input or a file.

Supported algorithms are MD5, SHA1, SHA256, SHA3-256 and SHA3-512. SHA3
algorithms are the Keccak variant.
`)
		fl.PrintDefaults()
	}
	var (
		fileFl   = fl.String("file", "", "Path to the file. Input is read if not provided.")
		hashFl   = flHash(fl, "hash", "", "Hash algorithm. Configuration default is used if not provided.")
		configFl = fl.String("config", configFlagDefault(), "Path to the configuration file. You can use APOSTILLE_CONFIG environment variable to set it.")
	)
	fl.Parse(args)

	conf, err := loadConfig(*configFl)
	if err != nil {
		return err
	}
	content, err := readContent(input, *fileFl)
	if err != nil {
		return err
	}
	alg := hashOr(*hashFl, conf.Hash)
	digest, err := alg.Digest(content)
	if err != nil {
		return fmt.Errorf("cannot hash: %s", err)
	}
	logger.Debug("content hashed", "algorithm", alg, "size", len(content))
	_, err = fmt.Fprintln(output, digest)
	return err
}

func cmdChecksum(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Compute the apostille checksum of the content read from the input or a file.

The full checksum is printed, unless the short form is requested. When a
private key is given, the checksum digest is signed by that account.
`)
		fl.PrintDefaults()
	}
	var (
		fileFl    = fl.String("file", "", "Path to the file. Input is read if not provided.")
		hashFl    = flHash(fl, "hash", "", "Hash algorithm. Configuration default is used if not provided.")
		shortFl   = fl.Bool("short", false, "Print only the abbreviated checksum.")
		keyFl     = fl.String("key", "", "Hex encoded private key signing the checksum. Unsigned checksum is created if not provided.")
		networkFl = flNetwork(fl, "network", "", "Network of the signing account. Configuration default is used if not provided.")
		configFl  = fl.String("config", configFlagDefault(), "Path to the configuration file. You can use APOSTILLE_CONFIG environment variable to set it.")
	)
	fl.Parse(args)

	conf, err := loadConfig(*configFl)
	if err != nil {
		return err
	}
	content, err := readContent(input, *fileFl)
	if err != nil {
		return err
	}
	alg := hashOr(*hashFl, conf.Hash)

	var sum checksum.Checksum
	if *keyFl == "" {
		sum, err = checksum.New(alg, content)
	} else {
		signer, kerr := keyPair(*keyFl, networkOr(*networkFl, conf.Network))
		if kerr != nil {
			return kerr
		}
		sum, err = checksum.NewSigned(alg, content, signer)
	}
	if err != nil {
		return fmt.Errorf("cannot compute checksum: %s", err)
	}

	if *shortFl {
		_, err = fmt.Fprintln(output, sum.Short())
	} else {
		_, err = fmt.Fprintln(output, sum.String())
	}
	return err
}

func cmdDecode(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Decode a checksum read from the input and print its parts.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	raw, err := ioutil.ReadAll(input)
	if err != nil {
		return fmt.Errorf("cannot read input: %s", err)
	}
	sum, err := checksum.Decode(strings.TrimSpace(string(raw)))
	if err != nil {
		return fmt.Errorf("cannot decode checksum: %s", err)
	}
	alg, err := sum.Algorithm()
	if err != nil {
		return fmt.Errorf("cannot decode checksum: %s", err)
	}
	return writeJSON(output, decodedChecksum{
		Version:   fmt.Sprintf("%02x", sum.Version),
		Algorithm: alg.String(),
		Signed:    sum.Signed(),
		Digest:    sum.Digest,
		Short:     sum.Short(),
	})
}

type decodedChecksum struct {
	Version   string `json:"version"`
	Algorithm string `json:"algorithm"`
	Signed    bool   `json:"signed"`
	Digest    string `json:"digest"`
	Short     string `json:"short"`
}
