package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/apostille"
	"github.com/iov-one/apostille/crypto"
)

func cmdDerive(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Derive the private apostille account of a seed.

The seed is read from the input unless provided as a flag. The account
belongs to the network of the generator. The result contains the private key
of the derived account.
`)
		fl.PrintDefaults()
	}
	var (
		seedFl    = fl.String("seed", "", "Seed of the apostille. Input is read if not provided.")
		keyFl     = fl.String("key", privateKeyFlagDefault(), "Hex encoded private key of the generator. You can use APOSTILLE_PRIVATE_KEY environment variable to set it.")
		networkFl = flNetwork(fl, "network", "", "Network of the generator. Configuration default is used if not provided.")
		configFl  = fl.String("config", configFlagDefault(), "Path to the configuration file. You can use APOSTILLE_CONFIG environment variable to set it.")
	)
	fl.Parse(args)

	a, err := initApostille(input, *seedFl, *keyFl, *networkFl, *configFl)
	if err != nil {
		return err
	}
	return writeJSON(output, a.DerivedAccount())
}

func cmdAssociate(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a signed transaction converting the private apostille account of a
seed into a multisig account owned by the given public keys.

The owners are added in the given order. The signed transaction is printed
and must be announced by a ledger client.
`)
		fl.PrintDefaults()
	}
	var (
		seedFl       = fl.String("seed", "", "Seed of the apostille. Input is read if not provided.")
		keyFl        = fl.String("key", privateKeyFlagDefault(), "Hex encoded private key of the generator. You can use APOSTILLE_PRIVATE_KEY environment variable to set it.")
		networkFl    = flNetwork(fl, "network", "", "Network of the generator. Configuration default is used if not provided.")
		configFl     = fl.String("config", configFlagDefault(), "Path to the configuration file. You can use APOSTILLE_CONFIG environment variable to set it.")
		ownersFl     = flStrings(fl, "owners", "", "Comma separated hex encoded public keys of the owners. Can be used multiple times.")
		quorumFl     = fl.Int("quorum", 1, "Number of owners required to approve a transaction.")
		minRemovalFl = fl.Int("min-removal", 1, "Number of owners required to remove an owner.")
	)
	fl.Parse(args)

	a, err := initApostille(input, *seedFl, *keyFl, *networkFl, *configFl)
	if err != nil {
		return err
	}
	network := a.DerivedAccount().NetworkType

	owners := make([]crypto.PublicAccount, 0, len(*ownersFl))
	for i, pub := range *ownersFl {
		owner, err := crypto.NewPublicAccount(pub, network)
		if err != nil {
			return fmt.Errorf("invalid owner %d: %s", i, err)
		}
		owners = append(owners, owner)
	}

	signed, err := a.Associate(owners, *quorumFl, *minRemovalFl)
	if err != nil {
		return fmt.Errorf("cannot associate: %s", err)
	}
	return writeJSON(output, signed)
}

// initApostille derives the apostille of the seed, read from the input if
// not given.
func initApostille(input io.Reader, seed, privateKeyHex string, network crypto.NetworkType, configPath string) (*apostille.Apostille, error) {
	conf, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	generator, err := keyPair(privateKeyHex, networkOr(network, conf.Network))
	if err != nil {
		return nil, err
	}

	raw := []byte(seed)
	if seed == "" {
		if raw, err = readContent(input, ""); err != nil {
			return nil, err
		}
	}

	opts := append(conf.Options(), apostille.WithLogger(logger))
	a, err := apostille.Init(raw, generator, opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot derive apostille: %s", err)
	}
	return a, nil
}
