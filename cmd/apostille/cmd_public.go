package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/lightningnetwork/lnd/clock"

	"github.com/iov-one/apostille"
	"github.com/iov-one/apostille/crypto"
	"github.com/iov-one/apostille/tx"
)

// now is the clock used for transaction deadlines.
var now clock.Clock = clock.NewDefaultClock()

func cmdPublic(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a public apostille of a file: a transfer sending the file checksum to
the sink address of the network.

The file content is read from the input unless a file path is given. When
-signed is used, the checksum digest is signed by the account as well.
`)
		fl.PrintDefaults()
	}
	var (
		fileFl    = fl.String("file", "", "Path to the file. Input is read if not provided.")
		nameFl    = fl.String("name", "", "Name of the file. Base name of the file path is used if not provided.")
		hashFl    = flHash(fl, "hash", "", "Hash algorithm. Configuration default is used if not provided.")
		keyFl     = fl.String("key", privateKeyFlagDefault(), "Hex encoded private key of the account publishing the apostille. You can use APOSTILLE_PRIVATE_KEY environment variable to set it.")
		signedFl  = fl.Bool("signed", false, "Sign the checksum with the publishing account.")
		networkFl = flNetwork(fl, "network", "", "Network of the apostille. Configuration default is used if not provided.")
		sinkFl    = fl.String("sink", "", "Sink address. Configured sink of the network is used if not provided.")
		configFl  = fl.String("config", configFlagDefault(), "Path to the configuration file. You can use APOSTILLE_CONFIG environment variable to set it.")
	)
	fl.Parse(args)

	conf, err := loadConfig(*configFl)
	if err != nil {
		return err
	}
	network := networkOr(*networkFl, conf.Network)

	var sink crypto.Address
	if *sinkFl != "" {
		sink, err = crypto.ParseAddress(*sinkFl)
	} else {
		sink, err = conf.SinkFor(network)
	}
	if err != nil {
		return fmt.Errorf("cannot resolve sink: %s", err)
	}
	if sink.NetworkType() != network {
		return fmt.Errorf("sink %s does not belong to %s", sink, network)
	}

	name := *nameFl
	if name == "" && *fileFl != "" && *fileFl != "-" {
		name = filepath.Base(*fileFl)
	}
	p, err := apostille.NewPublicApostille(name, sink)
	if err != nil {
		return fmt.Errorf("invalid apostille: %s", err)
	}

	content, err := readContent(input, *fileFl)
	if err != nil {
		return err
	}
	account, err := keyPair(*keyFl, network)
	if err != nil {
		return err
	}

	alg := hashOr(*hashFl, conf.Hash)
	if *signedFl {
		err = p.UpdateSigned(content, alg, account)
	} else {
		err = p.Update(content, alg)
	}
	if err != nil {
		return fmt.Errorf("cannot compute checksum: %s", err)
	}

	transfer, err := p.Transaction(now, time.Duration(conf.Deadline))
	if err != nil {
		return err
	}
	signed, err := tx.Sign(transfer, account)
	if err != nil {
		return fmt.Errorf("cannot sign: %s", err)
	}
	sum, _ := p.Checksum()
	logger.Info("public apostille created", "file", p.Filename, "sink", sink, "hash", signed.Hash)

	return writeJSON(output, publicApostille{
		Filename:    p.Filename,
		Checksum:    sum.String(),
		Short:       sum.Short(),
		Transaction: signed,
	})
}

type publicApostille struct {
	Filename    string                `json:"filename"`
	Checksum    string                `json:"checksum"`
	Short       string                `json:"short"`
	Transaction *tx.SignedTransaction `json:"transaction"`
}
