package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/iov-one/apostille/crypto"
	"github.com/iov-one/apostille/hash"
)

// flNetwork returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. An empty
// default leaves the network unset so that the configuration decides.
// If given value cannot be deserialized to required type, process is
// terminated.
func flNetwork(fl *flag.FlagSet, name, defaultVal, usage string) *crypto.NetworkType {
	var n crypto.NetworkType
	if defaultVal != "" {
		if err := n.UnmarshalText([]byte(defaultVal)); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q network flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(textFlag{&n}, name, usage)
	return &n
}

// flHash returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. An empty
// default leaves the algorithm unset so that the configuration decides.
// If given value cannot be deserialized to required type, process is
// terminated.
func flHash(fl *flag.FlagSet, name, defaultVal, usage string) *hash.Algorithm {
	var a hash.Algorithm
	if defaultVal != "" {
		if err := a.UnmarshalText([]byte(defaultVal)); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q hash flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(textFlag{&a}, name, usage)
	return &a
}

type textValue interface {
	UnmarshalText([]byte) error
	String() string
}

// textFlag adapts a text unmarshaler to the flag.Value interface.
type textFlag struct {
	v textValue
}

func (f textFlag) String() string {
	if f.v == nil {
		return ""
	}
	return f.v.String()
}

func (f textFlag) Set(raw string) error {
	return f.v.UnmarshalText([]byte(raw))
}

// flStrings returns a list of values given as a comma separated string.
func flStrings(fl *flag.FlagSet, name, defaultVal, usage string) *[]string {
	var s []string
	if defaultVal != "" {
		s = splitList(defaultVal)
	}
	fl.Var((*stringsFlag)(&s), name, usage)
	return &s
}

type stringsFlag []string

func (s stringsFlag) String() string {
	return strings.Join(s, ",")
}

func (s *stringsFlag) Set(raw string) error {
	*s = append(*s, splitList(raw)...)
	return nil
}

func splitList(raw string) []string {
	var res []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}
