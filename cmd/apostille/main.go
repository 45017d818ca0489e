package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/apostille/errors"
)

// commands is a register of all availables commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// When a cmd function is called it is given stdin, stdout and command line
// arguments except the program name and this command name. It is the
// responsibility of the command function to parse the arguments. Use os.Stderr
// to write error messages.
//
// Commands that read content take it from the input so that a unix pipe can
// be used, for example
//
//   $ cat contract.pdf | apostille checksum -hash sha3-256
//
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"associate": cmdAssociate,
	"checksum":  cmdChecksum,
	"decode":    cmdDecode,
	"derive":    cmdDerive,
	"hash":      cmdHash,
	"public":    cmdPublic,
	"version":   cmdVersion,
}

// logger is used by commands to report what they do. It writes to stderr so
// that the output can be piped.
var logger = log.NewNopLogger()

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for creating apostilles.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	l, err := newLogger(os.Stderr, env("LOG_LEVEL", "error"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger = l.With("cmd", os.Args[1])

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := runSafe(run, os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runSafe executes the command and converts a panic into an ErrPanic error.
func runSafe(run func(io.Reader, io.Writer, []string) error, input io.Reader, output io.Writer, args []string) (err error) {
	defer errors.Recover(&err)
	return run(input, output, args)
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

// newLogger returns a logger writing to w all messages of the given level or
// more important.
func newLogger(w io.Writer, level string) (log.Logger, error) {
	allowed, err := log.AllowLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", err)
	}
	return log.NewFilter(log.NewTMLogger(log.NewSyncWriter(w)), allowed), nil
}
