package main

import (
	"strings"
	"testing"

	"github.com/iov-one/apostille/apostilletest"
)

func TestCmdHash(t *testing.T) {
	cases := map[string]struct {
		args []string
		want string
	}{
		"md5": {
			args: []string{"-hash", "md5"},
			want: "900150983cd24fb0d6963f7d28e17f72\n",
		},
		"sha256 is the default": {
			args: nil,
			want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n",
		},
		"keccak named the reference way": {
			args: []string{"-hash", "SHA3-256"},
			want: "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45\n",
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := runCmd(t, cmdHash, "abc", tc.args...)
			if got != tc.want {
				t.Logf("want: %s", tc.want)
				t.Logf(" got: %s", got)
				t.Fatal("unexpected digest")
			}
		})
	}
}

func TestCmdChecksum(t *testing.T) {
	cases := map[string]struct {
		args []string
		want string
	}{
		"full": {
			args: []string{"-hash", "md5"},
			want: "fe4e545901900150983cd24fb0d6963f7d28e17f72\n",
		},
		"short": {
			args: []string{"-hash", "sha256", "-short"},
			want: "fe4e545903\n",
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := runCmd(t, cmdChecksum, "abc", tc.args...)
			if got != tc.want {
				t.Logf("want: %s", tc.want)
				t.Logf(" got: %s", got)
				t.Fatal("unexpected checksum")
			}
		})
	}
}

func TestCmdChecksumSigned(t *testing.T) {
	got := runCmd(t, cmdChecksum, "abc",
		"-hash", "sha256", "-key", strings.ToUpper(apostilletest.GeneratorKey), "-network", "MIJIN_TEST")
	got = strings.TrimSpace(got)
	if !strings.HasPrefix(got, "fe4e545983") {
		t.Fatalf("unexpected signed checksum header: %s", got)
	}
	if len(got) != 10+128 {
		t.Fatalf("unexpected signed checksum length %d", len(got))
	}
}

func TestCmdDecode(t *testing.T) {
	got := runCmd(t, cmdDecode, "fe4e545901900150983cd24fb0d6963f7d28e17f72\n")
	const want = `{
	"version": "fe",
	"algorithm": "MD5",
	"signed": false,
	"digest": "900150983cd24fb0d6963f7d28e17f72",
	"short": "fe4e545901"
}
`
	if got != want {
		t.Logf("want: %s", want)
		t.Logf(" got: %s", got)
		t.Fatal("unexpected decode result")
	}
}

func TestCmdDecodeInvalid(t *testing.T) {
	if err := cmdDecode(strings.NewReader("fe4e545999"), &strings.Builder{}, nil); err == nil {
		t.Fatal("invalid checksum decoded")
	}
}
