package apostille

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iov-one/apostille/apostilletest"
	"github.com/iov-one/apostille/apostilletest/assert"
	"github.com/iov-one/apostille/crypto"
	"github.com/iov-one/apostille/errors"
	"github.com/iov-one/apostille/hash"
)

func TestDefaultConfigSinks(t *testing.T) {
	conf := DefaultConfig()
	assert.Nil(t, conf.Validate())

	cases := map[string]struct {
		network crypto.NetworkType
		want    string
		wantErr *errors.Error
	}{
		"main net": {
			network: crypto.MainNet,
			want:    "NCZSJHLTIMESERVBVKOW6US64YDZG2PFGQCSV23J",
		},
		"test net": {
			network: crypto.TestNet,
			want:    "TC7MCY5AGJQXZQ4BN3BOPNXUVIGDJCOHBPGUM2GE",
		},
		"private network has no default": {
			network: crypto.MijinTest,
			wantErr: errors.ErrNotFound,
		},
		"unknown network": {
			network: 0x01,
			wantErr: errors.ErrInvalidInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			sink, err := conf.SinkFor(tc.network)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, sink.String())
			}
		})
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "apostille")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	mijinSink := apostilletest.NewKey(t, crypto.MijinTest).Address()

	cases := map[string]struct {
		filename string
		content  string
		want     Config
		wantErr  *errors.Error
	}{
		"yaml file": {
			filename: "apostille.yaml",
			content: `
network: MIJIN_TEST
hash: SHA3-256
deadline: 90m
sinks:
  MIJIN_TEST: ` + mijinSink.String() + `
`,
			want: Config{
				Network:  crypto.MijinTest,
				Hash:     hash.KECCAK256,
				Deadline: Duration(90 * time.Minute),
				Sinks:    map[string]crypto.Address{"MIJIN_TEST": mijinSink},
			},
		},
		"json file": {
			filename: "apostille.json",
			content:  `{"network": "MAIN_NET", "hash": "md5"}`,
			want: Config{
				Network:  crypto.MainNet,
				Hash:     hash.MD5,
				Deadline: Duration(2 * time.Hour),
			},
		},
		"empty json keeps defaults": {
			filename: "apostille.json",
			content:  `{}`,
			want:     DefaultConfig(),
		},
		"unknown network": {
			filename: "apostille.yml",
			content:  "network: MOON_NET\n",
			wantErr:  errors.ErrInvalidInput,
		},
		"sink of another network": {
			filename: "apostille.yml",
			content:  "sinks:\n  MAIN_NET: " + mijinSink.String() + "\n",
			wantErr:  errors.ErrInvalidInput,
		},
		"negative deadline": {
			filename: "apostille.json",
			content:  `{"deadline": "-1h"}`,
			wantErr:  errors.ErrInvalidInput,
		},
		"malformed json": {
			filename: "apostille.json",
			content:  `{"network": `,
			wantErr:  errors.ErrInvalidInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			conf, err := LoadConfig(writeConfig(t, tc.filename, tc.content))
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr == nil {
				require.Equal(t, tc.want, conf)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(os.TempDir(), "apostille-does-not-exist.json"))
	require.Error(t, err)
}

func TestConfiguredSinkOverridesDefault(t *testing.T) {
	override := apostilletest.NewKey(t, crypto.TestNet).Address()
	conf := DefaultConfig()
	conf.Sinks = map[string]crypto.Address{"TEST_NET": override}

	sink, err := conf.SinkFor(crypto.TestNet)
	require.NoError(t, err)
	require.Equal(t, override, sink)
}

func TestConfigValidateCollectsAllFields(t *testing.T) {
	conf := Config{
		Network:  crypto.NetworkType(0x01),
		Hash:     hash.Algorithm(0xff),
		Deadline: 0,
		Sinks: map[string]crypto.Address{
			"mainnet": apostilletest.ParseAddress(t, "TC7MCY5AGJQXZQ4BN3BOPNXUVIGDJCOHBPGUM2GE"),
		},
	}
	err := conf.Validate()
	assert.FieldError(t, err, "Network", errors.ErrInvalidInput)
	assert.FieldError(t, err, "Hash", errors.ErrInvalidInput)
	assert.FieldError(t, err, "Deadline", errors.ErrInvalidInput)
	assert.FieldError(t, err, "Sinks.mainnet", errors.ErrInvalidInput)
}
