package crypto

import (
	"encoding/hex"
	"testing"
)

func TestStrategyHash256(t *testing.T) {
	cases := map[string]struct {
		strategy Strategy
		want     string
	}{
		"legacy is keccak": {
			strategy: Legacy,
			want:     "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		},
		"native is NIST sha3": {
			strategy: Native,
			want:     "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := hex.EncodeToString(tc.strategy.NewHash256().Sum(nil))
			if got != tc.want {
				t.Fatalf("want %s, got %s", tc.want, got)
			}
		})
	}
}
