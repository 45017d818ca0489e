package apostille

import "strings"

const privateKeyHexLength = 64

// NormalizePrivateKey turns a hex encoded signature into a private key. A
// single leading "00" is removed, the result is left padded with zeros and
// the rightmost 64 characters are kept.
//
// Only one "00" pair is stripped. Derived accounts already in use depend on
// this exact transformation so it must not be generalized.
func NormalizePrivateKey(signatureHex string) string {
	s := strings.Repeat("0", privateKeyHexLength) + strings.TrimPrefix(signatureHex, "00")
	return strings.ToUpper(s[len(s)-privateKeyHexLength:])
}
