package tx

import (
	"encoding/hex"
	"strings"
)

func encodeHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
