package util

import (
	"encoding/hex"
	"strings"
)

// ParseBytes reads CLI input: a 0x-prefixed string is decoded as hex,
// anything else is taken as raw bytes.
func ParseBytes(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return hex.DecodeString(s[2:])
	}
	return []byte(s), nil
}

// ParseHex decodes hex input with or without the 0x prefix.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return hex.DecodeString(s)
}

// EncodeHex renders bytes the way the CLI prints ciphertext.
func EncodeHex(data []byte) string {
	return "0x" + hex.EncodeToString(data)
}
