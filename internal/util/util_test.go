package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseBytes(t *testing.T) {
	b, err := ParseBytes("Key")
	assert.Nil(t, err)
	assert.Equal(t, []byte("Key"), b)

	b, err = ParseBytes("0xdeadbeef")
	assert.Nil(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b)

	_, err = ParseBytes("0xzz")
	assert.NotNil(t, err)
}

func Test_ParseHex(t *testing.T) {
	b, err := ParseHex("1021bf0420")
	assert.Nil(t, err)
	assert.Equal(t, []byte{0x10, 0x21, 0xbf, 0x04, 0x20}, b)

	b, err = ParseHex("0x1021bf0420")
	assert.Nil(t, err)
	assert.Equal(t, []byte{0x10, 0x21, 0xbf, 0x04, 0x20}, b)
}

func Test_EncodeHex(t *testing.T) {
	assert.Equal(t, "0x1021bf0420", EncodeHex([]byte{0x10, 0x21, 0xbf, 0x04, 0x20}))
}
