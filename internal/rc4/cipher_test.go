package rc4

import (
	"testing"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rc4sym/internal/smt"
)

func Test_KnownVectors(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	vectors := []struct {
		key        string
		plaintext  string
		ciphertext []byte
	}{
		{"Key", "Plaintext", []byte{0xbb, 0xf3, 0x16, 0xe8, 0xd9, 0x40, 0xaf, 0x0a, 0xd3}},
		{"Wiki", "pedia", []byte{0x10, 0x21, 0xbf, 0x04, 0x20}},
		{"Secret", "Attack at dawn", []byte{0x45, 0xa0, 0x1f, 0x64, 0x5f, 0xc3, 0x5b, 0x38, 0x35, 0x52, 0x54, 0x4b, 0x9b, 0xf5}},
	}
	for _, vector := range vectors {
		ct, err := Encrypt([]byte(vector.key), []byte(vector.plaintext))
		require.Nil(t, err)
		assert.Equal(t, vector.ciphertext, ct, "key %q", vector.key)

		pt, err := Decrypt([]byte(vector.key), ct)
		require.Nil(t, err)
		assert.Equal(t, vector.plaintext, string(pt))
	}
}

func Test_RoundTrip(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	cases := []struct {
		key     []byte
		message []byte
	}{
		{[]byte{0x00}, []byte("single zero key byte")},
		{[]byte("a longer key with some text in it"), []byte("m")},
		{[]byte{0xff, 0x00, 0x7f}, []byte{0x00, 0xff, 0x10, 0x20, 0x30, 0x40}},
		{[]byte("Key"), []byte{}},
	}
	for _, c := range cases {
		ct, err := Encrypt(c.key, c.message)
		require.Nil(t, err)
		pt, err := Decrypt(c.key, ct)
		require.Nil(t, err)
		assert.Equal(t, c.message, pt)
	}
}

func Test_KeyLengthRejected(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	_, err := Encrypt(nil, []byte("text"))
	assert.NotNil(t, err)

	_, err = Encrypt(make([]byte, 257), []byte("text"))
	assert.NotNil(t, err)

	// 256 bytes is the upper bound, not 255
	_, err = Encrypt(make([]byte, 256), []byte("text"))
	assert.Nil(t, err)
}

func Test_KeyStreamContinuation(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	key := Lift([]byte("Wiki"))

	ks1, err := NewKeyStream(key)
	require.Nil(t, err)
	first := ks1.Take(5)
	second := ks1.Take(5)

	// a fresh stream from the same key reproduces the whole sequence
	ks2, err := NewKeyStream(key)
	require.Nil(t, err)
	whole := ks2.Take(10)

	for i := 0; i < 5; i++ {
		assert.Equal(t, whole[i].Value(), first[i].Value())
		assert.Equal(t, whole[i+5].Value(), second[i].Value())
	}
}

func Test_SchedulePermutation(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	s, err := initState(Lift([]byte("Key")))
	require.Nil(t, err)

	var seen [StateSize]bool
	for i := 0; i < StateSize; i++ {
		v, err := s.Read(smt.NewByteVal(int64(i))).Byte()
		require.Nil(t, err)
		assert.False(t, seen[v], "value %d appears twice", v)
		seen[v] = true
	}
}
