// Package rc4 models the RC4 stream cipher over bytes that may be
// concrete or symbolic. The working permutation lives in a persistent
// balanced-tree array so that reads and writes remain meaningful when
// the index is an unresolved term; on concrete inputs the same
// pipeline folds down to ordinary RC4.
package rc4

import (
	"github.com/pkg/errors"

	"rc4sym/internal/smt"
)

// EncryptSym XORs the keystream for key into plaintext, term by term.
// Keystream consumption stops when the plaintext is exhausted.
func EncryptSym(key, plaintext []*smt.BitVec) ([]*smt.BitVec, error) {
	ks, err := NewKeyStream(key)
	if err != nil {
		return nil, err
	}
	out := make([]*smt.BitVec, len(plaintext))
	for n, p := range plaintext {
		out[n] = p.Xor(ks.Next())
	}
	return out, nil
}

// Encrypt enciphers plaintext under key. The key length must be in
// [1,256]; it is never clamped or padded.
func Encrypt(key, plaintext []byte) ([]byte, error) {
	ct, err := EncryptSym(Lift(key), Lift(plaintext))
	if err != nil {
		return nil, err
	}
	result := make([]byte, len(ct))
	for i := range ct {
		b, err := ct[i].Byte()
		if err != nil {
			return nil, errors.Wrapf(err, "extract output byte %d", i)
		}
		result[i] = b
	}
	return result, nil
}

// Decrypt is Encrypt: XOR against the same keystream is self-inverse.
func Decrypt(key, ciphertext []byte) ([]byte, error) {
	return Encrypt(key, ciphertext)
}

// Lift turns concrete bytes into constant terms for the symbolic
// pipeline.
func Lift(data []byte) []*smt.BitVec {
	result := make([]*smt.BitVec, len(data))
	for i, b := range data {
		result[i] = smt.NewByteVal(int64(b))
	}
	return result
}
