package rc4

import (
	"github.com/pkg/errors"

	"rc4sym/internal/smt"
)

// StateSize is the RC4 permutation size and the modulus of all index
// arithmetic.
const StateSize = 256

// initState runs the key-scheduling algorithm: starting from the
// identity permutation, for i = 0..255 fold the key into the running
// accumulator j and swap S[i] with S[j]. Each step depends on the
// array and j left by the previous one, so the loop threads both
// strictly in order.
func initState(key []*smt.BitVec) (*Array, error) {
	if len(key) < 1 || len(key) > StateSize {
		return nil, errors.Errorf("invalid key length %d, want 1..%d", len(key), StateSize)
	}
	s, err := NewArray(StateSize)
	if err != nil {
		return nil, errors.Wrap(err, "NewArray")
	}
	j := smt.NewByteVal(0)
	for i := 0; i < StateSize; i++ {
		iv := smt.NewByteVal(int64(i))
		j = j.Add(s.Read(iv)).Add(key[i%len(key)])
		s = swap(s, iv, j)
	}
	return s, nil
}

// swap exchanges the entries at i and j: two reads, then two writes
// against the original values.
func swap(s *Array, i, j *smt.BitVec) *Array {
	si := s.Read(i)
	sj := s.Read(j)
	return s.Write(i, sj).Write(j, si)
}
