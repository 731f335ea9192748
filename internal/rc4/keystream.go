package rc4

import (
	"rc4sym/internal/smt"
)

// KeyStream is the PRGA as an explicit state machine over
// (array, i, j). The stream is unbounded and pull driven; it is not
// restartable, reproducing a sequence means rebuilding the state from
// the key.
type KeyStream struct {
	s    *Array
	i, j *smt.BitVec
}

// NewKeyStream schedules the key and positions the generator at the
// start of the stream.
func NewKeyStream(key []*smt.BitVec) (*KeyStream, error) {
	s, err := initState(key)
	if err != nil {
		return nil, err
	}
	return &KeyStream{
		s: s,
		i: smt.NewByteVal(0),
		j: smt.NewByteVal(0),
	}, nil
}

// Next runs one PRGA transition and returns the output byte:
// i' = i+1, j' = j+S[i'], swap S[i'] and S[j'], then emit
// S'[S'[i'] + S'[j']]. All additions wrap at the byte width.
func (ks *KeyStream) Next() *smt.BitVec {
	i := ks.i.Add(smt.NewByteVal(1))
	j := ks.j.Add(ks.s.Read(i))
	s := swap(ks.s, i, j)
	t := s.Read(i).Add(s.Read(j))
	ks.s, ks.i, ks.j = s, i, j
	return s.Read(t)
}

// Take draws the next n bytes from the stream.
func (ks *KeyStream) Take(n int) []*smt.BitVec {
	out := make([]*smt.BitVec, n)
	for k := range out {
		out[k] = ks.Next()
	}
	return out
}
