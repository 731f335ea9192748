package smt

import (
	"fmt"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
	"github.com/pkg/errors"
)

const (
	BitVecType = "bitvec"
	BoolType   = "bool"

	// ByteSize is the width of every cipher value. RC4 works on bytes;
	// all indices, state entries and stream outputs are 8-bit bitvectors.
	ByteSize = 8
)

// BitVec wraps a yices bitvector term. A BitVec is either a folded
// constant or a symbolic expression; operations never mutate, they
// return fresh wrappers.
type BitVec struct {
	name  string
	value yices2.TermT
}

// NewByteVal builds an 8-bit constant. Values are taken modulo 256.
func NewByteVal(value int64) *BitVec {
	return &BitVec{
		name:  "",
		value: yices2.BvconstInt64(ByteSize, value&0xFF),
	}
}

// NewByte allocates a fresh unconstrained 8-bit variable.
func NewByte(name string) *BitVec {
	term := yices2.NewUninterpretedTerm(yices2.BvType(ByteSize))
	errcode := yices2.SetTermName(term, name)
	if errcode < 0 {
		fmt.Println("set term name ", errcode)
	}
	return &BitVec{
		name:  name,
		value: term,
	}
}

func NewBitVecFromTerm(value yices2.TermT) *BitVec {
	return &BitVec{
		name:  "",
		value: value,
	}
}

func (bv *BitVec) GetRaw() yices2.TermT {
	return bv.value
}

func (bv *BitVec) GetName() string {
	return bv.name
}

func (bv *BitVec) Type() string {
	return BitVecType
}

func (bv *BitVec) Size() uint32 {
	return yices2.TermBitsize(bv.value)
}

func (bv *BitVec) IsSymbolic() bool {
	// constants sit at the front of the term-constructor enum
	return yices2.TermConstructor(bv.value) > 2
}

// Add is modular addition; overflow wraps at the bitvector width.
func (bv *BitVec) Add(other *BitVec) *BitVec {
	return &BitVec{
		name:  bv.name,
		value: yices2.Bvadd(bv.value, other.value),
	}
}

func (bv *BitVec) Sub(other *BitVec) *BitVec {
	return &BitVec{
		name:  bv.name,
		value: yices2.Bvsub(bv.value, other.value),
	}
}

func (bv *BitVec) Xor(other *BitVec) *BitVec {
	return &BitVec{
		name:  bv.name,
		value: yices2.Bvxor2(bv.value, other.value),
	}
}

func (bv *BitVec) Not() *BitVec {
	return &BitVec{
		name:  bv.name,
		value: yices2.Bvnot(bv.value),
	}
}

func (bv *BitVec) Eq(other *BitVec) *Bool {
	return &Bool{
		name:  bv.name,
		value: yices2.Eq(bv.value, other.value),
	}
}

func (bv *BitVec) Ne(other *BitVec) *Bool {
	return &Bool{
		name:  bv.name,
		value: yices2.BvneqAtom(bv.value, other.value),
	}
}

// Bits decomposes the bitvector into boolean terms, most significant
// bit first. Bit extraction of a folded constant yields a boolean
// constant, so callers can branch concretely on concrete values.
func (bv *BitVec) Bits() []*Bool {
	size := int(bv.Size())
	result := make([]*Bool, 0, size)
	for i := size - 1; i >= 0; i-- {
		result = append(result, NewBoolFromTerm(yices2.Bitextract(bv.value, uint32(i))))
	}
	return result
}

// Ite selects between two bitvectors. A concrete condition resolves
// immediately instead of building a select term.
func Ite(cond *Bool, then, els *BitVec) *BitVec {
	if !cond.IsSymbolic() {
		if cond.IsTrue() {
			return then
		}
		return els
	}
	return &BitVec{
		name:  "",
		value: yices2.Ite(cond.value, then.value, els.value),
	}
}

// Byte extracts the concrete value of a resolved term.
func (bv *BitVec) Byte() (byte, error) {
	if bv.IsSymbolic() {
		return 0, errors.Errorf("bitvec %q is symbolic, no concrete value", bv.name)
	}
	intVal := make([]int32, bv.Size())
	if errcode := yices2.BvConstValue(bv.value, intVal); errcode != 0 {
		// some folded terms are not plain constants; walk the bits instead
		var b byte
		for i := uint32(0); i < bv.Size(); i++ {
			if yices2.True() == yices2.Bitextract(bv.value, i) {
				b |= 1 << i
			}
		}
		return b, nil
	}
	var b byte
	for i := range intVal {
		if intVal[i] == 1 {
			b |= 1 << i
		}
	}
	return b, nil
}

// Value is Byte for callers that know the term is concrete.
func (bv *BitVec) Value() int64 {
	b, err := bv.Byte()
	if err != nil {
		fmt.Println("bitvec value ", err)
		return 0
	}
	return int64(b)
}

func (bv *BitVec) String() string {
	if bv.IsSymbolic() {
		return fmt.Sprintf("<sym %s>", bv.name)
	}
	return fmt.Sprintf("0x%02x", byte(bv.Value()))
}
