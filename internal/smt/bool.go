package smt

import (
	"fmt"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
)

// Bool wraps a yices boolean term, concrete or symbolic.
type Bool struct {
	name  string
	value yices2.TermT
}

func NewBoolVal(value bool) *Bool {
	if value {
		return &Bool{
			value: yices2.True(),
		}
	}
	return &Bool{
		value: yices2.False(),
	}
}

func NewBoolFromTerm(term yices2.TermT) *Bool {
	return &Bool{
		value: term,
	}
}

func (b *Bool) GetRaw() yices2.TermT {
	return b.value
}

func (b *Bool) Type() string {
	return BoolType
}

func (b *Bool) Not() *Bool {
	return &Bool{
		name:  "",
		value: yices2.Not(b.value),
	}
}

func (b *Bool) And(other *Bool) *Bool {
	return &Bool{
		name:  "",
		value: yices2.And2(b.value, other.value),
	}
}

func (b *Bool) Or(other *Bool) *Bool {
	return &Bool{
		name:  "",
		value: yices2.Or2(b.value, other.value),
	}
}

func (b *Bool) IsTrue() bool {
	var val int32
	errcode := yices2.BoolConstValue(b.value, &val)
	if errcode != 0 {
		fmt.Println("errocode ", errcode, ", ", yices2.ErrorString(), ", type ", yices2.TypeOfTerm(b.value))
	}
	return val != 0
}

func (b *Bool) IsFalse() bool {
	var val int32
	errcode := yices2.BoolConstValue(b.value, &val)
	if errcode != 0 {
		fmt.Println(yices2.ErrorString())
	}
	return val == 0
}

func (b *Bool) Value() bool {
	return b.IsTrue()
}

func (b *Bool) IsSymbolic() bool {
	termC := yices2.TermConstructor(b.value)
	return yices2.TrmCnstrBoolConstant != termC
}
