package smt

import (
	"testing"
	"time"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
	"github.com/stretchr/testify/assert"
)

func Test_CheckSat(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	var (
		x = NewByte("x")
		y = NewByte("y")
	)
	solver := NewSolver()
	status, model, err := solver.Check(
		x.Xor(y).Eq(NewByteVal(0xFF)).GetRaw(),
		x.Eq(NewByteVal(0x0F)).GetRaw(),
	)
	assert.Nil(t, err)
	assert.Equal(t, yices2.StatusSat, status)

	v, err := solver.ByteValue(model, y.GetRaw())
	assert.Nil(t, err)
	assert.Equal(t, byte(0xF0), v)
}

func Test_CheckUnsat(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	x := NewByte("x")
	solver := NewSolver()
	status, _, err := solver.Check(x.Ne(x).GetRaw())
	assert.Nil(t, err)
	assert.Equal(t, yices2.StatusUnsat, status)
}

func Test_CheckWithTimeout(t *testing.T) {
	yices2.Init()
	defer yices2.Exit()

	x := NewByte("x")

	// a generous timeout behaves like a plain Check
	solver := NewSolver()
	status, _, err := solver.CheckWithTimeout(time.Minute, x.Eq(NewByteVal(1)).GetRaw())
	assert.Nil(t, err)
	assert.Equal(t, yices2.StatusSat, status)

	// zero means block forever
	solver = NewSolver()
	status, _, err = solver.CheckWithTimeout(0, x.Eq(NewByteVal(1)).GetRaw())
	assert.Nil(t, err)
	assert.Equal(t, yices2.StatusSat, status)
}
