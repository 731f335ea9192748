package smt

import (
	"fmt"
	"time"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
)

// Solver owns one yices context. Callers are expected to have run
// yices2.Init() before constructing one.
type Solver struct {
	ctx yices2.ContextT
}

func NewSolver() *Solver {
	s := &Solver{
		ctx: yices2.ContextT{},
	}
	yices2.InitContext(yices2.ConfigT{}, &s.ctx)
	return s
}

// Check asserts the given formulas and decides satisfiability,
// blocking until the solver returns.
func (s *Solver) Check(terms ...yices2.TermT) (yices2.SmtStatusT, *yices2.ModelT, error) {
	errorcode := yices2.AssertFormulas(s.ctx, terms)
	if errorcode < 0 {
		return yices2.StatusError, nil, fmt.Errorf("%s", yices2.ErrorString())
	}
	status := yices2.CheckContext(s.ctx, yices2.ParamT{})
	switch status {
	case yices2.StatusSat:
		return status, yices2.GetModel(s.ctx, 1), nil
	case yices2.StatusUnsat:
		fallthrough
	case yices2.StatusIdle:
		fallthrough
	case yices2.StatusSearching:
		fallthrough
	case yices2.StatusInterrupted:
		fallthrough
	case yices2.StatusError:
		return status, nil, nil
	}
	return yices2.StatusError, nil, nil
}

// CheckWithTimeout runs Check in the background and gives up after the
// given duration, reporting StatusInterrupted. The abandoned solver
// call keeps its goroutine until yices returns; interruption of the
// search itself is left to the solver runtime. A non-positive timeout
// means block forever.
func (s *Solver) CheckWithTimeout(timeout time.Duration, terms ...yices2.TermT) (yices2.SmtStatusT, *yices2.ModelT, error) {
	if timeout <= 0 {
		return s.Check(terms...)
	}

	type checkResult struct {
		status yices2.SmtStatusT
		model  *yices2.ModelT
		err    error
	}
	done := make(chan checkResult, 1)
	go func() {
		status, model, err := s.Check(terms...)
		done <- checkResult{status: status, model: model, err: err}
	}()

	select {
	case result := <-done:
		return result.status, result.model, result.err
	case <-time.After(timeout):
		return yices2.StatusInterrupted, nil, nil
	}
}

func (s *Solver) GetContext() yices2.ContextT {
	return s.ctx
}

// ByteValue reads the model assignment of an 8-bit term.
func (s *Solver) ByteValue(model *yices2.ModelT, term yices2.TermT) (byte, error) {
	intVal := make([]int32, ByteSize)
	errcode := yices2.GetBvValue(*model, term, intVal)
	if errcode != 0 {
		return 0, fmt.Errorf("%s", yices2.ErrorString())
	}
	var b byte
	for i := range intVal {
		if intVal[i] == 1 {
			b |= 1 << i
		}
	}
	return b, nil
}

func (s *Solver) GetInt64Value(model *yices2.ModelT, term yices2.TermT) (int64, error) {
	var val int64
	errcode := yices2.GetInt64Value(*model, term, &val)
	if errcode != 0 {
		return 0, fmt.Errorf(yices2.ErrorString())
	}
	return val, nil
}
