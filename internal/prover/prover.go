// Package prover builds proof obligations over the symbolic cipher
// pipeline and discharges them to the SMT solver.
package prover

import (
	"fmt"
	"time"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"rc4sym/internal/rc4"
	"rc4sym/internal/smt"
)

// Verdict is the outcome of one solver dispatch.
type Verdict int

const (
	// Proved: the claim holds for every assignment of the free variables.
	Proved Verdict = iota
	// Counterexample: the solver found an assignment violating the claim.
	Counterexample
	// Inconclusive: the solver gave up or ran out of time.
	Inconclusive
	// EnvironmentError: the solver could not be driven at all.
	EnvironmentError
)

func (v Verdict) String() string {
	switch v {
	case Proved:
		return "proved"
	case Counterexample:
		return "counterexample"
	case Inconclusive:
		return "inconclusive"
	case EnvironmentError:
		return "environment error"
	}
	return fmt.Sprintf("verdict(%d)", int(v))
}

// Assignment is a concrete witness read back from a sat model.
type Assignment struct {
	Key       []byte
	Plaintext []byte
}

// Result pairs a verdict with the witness, present only for
// Counterexample.
type Result struct {
	Verdict    Verdict
	Assignment *Assignment
}

// Prover drives round-trip obligations. The zero timeout blocks until
// the solver decides; retry policy is entirely the caller's.
type Prover struct {
	timeout time.Duration
}

func NewProver() *Prover {
	return &Prover{}
}

func (p *Prover) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// ProveRoundTrip checks that decrypt(encrypt(key, pt)) == pt for every
// key of keyByteLen bytes and every plaintext of plaintextByteLen
// bytes. The claim is discharged by asserting its negation: a sat
// answer is a counterexample, unsat proves the round trip.
func (p *Prover) ProveRoundTrip(keyByteLen, plaintextByteLen int) (*Result, error) {
	if keyByteLen < 1 || keyByteLen > rc4.StateSize {
		return nil, errors.Errorf("invalid key length %d, want 1..%d", keyByteLen, rc4.StateSize)
	}
	if plaintextByteLen < 0 {
		return nil, errors.Errorf("invalid plaintext length %d", plaintextByteLen)
	}
	if plaintextByteLen == 0 {
		// nothing to recover, the round trip holds vacuously
		return &Result{Verdict: Proved}, nil
	}

	log.Infof("building round-trip obligation: %d key bytes, %d plaintext bytes", keyByteLen, plaintextByteLen)
	key := freeBytes("key", keyByteLen)
	plaintext := freeBytes("plaintext", plaintextByteLen)

	ciphertext, err := rc4.EncryptSym(key, plaintext)
	if err != nil {
		return nil, errors.Wrap(err, "EncryptSym")
	}
	recovered, err := rc4.EncryptSym(key, ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "EncryptSym")
	}

	// negated claim: some recovered byte differs from its plaintext byte
	var negated *smt.Bool
	for i := range plaintext {
		ne := recovered[i].Ne(plaintext[i])
		if negated == nil {
			negated = ne
		} else {
			negated = negated.Or(ne)
		}
	}

	solver := smt.NewSolver()
	log.Infof("dispatching obligation to solver (timeout %v)", p.timeout)
	startTime := time.Now()
	status, model, err := solver.CheckWithTimeout(p.timeout, negated.GetRaw())
	log.Infof("solver returned %v after %.2fs", status, time.Since(startTime).Seconds())
	if err != nil {
		log.Errorf("solver dispatch: %v", err)
		return &Result{Verdict: EnvironmentError}, nil
	}

	switch status {
	case yices2.StatusUnsat:
		return &Result{Verdict: Proved}, nil
	case yices2.StatusSat:
		assignment, err := readAssignment(solver, model, key, plaintext)
		if err != nil {
			log.Errorf("model readback: %v", err)
			return &Result{Verdict: EnvironmentError}, nil
		}
		return &Result{Verdict: Counterexample, Assignment: assignment}, nil
	case yices2.StatusInterrupted:
		return &Result{Verdict: Inconclusive}, nil
	}
	return &Result{Verdict: EnvironmentError}, nil
}

func freeBytes(prefix string, n int) []*smt.BitVec {
	result := make([]*smt.BitVec, n)
	for i := range result {
		result[i] = smt.NewByte(fmt.Sprintf("%s_%d", prefix, i))
	}
	return result
}

func readAssignment(solver *smt.Solver, model *yices2.ModelT, key, plaintext []*smt.BitVec) (*Assignment, error) {
	assignment := &Assignment{
		Key:       make([]byte, len(key)),
		Plaintext: make([]byte, len(plaintext)),
	}
	for i := range key {
		b, err := solver.ByteValue(model, key[i].GetRaw())
		if err != nil {
			return nil, errors.Wrapf(err, "key byte %d", i)
		}
		assignment.Key[i] = b
	}
	for i := range plaintext {
		b, err := solver.ByteValue(model, plaintext[i].GetRaw())
		if err != nil {
			return nil, errors.Wrapf(err, "plaintext byte %d", i)
		}
		assignment.Plaintext[i] = b
	}
	return assignment, nil
}
