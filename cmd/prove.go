package main

import (
	"fmt"
	"time"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
	"github.com/spf13/cobra"

	"rc4sym/internal/prover"
	"rc4sym/internal/util"
)

var (
	KeyBytes       int
	PlaintextBytes int
	ProveTimeout   time.Duration
)

var proveCommand = &cobra.Command{
	Use:   "prove",
	Short: "prove the encrypt/decrypt round trip for free key and plaintext",
	Long:  ``,
	Run: func(*cobra.Command, []string) {
		if err := proveExec(); err != nil {
			fmt.Printf("service err: %v\n", err)
		}
	},
}

func init() {
	proveCommand.Flags().IntVar(&KeyBytes, "key-bytes", 5, "number of free key bytes")
	proveCommand.Flags().IntVar(&PlaintextBytes, "plaintext-bytes", 5, "number of free plaintext bytes")
	proveCommand.Flags().DurationVar(&ProveTimeout, "timeout", 0, "solver timeout, 0 blocks until the solver decides")
}

func proveExec() error {
	yices2.Init()
	defer yices2.Exit()

	p := prover.NewProver()
	p.SetTimeout(ProveTimeout)
	result, err := p.ProveRoundTrip(KeyBytes, PlaintextBytes)
	if err != nil {
		return err
	}
	fmt.Println("verdict:", result.Verdict)
	if result.Assignment != nil {
		fmt.Println("key:      ", util.EncodeHex(result.Assignment.Key))
		fmt.Println("plaintext:", util.EncodeHex(result.Assignment.Plaintext))
	}
	return nil
}
