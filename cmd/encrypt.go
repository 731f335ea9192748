package main

import (
	"fmt"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
	"github.com/spf13/cobra"

	"rc4sym/internal/rc4"
	"rc4sym/internal/util"
)

var Key string

var encryptCommand = &cobra.Command{
	Use:   "encrypt <message>",
	Short: "encrypt a message, printing hex ciphertext",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := encryptExec(args[0]); err != nil {
			fmt.Printf("service err: %v\n", err)
		}
	},
}

var decryptCommand = &cobra.Command{
	Use:   "decrypt <hex ciphertext>",
	Short: "decrypt hex ciphertext",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := decryptExec(args[0]); err != nil {
			fmt.Printf("service err: %v\n", err)
		}
	},
}

func init() {
	encryptCommand.Flags().StringVar(&Key, "key", "", "cipher key, raw string or 0x-prefixed hex")
	decryptCommand.Flags().StringVar(&Key, "key", "", "cipher key, raw string or 0x-prefixed hex")
}

func encryptExec(message string) error {
	yices2.Init()
	defer yices2.Exit()

	key, err := util.ParseBytes(Key)
	if err != nil {
		return err
	}
	ciphertext, err := rc4.Encrypt(key, []byte(message))
	if err != nil {
		return err
	}
	fmt.Println(util.EncodeHex(ciphertext))
	return nil
}

func decryptExec(input string) error {
	yices2.Init()
	defer yices2.Exit()

	key, err := util.ParseBytes(Key)
	if err != nil {
		return err
	}
	ciphertext, err := util.ParseHex(input)
	if err != nil {
		return err
	}
	plaintext, err := rc4.Decrypt(key, ciphertext)
	if err != nil {
		return err
	}
	fmt.Println(string(plaintext))
	return nil
}
