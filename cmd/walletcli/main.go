// Command walletcli is a standalone, non-HTTP way to drive the wallet-key
// core: generate a fresh HD wallet or re-derive a leaf WIF from a known
// master extended private key, without standing up the dashboard.
package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rowbotony/croncoin-walletcore/internal/output"
	"github.com/rowbotony/croncoin-walletcore/internal/wallet"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "walletcli",
		Version: version,
		Short:   "walletcli - standalone CLI for the HD wallet-key core",
		Long:    `A standalone CLI for synthesizing HD wallets and re-deriving leaf keys, with no daemon required.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := cmd.Help(); err != nil {
				fmt.Printf("Error showing help: %v\n", err)
			}
		},
	}

	var (
		passphrase  string
		promptPass  bool
		path        string
		entropyBits int
		hrp         string
		format      string
		masterTprv  string
		derivePath  string
	)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize a fresh HD wallet end to end",
		Long:  `Draws entropy, derives a mnemonic and seed, walks the derivation path, and prints the resulting keys and address.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if promptPass {
				fmt.Print("Enter BIP-39 passphrase: ")
				pw, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Println()
				if err != nil {
					return fmt.Errorf("failed to read passphrase: %w", err)
				}
				passphrase = string(pw)
			}

			result, err := wallet.Synthesize(wallet.Options{
				EntropyBits: entropyBits,
				Passphrase:  passphrase,
				Path:        path,
				HRP:         hrp,
			})
			if err != nil {
				return err
			}
			return output.Result(result, format, os.Stdout)
		},
	}
	generateCmd.Flags().StringVar(&passphrase, "passphrase", "", "BIP-39 passphrase (default empty)")
	generateCmd.Flags().BoolVar(&promptPass, "prompt-passphrase", false, "read the passphrase interactively instead of via --passphrase")
	generateCmd.Flags().StringVar(&path, "path", wallet.DefaultPath, "derivation path")
	generateCmd.Flags().IntVar(&entropyBits, "entropy-bits", 128, "entropy size: 128, 160, 192, 224, or 256")
	generateCmd.Flags().StringVar(&hrp, "hrp", wallet.DefaultHRP, "bech32 human-readable part for the resulting address")
	generateCmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")

	deriveCmd := &cobra.Command{
		Use:   "derive",
		Short: "Re-derive a leaf private key's WIF from a master extended private key",
		Long:  `Parses a master tprv and a derivation path, walks CKDpriv, and prints the leaf WIF.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if masterTprv == "" {
				return fmt.Errorf("--master is required")
			}
			if derivePath == "" {
				return fmt.Errorf("--path is required")
			}
			wif, err := wallet.DeriveWIF(masterTprv, derivePath)
			if err != nil {
				return err
			}
			return output.Result(map[string]string{"private_key_wif": wif}, format, os.Stdout)
		},
	}
	deriveCmd.Flags().StringVar(&masterTprv, "master", "", "master extended private key (tprv..., required)")
	deriveCmd.Flags().StringVar(&derivePath, "path", "", "derivation path, e.g. m/84h/1h/0h/0/0 (required)")
	deriveCmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(deriveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
