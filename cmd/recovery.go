package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recoveryPhraseCmd = &cobra.Command{
	Use:   "recovery-phrase",
	Short: "Show your recovery phrase",
	Long: `Decrypt and display the recovery phrase of your wallet.
Wallets imported from a private key or KristWallet password have none.`,
	Args: cobra.NoArgs,
	RunE: runRecoveryPhrase,
}

func init() {
	rootCmd.AddCommand(recoveryPhraseCmd)
}

func runRecoveryPhrase(cmd *cobra.Command, args []string) error {
	manager := newManager()
	if !manager.VaultExists() {
		return fmt.Errorf("no wallet found. Run 'krist init' first")
	}

	password, err := readSecret("Enter your wallet password: ")
	if err != nil {
		return err
	}

	mnemonic, err := manager.Mnemonic(password)
	if err != nil {
		return err
	}

	if !confirm("⚠️  Anyone who sees this phrase can spend your Krist. Show it?") {
		fmt.Println("❌ Cancelled")
		return nil
	}
	showRecoveryPhrase(mnemonic)
	return nil
}
