package cmd

import (
	"fmt"

	"github.com/kristkit/krist/wallet"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new wallet",
	Long: `Initialize a new Krist wallet with a secure recovery phrase.

This command will:
  - Generate a new 24-word recovery phrase
  - Derive your Krist private key and address from it
  - Store the private key in an encrypted vault

Import an existing wallet instead with:
  krist init --import             # From a recovery phrase
  krist init --wallet-password    # From a KristWallet password
  krist init --private-key        # From a raw private key`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("import", false, "Import a recovery phrase")
	initCmd.Flags().Bool("wallet-password", false, "Import a KristWallet password")
	initCmd.Flags().Bool("private-key", false, "Import a raw private key")
}

func runInit(cmd *cobra.Command, args []string) error {
	manager := newManager()

	// Check if wallet already exists
	if manager.VaultExists() {
		return fmt.Errorf("wallet already exists. Remove %s to create a new wallet", manager.Path())
	}

	importPhrase, _ := cmd.Flags().GetBool("import")
	importPassword, _ := cmd.Flags().GetBool("wallet-password")
	importKey, _ := cmd.Flags().GetBool("private-key")

	fmt.Println("🚀 Initializing Krist Wallet")
	fmt.Println()

	var secret string
	var err error
	switch {
	case importPhrase:
		secret, err = readSecret("Enter your recovery phrase: ")
	case importPassword:
		secret, err = readSecret("Enter your KristWallet password: ")
	case importKey:
		secret, err = readSecret("Enter your private key: ")
	}
	if err != nil {
		return err
	}

	password, err := readNewPassword()
	if err != nil {
		return err
	}

	switch {
	case importPhrase:
		err = manager.ImportFromMnemonic(secret, password)
	case importPassword:
		err = manager.ImportWalletPassword(secret, password)
	case importKey:
		err = manager.ImportPrivateKey(secret, password)
	default:
		fmt.Println("Generating wallet...")
		var mnemonic string
		mnemonic, err = manager.Initialize(password)
		if err == nil {
			showRecoveryPhrase(mnemonic)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to initialize wallet: %w", err)
	}

	address, err := manager.Address()
	if err != nil {
		return fmt.Errorf("failed to get address: %w", err)
	}

	fmt.Println("✅ Wallet initialized successfully!")
	fmt.Printf("📍 Address: %s\n", cyan(address))
	fmt.Println("💡 Use 'krist balance' to check your balance")
	fmt.Println("💡 Use 'krist whoami' to verify the wallet with the node")
	return nil
}

// readNewPassword asks for a vault password twice
func readNewPassword() (string, error) {
	password, err := readSecret("Enter a password for your wallet: ")
	if err != nil {
		return "", err
	}
	if len(password) < 8 {
		return "", fmt.Errorf("password must be at least 8 characters long")
	}

	confirmPassword, err := readSecret("Confirm password: ")
	if err != nil {
		return "", err
	}
	if password != confirmPassword {
		return "", fmt.Errorf("passwords do not match")
	}
	return password, nil
}

func showRecoveryPhrase(mnemonic string) {
	fmt.Println()
	fmt.Printf("🔐 Recovery Phrase (%d words):\n", wallet.MnemonicEntropyBits*3/32)
	fmt.Println()
	fmt.Printf("   %s\n", yellow(mnemonic))
	fmt.Println()
	fmt.Println("⚠️  IMPORTANT:")
	fmt.Println("   - Write down this recovery phrase and store it securely")
	fmt.Println("   - Anyone with this phrase can spend your Krist")
	fmt.Println("   - View it again later with 'krist recovery-phrase'")
	fmt.Println()
}
