package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Verify your wallet with the node",
	Long: `Unlock your wallet and ask the node which address its private key
controls. The answer should match your local wallet address.`,
	Args: cobra.NoArgs,
	RunE: runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	manager := newManager()
	if !manager.VaultExists() {
		return fmt.Errorf("no wallet found. Run 'krist init' first")
	}

	local, err := manager.Address()
	if err != nil {
		return fmt.Errorf("failed to get address: %w", err)
	}

	password, err := readSecret("Enter your wallet password: ")
	if err != nil {
		return err
	}
	privateKey, err := manager.PrivateKey(password)
	if err != nil {
		return fmt.Errorf("failed to unlock wallet: %w", err)
	}

	resp, err := newClient().Login(cmd.Context(), privateKey)
	if err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}
	if err := ledgerError("login failed", resp.Status); err != nil {
		return err
	}
	if !resp.Authed {
		return fmt.Errorf("node rejected the private key")
	}

	fmt.Printf("📍 Wallet address: %s\n", cyan(local))
	fmt.Printf("🌐 Node says:      %s\n", cyan(resp.Address))
	if resp.Address != local {
		fmt.Println(red("⚠️  Addresses differ. The node may use another address prefix."))
		return nil
	}
	fmt.Println("✅ Wallet verified")
	return nil
}
