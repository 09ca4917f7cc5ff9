package cmd

import (
	"fmt"

	"github.com/kristkit/krist/api"
	"github.com/kristkit/krist/crypto"
	"github.com/spf13/cobra"
)

var payCmd = &cobra.Command{
	Use:   "pay [to] [amount]",
	Short: "Send Krist",
	Long: `Send Krist to an address or a .kst name.

Examples:
  krist pay kre3w0i79j 10
  krist pay example.kst 25 --metadata "thanks!"
  krist pay kre3w0i79j 5 --prompt-key     # Use a raw private key`,
	Args: cobra.ExactArgs(2),
	RunE: runPay,
}

func init() {
	payCmd.Flags().StringP("metadata", "m", "", "Metadata to attach to the transaction")
	payCmd.Flags().Bool("prompt-key", false, "Prompt for a private key instead of using the wallet")
	payCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func runPay(cmd *cobra.Command, args []string) error {
	to := args[0]
	if !validRecipient(to) {
		return fmt.Errorf("invalid recipient: %s. Use a Krist address or a .kst name", to)
	}

	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	metadata, _ := cmd.Flags().GetString("metadata")
	promptKey, _ := cmd.Flags().GetBool("prompt-key")
	skipConfirm, _ := cmd.Flags().GetBool("yes")

	// The private key only lives in this function.
	var privateKey string
	if promptKey {
		privateKey, err = readSecret("Enter private key: ")
		if err != nil {
			return err
		}
	} else {
		manager := newManager()
		if !manager.VaultExists() {
			return fmt.Errorf("no wallet found. Run 'krist init' first or use --prompt-key")
		}
		password, err := readSecret("Enter your wallet password: ")
		if err != nil {
			return err
		}
		privateKey, err = manager.PrivateKey(password)
		if err != nil {
			return fmt.Errorf("failed to unlock wallet: %w", err)
		}
	}
	if privateKey == "" {
		return fmt.Errorf("private key is empty")
	}

	client := newClient()
	sender := api.NewAddress(client, crypto.MakeV2Address(privateKey, crypto.AddressPrefix))

	// Check balance
	balance, err := sender.Balance(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to check balance: %w", err)
	}
	if balance < amount {
		return fmt.Errorf("insufficient funds. You're trying to send %s but the balance of %s is only %s",
			formatKST(amount), sender.Address(), formatKST(balance))
	}

	// Display transaction details for confirmation
	fmt.Println("🟢 Sending Krist")
	fmt.Println()
	fmt.Printf("📊 Transaction Details:\n")
	fmt.Printf("   From:     %s\n", sender.Address())
	fmt.Printf("   To:       %s\n", to)
	fmt.Printf("   Amount:   %s\n", formatKST(amount))
	if metadata != "" {
		fmt.Printf("   Metadata: %s\n", metadata)
	}
	fmt.Printf("   Node:     %s\n", cfg.Node.URL)
	fmt.Println()

	if !skipConfirm {
		fmt.Printf("🚨 By confirming this transaction %s will be sent to %s.\n", formatKST(amount), to)
		if !confirm("Press y to confirm or n to stop") {
			fmt.Println("❌ Transaction cancelled by user")
			return nil
		}
	}

	resp, err := client.MakeTransaction(cmd.Context(), privateKey, to, amount, metadata)
	if err != nil {
		return fmt.Errorf("failed to send transaction: %w", err)
	}
	if err := ledgerError("transaction rejected", resp.Status); err != nil {
		return err
	}

	fmt.Println("✅ Transaction sent successfully!")
	if resp.Transaction != nil {
		fmt.Printf("🔗 Transaction ID: %d\n", resp.Transaction.ID)
	}
	return nil
}
