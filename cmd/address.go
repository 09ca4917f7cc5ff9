package cmd

import (
	"fmt"

	"github.com/kristkit/krist/api"
	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address [address]",
	Short: "Show an address",
	Long: `Show balance, totals and first-seen time of a Krist address.
Without an argument, your wallet's address is shown.

Examples:
  krist address              # Your wallet address
  krist address kre3w0i79j   # Any address`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAddress,
}

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Check a balance",
	Long: `Check the balance of a Krist address.
Without an argument, your wallet's balance is shown.

Examples:
  krist balance              # Your wallet balance
  krist balance kre3w0i79j   # Any address`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBalance,
}

func runAddress(cmd *cobra.Command, args []string) error {
	address, err := resolveAddress(args)
	if err != nil {
		return err
	}

	resp, err := newClient().GetAddress(cmd.Context(), address)
	if err != nil {
		return fmt.Errorf("failed to fetch address: %w", err)
	}
	if err := ledgerError("failed to fetch address", resp.Status); err != nil {
		return err
	}
	if resp.Address == nil {
		return fmt.Errorf("address data not found in response")
	}

	record := resp.Address
	fmt.Printf("📍 Address:    %s\n", cyan(record.Address))
	fmt.Printf("💰 Balance:    %s\n", green(formatKST(record.Balance)))
	fmt.Printf("📥 Total in:   %s\n", formatKST(record.TotalIn))
	fmt.Printf("📤 Total out:  %s\n", formatKST(record.TotalOut))
	fmt.Printf("🕒 First seen: %s\n", shortTime(record.FirstSeen))
	return nil
}

func runBalance(cmd *cobra.Command, args []string) error {
	address, err := resolveAddress(args)
	if err != nil {
		return err
	}

	balance, err := api.NewAddress(newClient(), address).Balance(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch balance: %w", err)
	}

	fmt.Println("💰 Wallet Balance")
	fmt.Printf("🌐 Node: %s\n", cfg.Node.URL)
	fmt.Println()
	fmt.Printf("🟢 Krist: %s\n", green(formatKST(balance)))
	fmt.Printf("   📍 Address: %s\n", address)
	return nil
}
