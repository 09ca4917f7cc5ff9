package cmd

import (
	"fmt"

	"github.com/kristkit/krist/crypto"
	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit <nonce>",
	Short: "Submit a mining solution",
	Long: `Submit a block solution found by a miner. The reward goes to --address,
or to your wallet's address when it is not given.

Examples:
  krist submit 2837491
  krist submit 2837491 --address kre3w0i79j`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().String("address", "", "Address to credit the block reward to")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	address, _ := cmd.Flags().GetString("address")
	if address == "" {
		var err error
		address, err = resolveAddress(nil)
		if err != nil {
			return err
		}
	}
	if !crypto.IsV2Address(address) {
		return fmt.Errorf("invalid address: %s", address)
	}

	client := newClient()
	work, err := client.GetWork(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch work: %w", err)
	}
	fmt.Printf("⛏️  Submitting nonce %s for %s (work %d)\n", args[0], cyan(address), work)

	resp, err := client.SubmitBlock(cmd.Context(), address, args[0])
	if err != nil {
		return fmt.Errorf("failed to submit block: %w", err)
	}
	if err := ledgerError("block rejected", resp.Status); err != nil {
		return err
	}

	if !resp.Success {
		reason := resp.Error
		if reason == "" {
			reason = "solution incorrect"
		}
		fmt.Printf("❌ Solution rejected: %s\n", red(reason))
		return nil
	}

	fmt.Println("✅ Block accepted!")
	if resp.Block != nil {
		fmt.Println()
		displayBlock(*resp.Block)
	}
	if resp.Address != nil {
		fmt.Printf("💰 New balance: %s\n", green(formatKST(resp.Address.Balance)))
	}
	fmt.Printf("📈 Next work: %d\n", resp.Work)
	return nil
}
