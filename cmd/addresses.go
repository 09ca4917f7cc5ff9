package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addressesCmd = &cobra.Command{
	Use:     "addresses",
	Aliases: []string{"rich"},
	Short:   "List addresses",
	Long: `List known Krist addresses, or the richest ones with --rich.

Examples:
  krist addresses              # All addresses
  krist addresses --rich       # Rich list
  krist rich --limit 25        # Top 25`,
	Args: cobra.NoArgs,
	RunE: runAddresses,
}

func init() {
	addPaginationFlags(addressesCmd)
	addressesCmd.Flags().Bool("rich", false, "Order by balance, richest first")
}

func runAddresses(cmd *cobra.Command, args []string) error {
	opts, err := listOptions(cmd)
	if err != nil {
		return err
	}

	rich, _ := cmd.Flags().GetBool("rich")
	if cmd.CalledAs() == "rich" {
		rich = true
	}

	client := newClient()
	fetch, title := client.GetAllAddresses, "📒 Addresses"
	if rich {
		fetch, title = client.GetRichestAddresses, "🏆 Richest addresses"
	}

	list, err := fetch(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("failed to fetch addresses: %w", err)
	}
	if err := ledgerError("failed to fetch addresses", list.Status); err != nil {
		return err
	}

	fmt.Println(title)
	fmt.Println()
	for i, record := range list.Addresses {
		fmt.Printf("%4d. %s  %s\n", opts.Offset+i+1, cyan(record.Address), green(formatKST(record.Balance)))
	}
	fmt.Println()
	showPaginationInfo(opts, list.Count, list.Total)
	return nil
}
