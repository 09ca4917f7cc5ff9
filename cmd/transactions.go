package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kristkit/krist/api"
	"github.com/spf13/cobra"
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions [address]",
	Short: "Show transaction history with pagination",
	Long: `Show transactions of an address, or of the whole network with --all
or --latest.

Examples:
  krist transactions                     # Your wallet's transactions
  krist transactions kre3w0i79j          # Transactions of an address
  krist transactions --latest            # Latest network transactions
  krist transactions --all --page 2      # All transactions, page 2
  krist transactions --exclude-mined     # Hide block rewards`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTransactions,
}

var txCmd = &cobra.Command{
	Use:   "tx <id>",
	Short: "Show a transaction",
	Long: `Show a single transaction by id.

Example:
  krist tx 1007`,
	Args: cobra.ExactArgs(1),
	RunE: runTx,
}

func init() {
	addPaginationFlags(transactionsCmd)
	transactionsCmd.Flags().Bool("latest", false, "Latest network transactions")
	transactionsCmd.Flags().Bool("all", false, "All network transactions")
	transactionsCmd.Flags().Bool("exclude-mined", false, "Hide mined (block reward) transactions")
}

func runTransactions(cmd *cobra.Command, args []string) error {
	opts, err := listOptions(cmd)
	if err != nil {
		return err
	}
	opts.ExcludeMined, _ = cmd.Flags().GetBool("exclude-mined")
	latest, _ := cmd.Flags().GetBool("latest")
	all, _ := cmd.Flags().GetBool("all")

	client := newClient()

	// Show loading indicator
	fmt.Println("🔄 Loading transactions...")
	startTime := time.Now()

	var list *api.TransactionList
	var self string
	switch {
	case latest:
		fmt.Println("📜 Latest transactions")
		list, err = client.ListLatestTransactions(cmd.Context(), opts)
	case all:
		fmt.Println("📜 All transactions")
		list, err = client.ListTransactions(cmd.Context(), opts)
	default:
		self, err = resolveAddress(args)
		if err != nil {
			return err
		}
		fmt.Printf("📜 Transaction history for %s\n", cyan(self))
		list, err = client.GetRecentTransactions(cmd.Context(), self, opts)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch transactions: %w", err)
	}
	if err := ledgerError("failed to fetch transactions", list.Status); err != nil {
		return err
	}
	fmt.Println()

	if len(list.Transactions) == 0 {
		fmt.Println("No transactions found")
	}
	for _, tx := range list.Transactions {
		displayTransaction(tx, self)
	}

	showPaginationInfo(opts, list.Count, list.Total)
	elapsed := time.Since(startTime)
	fmt.Printf("\n⏱️ Loaded in %v\n", elapsed.Round(time.Millisecond*10))
	return nil
}

// displayTransaction prints one transaction, relative to self when set
func displayTransaction(tx api.Transaction, self string) {
	icon := "➡️"
	switch {
	case tx.IsMined():
		icon = "⛏️"
	case self != "" && tx.To == self:
		icon = "⬇️"
	case self != "" && tx.From == self:
		icon = "⬆️"
	}

	from := tx.From
	if from == "" {
		from = "(mined)"
	}
	to := tx.To
	if tx.SentName != "" {
		to = fmt.Sprintf("%s (%s.kst)", tx.To, tx.SentName)
	}

	amount := formatKST(tx.Value)
	if self != "" && tx.From == self && tx.To != self {
		amount = red("-" + amount)
	} else {
		amount = green(amount)
	}

	fmt.Printf("%s  #%d  %s\n", icon, tx.ID, amount)
	fmt.Printf("   %s → %s\n", from, to)
	fmt.Printf("   %s  %s\n", shortTime(tx.Time), tx.Type)
	if tx.Metadata != "" {
		fmt.Printf("   📝 %s\n", tx.Metadata)
	}
	fmt.Println()
}

func runTx(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return fmt.Errorf("invalid transaction id: %s", args[0])
	}

	resp, err := newClient().GetTransaction(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to fetch transaction: %w", err)
	}
	if err := ledgerError("failed to fetch transaction", resp.Status); err != nil {
		return err
	}
	if resp.Transaction == nil {
		return fmt.Errorf("transaction data not found in response")
	}

	displayTransaction(*resp.Transaction, "")
	return nil
}
