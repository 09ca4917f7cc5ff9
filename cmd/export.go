package cmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kristkit/krist/api"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// exportPageSize is the largest page the node serves
const exportPageSize = 1000

var exportCmd = &cobra.Command{
	Use:   "export [address]",
	Short: "Export transaction history to CSV",
	Long: `Export the full transaction history of an address to a CSV file.
Without an argument, your wallet's history is exported.

Examples:
  krist export                              # Your wallet
  krist export kre3w0i79j -o history.csv    # Any address`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file (default krist-<address>-<date>.csv)")
	exportCmd.Flags().Bool("exclude-mined", false, "Skip mined (block reward) transactions")
}

func runExport(cmd *cobra.Command, args []string) error {
	address, err := resolveAddress(args)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = fmt.Sprintf("krist-%s-%s.csv", address, time.Now().Format("20060102"))
	}
	excludeMined, _ := cmd.Flags().GetBool("exclude-mined")

	fmt.Printf("📊 Exporting transactions of %s...\n", cyan(address))
	fmt.Println()

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	client := newClient()
	total, err := exportTransactions(cmd.Context(), client, address, excludeMined, file, newExportBar)
	if err != nil {
		return fmt.Errorf("failed to export transactions: %w", err)
	}

	abs, _ := filepath.Abs(output)
	fmt.Println()
	fmt.Println("📁 Export completed successfully!")
	fmt.Printf("📍 File saved to: %s\n", abs)
	fmt.Printf("📊 Transactions: %d\n", total)
	fmt.Println()
	fmt.Println("💡 You can now import this file into spreadsheet applications or use it for record keeping.")
	return nil
}

func newExportBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan][1/1][reset] Fetching transactions..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

var exportHeader = []string{"id", "time", "type", "from", "to", "value", "name", "sent_name", "sent_metaname", "metadata"}

// exportTransactions pages through an address's history and writes it as
// CSV. The bar is created once the node reports the total.
func exportTransactions(ctx context.Context, client *api.Client, address string, excludeMined bool, w io.Writer, newBar func(int) *progressbar.ProgressBar) (int, error) {
	out := csv.NewWriter(w)
	if err := out.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	var bar *progressbar.ProgressBar
	written := 0
	for offset := 0; ; offset += exportPageSize {
		page, err := client.GetRecentTransactions(ctx, address, &api.ListOptions{
			Limit:        exportPageSize,
			Offset:       offset,
			ExcludeMined: excludeMined,
		})
		if err != nil {
			return written, err
		}
		if err := page.Err(); err != nil {
			return written, err
		}

		if bar == nil && newBar != nil {
			bar = newBar(page.Total)
		}

		for _, tx := range page.Transactions {
			record := []string{
				strconv.FormatInt(tx.ID, 10),
				tx.Time.UTC().Format(time.RFC3339),
				tx.Type,
				tx.From,
				tx.To,
				strconv.FormatInt(tx.Value, 10),
				tx.Name,
				tx.SentName,
				tx.SentMetaname,
				tx.Metadata,
			}
			if err := out.Write(record); err != nil {
				return written, fmt.Errorf("failed to write record: %w", err)
			}
			written++
		}
		if bar != nil {
			bar.Add(len(page.Transactions))
		}

		if len(page.Transactions) < exportPageSize || offset+len(page.Transactions) >= page.Total {
			break
		}
	}

	out.Flush()
	if err := out.Error(); err != nil {
		return written, fmt.Errorf("failed to flush export: %w", err)
	}
	if bar != nil {
		bar.Finish()
	}
	return written, nil
}
