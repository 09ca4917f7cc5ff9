package cmd

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/kristkit/krist/api"
	"github.com/kristkit/krist/config"
	"github.com/kristkit/krist/crypto"
	"github.com/kristkit/krist/wallet"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfg     *config.Config
	cfgPath string
)

// newClient builds an API client for the configured node
func newClient() *api.Client {
	return api.NewClient(
		api.WithBaseURL(cfg.Node.URL),
		api.WithTimeout(cfg.Node.Timeout),
		api.WithUserAgent("krist-cli/"+version),
	)
}

func newManager() *wallet.Manager {
	return wallet.NewManager(cfg.Wallet.Dir)
}

// resolveAddress returns the address argument, or the wallet's address
// when none was given
func resolveAddress(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	address, err := newManager().Address()
	if err != nil {
		if errors.Is(err, wallet.ErrNoWallet) {
			return "", fmt.Errorf("no address given and no wallet found. Run 'krist init' first")
		}
		return "", fmt.Errorf("failed to get wallet address: %w", err)
	}
	return address, nil
}

// addPaginationFlags registers --limit and --page on cmd
func addPaginationFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("limit", "l", 0, "Results per page (1-1000, default from config)")
	cmd.Flags().IntP("page", "p", 1, "Page number")
}

// listOptions turns --limit and --page into API list options
func listOptions(cmd *cobra.Command) (*api.ListOptions, error) {
	limit, _ := cmd.Flags().GetInt("limit")
	page, _ := cmd.Flags().GetInt("page")

	if limit == 0 {
		limit = cfg.PageSize
	}
	if limit < 1 || limit > 1000 {
		return nil, fmt.Errorf("limit must be between 1 and 1000")
	}
	if page < 1 {
		return nil, fmt.Errorf("page must be 1 or greater")
	}

	return &api.ListOptions{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}, nil
}

// showPaginationInfo prints where the current page sits in the result set
func showPaginationInfo(opts *api.ListOptions, count, total int) {
	if total == 0 {
		return
	}
	page := opts.Offset/opts.Limit + 1
	pages := (total + opts.Limit - 1) / opts.Limit
	fmt.Printf("📄 Page %d/%d (%d of %d shown)\n", page, pages, count, total)
	if page < pages {
		fmt.Printf("💡 Use --page %d to see more\n", page+1)
	}
}

// parseAmount parses a whole, positive KST amount
func parseAmount(s string) (int64, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", s)
	}
	if !amount.IsInteger() {
		return 0, fmt.Errorf("amount must be a whole number of KST")
	}
	if !amount.IsPositive() {
		return 0, fmt.Errorf("amount must be greater than zero")
	}
	if amount.GreaterThan(decimal.NewFromInt(1<<53 - 1)) {
		return 0, fmt.Errorf("amount is too large")
	}
	return amount.IntPart(), nil
}

// formatKST renders an amount with thousands separators
func formatKST(amount int64) string {
	s := decimal.NewFromInt(amount).Abs().String()
	var b strings.Builder
	if amount < 0 {
		b.WriteByte('-')
	}
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String() + " KST"
}

// validRecipient accepts v2 addresses and .kst names (with optional metaname)
func validRecipient(to string) bool {
	if crypto.IsV2Address(to) {
		return true
	}
	return strings.HasSuffix(to, ".kst") && len(to) > len(".kst")
}

// ledgerError wraps the failure carried by a decoded response, if any
func ledgerError(what string, status api.Status) error {
	if err := status.Err(); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

// readSecret reads a line from the terminal without echoing it
func readSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after password input
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(secret), nil
}

// confirm asks a yes/no question, defaulting to no
func confirm(question string) bool {
	fmt.Printf("%s (y/n): ", question)

	var response string
	fmt.Scanln(&response)

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

func shortTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)
