package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/kristkit/krist/config"
	"github.com/kristkit/krist/logx"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "krist",
	Short: "A command-line client and wallet for the Krist ledger",
	Long: `Krist is a command-line client for the Krist ledger's public API.
It looks up addresses, blocks, transactions and names, and sends Krist
from a locally encrypted wallet.

Features:
  • Address, block, transaction and name lookups
  • Rich list and latest activity
  • Encrypted local wallet (scrypt + AES-256-GCM)
  • 24-word recovery phrase
  • Transfers with metadata
  • Block submission
  • CSV export of transaction history

Security:
  • Private keys are decrypted only for the call that needs them
  • Private keys are never logged or written in plaintext

Examples:
  krist init                          # Create new wallet
  krist balance                       # Show your balance
  krist address kre3w0i79j            # Look up an address
  krist transactions --latest         # Latest network transactions
  krist pay kre3w0i79j 10             # Send 10 KST
  krist node https://krist.dev        # Switch node`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress output")
	rootCmd.PersistentFlags().String("node", "", "Krist node URL (overrides config)")
	rootCmd.PersistentFlags().String("config", "", "config file (default ~/.krist/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(addressesCmd)
	rootCmd.AddCommand(namesCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(txCmd)
	rootCmd.AddCommand(blocksCmd)
	rootCmd.AddCommand(rewardCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(payCmd)
	rootCmd.AddCommand(nodeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Krist CLI v%s\n", version)
	},
}

// setup applies logging flags and loads configuration before any command
func setup(cmd *cobra.Command) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	switch {
	case quiet:
		logx.SetLevel(logx.LevelSilent)
	case verbose:
		logx.SetLevel(logx.LevelDebug)
	default:
		logx.SetLevel(logx.LevelWarn)
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	loaded, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if node, _ := cmd.Flags().GetString("node"); node != "" {
		loaded.Node.URL = node
	}

	cfg = loaded
	cfgPath = path
	logx.Debug("config", "node ", cfg.Node.URL, ", wallet ", cfg.Wallet.Dir)
	return nil
}
