package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kristkit/krist/config"
	"github.com/kristkit/krist/logx"
	"github.com/spf13/cobra"
)

var nodeCmd = &cobra.Command{
	Use:   "node [url]",
	Short: "Show or change the Krist node",
	Long: `Show the current node with its message of the day, supply and
difficulty, or switch to another node.

Examples:
  krist node                         # Show current node
  krist node https://krist.dev       # Switch node
  krist node default                 # Back to the public node`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNode,
}

func runNode(cmd *cobra.Command, args []string) error {
	// If no arguments provided, show current node
	if len(args) == 0 {
		return showCurrentNode(cmd)
	}

	node := strings.TrimRight(args[0], "/")
	if node == "default" {
		node = config.DefaultNode
	}

	// Validate node argument
	u, err := url.Parse(node)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid node URL: %s. Use http(s)://host", args[0])
	}

	return setNode(node)
}

func showCurrentNode(cmd *cobra.Command) error {
	client := newClient()
	ctx := cmd.Context()

	fmt.Printf("🌐 Current node: %s\n", green(client.BaseURL()))
	fmt.Println()

	motd, err := client.GetMOTD(ctx)
	if err != nil {
		fmt.Printf("❌ Node unreachable: %v\n", err)
		return nil
	}
	if motd.MOTD != "" {
		fmt.Printf("📢 %s\n", motd.MOTD)
		fmt.Println()
	}

	fmt.Println("Network details:")
	if supply, err := client.GetSupply(ctx); err == nil {
		fmt.Printf("   - Supply: %s\n", formatKST(supply))
	} else {
		fmt.Printf("   - Supply: %s\n", red(err.Error()))
	}
	if work, err := client.GetWork(ctx); err == nil {
		fmt.Printf("   - Work:   %d\n", work)
	} else {
		fmt.Printf("   - Work:   %s\n", red(err.Error()))
	}
	if reward, err := client.GetBlockReward(ctx); err == nil {
		fmt.Printf("   - Reward: %s\n", formatKST(reward))
	} else {
		fmt.Printf("   - Reward: %s\n", red(err.Error()))
	}
	if motd.DebugMode {
		fmt.Println()
		fmt.Println(yellow("⚠️  This node runs in debug mode"))
	}
	return nil
}

// setNode persists node to the config file. Only node.url changes, so
// environment and flag overrides stay out of the file.
func setNode(node string) error {
	file, err := config.LoadFile(cfgPath)
	if err != nil {
		return err
	}
	file.Node.URL = node
	if err := config.Save(cfgPath, file); err != nil {
		return err
	}
	cfg.Node.URL = node
	logx.Info("config", "node set to ", node, " in ", cfgPath)

	fmt.Printf("🌐 Switched to %s\n", green(node))
	if node != config.DefaultNode {
		fmt.Println()
		fmt.Println("⚠️  You are not using the public Krist node")
		fmt.Println("💡 Run 'krist node default' to switch back")
	}
	return nil
}
