package cmd

import (
	"fmt"
	"strconv"

	"github.com/kristkit/krist/api"
	"github.com/spf13/cobra"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks [height|last]",
	Short: "Show blocks",
	Long: `Show a single block by height, the last mined block, or a list of
blocks.

Examples:
  krist blocks 12345         # Block at height 12345
  krist blocks last          # Most recently mined block
  krist blocks --latest      # Latest blocks first
  krist blocks --lowest      # Lowest hashes first
  krist blocks               # All blocks`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBlocks,
}

var rewardCmd = &cobra.Command{
	Use:   "reward",
	Short: "Show the current block reward",
	Args:  cobra.NoArgs,
	RunE:  runReward,
}

func init() {
	addPaginationFlags(blocksCmd)
	blocksCmd.Flags().Bool("latest", false, "Latest blocks first")
	blocksCmd.Flags().Bool("lowest", false, "Lowest hashes first")
}

func runBlocks(cmd *cobra.Command, args []string) error {
	client := newClient()

	if len(args) == 1 {
		var resp *api.BlockResponse
		var err error
		if args[0] == "last" {
			resp, err = client.GetLastBlock(cmd.Context())
		} else {
			height, perr := strconv.ParseInt(args[0], 10, 64)
			if perr != nil || height < 1 {
				return fmt.Errorf("invalid block height: %s", args[0])
			}
			resp, err = client.GetBlock(cmd.Context(), height)
		}
		if err != nil {
			return fmt.Errorf("failed to fetch block: %w", err)
		}
		if err := ledgerError("failed to fetch block", resp.Status); err != nil {
			return err
		}
		if resp.Block == nil {
			return fmt.Errorf("block data not found in response")
		}
		displayBlock(*resp.Block)
		return nil
	}

	opts, err := listOptions(cmd)
	if err != nil {
		return err
	}

	latest, _ := cmd.Flags().GetBool("latest")
	lowest, _ := cmd.Flags().GetBool("lowest")
	if latest && lowest {
		return fmt.Errorf("--latest and --lowest cannot be combined")
	}

	fetch, title := client.GetAllBlocks, "⛓️  Blocks"
	switch {
	case latest:
		fetch, title = client.GetLatestBlocks, "⛓️  Latest blocks"
	case lowest:
		fetch, title = client.GetBlocksLowestHash, "⛓️  Lowest hashes"
	}

	list, err := fetch(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("failed to fetch blocks: %w", err)
	}
	if err := ledgerError("failed to fetch blocks", list.Status); err != nil {
		return err
	}

	fmt.Println(title)
	fmt.Println()
	for _, block := range list.Blocks {
		fmt.Printf("   #%-8d %s  %s  %s\n", block.Height, cyan(block.ShortHash), green(formatKST(block.Value)), block.Address)
	}
	fmt.Println()
	showPaginationInfo(opts, list.Count, list.Total)
	return nil
}

func displayBlock(block api.Block) {
	fmt.Printf("⛓️  Block #%d\n", block.Height)
	fmt.Printf("   Hash:       %s\n", cyan(block.Hash))
	fmt.Printf("   Miner:      %s\n", block.Address)
	fmt.Printf("   Reward:     %s\n", green(formatKST(block.Value)))
	fmt.Printf("   Difficulty: %d\n", block.Difficulty)
	fmt.Printf("   Time:       %s\n", shortTime(block.Time))
}

func runReward(cmd *cobra.Command, args []string) error {
	client := newClient()

	base, err := client.GetBaseReward(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch base reward: %w", err)
	}

	rewards, err := client.GetRewards(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch block reward: %w", err)
	}
	if err := ledgerError("failed to fetch block reward", rewards.Status); err != nil {
		return err
	}

	fmt.Println("⛏️  Block reward")
	fmt.Printf("   Base value:  %s\n", formatKST(base))
	fmt.Printf("   Name bonus:  %s\n", formatKST(rewards.Value-base))
	fmt.Printf("   Total:       %s\n", green(formatKST(rewards.Value)))
	return nil
}
