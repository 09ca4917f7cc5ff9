package cmd

import (
	"fmt"

	"github.com/kristkit/krist/api"
	"github.com/spf13/cobra"
)

var namesCmd = &cobra.Command{
	Use:   "names [address]",
	Short: "List names owned by an address",
	Long: `List the .kst names owned by an address.
Without an argument, your wallet's names are listed. Use --all to list
every registered name.

Examples:
  krist names                 # Your names
  krist names kre3w0i79j      # Names of an address
  krist names --all           # Every name`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNames,
}

var nameCmd = &cobra.Command{
	Use:   "name <name>",
	Short: "Show a name",
	Long: `Show the owner and record of a .kst name.

Example:
  krist name example.kst`,
	Args: cobra.ExactArgs(1),
	RunE: runName,
}

func init() {
	addPaginationFlags(namesCmd)
	namesCmd.Flags().Bool("all", false, "List every registered name")
}

func runNames(cmd *cobra.Command, args []string) error {
	opts, err := listOptions(cmd)
	if err != nil {
		return err
	}

	client := newClient()
	all, _ := cmd.Flags().GetBool("all")

	var list *api.NameList
	if all {
		fmt.Println("🏷️  Registered names")
		list, err = client.ListNames(cmd.Context(), opts)
	} else {
		address, aerr := resolveAddress(args)
		if aerr != nil {
			return aerr
		}
		fmt.Printf("🏷️  Names owned by %s\n", cyan(address))
		list, err = client.GetAddressNames(cmd.Context(), address, opts)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch names: %w", err)
	}
	if err := ledgerError("failed to fetch names", list.Status); err != nil {
		return err
	}

	fmt.Println()
	if len(list.Names) == 0 {
		fmt.Println("No names found")
		return nil
	}
	for _, name := range list.Names {
		fmt.Printf("   %s.kst  %s  registered %s\n", green(name.Name), name.Owner, shortTime(name.Registered))
	}
	fmt.Println()
	showPaginationInfo(opts, list.Count, list.Total)
	return nil
}

func runName(cmd *cobra.Command, args []string) error {
	resp, err := newClient().GetName(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch name: %w", err)
	}
	if err := ledgerError("failed to fetch name", resp.Status); err != nil {
		return err
	}
	if resp.Name == nil {
		return fmt.Errorf("name data not found in response")
	}

	name := resp.Name
	fmt.Printf("🏷️  Name:           %s.kst\n", green(name.Name))
	fmt.Printf("   Owner:          %s\n", cyan(name.Owner))
	fmt.Printf("   Original owner: %s\n", name.OriginalOwner)
	fmt.Printf("   Registered:     %s\n", shortTime(name.Registered))
	if name.Updated != nil {
		fmt.Printf("   Updated:        %s\n", shortTime(*name.Updated))
	}
	if name.A != "" {
		fmt.Printf("   Record:         %s\n", name.A)
	}
	return nil
}
