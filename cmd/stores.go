package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cartscout/internal/config"
)

// storesCmd represents the stores command
var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "List the built-in store fronts",
	Long: `List the store fronts cartscout knows about and which of them are shopped
by default. Other stores can still be passed to 'shop --store'.`,
	Run: runStoresCommand,
}

func runStoresCommand(cmd *cobra.Command, args []string) {
	fmt.Println("Known store fronts:")
	fmt.Println("===================")

	for _, store := range config.GetStoreConfigs() {
		marker := ""
		if store.Default {
			marker = " (default)"
		}
		fmt.Printf("\n🏪 %s%s\n", store.Name, marker)
		fmt.Printf("   %s\n", store.Description)
	}

	fmt.Printf("\n\nDefault comparison set: %s\n", strings.Join(config.DefaultStores(), ", "))
	fmt.Printf("Shopping site: %s\n", config.DefaultSite)
}

func init() {
	rootCmd.AddCommand(storesCmd)
}
