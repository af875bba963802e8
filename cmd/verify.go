package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cartscout/internal/models"
	"cartscout/internal/output"
	"cartscout/internal/verify"
)

var (
	verifyStore   string
	verifyTimeout time.Duration
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <cart-file>",
	Short: "Re-fetch item URLs from a saved cart file",
	Long: `Verify loads a comparison file written by 'shop' and re-fetches every item
URL in the winning cart (or a specific store's cart with --store), reporting
which product pages are still reachable and what they are titled now.`,
	Args: cobra.ExactArgs(1),
	Run:  runVerifyCommand,
}

func runVerifyCommand(cmd *cobra.Command, args []string) {
	cmp, err := output.ReadComparison(args[0])
	if err != nil {
		fmt.Printf("Error loading cart file: %v\n", err)
		os.Exit(1)
	}

	cart := pickCart(cmp, verifyStore)
	if cart == nil {
		fmt.Printf("No cart found for store %q in %s\n", verifyStore, args[0])
		os.Exit(1)
	}

	fmt.Printf("Checking %d item URLs from the %s cart...\n\n", len(cart.Items), cart.StoreName)

	checker := verify.NewChecker(verifyTimeout)
	results := checker.CheckCart(cart)

	failed := 0
	for _, result := range results {
		if result.OK {
			fmt.Printf("✅ %s (%d)\n", result.ItemName, result.StatusCode)
			if result.PageTitle != "" {
				fmt.Printf("   Title: %s\n", result.PageTitle)
			}
		} else {
			failed++
			fmt.Printf("❌ %s: %s\n", result.ItemName, result.Err)
		}
		if verbose {
			fmt.Printf("   URL: %s\n", result.URL)
		}
	}

	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("%d/%d item pages reachable\n", len(results)-failed, len(results))
	if failed > 0 {
		os.Exit(1)
	}
}

func pickCart(cmp *models.Comparison, store string) *models.GroceryCart {
	if store == "" {
		return &cmp.Best
	}
	for i := range cmp.Carts {
		if strings.EqualFold(cmp.Carts[i].StoreName, store) {
			return &cmp.Carts[i]
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyStore, "store", "", "Verify this store's cart instead of the winning one")
	verifyCmd.Flags().DurationVar(&verifyTimeout, "timeout", 15*time.Second, "Per-request timeout")
}
