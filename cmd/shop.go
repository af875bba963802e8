package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	bua "github.com/anxuanzi/bua"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"cartscout/internal/compare"
	"cartscout/internal/config"
	"cartscout/internal/feeds"
	"cartscout/internal/models"
	"cartscout/internal/output"
	"cartscout/internal/shopper"
)

var (
	shopItems      string
	shopStores     []string
	shopPreference string
	shopSite       string
	shopTimeout    time.Duration
	shopDealsFeed  string
)

// shopCmd represents the shop command
var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Shop the grocery list at each store front and pick the cheapest cart",
	Long: `Shop runs the browser agent once per store front, validates the JSON cart
it returns, recomputes each total locally, prints a price comparison across
stores, and writes the result to a timestamped JSON file.`,
	Run: runShopCommand,
}

func runShopCommand(cmd *cobra.Command, args []string) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		fmt.Println("Error: GOOGLE_API_KEY environment variable not set")
		fmt.Println("The browser agent needs it to reach its LLM")
		os.Exit(1)
	}

	items := parseItems(shopItems)
	if len(items) == 0 {
		items = askItems()
	}
	preference := shopPreference
	if preference == "" {
		preference = askPreference()
	}
	stores := shopStores
	if len(stores) == 0 {
		stores = config.DefaultStores()
	}

	ctx := context.Background()

	var deals []string
	if shopDealsFeed != "" {
		fetched, err := feeds.FetchDeals(ctx, shopDealsFeed)
		if err != nil {
			fmt.Printf("⚠️  Skipping deals feed: %v\n", err)
		} else {
			deals = fetched
			if verbose {
				fmt.Printf("Loaded %d promotions from deals feed\n", len(deals))
			}
		}
	}

	fmt.Printf("\nSearching for items: %s with preference: '%s'\n", strings.Join(items, ", "), preference)
	fmt.Printf("Comparing prices across stores: %s\n\n", strings.Join(stores, ", "))

	viewport := bua.DefaultViewport()
	agent, err := bua.New(bua.Config{
		APIKey:      apiKey,
		Model:       model,
		ProfileName: profile,
		ProfileDir:  profileDir,
		Headless:    headless,
		Viewport:    &viewport,
		Debug:       verbose,
	})
	if err != nil {
		fmt.Printf("Error creating agent: %v\n", err)
		os.Exit(1)
	}
	defer agent.Close()

	fmt.Println("🚀 Starting browser...")
	if err := agent.Start(ctx); err != nil {
		fmt.Printf("Error starting agent: %v\n", err)
		os.Exit(1)
	}

	shop := shopper.New(agent, shopSite, shopTimeout)

	// One browser, one profile: stores are shopped sequentially.
	var carts []models.GroceryCart
	for _, store := range stores {
		fmt.Printf("--- 🛒 Running search for %s ---\n", store)
		cart, err := shop.Shop(ctx, store, items, preference, deals)
		if err != nil {
			fmt.Printf("--- ❌ %s failed: %v ---\n\n", store, err)
			continue
		}
		carts = append(carts, *cart)
		fmt.Printf("--- ✅ %s Cart Total: $%.2f ---\n\n", cart.StoreName, cart.TotalCost)
	}

	if len(carts) == 0 {
		fmt.Println("\n❌ Error: No carts were successfully retrieved. Check your API key and browser profile.")
		os.Exit(1)
	}

	cmp, err := compare.Cheapest(carts, items, preference)
	if err != nil {
		fmt.Printf("Error comparing carts: %v\n", err)
		os.Exit(1)
	}

	compare.RenderReport(os.Stdout, cmp)

	path, err := output.WriteComparison(outDir, cmp)
	if err != nil {
		fmt.Printf("Error writing cart file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\n💾 Saved comparison to %s\n", path)
}

func parseItems(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func askItems() []string {
	prompt := promptui.Prompt{
		Label: "What items would you like to add to cart (comma-separated, e.g., milk, eggs, bread)",
	}
	answer, err := prompt.Run()
	if err != nil {
		fmt.Printf("Using default items: %s\n", strings.Join(config.DefaultItems, ", "))
		return config.DefaultItems
	}
	items := parseItems(answer)
	if len(items) == 0 {
		fmt.Printf("Using default items: %s\n", strings.Join(config.DefaultItems, ", "))
		return config.DefaultItems
	}
	return items
}

func askPreference() string {
	prompt := promptui.Prompt{
		Label:   "What is your shopping preference (e.g., 'organic', 'gluten-free', 'cheapest')",
		Default: config.DefaultPreference,
	}
	answer, err := prompt.Run()
	if err != nil || strings.TrimSpace(answer) == "" {
		return config.DefaultPreference
	}
	return strings.TrimSpace(answer)
}

func init() {
	rootCmd.AddCommand(shopCmd)

	shopCmd.Flags().StringVar(&shopItems, "items", "", "Comma-separated shopping list (prompts if omitted)")
	shopCmd.Flags().StringSliceVar(&shopStores, "store", nil, "Store front to shop, repeatable (default: built-in default stores)")
	shopCmd.Flags().StringVar(&shopPreference, "preference", "", "Shopping preference, e.g. organic, gluten-free, cheapest (prompts if omitted)")
	shopCmd.Flags().StringVar(&shopSite, "site", config.DefaultSite, "Shopping site the store fronts are reached through")
	shopCmd.Flags().DurationVar(&shopTimeout, "timeout", 10*time.Minute, "Per-store agent timeout")
	shopCmd.Flags().StringVar(&shopDealsFeed, "deals-feed", "", "RSS/Atom promotions feed folded into the task prompt")
}
