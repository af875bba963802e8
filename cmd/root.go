package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	model      string
	profile    string
	profileDir string
	headless   bool
	verbose    bool
	outDir     string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cartscout",
	Short: "A CLI tool that shops for groceries across store fronts with a browser agent",
	Long: `Cartscout drives an LLM-backed browser-automation agent to shop a grocery
list on one e-commerce site across multiple store fronts, validates the cart
each store produces, and picks the cheapest one.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// browser-use convention: the agent's API key usually lives in .env
		_ = godotenv.Load(".env")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "LLM model for the agent (library default if not specified)")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "instacart", "Browser profile name for session persistence")
	rootCmd.PersistentFlags().StringVar(&profileDir, "profile-dir", "", "Base directory for browser profiles")
	rootCmd.PersistentFlags().BoolVar(&headless, "headless", false, "Run the agent's browser headless")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&outDir, "out-dir", "carts", "Directory for timestamped cart files")
}
