package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cartscout/internal/chrome"
)

var (
	chromePort    int
	chromeProfile string
	chromeExe     string
	chromeProbe   bool
	chromeCDPURL  string
)

// chromeCmd represents the chrome command
var chromeCmd = &cobra.Command{
	Use:   "chrome",
	Short: "Launch Chrome with the remote debugging port open",
	Long: `Chrome launches a local browser with remote debugging enabled so you can
sign in to the shopping site once; the agent then reuses the session through
the shared profile. The named profile is copied into a temporary directory
that is cleaned up when the browser exits.

With --probe it instead connects to an already running debug browser over
CDP and prints its user agent.`,
	Run: runChromeCommand,
}

func runChromeCommand(cmd *cobra.Command, args []string) {
	if chromeProbe {
		cdpURL := chromeCDPURL
		if cdpURL == "" {
			cdpURL = fmt.Sprintf("http://localhost:%d", chromePort)
		}
		userAgent, err := chrome.Probe(context.Background(), cdpURL, 15*time.Second)
		if err != nil {
			fmt.Printf("❌ Debug browser not reachable: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Debug browser reachable at %s\n", cdpURL)
		fmt.Printf("   User agent: %s\n", userAgent)
		return
	}

	fmt.Printf("🔗 CDP endpoint will be: http://localhost:%d\n", chromePort)
	fmt.Println("⚠️  Keep this terminal open - closing it will close Chrome")
	fmt.Println()

	err := chrome.Launch(context.Background(), chrome.Options{
		Port:        chromePort,
		ProfileName: chromeProfile,
		Executable:  chromeExe,
		LogF: func(format string, a ...any) {
			fmt.Printf(format+"\n", a...)
		},
	})
	if err != nil {
		fmt.Printf("Error launching chrome: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("👋 Chrome exited")
}

func init() {
	rootCmd.AddCommand(chromeCmd)

	chromeCmd.Flags().IntVar(&chromePort, "port", chrome.DefaultPort, "Remote debugging port")
	chromeCmd.Flags().StringVarP(&chromeProfile, "chrome-profile", "p", "Default", "Chrome profile name to copy for the session")
	chromeCmd.Flags().StringVar(&chromeExe, "executable", "", "Chrome binary (auto-detected if not specified)")
	chromeCmd.Flags().BoolVar(&chromeProbe, "probe", false, "Probe a running debug browser instead of launching one")
	chromeCmd.Flags().StringVar(&chromeCDPURL, "cdp-url", "", "CDP endpoint to probe (default http://localhost:<port>)")
}
