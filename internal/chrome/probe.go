package chrome

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Probe connects to a running debug browser over CDP and returns its user
// agent string, confirming the port is usable for automation
func Probe(ctx context.Context, cdpURL string, timeout time.Duration) (string, error) {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewRemoteAllocator(probeCtx, cdpURL)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	var userAgent string
	err := chromedp.Run(taskCtx,
		chromedp.Navigate("about:blank"),
		chromedp.Evaluate("navigator.userAgent", &userAgent),
	)
	if err != nil {
		return "", fmt.Errorf("probe %s: %w", cdpURL, err)
	}
	return userAgent, nil
}
