package feeds

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

// maxDeals caps how many promotions get folded into the task prompt
const maxDeals = 10

// FetchDeals pulls an RSS/Atom promotions feed and returns one line per
// entry, newest first as published by the feed
func FetchDeals(ctx context.Context, feedURL string) ([]string, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse deals feed: %w", err)
	}

	var deals []string
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		line := strings.TrimSpace(item.Title)
		if line == "" {
			continue
		}
		deals = append(deals, line)
		if len(deals) == maxDeals {
			break
		}
	}
	return deals, nil
}
