package verify

import (
	"bytes"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"cartscout/internal/models"
)

// Result is the reachability check outcome for one cart item
type Result struct {
	ItemName   string
	URL        string
	OK         bool
	StatusCode int
	PageTitle  string
	Err        string
}

// Checker re-fetches cart item URLs to confirm the product pages still exist
type Checker struct {
	timeout   time.Duration
	userAgent string
}

// NewChecker creates a checker with the given per-request timeout
func NewChecker(timeout time.Duration) *Checker {
	return &Checker{
		timeout:   timeout,
		userAgent: "cartscout/1.0",
	}
}

// CheckCart visits every item URL in the cart and reports page status and
// title. Items without a URL are reported as failures without a request.
func (c *Checker) CheckCart(cart *models.GroceryCart) []Result {
	results := make([]Result, 0, len(cart.Items))
	for _, item := range cart.Items {
		results = append(results, c.checkItem(item))
	}
	return results
}

func (c *Checker) checkItem(item models.GroceryItem) Result {
	result := Result{
		ItemName: item.Name,
		URL:      item.URL,
	}
	if item.URL == "" {
		result.Err = "item has no URL"
		return result
	}

	collector := colly.NewCollector(
		colly.UserAgent(c.userAgent),
		colly.AllowURLRevisit(),
		colly.IgnoreRobotsTxt(),
	)
	collector.SetRequestTimeout(c.timeout)

	collector.OnResponse(func(r *colly.Response) {
		result.OK = true
		result.StatusCode = r.StatusCode
		result.PageTitle = extractTitle(r.Body)
	})
	collector.OnError(func(r *colly.Response, err error) {
		result.OK = false
		if r != nil {
			result.StatusCode = r.StatusCode
		}
		result.Err = err.Error()
	})

	if err := collector.Visit(item.URL); err != nil {
		result.OK = false
		result.Err = err.Error()
	}
	collector.Wait()
	return result
}

func extractTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
