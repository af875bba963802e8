package compare

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
	"time"

	"cartscout/internal/models"
)

// Cheapest sorts carts ascending by recomputed total and picks the winner.
// Ties keep the order the stores were shopped in.
func Cheapest(carts []models.GroceryCart, requested []string, preference string) (*models.Comparison, error) {
	if len(carts) == 0 {
		return nil, fmt.Errorf("no carts to compare")
	}

	sorted := slices.Clone(carts)
	for i := range sorted {
		sorted[i].RecomputeTotal()
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalCost < sorted[j].TotalCost
	})

	return &models.Comparison{
		GeneratedAt: time.Now(),
		Preference:  preference,
		Requested:   requested,
		Carts:       sorted,
		Best:        sorted[0],
	}, nil
}

// RenderReport prints the cross-store summary and the winning cart's detail
func RenderReport(w io.Writer, cmp *models.Comparison) {
	rule := strings.Repeat("=", 70)

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "🏆 Final Price Comparison Results")
	fmt.Fprintf(w, "%s\n", rule)

	fmt.Fprintln(w, "\n--- Summary of All Stores ---")
	for i, cart := range cmp.Carts {
		status := ""
		if i == 0 {
			status = " 🏆 BEST PRICE"
		}
		fmt.Fprintf(w, "| %-10s | Total Items: %-2d | Total Cost: $%.2f%s\n",
			cart.StoreName, len(cart.Items), cart.TotalCost, status)
	}
	fmt.Fprintln(w, strings.Repeat("-", 70))

	best := cmp.Best
	fmt.Fprintf(w, "\n✅ Best Option Found at: %s\n", best.StoreName)
	fmt.Fprintf(w, "Total Cost: $%.2f\n", best.TotalCost)
	fmt.Fprintf(w, "Items requested: %d, Items found/substituted: %d\n\n",
		len(cmp.Requested), len(best.Items))

	fmt.Fprintf(w, "%s\n", rule)
	fmt.Fprintf(w, "Details for Best Cart at %s:\n", best.StoreName)
	fmt.Fprintf(w, "%s\n", rule)

	for _, item := range best.Items {
		stockStatus := "✅ In Stock"
		if !item.InStock {
			stockStatus = "⚠️  SUBSTITUTED"
		}

		fmt.Fprintf(w, "Name: %s\n", item.Name)
		fmt.Fprintf(w, "Price: $%.2f\n", item.Price)
		fmt.Fprintf(w, "Brand: %s\n", orNA(item.Brand))
		fmt.Fprintf(w, "Size: %s\n", orNA(item.Size))
		if item.Rating != nil {
			fmt.Fprintf(w, "Status: %s | Rating: %.1f/5.0\n", stockStatus, *item.Rating)
		} else {
			fmt.Fprintf(w, "Status: %s\n", stockStatus)
		}
		if item.Notes != "" {
			fmt.Fprintf(w, "Notes: %s\n", item.Notes)
		}
		fmt.Fprintf(w, "URL: %s\n", item.URL)
		fmt.Fprintln(w, strings.Repeat("-", 70))
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
