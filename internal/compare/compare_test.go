package compare

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartscout/internal/models"
)

func cart(store string, prices ...float64) models.GroceryCart {
	c := models.GroceryCart{StoreName: store}
	for _, p := range prices {
		c.Items = append(c.Items, models.GroceryItem{
			Name:    "item",
			Price:   p,
			URL:     "https://example.com/item",
			InStock: true,
		})
	}
	return c
}

func TestCheapestEmpty(t *testing.T) {
	_, err := Cheapest(nil, []string{"milk"}, "cheapest")
	assert.Error(t, err)
}

func TestCheapestPicksLowestRecomputedTotal(t *testing.T) {
	safeway := cart("Safeway", 4.99, 3.50)
	aldi := cart("Aldi", 2.99, 2.49)
	kroger := cart("Kroger", 3.99, 3.99)
	// agent-reported totals are wrong on purpose and must be ignored
	safeway.TotalCost = 1.00
	aldi.TotalCost = 100.00

	cmp, err := Cheapest([]models.GroceryCart{safeway, aldi, kroger}, []string{"milk", "eggs"}, "cheapest")
	require.NoError(t, err)

	assert.Equal(t, "Aldi", cmp.Best.StoreName)
	assert.InDelta(t, 5.48, cmp.Best.TotalCost, 0.0001)

	require.Len(t, cmp.Carts, 3)
	assert.Equal(t, "Aldi", cmp.Carts[0].StoreName)
	assert.Equal(t, "Kroger", cmp.Carts[1].StoreName)
	assert.Equal(t, "Safeway", cmp.Carts[2].StoreName)
	assert.False(t, cmp.GeneratedAt.IsZero())
}

func TestCheapestTieKeepsShoppingOrder(t *testing.T) {
	first := cart("Kroger", 5.00)
	second := cart("Safeway", 5.00)

	cmp, err := Cheapest([]models.GroceryCart{first, second}, []string{"milk"}, "cheapest")
	require.NoError(t, err)
	assert.Equal(t, "Kroger", cmp.Best.StoreName)
}

func TestCheapestDoesNotMutateInput(t *testing.T) {
	carts := []models.GroceryCart{cart("Safeway", 9.99), cart("Aldi", 1.99)}
	_, err := Cheapest(carts, []string{"milk"}, "cheapest")
	require.NoError(t, err)
	assert.Equal(t, "Safeway", carts[0].StoreName)
}

func TestRenderReport(t *testing.T) {
	rating := 4.7
	best := models.GroceryCart{
		StoreName: "Aldi",
		Items: []models.GroceryItem{
			{Name: "Whole Milk", Price: 3.49, Brand: "Friendly Farms", Size: "1 Gallon", URL: "https://example.com/milk", Rating: &rating, InStock: true},
			{Name: "Oat Milk", Price: 4.29, URL: "https://example.com/oat", InStock: false, Notes: "Original item out of stock, substituted"},
		},
	}
	best.RecomputeTotal()
	other := cart("Kroger", 9.99)
	other.RecomputeTotal()

	var buf bytes.Buffer
	RenderReport(&buf, &models.Comparison{
		Requested: []string{"milk", "oat milk"},
		Carts:     []models.GroceryCart{best, other},
		Best:      best,
	})
	report := buf.String()

	assert.Contains(t, report, "Final Price Comparison Results")
	assert.Contains(t, report, "BEST PRICE")
	assert.Contains(t, report, "Best Option Found at: Aldi")
	assert.Contains(t, report, "Total Cost: $7.78")
	assert.Contains(t, report, "Rating: 4.7/5.0")
	assert.Contains(t, report, "SUBSTITUTED")
	assert.Contains(t, report, "Notes: Original item out of stock, substituted")
	assert.Contains(t, report, "Brand: N/A")
}
