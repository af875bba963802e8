package models

import (
	"encoding/json"
	"time"

	"cartscout/internal/errors"
)

// GroceryItem is a single product the agent found or substituted while shopping
type GroceryItem struct {
	Name    string   `json:"name"`
	Price   float64  `json:"price"`
	Brand   string   `json:"brand,omitempty"`
	Size    string   `json:"size,omitempty"`
	URL     string   `json:"url"`
	Rating  *float64 `json:"rating,omitempty"`
	InStock bool     `json:"in_stock"`
	Notes   string   `json:"notes,omitempty"`
}

// GroceryCart is the full set of items the agent assembled at one store front
type GroceryCart struct {
	StoreName string        `json:"store_name"`
	TotalCost float64       `json:"total_cost"`
	Items     []GroceryItem `json:"items"`
}

// Comparison is the cross-store result written to disk: every validated cart
// sorted by ascending total, plus the winning cart
type Comparison struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Preference  string        `json:"preference"`
	Requested   []string      `json:"requested_items"`
	Carts       []GroceryCart `json:"carts"`
	Best        GroceryCart   `json:"best_cart"`
}

// UnmarshalJSON decodes an item with in_stock defaulting to true, so an
// agent that omits the field reports an in-stock item rather than an
// unexplained substitution
func (i *GroceryItem) UnmarshalJSON(data []byte) error {
	type groceryItem GroceryItem
	decoded := groceryItem{InStock: true}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*i = GroceryItem(decoded)
	return nil
}

// Validate checks a single item against the schema the agent is asked to fill
func (i *GroceryItem) Validate() error {
	if i.Name == "" {
		return errors.NewSchemaError("name", "item name cannot be empty")
	}
	if i.Price < 0 {
		return errors.NewSchemaError("price", "price cannot be negative")
	}
	if i.URL == "" {
		return errors.NewSchemaError("url", "item URL cannot be empty")
	}
	if i.Rating != nil && (*i.Rating < 0 || *i.Rating > 5) {
		return errors.NewSchemaError("rating", "rating must be between 0 and 5")
	}
	// Substituted or unavailable items must explain themselves.
	if !i.InStock && i.Notes == "" {
		return errors.NewSchemaError("notes", "notes are required when in_stock is false")
	}
	return nil
}

// Validate checks the cart and every item in it
func (c *GroceryCart) Validate() error {
	if c.StoreName == "" {
		return errors.NewSchemaError("store_name", "store name cannot be empty")
	}
	if len(c.Items) == 0 {
		return errors.NewSchemaError("items", "cart has no items")
	}
	for idx := range c.Items {
		if err := c.Items[idx].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// RecomputeTotal replaces the agent-reported total with the sum of item
// prices. The model's own arithmetic is not trusted.
func (c *GroceryCart) RecomputeTotal() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price
	}
	c.TotalCost = total
	return total
}

// Substitutions returns the items that were not the original in-stock choice
func (c *GroceryCart) Substitutions() []GroceryItem {
	var subs []GroceryItem
	for _, item := range c.Items {
		if !item.InStock {
			subs = append(subs, item)
		}
	}
	return subs
}
