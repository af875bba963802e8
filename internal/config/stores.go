package config

import "strings"

// DefaultSite is the shopping site every store front is reached through
const DefaultSite = "https://www.instacart.com/"

// DefaultPreference is used when the shopper does not state one
const DefaultPreference = "cheapest"

// DefaultItems is the fallback shopping list
var DefaultItems = []string{"milk", "eggs", "bread"}

// StoreConfig describes a store front selectable on the shopping site
type StoreConfig struct {
	Name        string
	Description string
	Default     bool
}

// GetStoreConfigs returns the built-in store fronts
func GetStoreConfigs() []StoreConfig {
	return []StoreConfig{
		{
			Name:        "Kroger",
			Description: "Large national chain, broad store-brand coverage",
			Default:     true,
		},
		{
			Name:        "Safeway",
			Description: "West-coast heavy chain, frequent member pricing",
			Default:     true,
		},
		{
			Name:        "Aldi",
			Description: "Discount chain, limited brands but lowest shelf prices",
			Default:     true,
		},
		{
			Name:        "Costco",
			Description: "Warehouse club, bulk sizes only",
			Default:     false,
		},
		{
			Name:        "Publix",
			Description: "Southeast chain, strong deli and bakery",
			Default:     false,
		},
	}
}

// DefaultStores returns the names of the store fronts compared when the user
// does not pick any
func DefaultStores() []string {
	var names []string
	for _, store := range GetStoreConfigs() {
		if store.Default {
			names = append(names, store.Name)
		}
	}
	return names
}

// FindStore resolves a user-supplied store name against the built-in list,
// ignoring case. It returns nil for unknown stores, which are still allowed:
// the agent can shop any store front the site offers.
func FindStore(name string) *StoreConfig {
	for _, store := range GetStoreConfigs() {
		if strings.EqualFold(store.Name, name) {
			s := store
			return &s
		}
	}
	return nil
}
