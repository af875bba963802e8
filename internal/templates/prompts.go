package templates

import (
	"fmt"
	"strings"
)

// PromptTemplate represents a structured prompt for specific tasks
type PromptTemplate struct {
	Name        string
	Description string
	Template    string
	Variables   []string
}

// GetPromptTemplates returns the task prompts sent to the browser agent
func GetPromptTemplates() map[string]PromptTemplate {
	return map[string]PromptTemplate{
		"shopping_task": {
			Name:        "Shopping Task",
			Description: "Drive the agent through one store front and return a structured cart",
			Template: `You are an expert, multi-store grocery shopper. Your goal is to find the best possible cart based on the user's specific requirements.

Shopping List: {{.items}}
Store to check: {{.store}}
Shopping Preference: "{{.preference}}" (e.g., 'organic', 'gluten-free', 'cheapest')

Site:
- {{.site}}

Instructions for Shopping:
1. Navigate to the site and specify the items are for the "{{.store}}" location.
2. For each item in the Shopping List:
   a. Search for the item.
   b. Prioritize items that strictly match the user's Shopping Preference: "{{.preference}}".
   c. If multiple items match the preference, choose the one with the lowest price. Use the highest rating as the tie-breaker.
   d. Add the chosen item to the cart.
   e. Handle Out-of-Stock/Substitution: if the originally chosen item is listed as 'Out of Stock' or 'Unavailable', search for the next best substitute of similar size/quantity (different brand is allowed).
3. Set output fields:
   - 'in_stock' is true only if the preferred/original item was found in stock. It must be false if a substitution was made.
   - If a substitution was made (in_stock=false), the 'notes' field is MANDATORY and must clearly explain the substitution (e.g., 'Original item out of stock, substituted with similar product from Brand X').
4. After the last item is processed, calculate the total cost of all found items and set the 'total_cost' field.
5. Set the 'store_name' field to "{{.store}}".

Return ONLY valid JSON in this format:
{
  "store_name": "{{.store}}",
  "total_cost": 12.34,
  "items": [
    {
      "name": "Whole Milk",
      "price": 4.99,
      "brand": "Kroger",
      "size": "1 Gallon",
      "url": "https://...",
      "rating": 4.7,
      "in_stock": true,
      "notes": ""
    }
  ]
}`,
			Variables: []string{"items", "store", "preference", "site"},
		},
		"deals_addendum": {
			Name:        "Deals Addendum",
			Description: "Fold current promotions from a deals feed into the task",
			Template: `

Current promotions pulled from the store's deals feed. When one of these covers an item on the Shopping List and still matches the Shopping Preference, prefer the promoted product:
{{.deals}}`,
			Variables: []string{"deals"},
		},
	}
}

// ApplyTemplate applies a template with given variables
func ApplyTemplate(templateName string, variables map[string]string) (string, error) {
	templates := GetPromptTemplates()

	template, exists := templates[templateName]
	if !exists {
		return "", fmt.Errorf("template '%s' not found", templateName)
	}

	// Simple template variable replacement
	result := template.Template
	for key, value := range variables {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}

	// Check for unreplaced variables
	if strings.Contains(result, "{{.") {
		return "", fmt.Errorf("template has unreplaced variables")
	}

	return result, nil
}

// BuildShoppingTask renders the per-store task prompt. Deals is optional;
// when present each promotion becomes a bullet in an addendum section.
func BuildShoppingTask(store string, items []string, preference, site string, deals []string) (string, error) {
	task, err := ApplyTemplate("shopping_task", map[string]string{
		"items":      strings.Join(items, ", "),
		"store":      store,
		"preference": preference,
		"site":       site,
	})
	if err != nil {
		return "", err
	}

	if len(deals) == 0 {
		return task, nil
	}

	var bullets strings.Builder
	for _, deal := range deals {
		bullets.WriteString("- ")
		bullets.WriteString(deal)
		bullets.WriteString("\n")
	}
	addendum, err := ApplyTemplate("deals_addendum", map[string]string{
		"deals": strings.TrimRight(bullets.String(), "\n"),
	})
	if err != nil {
		return "", err
	}
	return task + addendum, nil
}
