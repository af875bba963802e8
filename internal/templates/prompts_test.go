package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTemplateUnknownName(t *testing.T) {
	_, err := ApplyTemplate("no_such_template", nil)
	assert.Error(t, err)
}

func TestApplyTemplateUnreplacedVariable(t *testing.T) {
	_, err := ApplyTemplate("shopping_task", map[string]string{
		"items": "milk",
		"store": "Kroger",
		// preference and site missing
	})
	assert.Error(t, err)
}

func TestBuildShoppingTask(t *testing.T) {
	task, err := BuildShoppingTask("Kroger", []string{"milk", "eggs", "bread"}, "organic", "https://www.instacart.com/", nil)
	require.NoError(t, err)

	assert.Contains(t, task, "Shopping List: milk, eggs, bread")
	assert.Contains(t, task, `Store to check: Kroger`)
	assert.Contains(t, task, `Shopping Preference: "organic"`)
	assert.Contains(t, task, "https://www.instacart.com/")
	assert.Contains(t, task, `"store_name": "Kroger"`)
	assert.Contains(t, task, "'notes' field is MANDATORY")
	assert.NotContains(t, task, "{{.")
	assert.NotContains(t, task, "deals feed")
}

func TestBuildShoppingTaskWithDeals(t *testing.T) {
	deals := []string{"BOGO eggs this week", "20% off organic milk"}
	task, err := BuildShoppingTask("Aldi", []string{"milk"}, "cheapest", "https://www.instacart.com/", deals)
	require.NoError(t, err)

	assert.Contains(t, task, "- BOGO eggs this week")
	assert.Contains(t, task, "- 20% off organic milk")
	assert.NotContains(t, task, "{{.")
}
