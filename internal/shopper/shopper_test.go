package shopper

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	bua "github.com/anxuanzi/bua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartErrors "cartscout/internal/errors"
)

type fakeRunner struct {
	result     *bua.Result
	err        error
	lastPrompt string
}

func (f *fakeRunner) Run(ctx context.Context, prompt string) (*bua.Result, error) {
	f.lastPrompt = prompt
	return f.result, f.err
}

func cartData(store string) map[string]any {
	return map[string]any{
		"store_name": store,
		"total_cost": 99.99, // wrong on purpose
		"items": []any{
			map[string]any{
				"name":     "Whole Milk",
				"price":    3.49,
				"url":      "https://example.com/milk",
				"in_stock": true,
			},
			map[string]any{
				"name":     "Oat Milk",
				"price":    4.29,
				"url":      "https://example.com/oat",
				"in_stock": false,
				"notes":    "Original item out of stock, substituted",
			},
		},
	}
}

func TestShopSuccess(t *testing.T) {
	runner := &fakeRunner{result: &bua.Result{Success: true, Data: cartData("Kroger")}}
	s := New(runner, "https://www.instacart.com/", time.Minute)

	cart, err := s.Shop(context.Background(), "Kroger", []string{"milk", "oat milk"}, "cheapest", nil)
	require.NoError(t, err)

	assert.Equal(t, "Kroger", cart.StoreName)
	require.Len(t, cart.Items, 2)
	assert.InDelta(t, 7.78, cart.TotalCost, 0.0001, "total is recomputed, not trusted")

	assert.Contains(t, runner.lastPrompt, "Store to check: Kroger")
	assert.Contains(t, runner.lastPrompt, "milk, oat milk")
}

func TestShopFillsMissingStoreName(t *testing.T) {
	data := cartData("")
	runner := &fakeRunner{result: &bua.Result{Success: true, Data: data}}
	s := New(runner, "https://www.instacart.com/", 0)

	cart, err := s.Shop(context.Background(), "Safeway", []string{"milk"}, "cheapest", nil)
	require.NoError(t, err)
	assert.Equal(t, "Safeway", cart.StoreName)
}

func TestShopRunnerError(t *testing.T) {
	runner := &fakeRunner{err: fmt.Errorf("browser crashed")}
	s := New(runner, "https://www.instacart.com/", time.Minute)

	_, err := s.Shop(context.Background(), "Aldi", []string{"milk"}, "cheapest", nil)
	require.Error(t, err)

	var agentErr *cartErrors.AgentError
	require.ErrorAs(t, err, &agentErr)
	assert.Equal(t, "Aldi", agentErr.Store)
}

func TestShopNoStructuredOutput(t *testing.T) {
	runner := &fakeRunner{result: &bua.Result{Success: false, Error: "gave up after 30 steps"}}
	s := New(runner, "https://www.instacart.com/", time.Minute)

	_, err := s.Shop(context.Background(), "Aldi", []string{"milk"}, "cheapest", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gave up after 30 steps")
}

func TestShopInvalidSchema(t *testing.T) {
	data := cartData("Kroger")
	items := data["items"].([]any)
	sub := items[1].(map[string]any)
	delete(sub, "notes") // substitution without explanation

	runner := &fakeRunner{result: &bua.Result{Success: true, Data: data}}
	s := New(runner, "https://www.instacart.com/", time.Minute)

	_, err := s.Shop(context.Background(), "Kroger", []string{"milk"}, "cheapest", nil)
	require.Error(t, err)

	var schemaErr *cartErrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "notes", schemaErr.Field)
}

func TestShopDealsReachPrompt(t *testing.T) {
	runner := &fakeRunner{result: &bua.Result{Success: true, Data: cartData("Kroger")}}
	s := New(runner, "https://www.instacart.com/", time.Minute)

	_, err := s.Shop(context.Background(), "Kroger", []string{"milk"}, "cheapest", []string{"BOGO milk"})
	require.NoError(t, err)
	assert.Contains(t, runner.lastPrompt, "- BOGO milk")
}

func TestDecodeCartFromMap(t *testing.T) {
	cart, err := DecodeCart(cartData("Aldi"))
	require.NoError(t, err)
	assert.Equal(t, "Aldi", cart.StoreName)
	assert.Len(t, cart.Items, 2)
}

func TestDecodeCartFromFencedString(t *testing.T) {
	payload := "```json\n" + `{"store_name":"Aldi","total_cost":3.49,"items":[{"name":"Milk","price":3.49,"url":"u","in_stock":true}]}` + "\n```"
	cart, err := DecodeCart(payload)
	require.NoError(t, err)
	assert.Equal(t, "Aldi", cart.StoreName)

	bare := strings.ReplaceAll(payload, "json", "")
	cart, err = DecodeCart(bare)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestDecodeCartDefaultsInStock(t *testing.T) {
	data := map[string]any{
		"store_name": "Kroger",
		"items": []any{
			map[string]any{"name": "Milk", "price": 3.49, "url": "https://example.com/milk"},
		},
	}
	cart, err := DecodeCart(data)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.True(t, cart.Items[0].InStock)
	assert.NoError(t, cart.Validate())
}

func TestDecodeCartInvalid(t *testing.T) {
	_, err := DecodeCart("the cart looks great!")
	assert.Error(t, err)
}
