package shopper

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	bua "github.com/anxuanzi/bua"

	"cartscout/internal/errors"
	"cartscout/internal/models"
	"cartscout/internal/templates"
)

// TaskRunner is the slice of the browser agent the shopper needs. The real
// implementation is *bua.Agent.
type TaskRunner interface {
	Run(ctx context.Context, prompt string) (*bua.Result, error)
}

// Shopper drives the browser agent through one store front at a time
type Shopper struct {
	runner  TaskRunner
	site    string
	timeout time.Duration
}

// New creates a shopper bound to one agent and one shopping site
func New(runner TaskRunner, site string, timeout time.Duration) *Shopper {
	return &Shopper{
		runner:  runner,
		site:    site,
		timeout: timeout,
	}
}

// Shop runs the agent for a single store and returns the validated cart with
// its total recomputed locally
func (s *Shopper) Shop(ctx context.Context, store string, items []string, preference string, deals []string) (*models.GroceryCart, error) {
	task, err := templates.BuildShoppingTask(store, items, preference, s.site, deals)
	if err != nil {
		return nil, fmt.Errorf("build task prompt: %w", err)
	}

	runCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.runner.Run(runCtx, task)
	if err != nil {
		return nil, errors.NewAgentError(store, err)
	}
	if result == nil {
		return nil, errors.NewAgentError(store, fmt.Errorf("agent returned no result"))
	}
	if result.Data == nil {
		reason := result.Error
		if reason == "" {
			reason = "agent returned no structured output"
		}
		return nil, errors.NewAgentError(store, fmt.Errorf("%s", reason))
	}

	cart, err := DecodeCart(result.Data)
	if err != nil {
		return nil, errors.NewAgentError(store, err)
	}

	if cart.StoreName == "" {
		cart.StoreName = store
	}
	if err := cart.Validate(); err != nil {
		return nil, err
	}
	cart.RecomputeTotal()
	return cart, nil
}

// DecodeCart turns the agent's structured output into a GroceryCart. The
// payload is usually a decoded JSON object, but some models hand back the
// JSON as text, possibly inside a markdown fence.
func DecodeCart(data any) (*models.GroceryCart, error) {
	var raw []byte
	switch v := data.(type) {
	case string:
		raw = []byte(stripFences(v))
	case []byte:
		raw = []byte(stripFences(string(v)))
	case json.RawMessage:
		raw = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode agent output: %w", err)
		}
		raw = encoded
	}

	var cart models.GroceryCart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("parse cart: %w", err)
	}
	return &cart, nil
}

func stripFences(response string) string {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
		response = strings.TrimSuffix(response, "```")
		response = strings.TrimSpace(response)
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
		response = strings.TrimSuffix(response, "```")
		response = strings.TrimSpace(response)
	}
	return response
}
