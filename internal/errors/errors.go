package errors

import "fmt"

// AgentError represents a failure while running the shopping agent for a store
type AgentError struct {
	Store string
	Err   error
}

func (e *AgentError) Error() string {
	return fmt.Sprintf("agent run failed for store %s: %v", e.Store, e.Err)
}

func (e *AgentError) Unwrap() error {
	return e.Err
}

// NewAgentError creates a new agent error
func NewAgentError(store string, err error) *AgentError {
	return &AgentError{
		Store: store,
		Err:   err,
	}
}

// SchemaError represents a cart payload that does not match the expected schema
type SchemaError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error for %s: %s", e.Field, e.Message)
}

// NewSchemaError creates a new schema error
func NewSchemaError(field, message string) *SchemaError {
	return &SchemaError{
		Field:   field,
		Message: message,
	}
}

// LaunchError represents a failure while launching the debug browser
type LaunchError struct {
	Step string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch error during %s: %v", e.Step, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// NewLaunchError creates a new launch error
func NewLaunchError(step string, err error) *LaunchError {
	return &LaunchError{
		Step: step,
		Err:  err,
	}
}
