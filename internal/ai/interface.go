package ai

import (
	"context"
)

// LLMProvider defines the contract for the hosted assistant runtime.
// This interface allows swapping providers without touching the handler.
type LLMProvider interface {
	// ParseTransferIntent analyzes a visitor's natural language message and
	// extracts a structured transfer-booking intent. contextMap carries
	// dynamic information such as "current_time" and the known route ids.
	ParseTransferIntent(ctx context.Context, message string, contextMap map[string]string) (*IntentResult, error)
}
