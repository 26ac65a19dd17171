// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// AdviceRequest is a single text generation call to the hosted model.
type AdviceRequest struct {
	Model             string
	Prompt            string
	SystemInstruction string   // Optional
	Temperature       *float32 // Optional
}

// AdviceModel defines the text-in/text-out contract of the hosted LLM.
type AdviceModel interface {
	// Generate sends the request and returns the model text. Empty text is
	// returned as-is; callers decide whether that is a failure.
	Generate(ctx context.Context, request *AdviceRequest) (string, error)

	// IsAvailable checks if the model is configured with a credential.
	IsAvailable() bool
}
