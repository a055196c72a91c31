package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRollMessage returns a callout for the ball just bowled
	GetRollMessage(ctx context.Context, input *GetRollMessageInput) (*GetRollMessageOutput, error)

	// GetFinalMessage returns a message announcing the result of a match
	GetFinalMessage(ctx context.Context, input *GetFinalMessageInput) (*GetFinalMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
