package recommendation

import "context"

// UseCase defines the business logic interface for the recommendation domain.
type UseCase interface {
	// Recommend generates a project plan from the user's input and their recent conversation.
	Recommend(ctx context.Context, input RecommendInput) (RecommendOutput, error)

	// Extract turns the user's latest recommendation into a structured ProjectPlan.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)
}
