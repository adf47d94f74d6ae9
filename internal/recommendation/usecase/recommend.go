package usecase

import (
	"context"
	"fmt"
	"strings"

	"project-planner/internal/model"
	"project-planner/internal/recommendation"
	"project-planner/pkg/llmprovider"
)

// Recommend asks the model for a project plan using the user's recent
// conversation as context. The conversation and latest result are only
// updated when generation succeeds.
func (uc *implUseCase) Recommend(ctx context.Context, input recommendation.RecommendInput) (recommendation.RecommendOutput, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return recommendation.RecommendOutput{}, recommendation.ErrEmptyUserID
	}
	if strings.TrimSpace(input.UserInput) == "" {
		return recommendation.RecommendOutput{}, recommendation.ErrEmptyInput
	}

	release, err := uc.locks.acquire(ctx, input.UserID)
	if err != nil {
		return recommendation.RecommendOutput{}, fmt.Errorf("%w: %v", recommendation.ErrGenerationFailed, err)
	}
	defer release()

	history := uc.history.GetContext(ctx, input.UserID)
	uc.l.Debugf(ctx, "%s: user_id=%s context_messages=%d", LogPrefixRecommend, input.UserID, len(history))

	resp, err := uc.generator.GenerateContent(ctx, buildRecommendRequest(history, input.UserInput))
	if err != nil {
		uc.l.Errorf(ctx, "%s: generator.GenerateContent: %v", LogPrefixRecommend, err)
		return recommendation.RecommendOutput{}, fmt.Errorf("%w: %v", recommendation.ErrGenerationFailed, err)
	}

	text := resp.Content.Content
	if strings.TrimSpace(text) == "" {
		uc.l.Warnf(ctx, "%s: empty response from %s", LogPrefixRecommend, resp.ProviderName)
		return recommendation.RecommendOutput{}, fmt.Errorf("%w: empty response", recommendation.ErrGenerationFailed)
	}

	uc.history.AddMessages(ctx, input.UserID,
		model.Message{Role: model.RoleUser, Content: input.UserInput},
		model.Message{Role: model.RoleAssistant, Content: text},
	)
	uc.results.SetLatest(ctx, input.UserID, text)

	uc.l.Infof(ctx, "%s: user_id=%s provider=%s chars=%d", LogPrefixRecommend, input.UserID, resp.ProviderName, len(text))

	return recommendation.RecommendOutput{
		UserID:         input.UserID,
		Recommendation: text,
	}, nil
}

// buildRecommendRequest lays out [system prompt] + history + [new input].
func buildRecommendRequest(history []model.Message, userInput string) *llmprovider.Request {
	msgs := make([]llmprovider.Message, 0, len(history)+1)
	for _, m := range history {
		msgs = append(msgs, llmprovider.Message{Role: string(m.Role), Content: m.Content})
	}
	msgs = append(msgs, llmprovider.Message{Role: string(model.RoleUser), Content: userInput})

	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:    string(model.RoleSystem),
			Content: SystemPromptRecommend,
		},
		Messages: msgs,
	}
}
