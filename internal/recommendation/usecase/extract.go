package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"project-planner/internal/model"
	"project-planner/internal/recommendation"
	"project-planner/internal/recommendation/repository"
	"project-planner/pkg/llmprovider"
)

// Extract converts the user's latest recommendation into a ProjectPlan.
// It never modifies the conversation or the stored result.
func (uc *implUseCase) Extract(ctx context.Context, input recommendation.ExtractInput) (recommendation.ExtractOutput, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return recommendation.ExtractOutput{}, recommendation.ErrEmptyUserID
	}

	text, err := uc.results.GetLatest(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return recommendation.ExtractOutput{}, recommendation.ErrNoPriorRecommendation
		}
		uc.l.Errorf(ctx, "%s: results.GetLatest: %v", LogPrefixExtract, err)
		return recommendation.ExtractOutput{}, fmt.Errorf("%w: %v", recommendation.ErrExtractionFailed, err)
	}

	resp, err := uc.extractor.GenerateContent(ctx, buildExtractRequest(text))
	if err != nil {
		uc.l.Errorf(ctx, "%s: extractor.GenerateContent: %v", LogPrefixExtract, err)
		return recommendation.ExtractOutput{}, fmt.Errorf("%w: %v", recommendation.ErrExtractionFailed, err)
	}

	plan, err := uc.parsePlan(resp)
	if err != nil {
		uc.l.Warnf(ctx, "%s: user_id=%s provider=%s: %v", LogPrefixExtract, input.UserID, resp.ProviderName, err)
		return recommendation.ExtractOutput{}, fmt.Errorf("%w: %v", recommendation.ErrExtractionFailed, err)
	}

	uc.l.Infof(ctx, "%s: user_id=%s project=%q phases=%d", LogPrefixExtract, input.UserID, plan.Project.Name, len(plan.Project.Phases))

	return recommendation.ExtractOutput{Plan: plan}, nil
}

func buildExtractRequest(text string) *llmprovider.Request {
	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:    string(model.RoleSystem),
			Content: SystemPromptExtract,
		},
		Messages: []llmprovider.Message{
			{Role: string(model.RoleUser), Content: text},
		},
		Tools:      []llmprovider.Tool{projectPlanSchema.tool()},
		ToolChoice: projectPlanSchema.Name,
	}
}

// parsePlan reads the forced function call. Some OpenAI-compatible backends
// answer with the arguments as plain content instead, which is accepted too.
func (uc *implUseCase) parsePlan(resp *llmprovider.Response) (recommendation.ProjectPlan, error) {
	var args []byte
	switch fc := resp.Content.FunctionCall; {
	case fc != nil:
		if fc.Name != projectPlanSchema.Name {
			return recommendation.ProjectPlan{}, fmt.Errorf("unexpected function call %q", fc.Name)
		}
		args = fc.Args
	case looksLikeJSONObject(resp.Content.Content):
		args = []byte(stripCodeFence(resp.Content.Content))
	default:
		return recommendation.ProjectPlan{}, errors.New("response has no function call")
	}

	var plan recommendation.ProjectPlan
	if err := json.Unmarshal(args, &plan); err != nil {
		return recommendation.ProjectPlan{}, fmt.Errorf("malformed arguments: %w", err)
	}

	if err := uc.validate.Struct(plan); err != nil {
		return recommendation.ProjectPlan{}, fmt.Errorf("invalid plan: %w", err)
	}

	return plan, nil
}

func looksLikeJSONObject(s string) bool {
	return strings.HasPrefix(stripCodeFence(s), "{")
}

// stripCodeFence removes a surrounding ```json fence if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
