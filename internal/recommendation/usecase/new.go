package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"project-planner/internal/recommendation/repository"
	"project-planner/pkg/llmprovider"
	pkgLog "project-planner/pkg/log"
)

// LLM is the generation capability the use case consumes; *llmprovider.Manager satisfies it.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l         pkgLog.Logger
	generator LLM
	extractor LLM
	history   repository.ConversationRepository
	results   repository.ResultRepository
	locks     *userLocks
	validate  *validator.Validate
}

// New creates a new recommendation UseCase instance. generator serves
// recommendations; extractor serves structured extraction and may be the same LLM.
func New(
	l pkgLog.Logger,
	generator LLM,
	extractor LLM,
	history repository.ConversationRepository,
	results repository.ResultRepository,
) *implUseCase {
	return &implUseCase{
		l:         l,
		generator: generator,
		extractor: extractor,
		history:   history,
		results:   results,
		locks:     newUserLocks(),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}
