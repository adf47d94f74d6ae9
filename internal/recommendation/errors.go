package recommendation

import "errors"

// Domain-specific errors for the recommendation package.
var (
	ErrEmptyUserID           = errors.New("user_id is empty")
	ErrEmptyInput            = errors.New("user_input is empty")
	ErrGenerationFailed      = errors.New("recommendation generation failed")
	ErrExtractionFailed      = errors.New("structured extraction failed")
	ErrNoPriorRecommendation = errors.New("no prior recommendation")
)
