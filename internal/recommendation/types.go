package recommendation

// --- UseCase Inputs ---

type RecommendInput struct {
	UserID    string
	UserInput string
}

type ExtractInput struct {
	UserID string
}

// --- UseCase Outputs ---

type RecommendOutput struct {
	UserID         string
	Recommendation string
}

type ExtractOutput struct {
	Plan ProjectPlan
}

// --- Structured plan ---
// Field names mirror the parse_project_plan schema. Dates are MM/DD/YYYY.

type ProjectPlan struct {
	Project Project `json:"project"`
}

type Project struct {
	Name        string  `json:"name"                  validate:"required"`
	Description string  `json:"description,omitempty"`
	StartDate   string  `json:"start_date"            validate:"required,datetime=01/02/2006"`
	EndDate     string  `json:"end_date"              validate:"required,datetime=01/02/2006"`
	Phases      []Phase `json:"phases,omitempty"      validate:"dive"`
}

type Phase struct {
	Name        string `json:"name"                  validate:"required"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"            validate:"required,datetime=01/02/2006"`
	EndDate     string `json:"end_date"              validate:"required,datetime=01/02/2006"`
	Tasks       []Task `json:"tasks,omitempty"       validate:"dive"`
}

type Task struct {
	Name        string `json:"name"                  validate:"required"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"            validate:"required,datetime=01/02/2006"`
	EndDate     string `json:"end_date"              validate:"required,datetime=01/02/2006"`
	Team        string `json:"team,omitempty"`
}
