package usecase

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"project-planner/pkg/llmprovider"
)

//go:embed schema/project_plan.json
var projectPlanSchemaJSON []byte

// functionSchema is an OpenAI function declaration. Parameters stays raw so
// the schema reaches the model exactly as written in the JSON file.
type functionSchema struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

var projectPlanSchema = mustLoadSchema(projectPlanSchemaJSON)

func mustLoadSchema(raw []byte) functionSchema {
	var s functionSchema
	if err := json.Unmarshal(raw, &s); err != nil {
		panic(fmt.Sprintf("invalid embedded schema: %v", err))
	}
	if s.Name != ProjectPlanFunctionName {
		panic(fmt.Sprintf("embedded schema declares %q, want %q", s.Name, ProjectPlanFunctionName))
	}
	return s
}

func (s functionSchema) tool() llmprovider.Tool {
	return llmprovider.Tool{
		Name:        s.Name,
		Description: s.Description,
		Parameters:  s.Parameters,
	}
}
