package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"project-planner/internal/recommendation"
)

var mmddyyyy = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

func TestExtract_NoPriorRecommendation(t *testing.T) {
	ext := functionCallLLM(ProjectPlanFunctionName, validPlanArgs)
	uc, _, _ := newTestUseCase(textLLM("plan"), ext, 10)

	_, err := uc.Extract(context.Background(), recommendation.ExtractInput{UserID: "u2"})
	if !errors.Is(err, recommendation.ErrNoPriorRecommendation) {
		t.Fatalf("expected ErrNoPriorRecommendation, got %v", err)
	}
	if ext.calls() != 0 {
		t.Errorf("extractor must not be called, got %d calls", ext.calls())
	}
}

func TestExtract_AfterGeneration(t *testing.T) {
	ext := functionCallLLM(ProjectPlanFunctionName, validPlanArgs)
	uc, history, results := newTestUseCase(textLLM("Kitchen plan text"), ext, 10)
	ctx := context.Background()

	if _, err := uc.Recommend(ctx, recommendation.RecommendInput{UserID: "u1", UserInput: "Remodel my kitchen"}); err != nil {
		t.Fatal(err)
	}
	historyBefore := history.GetContext(ctx, "u1")

	out, err := uc.Extract(ctx, recommendation.ExtractInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := out.Plan.Project
	if p.Name == "" {
		t.Error("expected project name")
	}
	for _, d := range []string{p.StartDate, p.EndDate} {
		if !mmddyyyy.MatchString(d) {
			t.Errorf("date %q is not MM/DD/YYYY", d)
		}
	}
	if len(p.Phases) != 1 || len(p.Phases[0].Tasks) != 1 || p.Phases[0].Tasks[0].Team != "Project Manager" {
		t.Errorf("nested phases/tasks not parsed: %+v", p.Phases)
	}

	req := ext.lastRequest()
	if req.SystemInstruction.Content != SystemPromptExtract {
		t.Error("expected extraction system prompt")
	}
	if len(req.Messages) != 1 || req.Messages[0].Content != "Kitchen plan text" {
		t.Errorf("expected latest recommendation as sole user message, got %+v", req.Messages)
	}
	if req.ToolChoice != ProjectPlanFunctionName || len(req.Tools) != 1 {
		t.Errorf("expected forced %s tool, got %+v", ProjectPlanFunctionName, req.Tools)
	}

	if got := history.GetContext(ctx, "u1"); len(got) != len(historyBefore) {
		t.Error("extraction must not modify the conversation")
	}
	if latest, _ := results.GetLatest(ctx, "u1"); latest != "Kitchen plan text" {
		t.Error("extraction must not modify the latest result")
	}
}

func TestExtract_Failures(t *testing.T) {
	tests := []struct {
		name string
		llm  *mockLLM
	}{
		{"call error", errLLM(errors.New("timeout"))},
		{"no function call", textLLM("I cannot do that")},
		{"wrong function", functionCallLLM("other_fn", validPlanArgs)},
		{"malformed json", functionCallLLM(ProjectPlanFunctionName, `{"project": {`)},
		{"missing name", functionCallLLM(ProjectPlanFunctionName, `{"project":{"start_date":"01/01/2025","end_date":"02/01/2025"}}`)},
		{"missing project", functionCallLLM(ProjectPlanFunctionName, `{}`)},
		{"bad date format", functionCallLLM(ProjectPlanFunctionName, `{"project":{"name":"X","start_date":"2025-01-01","end_date":"02/01/2025"}}`)},
		{"bad task", functionCallLLM(ProjectPlanFunctionName, `{"project":{"name":"X","start_date":"01/01/2025","end_date":"02/01/2025","phases":[{"name":"P","start_date":"01/01/2025","end_date":"01/15/2025","tasks":[{"name":"T"}]}]}}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, results := newTestUseCase(nil, tt.llm, 10)
			results.SetLatest(context.Background(), "u", "some plan")

			_, err := uc.Extract(context.Background(), recommendation.ExtractInput{UserID: "u"})
			if !errors.Is(err, recommendation.ErrExtractionFailed) {
				t.Errorf("expected ErrExtractionFailed, got %v", err)
			}
		})
	}
}

func TestExtract_ContentJSONFallback(t *testing.T) {
	llm := textLLM("```json\n" + validPlanArgs + "\n```")
	uc, _, results := newTestUseCase(nil, llm, 10)
	results.SetLatest(context.Background(), "u", "plan")

	out, err := uc.Extract(context.Background(), recommendation.ExtractInput{UserID: "u"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Plan.Project.Name != "Kitchen Remodel" {
		t.Errorf("unexpected project: %+v", out.Plan.Project)
	}
}

func TestExtract_EmptyUserID(t *testing.T) {
	uc, _, _ := newTestUseCase(nil, functionCallLLM(ProjectPlanFunctionName, validPlanArgs), 10)
	if _, err := uc.Extract(context.Background(), recommendation.ExtractInput{}); !errors.Is(err, recommendation.ErrEmptyUserID) {
		t.Errorf("expected ErrEmptyUserID, got %v", err)
	}
}

func TestProjectPlanSchema(t *testing.T) {
	if projectPlanSchema.Name != "parse_project_plan" {
		t.Errorf("unexpected function name %q", projectPlanSchema.Name)
	}

	var params struct {
		Type       string   `json:"type"`
		Required   []string `json:"required"`
		Properties struct {
			Project struct {
				Required   []string                   `json:"required"`
				Properties map[string]json.RawMessage `json:"properties"`
			} `json:"project"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(projectPlanSchema.Parameters, &params); err != nil {
		t.Fatalf("parameters are not valid JSON: %v", err)
	}
	if params.Type != "object" || len(params.Required) != 1 || params.Required[0] != "project" {
		t.Errorf("unexpected top-level schema: %+v", params)
	}
	wantRequired := []string{"name", "start_date", "end_date"}
	for i, f := range wantRequired {
		if params.Properties.Project.Required[i] != f {
			t.Errorf("project.required[%d] = %q, want %q", i, params.Properties.Project.Required[i], f)
		}
	}
	for _, f := range []string{"name", "description", "start_date", "end_date", "phases"} {
		if _, ok := params.Properties.Project.Properties[f]; !ok {
			t.Errorf("project.properties missing %q", f)
		}
	}

	tool := projectPlanSchema.tool()
	if string(tool.Parameters) != string(projectPlanSchema.Parameters) {
		t.Error("tool parameters must be the embedded schema verbatim")
	}
}

func TestBuildExtractRequest(t *testing.T) {
	req := buildExtractRequest("text")
	if req.Tools[0].Name != ProjectPlanFunctionName {
		t.Errorf("unexpected tool %q", req.Tools[0].Name)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  plain text  ", "plain text"},
	}
	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
