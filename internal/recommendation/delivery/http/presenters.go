package http

import (
	"strings"

	"project-planner/internal/recommendation"
)

// --- Request DTOs ---

type recommendReq struct {
	UserInput string `json:"user_input" binding:"required"`
	UserID    string `json:"user_id"    binding:"required"`
}

func (r recommendReq) validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errEmptyUserID
	}
	if strings.TrimSpace(r.UserInput) == "" {
		return errEmptyUserInput
	}
	return nil
}

func (r recommendReq) toInput() recommendation.RecommendInput {
	return recommendation.RecommendInput{
		UserID:    r.UserID,
		UserInput: r.UserInput,
	}
}

// ---

type generateReq struct {
	UserID string `form:"user_id" binding:"required"`
}

func (r generateReq) validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errEmptyUserID
	}
	return nil
}

func (r generateReq) toInput() recommendation.ExtractInput {
	return recommendation.ExtractInput{UserID: r.UserID}
}

// --- Response DTOs ---

type recommendResp struct {
	UserID         string `json:"user_id"`
	Recommendation string `json:"recommendation"`
}

func (h *handler) newRecommendResp(out recommendation.RecommendOutput) recommendResp {
	return recommendResp{
		UserID:         out.UserID,
		Recommendation: out.Recommendation,
	}
}

type taskResp struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Team        string `json:"team,omitempty"`
}

type phaseResp struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	Tasks       []taskResp `json:"tasks"`
}

type projectResp struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	Phases      []phaseResp `json:"phases"`
}

type generateResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newGenerateResp(out recommendation.ExtractOutput) generateResp {
	p := out.Plan.Project

	phases := make([]phaseResp, len(p.Phases))
	for i, ph := range p.Phases {
		tasks := make([]taskResp, len(ph.Tasks))
		for j, t := range ph.Tasks {
			tasks[j] = taskResp{
				Name:        t.Name,
				Description: t.Description,
				StartDate:   t.StartDate,
				EndDate:     t.EndDate,
				Team:        t.Team,
			}
		}
		phases[i] = phaseResp{
			Name:        ph.Name,
			Description: ph.Description,
			StartDate:   ph.StartDate,
			EndDate:     ph.EndDate,
			Tasks:       tasks,
		}
	}

	return generateResp{
		Project: projectResp{
			Name:        p.Name,
			Description: p.Description,
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
			Phases:      phases,
		},
	}
}

type messageResp struct {
	Message string `json:"message"`
}
