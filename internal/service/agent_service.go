package service

import (
	"fmt"
	"strings"

	"marketing-agent-be/internal/constant"
	"marketing-agent-be/internal/dto"
	"marketing-agent-be/internal/pkg/serverutils"
	"marketing-agent-be/pkg/store"
)

// IAgentService exposes the agent catalogs and answer validation.
type IAgentService interface {
	ListAgents() []dto.AgentResponse
	GetQuestions(agent string) (*dto.QuestionCatalogResponse, error)
	// MissingRequired returns the prompt texts of required questions that are
	// unanswered or blank, in catalog order.
	MissingRequired(agent string, answers *store.AnswerSet) ([]string, error)
}

type agentService struct{}

func NewAgentService() IAgentService {
	return &agentService{}
}

var agentNames = map[string]string{
	constant.AgentBrand:   "Brand Strategy & Guideline",
	constant.AgentDigital: "Digital Marketing Strategy",
}

func (s *agentService) ListAgents() []dto.AgentResponse {
	return []dto.AgentResponse{
		{Key: constant.AgentBrand, Name: agentNames[constant.AgentBrand]},
		{Key: constant.AgentDigital, Name: agentNames[constant.AgentDigital]},
	}
}

func (s *agentService) GetQuestions(agent string) (*dto.QuestionCatalogResponse, error) {
	questions, ok := constant.Questions[agent]
	if !ok {
		return nil, serverutils.NewHttpError(404, fmt.Sprintf("unknown agent category: %q", agent))
	}

	required := 0
	items := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		if q.Required {
			required++
		}
		items = append(items, dto.QuestionResponse{
			Id:          q.Id,
			Question:    q.Question,
			Placeholder: q.Placeholder,
			Help:        q.Help,
			Required:    q.Required,
			Section:     q.Section,
		})
	}

	return &dto.QuestionCatalogResponse{
		Agent:     agent,
		Total:     len(items),
		Required:  required,
		Questions: items,
	}, nil
}

func (s *agentService) MissingRequired(agent string, answers *store.AnswerSet) ([]string, error) {
	questions, ok := constant.Questions[agent]
	if !ok {
		return nil, serverutils.NewHttpError(400, fmt.Sprintf("unknown agent category: %q", agent))
	}

	var missing []string
	for _, q := range questions {
		if !q.Required {
			continue
		}
		answer, found := answers.Get(q.Id)
		if !found || strings.TrimSpace(answer) == "" {
			missing = append(missing, q.Question)
		}
	}
	return missing, nil
}
