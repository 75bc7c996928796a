package service

import (
	"context"
	"fmt"

	"marketing-agent-be/internal/constant"
	"marketing-agent-be/internal/pkg/logger"
	"marketing-agent-be/internal/pkg/serverutils"
	"marketing-agent-be/pkg/llm"
	"marketing-agent-be/pkg/rag/prompt"
	"marketing-agent-be/pkg/rag/retriever"
	"marketing-agent-be/pkg/store"
)

// IDraftService runs the generation pipeline: ensure templates are loaded,
// retrieve context, assemble the prompt, call the completion service.
type IDraftService interface {
	Generate(ctx context.Context, agent string, answers *store.AnswerSet) (string, error)
}

type draftService struct {
	templates   ITemplateService
	retriever   *retriever.Retriever
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewDraftService(
	templates ITemplateService,
	ragRetriever *retriever.Retriever,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
) IDraftService {
	return &draftService{
		templates:   templates,
		retriever:   ragRetriever,
		llmProvider: llmProvider,
		logger:      log,
	}
}

// Generate returns the first completion's text verbatim. Completion-service
// failures propagate unrecovered; there is no retry and no post-validation of
// the generated structure.
func (s *draftService) Generate(ctx context.Context, agent string, answers *store.AnswerSet) (string, error) {
	// Unknown categories are rejected before any store or network call.
	template, ok := constant.PromptTemplates[agent]
	if !ok {
		return "", serverutils.NewHttpError(400, fmt.Sprintf(
			"unknown agent category: %q (must be %q or %q)",
			agent, constant.AgentBrand, constant.AgentDigital))
	}

	if err := s.templates.EnsureLoaded(ctx); err != nil {
		return "", err
	}

	inputSummary := prompt.InputSummary(answers)

	retrieved, err := s.retriever.Retrieve(ctx, inputSummary, agent)
	if err != nil {
		return "", err
	}
	if retrieved == "" {
		s.logger.Warn("draft", "no context retrieved, output quality may be poor", map[string]interface{}{
			"agent": agent,
		})
	}

	assembled := prompt.NewBuilder(template).Build(answers, retrieved)

	maxTokens := constant.MaxTokensDigital
	if agent == constant.AgentBrand {
		maxTokens = constant.MaxTokensBrand
	}

	s.logger.Info("draft", "calling completion service", map[string]interface{}{
		"agent":         agent,
		"prompt_length": len(assembled),
		"max_tokens":    maxTokens,
	})

	// The entire assembled prompt travels as a single system-role message;
	// there is no separate user turn and no conversation history.
	draft, err := s.llmProvider.Chat(ctx,
		[]llm.Message{{Role: "system", Content: assembled}},
		llm.WithTemperature(constant.GenerationTemperature),
		llm.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return "", err
	}

	s.logger.Info("draft", "draft generated", map[string]interface{}{
		"agent":        agent,
		"draft_length": len(draft),
	})
	return draft, nil
}
