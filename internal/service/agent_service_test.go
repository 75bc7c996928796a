package service

import (
	"testing"

	"marketing-agent-be/internal/constant"
	"marketing-agent-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAgents(t *testing.T) {
	agents := NewAgentService().ListAgents()

	require.Len(t, agents, 2)
	assert.Equal(t, constant.AgentBrand, agents[0].Key)
	assert.Equal(t, constant.AgentDigital, agents[1].Key)
}

func TestGetQuestions(t *testing.T) {
	svc := NewAgentService()

	for _, agent := range []string{constant.AgentBrand, constant.AgentDigital} {
		catalog, err := svc.GetQuestions(agent)
		require.NoError(t, err)
		assert.Equal(t, agent, catalog.Agent)
		assert.NotEmpty(t, catalog.Questions)
		assert.Equal(t, len(catalog.Questions), catalog.Total)
		assert.Less(t, catalog.Required, catalog.Total, "each catalog has optional questions")
	}
}

func TestGetQuestionsUnknownAgent(t *testing.T) {
	_, err := NewAgentService().GetQuestions("seo")
	require.Error(t, err)
}

func TestMissingRequired(t *testing.T) {
	svc := NewAgentService()

	answers := store.NewAnswerSet()
	missing, err := svc.MissingRequired(constant.AgentBrand, answers)
	require.NoError(t, err)
	assert.NotEmpty(t, missing, "an empty answer set misses everything required")

	// Whitespace-only answers still count as missing.
	first := constant.Questions[constant.AgentBrand][0]
	answers.Set(first.Id, "   ")
	stillMissing, err := svc.MissingRequired(constant.AgentBrand, answers)
	require.NoError(t, err)
	assert.Equal(t, len(missing), len(stillMissing))

	answers.Set(first.Id, "a real answer")
	lessMissing, err := svc.MissingRequired(constant.AgentBrand, answers)
	require.NoError(t, err)
	assert.Equal(t, len(missing)-1, len(lessMissing))
}

func TestMissingRequiredAllAnswered(t *testing.T) {
	svc := NewAgentService()

	answers := store.NewAnswerSet()
	for _, q := range constant.Questions[constant.AgentDigital] {
		answers.Set(q.Id, "answered")
	}

	missing, err := svc.MissingRequired(constant.AgentDigital, answers)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestMissingRequiredUnknownAgent(t *testing.T) {
	_, err := NewAgentService().MissingRequired("seo", store.NewAnswerSet())
	require.Error(t, err)
}
