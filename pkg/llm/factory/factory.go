package factory

import (
	"fmt"

	"marketing-agent-be/pkg/llm"
	"marketing-agent-be/pkg/llm/ollama"
	"marketing-agent-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, baseURL, openaiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		return openai.NewProvider(openaiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
