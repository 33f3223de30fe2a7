package ai_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"roamly/pkg/utils"
)

var Module = fx.Provide(provideTextGenerator)

func provideTextGenerator() utils.TextGeneratorInterface {
	provider := os.Getenv("AI_PROVIDER")
	model := os.Getenv("AI_MODEL")

	apiKey := os.Getenv("GEMINI_API_KEY")
	if provider == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	client, err := utils.NewTextGenerator(provider, apiKey, model)
	if err != nil {
		log.Fatalf("Failed to create AI client: %v", err)
	}
	return client
}
