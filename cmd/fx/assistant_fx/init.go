package assistant_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"sherpa/internal/services"
	"sherpa/pkg/utils"
)

var Module = fx.Provide(
	provideChatClient,
	provideAssistantService)

func provideChatClient() utils.ChatClientInterface {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}

	client, err := utils.NewOpenAIChatClient(apiKey, os.Getenv("OPENAI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to create chat client: %v", err)
	}
	return client
}

func provideAssistantService(chatClient utils.ChatClientInterface) services.AssistantServiceInterface {
	return services.NewAssistantService(chatClient)
}
