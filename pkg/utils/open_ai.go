package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type ChatTurn struct {
	Role    string
	Content string
}

// ChatClientInterface is the completion surface the assistant service
// talks to; tests swap in a canned implementation.
type ChatClientInterface interface {
	Complete(ctx context.Context, system string, turns []ChatTurn, maxTokens int) (string, error)
}

type OpenAIChatClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIChatClient(apiKey, model string) (ChatClientInterface, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is empty")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIChatClient{client: openai.NewClient(apiKey), model: model}, nil
}

func (c *OpenAIChatClient) Complete(ctx context.Context, system string, turns []ChatTurn, maxTokens int) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns)+1)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	for _, t := range turns {
		role := t.Role
		if role != openai.ChatMessageRoleAssistant {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: t.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages:  messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}
