package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"sherpa/internal/models/request_models"
	"sherpa/pkg/utils"
)

type AssistantServiceInterface interface {
	TweakItinerary(ctx context.Context, dest, itinerary, feedback string) (string, error)
	Chat(ctx context.Context, req request_models.ChatRequest) (string, error)
}

type AssistantService struct {
	chatClient utils.ChatClientInterface
}

func NewAssistantService(chatClient utils.ChatClientInterface) AssistantServiceInterface {
	return &AssistantService{chatClient: chatClient}
}

// TweakItinerary rewrites the itinerary per the traveller's feedback,
// holding the model to the same ## heading structure so the result
// round-trips through the parser.
func (s *AssistantService) TweakItinerary(ctx context.Context, dest, itinerary, feedback string) (string, error) {
	if strings.TrimSpace(itinerary) == "" || strings.TrimSpace(feedback) == "" {
		return "", utils.ErrInvalidInput
	}

	prompt := fmt.Sprintf(
		"Here is a travel itinerary for %s:\n\n%s\n\n"+
			"The traveller has asked: %s\n\n"+
			"Rewrite the full itinerary incorporating these changes. "+
			"Keep everything that works well and only change what was asked. "+
			"Return the full itinerary in exactly the same format — same ## headings, same structure.",
		dest, itinerary, feedback)

	rewritten, err := s.chatClient.Complete(ctx, "", []utils.ChatTurn{{Role: "user", Content: prompt}}, 4000)
	if err != nil {
		log.Printf("Error tweaking itinerary for %s: %v", dest, err)
		return "", utils.ErrAssistantUnreached
	}
	return rewritten, nil
}

// Chat answers a support question with optional trip context and prior
// turns.
func (s *AssistantService) Chat(ctx context.Context, req request_models.ChatRequest) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", utils.ErrInvalidInput
	}

	system := "You are Sherpa, a friendly expert travel assistant. Answer concisely and practically."
	if req.Context != "" {
		system += " Context about this trip: " + req.Context
	}

	turns := make([]utils.ChatTurn, 0, len(req.History)+1)
	for _, msg := range req.History {
		turns = append(turns, utils.ChatTurn{Role: msg.Role, Content: msg.Content})
	}
	turns = append(turns, utils.ChatTurn{Role: "user", Content: req.Message})

	reply, err := s.chatClient.Complete(ctx, system, turns, 500)
	if err != nil {
		log.Printf("Error answering chat: %v", err)
		return "", utils.ErrAssistantUnreached
	}
	return strings.TrimSpace(reply), nil
}
