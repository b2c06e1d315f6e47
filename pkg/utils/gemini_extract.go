package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"sherpa/internal/models/response_models"
)

// maxExtractChars bounds how much itinerary text goes into the
// extraction prompt; anything past it adds no new place names worth
// the tokens.
const maxExtractChars = 4000

type PlaceExtractorInterface interface {
	ExtractPlaces(ctx context.Context, itinerary, destCity string) ([]response_models.ExtractedPlace, error)
}

// GeminiPlaceExtractor pulls named locations out of itinerary text
// using a Gemini model forced into JSON-only responses.
type GeminiPlaceExtractor struct {
	client *genai.Client
	model  string
}

func NewGeminiPlaceExtractor(apiKey, model string) (PlaceExtractorInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlaceExtractor{client: client, model: model}, nil
}

func (c *GeminiPlaceExtractor) ExtractPlaces(ctx context.Context, itinerary, destCity string) ([]response_models.ExtractedPlace, error) {
	if itinerary == "" {
		return []response_models.ExtractedPlace{}, nil
	}
	if len(itinerary) > maxExtractChars {
		itinerary = itinerary[:maxExtractChars]
	}

	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)

	prompt := fmt.Sprintf(`Extract all named locations from this %s itinerary as map pins.

%s

Return ONLY valid JSON: {"locations": [{"name":"...", "type":"Restaurant|Cafe|Bar|Attraction|Museum|Market|Park|Viewpoint|Beach|Hotel", "description":"one line"}]}`,
		destCity, itinerary)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])

	var payload struct {
		Locations []response_models.ExtractedPlace `json:"locations"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("decode locations: %w", err)
	}
	if payload.Locations == nil {
		return []response_models.ExtractedPlace{}, nil
	}
	return payload.Locations, nil
}
