package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sherpa/internal/models/response_models"
)

const sampleItinerary = `## Getting There
- Fly into Ljubljana Jože Pučnik Airport
- Shuttle to the city centre takes 30 minutes

## Day 1 — Old Town

**Morning**
- Walk along the Ljubljanica river
- Cross the Triple Bridge

**🍳 Breakfast**
**Le Petit Café**
| Trg francoske revolucije | Cosy spot
- Order the shakshuka

**🏰 Ljubljana Castle**: Take the funicular up
- Great views over the red rooftops

## Day 2 — Lake Day

**Afternoon**
- Day trip to Lake Bled

## Getting Home
- Evening flight back

## Cost Guide
Flights: £200
Hotel: £150
Estimated total: £500

## Local Tips
- Tap water is drinkable
`

func TestParseDaysAndBlocks(t *testing.T) {
	svc := NewItineraryService()
	doc := svc.Parse(sampleItinerary)

	require.Len(t, doc.Days, 2)
	assert.Equal(t, "Day 1 — Old Town", doc.Days[0].Title)
	assert.Equal(t, "Day 2 — Lake Day", doc.Days[1].Title)

	blocks := doc.Days[0].Blocks
	require.Len(t, blocks, 3)

	assert.Equal(t, response_models.BlockTime, blocks[0].Kind)
	assert.Equal(t, "Morning", blocks[0].Title)
	assert.Equal(t, []string{
		"Walk along the Ljubljanica river",
		"Cross the Triple Bridge",
	}, blocks[0].Details)

	meal := blocks[1]
	assert.Equal(t, response_models.BlockMeal, meal.Kind)
	assert.Equal(t, "Breakfast", meal.MealType)
	assert.Equal(t, "🍳", meal.Icon)
	require.NotNil(t, meal.VenueName)
	assert.Equal(t, "Le Petit Café", *meal.VenueName)
	require.NotNil(t, meal.Subtitle)
	assert.Equal(t, "Trg francoske revolucije · Cosy spot", *meal.Subtitle)
	assert.Equal(t, []string{"Order the shakshuka"}, meal.Details)

	activity := blocks[2]
	assert.Equal(t, response_models.BlockActivity, activity.Kind)
	assert.Equal(t, "Ljubljana Castle", activity.Title)
	assert.Equal(t, "🏰", activity.Icon)
	assert.Equal(t, []string{
		"Take the funicular up",
		"Great views over the red rooftops",
	}, activity.Details)
}

func TestParseSections(t *testing.T) {
	svc := NewItineraryService()
	doc := svc.Parse(sampleItinerary)

	assert.Equal(t, []string{
		"Fly into Ljubljana Jože Pučnik Airport",
		"Shuttle to the city centre takes 30 minutes",
	}, doc.Sections[response_models.SectionGettingThere])
	assert.Equal(t, []string{"Evening flight back"}, doc.Sections[response_models.SectionGettingHome])
	assert.Equal(t, []string{
		"Flights: £200",
		"Hotel: £150",
		"Estimated total: £500",
	}, doc.Sections[response_models.SectionCost])
	assert.Equal(t, []string{"Tap water is drinkable"}, doc.Sections[response_models.SectionTips])
}

func TestParseIsPure(t *testing.T) {
	svc := NewItineraryService()
	first := svc.Parse(sampleItinerary)
	second := svc.Parse(sampleItinerary)
	assert.Equal(t, first, second)
}

func TestParseEmptyInput(t *testing.T) {
	svc := NewItineraryService()

	for _, input := range []string{"", "   \n\n  "} {
		doc := svc.Parse(input)
		assert.Empty(t, doc.Days)
		for _, key := range []string{
			response_models.SectionGettingThere,
			response_models.SectionGettingHome,
			response_models.SectionCost,
			response_models.SectionTips,
		} {
			lines, ok := doc.Sections[key]
			assert.True(t, ok)
			assert.Empty(t, lines)
		}
	}
}

func TestParseMealWithoutVenue(t *testing.T) {
	svc := NewItineraryService()
	doc := svc.Parse(`## Day 1

**🍽️ Dinner**
- Somewhere near the river

**Evening**
- Night walk
`)

	require.Len(t, doc.Days, 1)
	blocks := doc.Days[0].Blocks
	require.Len(t, blocks, 2)

	meal := blocks[0]
	assert.Equal(t, response_models.BlockMeal, meal.Kind)
	assert.Equal(t, "Dinner", meal.MealType)
	assert.Nil(t, meal.VenueName)
	assert.Equal(t, []string{"Somewhere near the river"}, meal.Details)
}

func TestParseDayHeaderClosesSection(t *testing.T) {
	svc := NewItineraryService()
	doc := svc.Parse(`## Getting There
- Fly in

## Day 1
**Morning**
- Explore
`)

	require.Len(t, doc.Days, 1)
	assert.Equal(t, []string{"Fly in"}, doc.Sections[response_models.SectionGettingThere])
	// The day's lines must not leak into the section opened above it.
	require.Len(t, doc.Days[0].Blocks, 1)
	assert.Equal(t, []string{"Explore"}, doc.Days[0].Blocks[0].Details)
}

func TestParseEmptyDayStillAppears(t *testing.T) {
	svc := NewItineraryService()
	doc := svc.Parse("## Day 1\n\n## Day 2\n**Morning**\n- Museum\n")

	require.Len(t, doc.Days, 2)
	assert.Empty(t, doc.Days[0].Blocks)
	require.Len(t, doc.Days[1].Blocks, 1)
}

func TestParseDropsOrphanLines(t *testing.T) {
	svc := NewItineraryService()
	doc := svc.Parse("Stray preamble before any heading\n\n## Day 1\n- Orphan bullet before a block\n**Morning**\n- Kept\n")

	require.Len(t, doc.Days, 1)
	require.Len(t, doc.Days[0].Blocks, 1)
	assert.Equal(t, []string{"Kept"}, doc.Days[0].Blocks[0].Details)
}

func TestSplitIcon(t *testing.T) {
	tests := []struct {
		name  string
		input string
		icon  string
		label string
	}{
		{"emoji prefix", "🏰 Ljubljana Castle", "🏰", "Ljubljana Castle"},
		{"no emoji", "Morning", "", "Morning"},
		{"dingbat with variation selector", "✈️ Getting around", "✈", "Getting around"},
		{"flag pair", "🇸🇮 Border crossing", "🇸🇮", "Border crossing"},
		{"emoji only", "🍳", "🍳", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icon, label := splitIcon(tt.input)
			assert.Equal(t, tt.icon, icon)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestJoinPipeSegments(t *testing.T) {
	assert.Equal(t, "Stari trg · Vegan café", joinPipeSegments("| Stari trg | Vegan café"))
	assert.Equal(t, "Solo", joinPipeSegments("| Solo |"))
	assert.Equal(t, "", joinPipeSegments("|  |"))
}
