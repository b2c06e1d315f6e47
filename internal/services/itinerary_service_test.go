package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sherpa/internal/models/response_models"
)

func TestParseCost(t *testing.T) {
	svc := NewItineraryService()

	rows := svc.ParseCost([]string{
		"Flights: £200",
		"Hotel (3 nights): £150",
		"Roughly a week of spending money",
	})

	require.Len(t, rows, 3)
	require.NotNil(t, rows[0].Label)
	assert.Equal(t, "Flights", *rows[0].Label)
	assert.Equal(t, "£200", rows[0].Value)
	require.NotNil(t, rows[1].Label)
	assert.Equal(t, "Hotel (3 nights)", *rows[1].Label)
	assert.Equal(t, "£150", rows[1].Value)
	assert.Nil(t, rows[2].Label)
	assert.Equal(t, "Roughly a week of spending money", rows[2].Value)
}

func TestSelectCostSummary(t *testing.T) {
	svc := NewItineraryService()

	rows := svc.ParseCost([]string{
		"Flights: £200",
		"Hotel: £150",
		"Estimated total: £500",
	})
	summary := svc.SelectCostSummary(rows)

	require.NotNil(t, summary.Total)
	assert.Equal(t, "Estimated total", *summary.Total.Label)
	assert.Equal(t, "£500", summary.Total.Value)
	require.Len(t, summary.Breakdown, 2)
	assert.Equal(t, "Flights", *summary.Breakdown[0].Label)
	assert.Equal(t, "Hotel", *summary.Breakdown[1].Label)
}

func TestSelectCostSummaryFirstTotalWins(t *testing.T) {
	svc := NewItineraryService()

	rows := svc.ParseCost([]string{
		"Total accommodation: £300",
		"Food: £120",
		"Grand total: £600",
	})
	summary := svc.SelectCostSummary(rows)

	require.NotNil(t, summary.Total)
	assert.Equal(t, "Total accommodation", *summary.Total.Label)
	// The second total-looking row stays visible as a breakdown entry.
	require.Len(t, summary.Breakdown, 2)
	assert.Equal(t, "Grand total", *summary.Breakdown[1].Label)
}

func TestSelectCostSummaryNoTotal(t *testing.T) {
	svc := NewItineraryService()

	summary := svc.SelectCostSummary(svc.ParseCost([]string{
		"Flights: £200",
		"A note without a colon",
	}))

	assert.Nil(t, summary.Total)
	require.Len(t, summary.Breakdown, 1)
	assert.Equal(t, "Flights", *summary.Breakdown[0].Label)
}

func TestMergeTransferBlocks(t *testing.T) {
	svc := NewItineraryService()
	doc := svc.Parse(sampleItinerary)

	days := svc.MergeTransferBlocks(doc)
	require.Len(t, days, 2)

	first := days[0].Blocks[0]
	assert.Equal(t, "Getting There", first.Title)
	assert.Equal(t, "✈️", first.Icon)
	assert.Equal(t, doc.Sections[response_models.SectionGettingThere], first.Details)

	last := days[1].Blocks[len(days[1].Blocks)-1]
	assert.Equal(t, "Getting Home", last.Title)
	assert.Equal(t, "🏠", last.Icon)

	// The source document is untouched.
	assert.NotEqual(t, "Getting There", doc.Days[0].Blocks[0].Title)
}

func TestMergeTransferBlocksNoDays(t *testing.T) {
	svc := NewItineraryService()
	doc := svc.Parse("## Getting There\n- Fly in\n")

	days := svc.MergeTransferBlocks(doc)
	assert.Empty(t, days)
}

func TestMergeTransferBlocksSingleDay(t *testing.T) {
	svc := NewItineraryService()
	doc := svc.Parse(`## Getting There
- Fly in

## Day 1
**Morning**
- Explore

## Getting Home
- Fly out
`)

	days := svc.MergeTransferBlocks(doc)
	require.Len(t, days, 1)
	blocks := days[0].Blocks
	require.Len(t, blocks, 3)
	assert.Equal(t, "Getting There", blocks[0].Title)
	assert.Equal(t, "Morning", blocks[1].Title)
	assert.Equal(t, "Getting Home", blocks[2].Title)
}
