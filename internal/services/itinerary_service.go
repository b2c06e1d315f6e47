package services

import (
	"regexp"
	"strings"

	"sherpa/internal/models/response_models"
)

type ItineraryServiceInterface interface {
	Parse(markdown string) response_models.ItineraryDocument
	ParseCost(lines []string) []response_models.CostRow
	SelectCostSummary(rows []response_models.CostRow) response_models.CostSummary
	MergeTransferBlocks(doc response_models.ItineraryDocument) []response_models.Day
}

type ItineraryService struct {
	vocab Vocabulary
}

func NewItineraryService() ItineraryServiceInterface {
	return &ItineraryService{vocab: DefaultVocabulary()}
}

// Parse converts raw itinerary markdown into the structured document.
// Pure function over the input text: no state survives between calls
// and malformed input degrades to dropped or absorbed lines.
func (s *ItineraryService) Parse(markdown string) response_models.ItineraryDocument {
	if strings.TrimSpace(markdown) == "" {
		return response_models.NewItineraryDocument()
	}
	return newItineraryParser(s.vocab).run(markdown)
}

var costLine = regexp.MustCompile(`^(.+?):\s*(.+)$`)

// ParseCost splits each cost-guide line on the first colon. Lines
// without a colon become unlabeled rows carrying the whole line.
func (s *ItineraryService) ParseCost(lines []string) []response_models.CostRow {
	rows := make([]response_models.CostRow, 0, len(lines))
	for _, l := range lines {
		if m := costLine.FindStringSubmatch(l); m != nil {
			label := strings.TrimSpace(m[1])
			rows = append(rows, response_models.CostRow{
				Label: &label,
				Value: strings.TrimSpace(m[2]),
			})
			continue
		}
		rows = append(rows, response_models.CostRow{Value: l})
	}
	return rows
}

// SelectCostSummary designates the first row whose label contains
// "total" or "estimated" as the total. Later rows matching too are
// kept as ordinary breakdown entries, so duplicate totals stay visible
// instead of silently vanishing. Unlabeled rows are excluded from the
// breakdown.
func (s *ItineraryService) SelectCostSummary(rows []response_models.CostRow) response_models.CostSummary {
	summary := response_models.CostSummary{Breakdown: []response_models.CostRow{}}
	for _, row := range rows {
		if row.Label == nil {
			continue
		}
		if summary.Total == nil && isTotalLabel(*row.Label) {
			total := row
			summary.Total = &total
			continue
		}
		summary.Breakdown = append(summary.Breakdown, row)
	}
	return summary
}

func isTotalLabel(label string) bool {
	l := strings.ToLower(label)
	return strings.Contains(l, "total") || strings.Contains(l, "estimated")
}

// MergeTransferBlocks folds the Getting There section into day 1 and
// Getting Home into the last day, the way the itinerary view presents
// them. The document itself is not mutated.
func (s *ItineraryService) MergeTransferBlocks(doc response_models.ItineraryDocument) []response_models.Day {
	days := make([]response_models.Day, len(doc.Days))
	copy(days, doc.Days)

	there := doc.Sections[response_models.SectionGettingThere]
	home := doc.Sections[response_models.SectionGettingHome]

	if len(days) > 0 && len(there) > 0 {
		first := days[0]
		blocks := make([]response_models.Block, 0, len(first.Blocks)+1)
		blocks = append(blocks, response_models.Block{
			Kind:    response_models.BlockActivity,
			Title:   "Getting There",
			Icon:    "✈️",
			Details: there,
		})
		blocks = append(blocks, first.Blocks...)
		days[0] = response_models.Day{Title: first.Title, Blocks: blocks}
	}

	if len(days) > 0 && len(home) > 0 {
		last := days[len(days)-1]
		blocks := make([]response_models.Block, 0, len(last.Blocks)+1)
		blocks = append(blocks, last.Blocks...)
		blocks = append(blocks, response_models.Block{
			Kind:    response_models.BlockActivity,
			Title:   "Getting Home",
			Icon:    "🏠",
			Details: home,
		})
		days[len(days)-1] = response_models.Day{Title: last.Title, Blocks: blocks}
	}

	return days
}
