package services

import (
	"regexp"
	"strings"
	"unicode"

	"sherpa/internal/models/response_models"
)

// Vocabulary holds the pattern tables the parser classifies lines
// with. The itinerary format is a loose convention produced by an LLM,
// not a grammar, so classification is vocabulary matching over heading
// and bold lines. Keeping the table injectable lets tests (and a
// future localization pass) swap word lists without touching the
// state machine.
type Vocabulary struct {
	Time         *regexp.Regexp
	Meal         *regexp.Regexp
	Day          *regexp.Regexp
	GettingThere *regexp.Regexp
	GettingHome  *regexp.Regexp
	Cost         *regexp.Regexp
	Tips         *regexp.Regexp
}

func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Time:         regexp.MustCompile(`(?i)^(morning|afternoon|evening|night|late afternoon|early evening)`),
		Meal:         regexp.MustCompile(`(?i)^(breakfast|lunch|dinner|brunch|supper)`),
		Day:          regexp.MustCompile(`(?i)^##\s+(Day\s*\d+[^#\n]*)`),
		GettingThere: regexp.MustCompile(`(?i)^##.*Getting There`),
		GettingHome:  regexp.MustCompile(`(?i)^##.*Getting Home`),
		Cost:         regexp.MustCompile(`(?i)^##.*Cost`),
		Tips:         regexp.MustCompile(`(?i)^##.*Local Tips`),
	}
}

var (
	boldLine   = regexp.MustCompile(`^\*\*(.+?)\*\*:?\s*(.*)$`)
	bulletMark = regexp.MustCompile(`^[-•*]\s*`)
)

// parserCursor is the mutable state of one parse pass: which day is
// open (by index, since Days grows while parsing), which block is
// accumulating detail lines, which meal card is still waiting for a
// venue name, and which non-day section is collecting text.
type parserCursor struct {
	doc     response_models.ItineraryDocument
	dayIdx  int
	block   *response_models.Block
	meal    *response_models.Block
	section string
}

type itineraryParser struct {
	vocab Vocabulary
	cur   parserCursor
}

func newItineraryParser(vocab Vocabulary) *itineraryParser {
	return &itineraryParser{
		vocab: vocab,
		cur: parserCursor{
			doc:    response_models.NewItineraryDocument(),
			dayIdx: -1,
		},
	}
}

// run consumes the markdown top to bottom. Every line lands in at most
// one place: a section's line list, a block's details, or it becomes a
// header. Unrecognized lines with nothing open are dropped, never an
// error.
func (p *itineraryParser) run(markdown string) response_models.ItineraryDocument {
	for _, raw := range strings.Split(markdown, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || line == "---" || line == "***" {
			continue
		}

		if p.routeSection(line) {
			continue
		}
		if m := p.vocab.Day.FindStringSubmatch(line); m != nil {
			p.openDay(strings.TrimSpace(m[1]))
			continue
		}
		if p.cur.section != "" {
			p.appendSectionLine(line)
			continue
		}
		if p.cur.dayIdx < 0 {
			continue
		}
		if m := boldLine.FindStringSubmatch(line); m != nil {
			p.handleBold(m[1], m[2])
			continue
		}
		p.handlePlain(line)
	}

	p.flush()
	return p.cur.doc
}

// routeSection switches into section mode when the line is one of the
// four section headers. Entering a section closes the open day and any
// pending blocks.
func (p *itineraryParser) routeSection(line string) bool {
	var section string
	switch {
	case p.vocab.GettingThere.MatchString(line):
		section = response_models.SectionGettingThere
	case p.vocab.GettingHome.MatchString(line):
		section = response_models.SectionGettingHome
	case p.vocab.Cost.MatchString(line):
		section = response_models.SectionCost
	case p.vocab.Tips.MatchString(line):
		section = response_models.SectionTips
	default:
		return false
	}

	p.flush()
	p.cur.section = section
	p.cur.dayIdx = -1
	return true
}

// openDay appends the day immediately so an empty day still appears in
// the document, and leaves section mode.
func (p *itineraryParser) openDay(title string) {
	p.flush()
	p.cur.doc.Days = append(p.cur.doc.Days, response_models.Day{
		Title:  title,
		Blocks: []response_models.Block{},
	})
	p.cur.dayIdx = len(p.cur.doc.Days) - 1
	p.cur.section = ""
}

func (p *itineraryParser) appendSectionLine(line string) {
	clean := cleanInline(line)
	if clean == "" {
		return
	}
	key := p.cur.section
	p.cur.doc.Sections[key] = append(p.cur.doc.Sections[key], clean)
}

// handleBold classifies the unwrapped bold text. Classification order:
// time vocabulary, meal vocabulary, venue name for a venue-less
// pending meal, plain activity.
func (p *itineraryParser) handleBold(rawTitle, trailing string) {
	trailing = strings.TrimSpace(strings.ReplaceAll(trailing, "**", ""))
	icon, label := splitIcon(strings.TrimSpace(rawTitle))
	label = strings.TrimSpace(strings.TrimSuffix(label, ":"))

	switch {
	case p.vocab.Time.MatchString(label):
		p.flush()
		p.cur.block = &response_models.Block{
			Kind:    response_models.BlockTime,
			Title:   label,
			Icon:    icon,
			Details: detailSeed(trailing),
		}

	case p.vocab.Meal.MatchString(label):
		p.flush()
		p.cur.meal = &response_models.Block{
			Kind:     response_models.BlockMeal,
			MealType: label,
			Icon:     icon,
			Details:  detailSeed(trailing),
		}

	case p.cur.meal != nil && p.cur.meal.VenueName == nil:
		// First bold line after a meal header names the venue. Does
		// not open a new block: the meal card stays pending until the
		// next header seals it.
		venue := label
		p.cur.meal.VenueName = &venue
		if trailing != "" {
			p.cur.meal.Details = append(p.cur.meal.Details, trailing)
		}

	default:
		p.flush()
		p.cur.block = &response_models.Block{
			Kind:    response_models.BlockActivity,
			Title:   label,
			Icon:    icon,
			Details: detailSeed(trailing),
		}
	}
}

func (p *itineraryParser) handlePlain(line string) {
	clean := cleanInline(line)
	if clean == "" {
		return
	}

	if strings.HasPrefix(clean, "|") && p.cur.meal != nil {
		sub := joinPipeSegments(clean)
		p.cur.meal.Subtitle = &sub
		return
	}

	if p.cur.meal != nil {
		p.cur.meal.Details = append(p.cur.meal.Details, clean)
		return
	}
	if p.cur.block != nil {
		p.cur.block.Details = append(p.cur.block.Details, clean)
		return
	}
	// No block open: the line has no home and is dropped.
}

// flush seals the pending meal first, then the open block, appending
// both to the current day. Blocks pending while no day is open are
// discarded, which only happens on malformed input.
func (p *itineraryParser) flush() {
	if p.cur.meal != nil {
		p.pushBlock(*p.cur.meal)
		p.cur.meal = nil
	}
	if p.cur.block != nil {
		p.pushBlock(*p.cur.block)
		p.cur.block = nil
	}
}

func (p *itineraryParser) pushBlock(b response_models.Block) {
	if p.cur.dayIdx < 0 {
		return
	}
	day := &p.cur.doc.Days[p.cur.dayIdx]
	day.Blocks = append(day.Blocks, b)
}

func detailSeed(trailing string) []string {
	if trailing == "" {
		return []string{}
	}
	return []string{trailing}
}

// cleanInline strips emphasis markers and a leading bullet marker.
func cleanInline(line string) string {
	clean := strings.ReplaceAll(line, "**", "")
	clean = bulletMark.ReplaceAllString(clean, "")
	return strings.TrimSpace(clean)
}

// joinPipeSegments turns "| Stari trg | Vegan café" into
// "Stari trg · Vegan café".
func joinPipeSegments(s string) string {
	parts := strings.Split(s, "|")
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " · ")
}

// splitIcon separates a leading emoji glyph run from the text of a
// bold label. The icon is display data only; classification runs on
// the remaining text.
func splitIcon(s string) (icon, label string) {
	runes := []rune(s)
	i := 0
	for i < len(runes) && (isIconRune(runes[i]) || unicode.IsSpace(runes[i])) {
		i++
	}
	icon = strings.TrimSpace(strings.Map(dropVariationSelector, string(runes[:i])))
	label = strings.TrimSpace(string(runes[i:]))
	return icon, label
}

func isIconRune(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // pictographs, symbols, emoji
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols and dingbats
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicator pairs
		return true
	case r == 0xFE0F || r == 0x200D || r == 0x20E3:
		return true
	}
	return false
}

func dropVariationSelector(r rune) rune {
	if r == 0xFE0F {
		return -1
	}
	return r
}
