package services

import (
	"sort"
	"strconv"
	"strings"

	"sherpa/internal/models/response_models"
)

// kmlColors are aabbggrr icon tints per category, matching what Google
// Maps renders for the web palette.
var kmlColors = map[response_models.Category]string{
	response_models.CategoryRestaurant: "ff1400f9",
	response_models.CategoryCafe:       "ff06b6d4",
	response_models.CategoryBar:        "fff7a8d9",
	response_models.CategoryMuseum:     "ffec8305",
	response_models.CategoryAttraction: "ff00b4ea",
	response_models.CategoryMarket:     "ff4dc25e",
	response_models.CategoryPark:       "ff1db981",
	response_models.CategoryViewpoint:  "ffd4b606",
	response_models.CategoryBeach:      "ff14b8a6",
	response_models.CategoryHotel:      "ff4444ef",
}

const kmlDefaultColor = "ff7fb685"

type ExportServiceInterface interface {
	ToKML(pins []response_models.Pin, cityLabel string) string
	ToCSV(pins []response_models.Pin) string
}

type ExportService struct{}

func NewExportService() ExportServiceInterface {
	return &ExportService{}
}

// ToKML serializes mapped pins into a KML document with one folder per
// category, in alphabetical category order so output is deterministic
// regardless of pin arrival order. Pins without coordinates cannot be
// placed and are skipped; zero mapped pins still yields a well-formed
// document.
func (s *ExportService) ToKML(pins []response_models.Pin, cityLabel string) string {
	grouped := map[response_models.Category][]response_models.Pin{}
	for _, pin := range pins {
		if !pin.Mapped() {
			continue
		}
		grouped[pin.Category] = append(grouped[pin.Category], pin)
	}

	categories := make([]string, 0, len(grouped))
	for cat := range grouped {
		categories = append(categories, string(cat))
	}
	sort.Strings(categories)

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<kml xmlns=\"http://www.opengis.net/kml/2.2\">\n")
	b.WriteString("<Document>\n")
	b.WriteString("  <name>" + escapeXML(cityLabel) + " Itinerary</name>\n")
	b.WriteString("  <description>Generated by Sherpa Travel</description>\n")

	for _, cat := range categories {
		b.WriteString("  <Folder>\n")
		b.WriteString("    <name>" + escapeXML(cat) + "</name>\n")
		for _, pin := range grouped[response_models.Category(cat)] {
			writePlacemark(&b, pin)
		}
		b.WriteString("  </Folder>\n")
	}

	b.WriteString("</Document>\n")
	b.WriteString("</kml>\n")
	return b.String()
}

func writePlacemark(b *strings.Builder, pin response_models.Pin) {
	color, ok := kmlColors[pin.Category]
	if !ok {
		color = kmlDefaultColor
	}

	b.WriteString("    <Placemark>\n")
	b.WriteString("      <name>" + escapeXML(pin.Name) + "</name>\n")
	b.WriteString("      <description>" + escapeXML(pin.Description) + "</description>\n")
	b.WriteString("      <Style><IconStyle><color>" + color + "</color><scale>1.1</scale>\n")
	b.WriteString("        <Icon><href>https://maps.google.com/mapfiles/kml/paddle/wht-blank.png</href></Icon>\n")
	b.WriteString("      </IconStyle></Style>\n")
	// KML mandates longitude first.
	b.WriteString("      <Point><coordinates>" + formatCoord(*pin.Lng) + "," + formatCoord(*pin.Lat) + ",0</coordinates></Point>\n")
	b.WriteString("    </Placemark>\n")
}

// ToCSV serializes mapped pins for the My Maps desktop import: a fixed
// five-column header, every field quote-wrapped, and commas inside
// free text replaced outright so naive comma-splitting importers stay
// correct.
func (s *ExportService) ToCSV(pins []response_models.Pin) string {
	var b strings.Builder
	b.WriteString(`"Name","Category","Description","Latitude","Longitude"` + "\n")

	for _, pin := range pins {
		if !pin.Mapped() {
			continue
		}
		fields := []string{
			csvField(pin.Name),
			csvField(string(pin.Category)),
			csvField(pin.Description),
			csvField(formatCoord(*pin.Lat)),
			csvField(formatCoord(*pin.Lng)),
		}
		b.WriteString(strings.Join(fields, ",") + "\n")
	}

	return b.String()
}

func csvField(s string) string {
	s = strings.ReplaceAll(s, `"`, "'")
	s = strings.ReplaceAll(s, ",", ";")
	return `"` + s + `"`
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
