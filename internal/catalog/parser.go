package catalog

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/openabit/advisor/internal/model"
)

// Parsed text shorter than these limits is treated as a selector
// false-positive and skipped.
const (
	minDescriptionLength = 10
	minInstituteLength   = 3
)

// pageInfo holds the facts parsed from a program page's info cards,
// pre-filled with defaults.
type pageInfo struct {
	Form           string
	Language       string
	Cost           string
	Duration       int
	Dormitory      bool
	MilitaryCenter bool
	Accreditation  bool
}

func defaultPageInfo() pageInfo {
	return pageInfo{
		Form:     "очная",
		Language: "русский",
		Duration: 4,
	}
}

// parseProgram builds a Program from the page document. Courses come
// from the curated list: the page publishes the study plan only as a
// PDF link.
func parseProgram(doc *goquery.Document, name, url string, courses []model.Course) model.Program {
	info := extractInfo(doc)

	return model.Program{
		Name:           name,
		URL:            url,
		Description:    extractDescription(doc),
		Institute:      extractInstitute(doc),
		Duration:       info.Duration,
		Form:           info.Form,
		Language:       info.Language,
		Cost:           info.Cost,
		Dormitory:      info.Dormitory,
		MilitaryCenter: info.MilitaryCenter,
		Accreditation:  info.Accreditation,
		Courses:        courses,
	}
}

// extractDescription walks a selector fallback chain: the site's
// hashed CSS module class first, then progressively looser matches.
func extractDescription(doc *goquery.Document) string {
	selectors := []string{
		"span.AboutProgram_aboutProgram__description__Bf9LA",
		".AboutProgram_aboutProgram__description__Bf9LA",
		`[class*="description"]`,
		".program-description",
		".about-program",
	}

	for _, sel := range selectors {
		text := strings.TrimSpace(doc.Find(sel).First().Text())
		if len([]rune(text)) > minDescriptionLength {
			return text
		}
	}
	return defaultDescription
}

func extractInstitute(doc *goquery.Document) string {
	selectors := []string{
		`a[href*="viewfaculty"]`,
		`[class*="faculty"]`,
		`[class*="institute"]`,
		".faculty-name",
		".institute-name",
	}

	for _, sel := range selectors {
		text := strings.TrimSpace(doc.Find(sel).First().Text())
		if len([]rune(text)) > minInstituteLength {
			return text
		}
	}
	return defaultInstitute
}

// extractInfo parses the program info cards. The first selector that
// yields any cards wins; remaining selectors are not consulted.
func extractInfo(doc *goquery.Document) pageInfo {
	info := defaultPageInfo()

	selectors := []string{
		".Information_card__rshys",
		`[class*="card"]`,
		`[class*="info"]`,
		".program-info",
		".details",
	}

	for _, sel := range selectors {
		cards := doc.Find(sel)
		if cards.Length() == 0 {
			continue
		}
		cards.Each(func(_ int, card *goquery.Selection) {
			parseInfoCard(card, &info)
		})
		break
	}

	return info
}

// parseInfoCard reads one header/value card and fills the matching
// info field. Unrecognized headers are ignored.
func parseInfoCard(card *goquery.Selection, info *pageInfo) {
	header := strings.ToLower(strings.TrimSpace(card.Find("p, h3, h4, span").First().Text()))
	value := strings.TrimSpace(card.Find("div, span, p").First().Text())
	if header == "" || value == "" {
		return
	}

	lowValue := strings.ToLower(value)
	affirmative := strings.Contains(lowValue, "да") || strings.Contains(lowValue, "есть")

	switch {
	case strings.Contains(header, "форма"):
		info.Form = value
	case strings.Contains(header, "длительность"), strings.Contains(header, "срок"):
		switch {
		case strings.Contains(value, "2 года"), strings.Contains(value, "4 семестра"):
			info.Duration = 4
		case strings.Contains(value, "1 год"), strings.Contains(value, "2 семестра"):
			info.Duration = 2
		}
	case strings.Contains(header, "язык"):
		info.Language = value
	case strings.Contains(header, "стоимость"), strings.Contains(header, "цена"):
		info.Cost = value
	case strings.Contains(header, "общежитие"):
		info.Dormitory = affirmative
	case strings.Contains(header, "военный учебный центр"), strings.Contains(header, "вунц"):
		info.MilitaryCenter = affirmative
	case strings.Contains(header, "аккредитация"):
		info.Accreditation = affirmative
	}
}
