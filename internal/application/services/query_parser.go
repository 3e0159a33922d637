package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
)

// Intent detection runs on the lowercased (but otherwise untouched) text so
// word boundaries and spacing still matter, unlike category matching which
// works on the fully normalized form.
var (
	mostExpensiveRe = regexp.MustCompile(`\b(?:most expensive|expensive)\b`)
	cheapestRe      = regexp.MustCompile(`\b(?:cheapest|lowest|affordable|budget|inexpensive)\b|less than`)
	areaRe          = regexp.MustCompile(`\b(?:close to|inside|around|in|at)\s+(.+)$`)
	maxPriceRe      = regexp.MustCompile(`(?:under|below|less than)\s*₦?\s*([\d,]+)`)
	minPriceRe      = regexp.MustCompile(`(?:over|above|more than)\s*₦?\s*([\d,]+)`)
	nearMeRe        = regexp.MustCompile(`near me`)
)

// QueryParser turns free chat text into a structured listing query. A
// category keyword is mandatory; without one the parse reports no match and
// the caller falls back to a canned reply.
type QueryParser struct{}

// NewQueryParser creates a new query parser.
func NewQueryParser() *QueryParser {
	return &QueryParser{}
}

// Parse extracts a structured query from raw text. ok is false when no
// category keyword is recognized.
func (p *QueryParser) Parse(text string) (*entities.ListingQuery, bool) {
	lowered := strings.ToLower(strings.TrimSpace(text))

	category, ok := MatchCategory(lowered)
	if !ok {
		return nil, false
	}

	q := &entities.ListingQuery{
		Category: category,
		Sort:     entities.SortAscending,
	}

	if mostExpensiveRe.MatchString(lowered) {
		q.Sort = entities.SortDescending
	}
	// "less than 5000" flags cheapest intent AND sets the price ceiling
	// below. That dual trigger is intentional.
	if !mostExpensiveRe.MatchString(lowered) && cheapestRe.MatchString(lowered) {
		q.Cheapest = true
	}

	if m := areaRe.FindStringSubmatch(lowered); m != nil {
		// The capture runs to end of line, so trailing price or proximity
		// clauses must be cut out of the area phrase.
		area := maxPriceRe.ReplaceAllString(m[1], "")
		area = minPriceRe.ReplaceAllString(area, "")
		area = nearMeRe.ReplaceAllString(area, "")
		q.Area = strings.Join(strings.Fields(area), " ")
	}

	if m := maxPriceRe.FindStringSubmatch(lowered); m != nil {
		if v, err := parseAmount(m[1]); err == nil {
			q.MaxPrice = &v
		}
	}
	if m := minPriceRe.FindStringSubmatch(lowered); m != nil {
		if v, err := parseAmount(m[1]); err == nil {
			q.MinPrice = &v
		}
	}

	if nearMeRe.MatchString(lowered) {
		q.NearMe = true
	}

	return q, true
}

func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
