package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
)

func TestReplyFormatter_Format(t *testing.T) {
	f := NewReplyFormatter()
	q := &entities.ListingQuery{Category: "hotel", Sort: entities.SortAscending, Cheapest: true, Area: "bodija"}
	page := Page{
		Items: []entities.Listing{
			{Name: "Bodija Suites", Area: "bodija", PriceFrom: 15000},
			{Name: "Kakanfo Inn", Area: "ring road", PriceFrom: 25000},
		},
		StartIndex: 0,
		Total:      7,
		HasMore:    true,
	}

	reply := f.Format(q, page)

	assert.True(t, strings.HasPrefix(reply, "Here are the cheapest hotel options in **bodija**:"))
	assert.Contains(t, reply, "1. Bodija Suites")
	assert.Contains(t, reply, "Bodija · from ₦15,000")
	assert.Contains(t, reply, "[Copy →](Bodija Suites)")
	assert.Contains(t, reply, "2. Kakanfo Inn")
	assert.Contains(t, reply, "[Copy →](Kakanfo Inn)")
	assert.Contains(t, reply, `Type "more" to see more options.`)
}

func TestReplyFormatter_DescendingPrefixBeatsCheapest(t *testing.T) {
	f := NewReplyFormatter()
	q := &entities.ListingQuery{Category: "hotel", Sort: entities.SortDescending, Cheapest: true}
	page := Page{Items: []entities.Listing{{Name: "Golden Tulip", Area: "jericho", PriceFrom: 45000}}}

	reply := f.Format(q, page)

	assert.True(t, strings.HasPrefix(reply, "Here are the most expensive hotel options:"))
	assert.NotContains(t, reply, "cheapest")
}

func TestReplyFormatter_RunningIndexContinuesAcrossPages(t *testing.T) {
	f := NewReplyFormatter()
	q := &entities.ListingQuery{Category: "hotel", Sort: entities.SortAscending}
	page := Page{
		Items:      []entities.Listing{{Name: "Sixth Hotel", Area: "dugbe", PriceFrom: 9000}},
		StartIndex: 5,
		Total:      6,
	}

	reply := f.Format(q, page)

	assert.Contains(t, reply, "6. Sixth Hotel")
	assert.Contains(t, reply, "That's all I have for now.")
}

func TestReplyFormatter_PriceBoundsInOpening(t *testing.T) {
	f := NewReplyFormatter()
	q := &entities.ListingQuery{
		Category: "hotel",
		Sort:     entities.SortAscending,
		NearMe:   true,
		MinPrice: floatPtr(10000),
		MaxPrice: floatPtr(50000),
	}
	page := Page{Items: []entities.Listing{{Name: "Kakanfo Inn", Area: "ring road", PriceFrom: 25000}}}

	reply := f.Format(q, page)

	assert.Contains(t, reply, "hotel options near you above ₦10,000 under ₦50,000:")
}

func TestReplyFormatter_Sentinels(t *testing.T) {
	f := NewReplyFormatter()
	q := &entities.ListingQuery{Category: "salon"}

	assert.Contains(t, f.NoResults(q), "salon")
	assert.Contains(t, f.NoMoreResults(q), "salon")
}
