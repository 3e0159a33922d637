package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"plain keyword", "hotels in bodija", "hotel", true},
		{"misspelled restaurant", "resturant near me", "restaurant", true},
		{"another misspelling", "restuarant prices", "restaurant", true},
		{"local food word", "where can i get amala", "food", true},
		{"punctuation and casing", "CHEAPEST Hotels?!", "hotel", true},
		{"no spacing", "cheapesthotels", "hotel", true},
		{"salon variant", "barbing salon in agodi", "salon", true},
		{"no category", "what is the weather today", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchCategory(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMatchCategory_DeclarationOrderWins(t *testing.T) {
	// Text mentioning two categories resolves to the one declared first.
	got, ok := MatchCategory("hotel with a restaurant")
	assert.True(t, ok)
	assert.Equal(t, "hotel", got)
}

func TestCategories_ReturnsCopy(t *testing.T) {
	first := Categories()
	first[0].Key = "mutated"
	second := Categories()
	assert.Equal(t, "hotel", second[0].Key)
}
