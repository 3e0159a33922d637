package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
)

func TestQueryParser_MostExpensiveWithArea(t *testing.T) {
	p := NewQueryParser()

	q, ok := p.Parse("most expensive hotels in Bodija")
	require.True(t, ok)
	assert.Equal(t, "hotel", q.Category)
	assert.Equal(t, entities.SortDescending, q.Sort)
	assert.False(t, q.Cheapest)
	assert.Equal(t, "bodija", q.Area)
	assert.Nil(t, q.MinPrice)
	assert.Nil(t, q.MaxPrice)
}

func TestQueryParser_CheapestWithMaxPrice(t *testing.T) {
	p := NewQueryParser()

	q, ok := p.Parse("cheapest food under 1000")
	require.True(t, ok)
	assert.Equal(t, "food", q.Category)
	assert.Equal(t, entities.SortAscending, q.Sort)
	assert.True(t, q.Cheapest)
	require.NotNil(t, q.MaxPrice)
	assert.Equal(t, 1000.0, *q.MaxPrice)
	assert.Empty(t, q.Area)
}

func TestQueryParser_LessThanTriggersBothCheapestAndCeiling(t *testing.T) {
	p := NewQueryParser()

	q, ok := p.Parse("hotels less than 5,000")
	require.True(t, ok)
	assert.True(t, q.Cheapest)
	require.NotNil(t, q.MaxPrice)
	assert.Equal(t, 5000.0, *q.MaxPrice)
}

func TestQueryParser_NearMe(t *testing.T) {
	p := NewQueryParser()

	q, ok := p.Parse("restaurants near me")
	require.True(t, ok)
	assert.Equal(t, "restaurant", q.Category)
	assert.True(t, q.NearMe)
	assert.Empty(t, q.Area)
}

func TestQueryParser_MinPrice(t *testing.T) {
	p := NewQueryParser()

	q, ok := p.Parse("hotels above ₦20,000 in agodi")
	require.True(t, ok)
	require.NotNil(t, q.MinPrice)
	assert.Equal(t, 20000.0, *q.MinPrice)
	assert.Equal(t, "agodi", q.Area)
}

func TestQueryParser_AreaExcludesTrailingPriceClause(t *testing.T) {
	p := NewQueryParser()

	q, ok := p.Parse("restaurants in bodija under 2000")
	require.True(t, ok)
	assert.Equal(t, "bodija", q.Area)
	require.NotNil(t, q.MaxPrice)
	assert.Equal(t, 2000.0, *q.MaxPrice)
}

func TestQueryParser_InexpensiveDoesNotMeanMostExpensive(t *testing.T) {
	p := NewQueryParser()

	q, ok := p.Parse("inexpensive hotels")
	require.True(t, ok)
	assert.Equal(t, entities.SortAscending, q.Sort)
	assert.True(t, q.Cheapest)
}

func TestQueryParser_DescendingBeatsCheapest(t *testing.T) {
	p := NewQueryParser()

	q, ok := p.Parse("most expensive but affordable hotels")
	require.True(t, ok)
	assert.Equal(t, entities.SortDescending, q.Sort)
	assert.False(t, q.Cheapest)
}

func TestQueryParser_NoCategoryFails(t *testing.T) {
	p := NewQueryParser()

	q, ok := p.Parse("what is the capital of oyo state")
	assert.False(t, ok)
	assert.Nil(t, q)
}
