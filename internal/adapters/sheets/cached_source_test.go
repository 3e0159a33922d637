package sheets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
)

type stubCache struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	setKeys []string
}

func newStubCache() *stubCache {
	return &stubCache{data: map[string][]byte{}}
}

func (c *stubCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return nil, errors.New("key not found")
}

func (c *stubCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = value
	c.setKeys = append(c.setKeys, key)
	return nil
}

func (c *stubCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *stubCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := c.data[key]
	return ok, nil
}

type countingSource struct {
	listings []entities.Listing
	calls    int
}

func (s *countingSource) FetchAll(ctx context.Context) ([]entities.Listing, error) {
	s.calls++
	return s.listings, nil
}

func TestCachedSource_SecondFetchHitsCache(t *testing.T) {
	inner := &countingSource{listings: []entities.Listing{{ID: 1, Name: "Bodija Suites"}}}
	cache := newStubCache()
	source := NewCachedSource(inner, cache, 300)

	first, err := source.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, inner.calls)

	second, err := source.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Bodija Suites", second[0].Name)
	assert.Equal(t, 1, inner.calls, "second fetch must come from cache")
}

func TestCachedSource_SetFailureFallsThrough(t *testing.T) {
	inner := &countingSource{listings: []entities.Listing{{ID: 1}}}
	cache := newStubCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	source := NewCachedSource(inner, cache, 300)

	got, err := source.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = source.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 2, inner.calls)
}
