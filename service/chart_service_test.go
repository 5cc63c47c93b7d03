package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcc-tools/domain"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func TestRenderPie(t *testing.T) {
	cache := newCountingCache()
	s := NewChartService(cache, time.Hour)

	slices := []domain.Slice{{Name: "Cash", Value: 50000}, {Name: "Gold", Value: 25000}}

	png, err := s.RenderPie(context.Background(), "Assets", slices)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngSignature))

	again, err := s.RenderPie(context.Background(), "Assets", slices)
	require.NoError(t, err)
	assert.Equal(t, png, again)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, 1, cache.sets)
}

func TestRenderPie_DropsNonPositiveSlices(t *testing.T) {
	s := NewChartService(nil, 0)

	png, err := s.RenderPie(context.Background(), "", []domain.Slice{
		{Name: "Net Income", Value: -100},
		{Name: "Expenses", Value: 12000},
		{Name: "Other", Value: 0},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngSignature))
}

func TestRenderPie_Empty(t *testing.T) {
	s := NewChartService(nil, 0)

	_, err := s.RenderPie(context.Background(), "Nothing", []domain.Slice{{Name: "Cash", Value: 0}})
	assert.True(t, errors.Is(err, domain.ErrEmptyChart))

	_, err = s.RenderPie(context.Background(), "Nothing", nil)
	assert.True(t, errors.Is(err, domain.ErrEmptyChart))
}

func TestCacheKey(t *testing.T) {
	a, err := cacheKey("chart", pieRequest{Title: "x", Slices: []domain.Slice{{Name: "a", Value: 1}}})
	require.NoError(t, err)
	b, err := cacheKey("chart", pieRequest{Title: "x", Slices: []domain.Slice{{Name: "a", Value: 2}}})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^chart:[0-9a-f]{16}$`, a)
}
