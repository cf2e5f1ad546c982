package shared_test

import (
	"context"
	"errors"
	"ohanna/shared"
	"ohanna/shared/cache/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "total less than limit", total: 5, limit: 10, expected: 1},
		{name: "single item", total: 1, limit: 1, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		page     int
		limit    int
		expected []int
	}{
		{name: "first page", page: 1, limit: 2, expected: []int{1, 2}},
		{name: "last partial page", page: 3, limit: 2, expected: []int{5}},
		{name: "page past the end", page: 4, limit: 2, expected: []int{}},
		{name: "no limit", page: 1, limit: 0, expected: items},
		{name: "page zero is the first page", page: 0, limit: 3, expected: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.Paginate(items, tt.page, tt.limit))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "calendar:month:2025:3", shared.BuildCacheKey("calendar:month", 2025, 3))
	assert.Equal(t, "calendar:month:2025:March", shared.BuildCacheKey("calendar:month", 2025, time.March))
	assert.Equal(t, "booking:gets", shared.BuildCacheKey("booking:gets"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "calendar:month*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "calendar:month")

	mockCache.EXPECT().Clear(gomock.Any(), "booking:gets*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "booking:gets")
}
