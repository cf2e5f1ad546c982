package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"ohanna/config"
	"ohanna/internal/domains/draft/model"
	"ohanna/shared"
	"ohanna/shared/cache"
	"sync"

	"github.com/redis/go-redis/v9"
)

const cacheKeyDraft = "draft"

type Draft interface {
	Get(ctx context.Context, id string) (model.Draft, error)
	Save(ctx context.Context, draft model.Draft) error
	Delete(ctx context.Context, id string) error
}

// New keeps drafts in redis when it is configured, so they survive restarts and are shared
// between instances, and in process memory otherwise.
func New(client *redis.Client, c cache.RedisCache, cfg *config.Config) Draft {
	if client == nil {
		return NewMemory()
	}

	return NewCache(c, cfg.Cache.DraftTTL)
}

type memoryImpl struct {
	mu     sync.RWMutex
	drafts map[string]model.Draft
}

func NewMemory() Draft {
	return &memoryImpl{drafts: map[string]model.Draft{}}
}

func (m *memoryImpl) Get(_ context.Context, id string) (model.Draft, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	draft, ok := m.drafts[id]
	if !ok {
		return model.Draft{}, model.ErrDraftNotFound.WithDetail("id %s", id)
	}

	draft.Booking = draft.Booking.Clone()

	return draft, nil
}

func (m *memoryImpl) Save(_ context.Context, draft model.Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft.Booking = draft.Booking.Clone()
	m.drafts[draft.ID] = draft

	return nil
}

func (m *memoryImpl) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.drafts, id)

	return nil
}

type cacheImpl struct {
	cache cache.RedisCache
	ttl   int
}

// NewCache stores drafts as JSON under draft:<id>, expiring after ttl seconds.
func NewCache(c cache.RedisCache, ttl int) Draft {
	return &cacheImpl{cache: c, ttl: ttl}
}

func (r *cacheImpl) Get(ctx context.Context, id string) (draft model.Draft, err error) {
	err = r.cache.Get(ctx, shared.BuildCacheKey(cacheKeyDraft, id), &draft)
	if errors.Is(err, cache.Nil) {
		return draft, model.ErrDraftNotFound.WithDetail("id %s", id)
	}

	if err != nil {
		return draft, fmt.Errorf("failed to get draft: %w", err)
	}

	return draft, nil
}

func (r *cacheImpl) Save(ctx context.Context, draft model.Draft) error {
	if err := r.cache.Save(ctx, shared.BuildCacheKey(cacheKeyDraft, draft.ID), draft, r.ttl); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	return nil
}

func (r *cacheImpl) Delete(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, shared.BuildCacheKey(cacheKeyDraft, id)); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	return nil
}
