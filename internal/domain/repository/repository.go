package repository

import (
	"context"
	"time"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain"
)

// CacheRepository is a byte-level cache used to memoize plan responses by
// request digest.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ItineraryRepository persists winning day plans.
type ItineraryRepository interface {
	Save(ctx context.Context, itinerary *domain.Itinerary) error
	GetByID(ctx context.Context, id string) (*domain.Itinerary, error)
	List(ctx context.Context, limit, offset int) ([]domain.Itinerary, int, error)
}
