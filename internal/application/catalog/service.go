// Package catalog implements category and product management: CRUD over the
// relational store, product image uploads to the media host, and a
// best-effort Redis cache in front of the listing reads.
package catalog

import (
	"time"

	"github.com/rs/zerolog"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type Service struct {
	categories CategoryStore
	products   ProductStore
	media      MediaStore
	cache      Cache
	cacheTTL   time.Duration
	clock      Clock
	log        zerolog.Logger
}

type Config struct {
	CacheTTL time.Duration
}

func NewService(categories CategoryStore, products ProductStore, media MediaStore, cache Cache, cfg Config, log zerolog.Logger) *Service {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Service{
		categories: categories,
		products:   products,
		media:      media,
		cache:      cache,
		cacheTTL:   ttl,
		clock:      realClock{},
		log:        log,
	}
}

// WithClock replaces the time source; tests use this for deterministic
// timestamps.
func (s *Service) WithClock(c Clock) *Service {
	s.clock = c
	return s
}
