// Package cache wraps the process-wide read cache. Mutations invalidate it
// wholesale: keys are not tagged by resource, so selective eviction is not
// possible and a full flush keeps reads correct.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const DefaultTTL = 300 * time.Second

type Service struct {
	store *gocache.Cache
	ttl   time.Duration
}

func NewService(ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Service{
		store: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

func (s *Service) Get(key string) (any, bool) {
	return s.store.Get(key)
}

func (s *Service) Set(key string, value any) {
	s.store.Set(key, value, s.ttl)
}

func (s *Service) InvalidateAll() {
	s.store.Flush()
}
